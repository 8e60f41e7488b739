package entity

// User is the mock account attached to a session. It is never persisted.
type User struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     *string  `json:"phone,omitempty"`
	Addresses []string `json:"addresses"`
}

// Clone returns a deep copy so snapshots never share the address slice.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}
	cp := *u
	if u.Phone != nil {
		p := *u.Phone
		cp.Phone = &p
	}
	cp.Addresses = make([]string, len(u.Addresses))
	copy(cp.Addresses, u.Addresses)
	return &cp
}
