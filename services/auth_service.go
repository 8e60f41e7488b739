package services

import (
	"strings"

	"github.com/EswarAdityaReddy/Foodie/entity"

	"go.uber.org/zap"
)

// ProfileUpdate is a partial edit; nil fields are left alone.
type ProfileUpdate struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
}

// AuthService is the mock authentication provider. Any credentials are
// accepted and the returned user has a fixed shape.
type AuthService struct {
	Sessions *SessionStore
	log      *zap.Logger
}

func NewAuthService(sessions *SessionStore, log *zap.Logger) *AuthService {
	return &AuthService{Sessions: sessions, log: log}
}

// MockLoginUser is the record every login produces.
func MockLoginUser(email string) *entity.User {
	phone := "555-1234"
	return &entity.User{
		ID:        "1",
		Name:      "John Doe",
		Email:     normalizeEmail(email),
		Phone:     &phone,
		Addresses: []string{"123 Main St, Anytown, USA"},
	}
}

// MockSignupUser is the record a signup produces.
func MockSignupUser(name, email string) *entity.User {
	return &entity.User{
		ID:        "1",
		Name:      strings.TrimSpace(name),
		Email:     normalizeEmail(email),
		Addresses: []string{},
	}
}

// Login signs the session in. The password is not checked.
func (s *AuthService) Login(sessionID, email, _ string) (*entity.User, error) {
	return s.setUser(sessionID, MockLoginUser(email))
}

// Signup signs the session in with a fresh account.
func (s *AuthService) Signup(sessionID, name, email, _ string) (*entity.User, error) {
	return s.setUser(sessionID, MockSignupUser(name, email))
}

func (s *AuthService) setUser(sessionID string, u *entity.User) (*entity.User, error) {
	_, err := s.Sessions.Update(sessionID, func(sess *Session) error {
		sess.User = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("session signed in", zap.String("session_id", sessionID), zap.String("email", u.Email))
	return u.Clone(), nil
}

// Logout drops the user. The cart is kept.
func (s *AuthService) Logout(sessionID string) error {
	_, err := s.Sessions.Update(sessionID, func(sess *Session) error {
		sess.User = nil
		return nil
	})
	return err
}

func (s *AuthService) Profile(sessionID string) (*entity.User, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	return sess.User.Clone(), nil
}

// UpdateProfile merges the non-nil fields of in into the current user.
func (s *AuthService) UpdateProfile(sessionID string, in ProfileUpdate) (*entity.User, error) {
	return s.editUser(sessionID, func(u *entity.User) error {
		if in.Name != nil {
			u.Name = strings.TrimSpace(*in.Name)
		}
		if in.Email != nil {
			u.Email = normalizeEmail(*in.Email)
		}
		if in.Phone != nil {
			p := strings.TrimSpace(*in.Phone)
			u.Phone = &p
		}
		return nil
	})
}

func (s *AuthService) AddAddress(sessionID, address string) (*entity.User, error) {
	return s.editUser(sessionID, func(u *entity.User) error {
		u.Addresses = append(u.Addresses, strings.TrimSpace(address))
		return nil
	})
}

func (s *AuthService) RemoveAddress(sessionID string, index int) (*entity.User, error) {
	return s.editUser(sessionID, func(u *entity.User) error {
		if index < 0 || index >= len(u.Addresses) {
			return ErrAddressIndex
		}
		u.Addresses = append(u.Addresses[:index], u.Addresses[index+1:]...)
		return nil
	})
}

// editUser runs fn on a copy of the user so a failed edit leaves the session untouched.
func (s *AuthService) editUser(sessionID string, fn func(*entity.User) error) (*entity.User, error) {
	sess, err := s.Sessions.Update(sessionID, func(sess *Session) error {
		if !sess.IsAuthenticated() {
			return ErrNotAuthenticated
		}
		u := sess.User.Clone()
		if err := fn(u); err != nil {
			return err
		}
		sess.User = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sess.User.Clone(), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
