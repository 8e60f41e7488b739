package entity

// Restaurant is a read-only catalog entry.
type Restaurant struct {
	ID           string     `gorm:"primaryKey;size:64" json:"id"`
	Name         string     `gorm:"not null" json:"name"`
	Image        string     `json:"image"`
	Cuisines     []string   `gorm:"type:text;serializer:json" json:"cuisines"` // ordered
	Rating       float64    `json:"rating"`                     // 0-5
	DeliveryTime string     `json:"deliveryTime"`
	PriceRange   int        `json:"priceRange"` // 1 = cheapest
	Distance     string     `json:"distance"`
	Promotion    *string    `json:"promotion,omitempty"`
	IsNew        bool       `json:"isNew"`
	Position     int        `gorm:"index" json:"-"` // catalog order

	MenuItems []MenuItem `gorm:"foreignKey:RestaurantID" json:"-"`
}

// HasCuisine reports whether name is one of the restaurant's cuisines (case-sensitive).
func (r Restaurant) HasCuisine(name string) bool {
	for _, c := range r.Cuisines {
		if c == name {
			return true
		}
	}
	return false
}
