package entity

import "github.com/shopspring/decimal"

type MenuItem struct {
	ID           string          `gorm:"primaryKey;size:64" json:"id"`
	RestaurantID string          `gorm:"index;size:64;not null" json:"restaurantId"`
	Name         string          `gorm:"not null" json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `gorm:"type:numeric" json:"price"`
	Image        *string         `json:"image,omitempty"`
	IsVeg        bool            `json:"isVeg"`
	IsSpicy      bool            `json:"isSpicy"`
	IsBestseller bool            `json:"isBestseller"`
	Category     string          `gorm:"size:100" json:"category"` // display section label
	Position     int             `gorm:"index" json:"-"`
}

// MenuSection is one display group of a restaurant's menu.
type MenuSection struct {
	ID    string     `json:"id"`
	Name  string     `json:"name"`
	Items []MenuItem `json:"items"`
}
