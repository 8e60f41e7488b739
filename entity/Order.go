package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is an entry of the mock order history shown on the profile page.
type Order struct {
	ID             string          `gorm:"primaryKey;size:64" json:"id"`
	Date           time.Time       `json:"date"`
	RestaurantName string          `json:"restaurant"`
	Items          []string        `gorm:"type:text;serializer:json" json:"items"`
	Total          decimal.Decimal `gorm:"type:numeric" json:"total"`
	Status         string          `gorm:"size:32" json:"status"`
	Address        string          `json:"address,omitempty"`
	Instructions   string          `json:"instructions,omitempty"`
	PaymentMethod  string          `gorm:"size:16" json:"paymentMethod,omitempty"`
}
