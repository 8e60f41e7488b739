package entity

import "github.com/shopspring/decimal"

type CartLine struct {
	ItemID       string          `json:"id"`
	RestaurantID string          `json:"restaurantId"`
	Name         string          `json:"name"`
	UnitPrice    decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	Image        *string         `json:"image,omitempty"`
}

// Subtotal is UnitPrice × Quantity.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// CartCandidate is the menu-item reference handed to the cart engine.
type CartCandidate struct {
	ItemID       string          `json:"id"`
	RestaurantID string          `json:"restaurantId"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	Image        *string         `json:"image,omitempty"`
}

// CandidateFromMenuItem builds the cart candidate for a catalog item.
func CandidateFromMenuItem(m MenuItem) CartCandidate {
	return CartCandidate{
		ItemID:       m.ID,
		RestaurantID: m.RestaurantID,
		Name:         m.Name,
		Price:        m.Price,
		Image:        m.Image,
	}
}
