package entity

import "github.com/shopspring/decimal"

// Cart is an immutable snapshot of a session's cart. Lines are unique by
// ItemID and, when non-empty, all belong to RestaurantID.
type Cart struct {
	Lines        []CartLine `json:"items"`
	RestaurantID *string    `json:"restaurantId"`
}

// CartTotals are derived on every read.
type CartTotals struct {
	ItemCount int             `json:"totalItems"`
	Price     decimal.Decimal `json:"totalPrice"`
}

func (c Cart) IsEmpty() bool { return len(c.Lines) == 0 }

// Line returns the line for itemID, if any.
func (c Cart) Line(itemID string) (CartLine, bool) {
	for _, l := range c.Lines {
		if l.ItemID == itemID {
			return l, true
		}
	}
	return CartLine{}, false
}

// BoundTo reports whether the cart is bound to restaurantID.
func (c Cart) BoundTo(restaurantID string) bool {
	return c.RestaurantID != nil && *c.RestaurantID == restaurantID
}
