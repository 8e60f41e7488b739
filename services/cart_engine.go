package services

import (
	"github.com/EswarAdityaReddy/Foodie/entity"

	"github.com/shopspring/decimal"
)

// ConflictPolicy says what AddItem does when the candidate belongs to a
// different restaurant than the one the cart is bound to.
type ConflictPolicy int

const (
	// ConflictAsk leaves the cart untouched and reports AddNeedsConfirmation.
	ConflictAsk ConflictPolicy = iota
	// ConflictReplace discards the cart and starts a new one for the candidate.
	ConflictReplace
	// ConflictKeep declines the candidate and keeps the current cart.
	ConflictKeep
)

var conflictPolicyNames = map[string]ConflictPolicy{
	"":        ConflictAsk,
	"ask":     ConflictAsk,
	"replace": ConflictReplace,
	"keep":    ConflictKeep,
}

// ParseConflictPolicy maps the wire value ("ask", "replace", "keep") to a policy.
func ParseConflictPolicy(s string) (ConflictPolicy, bool) {
	p, ok := conflictPolicyNames[s]
	return p, ok
}

// AddResult is the outcome of AddItem.
type AddResult int

const (
	AddApplied AddResult = iota
	AddReplaced
	AddNeedsConfirmation
	AddAborted
)

func (r AddResult) String() string {
	switch r {
	case AddApplied:
		return "applied"
	case AddReplaced:
		return "replaced"
	case AddNeedsConfirmation:
		return "needs_confirmation"
	case AddAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// AddItem returns the cart after adding one unit of candidate.
// The input cart is never modified.
func AddItem(cart entity.Cart, candidate entity.CartCandidate, policy ConflictPolicy) (entity.Cart, AddResult) {
	if !cart.IsEmpty() && !cart.BoundTo(candidate.RestaurantID) {
		switch policy {
		case ConflictReplace:
			return entity.Cart{
				Lines:        []entity.CartLine{newLine(candidate)},
				RestaurantID: stringPtr(candidate.RestaurantID),
			}, AddReplaced
		case ConflictKeep:
			return cart, AddAborted
		default:
			return cart, AddNeedsConfirmation
		}
	}

	next := entity.Cart{
		Lines:        make([]entity.CartLine, 0, len(cart.Lines)+1),
		RestaurantID: stringPtr(candidate.RestaurantID),
	}
	merged := false
	for _, l := range cart.Lines {
		if l.ItemID == candidate.ItemID {
			l.Quantity++
			merged = true
		}
		next.Lines = append(next.Lines, l)
	}
	if !merged {
		next.Lines = append(next.Lines, newLine(candidate))
	}
	return next, AddApplied
}

// RemoveItem drops the line for itemID. Unknown ids are a no-op. The
// restaurant binding is cleared when the resulting cart is empty.
func RemoveItem(cart entity.Cart, itemID string) entity.Cart {
	next := entity.Cart{Lines: make([]entity.CartLine, 0, len(cart.Lines))}
	for _, l := range cart.Lines {
		if l.ItemID != itemID {
			next.Lines = append(next.Lines, l)
		}
	}
	if len(next.Lines) > 0 && cart.RestaurantID != nil {
		next.RestaurantID = stringPtr(*cart.RestaurantID)
	}
	return next
}

// UpdateQuantity sets the quantity of itemID. A quantity of zero or less
// removes the line.
func UpdateQuantity(cart entity.Cart, itemID string, quantity int) entity.Cart {
	if quantity <= 0 {
		return RemoveItem(cart, itemID)
	}
	next := entity.Cart{Lines: make([]entity.CartLine, len(cart.Lines))}
	copy(next.Lines, cart.Lines)
	for i := range next.Lines {
		if next.Lines[i].ItemID == itemID {
			next.Lines[i].Quantity = quantity
		}
	}
	if cart.RestaurantID != nil {
		next.RestaurantID = stringPtr(*cart.RestaurantID)
	}
	return next
}

// ClearCart returns an empty, unbound cart.
func ClearCart() entity.Cart {
	return entity.Cart{Lines: []entity.CartLine{}}
}

// Totals sums quantities and line prices.
func Totals(cart entity.Cart) entity.CartTotals {
	t := entity.CartTotals{Price: decimal.Zero}
	for _, l := range cart.Lines {
		t.ItemCount += l.Quantity
		t.Price = t.Price.Add(l.Subtotal())
	}
	return t
}

func newLine(c entity.CartCandidate) entity.CartLine {
	return entity.CartLine{
		ItemID:       c.ItemID,
		RestaurantID: c.RestaurantID,
		Name:         c.Name,
		UnitPrice:    c.Price,
		Quantity:     1,
		Image:        c.Image,
	}
}

func stringPtr(s string) *string { return &s }
