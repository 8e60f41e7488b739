package services

import (
	"github.com/EswarAdityaReddy/Foodie/entity"

	"go.uber.org/zap"
)

// CartPublisher is notified with the new cart view after every change.
type CartPublisher interface {
	PublishCart(sessionID string, view CartView)
}

// CartView is what clients render: the lines plus everything derived from them.
type CartView struct {
	Lines        []entity.CartLine `json:"items"`
	RestaurantID *string           `json:"restaurantId"`
	Totals       entity.CartTotals `json:"totals"`
	Summary      CheckoutSummary   `json:"summary"`
}

func NewCartView(c entity.Cart) CartView {
	lines := c.Lines
	if lines == nil {
		lines = []entity.CartLine{}
	}
	return CartView{
		Lines:        lines,
		RestaurantID: c.RestaurantID,
		Totals:       Totals(c),
		Summary:      Summarize(c),
	}
}

// CartService applies cart engine operations to a session's cart.
type CartService struct {
	Sessions  *SessionStore
	Menu      *MenuService
	Publisher CartPublisher
	log       *zap.Logger
}

func NewCartService(sessions *SessionStore, menu *MenuService, pub CartPublisher, log *zap.Logger) *CartService {
	return &CartService{Sessions: sessions, Menu: menu, Publisher: pub, log: log}
}

func (s *CartService) Get(sessionID string) (CartView, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return CartView{}, err
	}
	return NewCartView(sess.Cart), nil
}

// Add puts one unit of the catalog item into the session's cart. The
// candidate's price and restaurant come from the catalog, never the caller.
func (s *CartService) Add(sessionID, menuItemID string, policy ConflictPolicy) (CartView, AddResult, error) {
	item, err := s.Menu.Get(menuItemID)
	if err != nil {
		return CartView{}, AddAborted, err
	}
	candidate := entity.CandidateFromMenuItem(item)

	var result AddResult
	sess, err := s.Sessions.Update(sessionID, func(sess *Session) error {
		sess.Cart, result = AddItem(sess.Cart, candidate, policy)
		return nil
	})
	if err != nil {
		return CartView{}, AddAborted, err
	}

	s.log.Debug("cart add",
		zap.String("session_id", sessionID),
		zap.String("item_id", menuItemID),
		zap.Stringer("result", result),
	)
	view := NewCartView(sess.Cart)
	if result == AddApplied || result == AddReplaced {
		s.publish(sessionID, view)
	}
	return view, result, nil
}

func (s *CartService) UpdateQty(sessionID, itemID string, qty int) (CartView, error) {
	return s.apply(sessionID, func(c entity.Cart) entity.Cart {
		return UpdateQuantity(c, itemID, qty)
	})
}

func (s *CartService) RemoveItem(sessionID, itemID string) (CartView, error) {
	return s.apply(sessionID, func(c entity.Cart) entity.Cart {
		return RemoveItem(c, itemID)
	})
}

func (s *CartService) Clear(sessionID string) (CartView, error) {
	return s.apply(sessionID, func(entity.Cart) entity.Cart {
		return ClearCart()
	})
}

func (s *CartService) apply(sessionID string, op func(entity.Cart) entity.Cart) (CartView, error) {
	sess, err := s.Sessions.Update(sessionID, func(sess *Session) error {
		sess.Cart = op(sess.Cart)
		return nil
	})
	if err != nil {
		return CartView{}, err
	}
	view := NewCartView(sess.Cart)
	s.publish(sessionID, view)
	return view, nil
}

func (s *CartService) publish(sessionID string, view CartView) {
	if s.Publisher != nil {
		s.Publisher.PublishCart(sessionID, view)
	}
}
