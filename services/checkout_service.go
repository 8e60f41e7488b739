package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/EswarAdityaReddy/Foodie/entity"
	"github.com/EswarAdityaReddy/Foodie/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	flatDeliveryFee = decimal.NewFromInt(40)
	taxRate         = decimal.NewFromFloat(0.05)
)

// PaymentMethods accepted at checkout. Nothing is charged.
var PaymentMethods = []string{"card", "upi", "cash"}

// CheckoutSummary is the price breakdown shown next to the cart.
type CheckoutSummary struct {
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"deliveryFee"`
	Tax         decimal.Decimal `json:"tax"`
	GrandTotal  decimal.Decimal `json:"grandTotal"`
}

// Summarize derives the checkout breakdown; an empty cart has no delivery fee.
func Summarize(c entity.Cart) CheckoutSummary {
	subtotal := Totals(c).Price
	fee := decimal.Zero
	if !c.IsEmpty() {
		fee = flatDeliveryFee
	}
	tax := subtotal.Mul(taxRate)
	return CheckoutSummary{
		Subtotal:    subtotal,
		DeliveryFee: fee,
		Tax:         tax,
		GrandTotal:  subtotal.Add(fee).Add(tax),
	}
}

type CheckoutService struct {
	Sessions  *SessionStore
	Catalog   *CatalogService
	Orders    *repository.OrderRepository
	Publisher CartPublisher
	log       *zap.Logger
	now       func() time.Time
}

func NewCheckoutService(sessions *SessionStore, catalog *CatalogService, orders *repository.OrderRepository, pub CartPublisher, log *zap.Logger) *CheckoutService {
	return &CheckoutService{
		Sessions:  sessions,
		Catalog:   catalog,
		Orders:    orders,
		Publisher: pub,
		log:       log,
		now:       time.Now,
	}
}

// CheckoutInput is what the shopper picks on the cart page. An empty
// Address falls back to the user's first saved address.
type CheckoutInput struct {
	Address       string
	Instructions  string
	PaymentMethod string
}

// PlaceOrder records the cart as a mock order at the head of the session's
// history and empties the cart.
func (s *CheckoutService) PlaceOrder(sessionID string, in CheckoutInput) (entity.Order, error) {
	if !validPaymentMethod(in.PaymentMethod) {
		return entity.Order{}, ErrInvalidPayment
	}

	var order entity.Order
	sess, err := s.Sessions.Update(sessionID, func(sess *Session) error {
		if !sess.IsAuthenticated() {
			return ErrNotAuthenticated
		}
		if sess.Cart.IsEmpty() {
			return ErrCartEmpty
		}
		address := strings.TrimSpace(in.Address)
		if address == "" && len(sess.User.Addresses) > 0 {
			address = sess.User.Addresses[0]
		}
		if address == "" {
			return ErrAddressRequired
		}

		restaurantName := ""
		if sess.Cart.RestaurantID != nil {
			if r, err := s.Catalog.Restaurant(*sess.Cart.RestaurantID); err == nil {
				restaurantName = r.Name
			}
		}
		names := make([]string, 0, len(sess.Cart.Lines))
		for _, l := range sess.Cart.Lines {
			names = append(names, l.Name)
		}

		order = entity.Order{
			ID:             "ord-" + uuid.NewString(),
			Date:           s.now(),
			RestaurantName: restaurantName,
			Items:          names,
			Total:          Summarize(sess.Cart).GrandTotal,
			Status:         "Placed",
			Address:        address,
			Instructions:   strings.TrimSpace(in.Instructions),
			PaymentMethod:  in.PaymentMethod,
		}
		sess.Orders = append([]entity.Order{order}, sess.Orders...)
		sess.Cart = ClearCart()
		return nil
	})
	if err != nil {
		return entity.Order{}, err
	}

	s.log.Info("order placed",
		zap.String("session_id", sessionID),
		zap.String("order_id", order.ID),
		zap.String("payment_method", order.PaymentMethod),
		zap.String("total", order.Total.StringFixed(2)),
	)
	if s.Publisher != nil {
		s.Publisher.PublishCart(sessionID, NewCartView(sess.Cart))
	}
	return order, nil
}

// History returns the session's own orders followed by the seeded history.
func (s *CheckoutService) History(sessionID string) ([]entity.Order, error) {
	sess, err := s.Sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if !sess.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}
	seeded, err := s.Orders.ListHistory(0)
	if err != nil {
		return nil, fmt.Errorf("order history: %w", err)
	}
	out := make([]entity.Order, 0, len(sess.Orders)+len(seeded))
	out = append(out, sess.Orders...)
	return append(out, seeded...), nil
}

func validPaymentMethod(m string) bool {
	for _, pm := range PaymentMethods {
		if pm == m {
			return true
		}
	}
	return false
}
