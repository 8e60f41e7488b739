package controllers

import (
	"github.com/EswarAdityaReddy/Foodie/pkg/resp"
	"github.com/EswarAdityaReddy/Foodie/services"
	"github.com/EswarAdityaReddy/Foodie/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	Svc      *services.CartService
	Checkout *services.CheckoutService
}

func NewCartController(s *services.CartService, co *services.CheckoutService) *CartController {
	return &CartController{Svc: s, Checkout: co}
}

type AddToCartRequest struct {
	MenuItemID string `json:"menuItemId" binding:"required"`
	OnConflict string `json:"onConflict" binding:"omitempty,oneof=ask replace keep"`
}

// CheckoutRequest.Address defaults to the user's first saved address.
type CheckoutRequest struct {
	Address       string `json:"address"`
	Instructions  string `json:"instructions" binding:"max=500"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=card upi cash"`
}

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	view, err := h.Svc.Get(utils.CurrentSessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	policy, _ := services.ParseConflictPolicy(req.OnConflict)

	view, result, err := h.Svc.Add(utils.CurrentSessionID(c), req.MenuItemID, policy)
	if err != nil {
		writeError(c, err)
		return
	}
	if result == services.AddNeedsConfirmation {
		resp.Conflict(c, "cart contains items from a different restaurant", gin.H{
			"result": result.String(),
			"cart":   view,
		})
		return
	}
	resp.OK(c, gin.H{"result": result.String(), "cart": view})
}

// PATCH /cart/items/:itemId
func (h *CartController) UpdateQty(c *gin.Context) {
	var body struct {
		Quantity *int `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	view, err := h.Svc.UpdateQty(utils.CurrentSessionID(c), c.Param("itemId"), *body.Quantity)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart/items/:itemId
func (h *CartController) RemoveItem(c *gin.Context) {
	view, err := h.Svc.RemoveItem(utils.CurrentSessionID(c), c.Param("itemId"))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, view)
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	view, err := h.Svc.Clear(utils.CurrentSessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, view)
}

// POST /cart/checkout
func (h *CartController) PlaceOrder(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	order, err := h.Checkout.PlaceOrder(utils.CurrentSessionID(c), services.CheckoutInput{
		Address:       req.Address,
		Instructions:  req.Instructions,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, order)
}
