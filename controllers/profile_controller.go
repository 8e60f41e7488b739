package controllers

import (
	"strconv"

	"github.com/EswarAdityaReddy/Foodie/pkg/resp"
	"github.com/EswarAdityaReddy/Foodie/services"
	"github.com/EswarAdityaReddy/Foodie/utils"

	"github.com/gin-gonic/gin"
)

type ProfileController struct {
	Auth     *services.AuthService
	Checkout *services.CheckoutService
}

func NewProfileController(a *services.AuthService, co *services.CheckoutService) *ProfileController {
	return &ProfileController{Auth: a, Checkout: co}
}

// GET /profile
func (h *ProfileController) Get(c *gin.Context) {
	u, err := h.Auth.Profile(utils.CurrentSessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, u)
}

// PATCH /profile
func (h *ProfileController) Update(c *gin.Context) {
	var req services.ProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := h.Auth.UpdateProfile(utils.CurrentSessionID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, u)
}

// POST /profile/addresses
func (h *ProfileController) AddAddress(c *gin.Context) {
	var body struct {
		Address string `json:"address" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	u, err := h.Auth.AddAddress(utils.CurrentSessionID(c), body.Address)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, u)
}

// DELETE /profile/addresses/:index
func (h *ProfileController) RemoveAddress(c *gin.Context) {
	idx, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		resp.BadRequest(c, "invalid address index")
		return
	}
	u, err := h.Auth.RemoveAddress(utils.CurrentSessionID(c), idx)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, u)
}

// GET /profile/orders
func (h *ProfileController) Orders(c *gin.Context) {
	orders, err := h.Checkout.History(utils.CurrentSessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"items": orders})
}
