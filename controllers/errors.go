package controllers

import (
	"errors"

	"github.com/EswarAdityaReddy/Foodie/pkg/resp"
	"github.com/EswarAdityaReddy/Foodie/services"

	"github.com/gin-gonic/gin"
)

// writeError maps service errors onto the response envelope.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrNotAuthenticated):
		resp.Unauthorized(c, err.Error())
	case errors.Is(err, services.ErrRestaurantNotFound),
		errors.Is(err, services.ErrMenuItemNotFound),
		errors.Is(err, services.ErrCategoryNotFound):
		resp.NotFound(c, err.Error())
	case errors.Is(err, services.ErrCartEmpty),
		errors.Is(err, services.ErrAddressIndex),
		errors.Is(err, services.ErrInvalidPayment),
		errors.Is(err, services.ErrAddressRequired):
		resp.BadRequest(c, err.Error())
	default:
		_ = c.Error(err)
		resp.ServerError(c, err)
	}
}
