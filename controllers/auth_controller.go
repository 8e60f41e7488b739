package controllers

import (
	"github.com/EswarAdityaReddy/Foodie/pkg/resp"
	"github.com/EswarAdityaReddy/Foodie/services"
	"github.com/EswarAdityaReddy/Foodie/utils"

	"github.com/gin-gonic/gin"
)

type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}
// LoginRequest accepts any credentials; the mock provider checks nothing.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthController struct{ Svc *services.AuthService }

func NewAuthController(s *services.AuthService) *AuthController { return &AuthController{Svc: s} }

// POST /auth/signup
func (a *AuthController) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.Signup(utils.CurrentSessionID(c), req.Name, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.Created(c, user)
}

// POST /auth/login
func (a *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	user, err := a.Svc.Login(utils.CurrentSessionID(c), req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, user)
}

// POST /auth/logout
func (a *AuthController) Logout(c *gin.Context) {
	if err := a.Svc.Logout(utils.CurrentSessionID(c)); err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, gin.H{"isAuthenticated": false})
}
