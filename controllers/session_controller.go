package controllers

import (
	"time"

	"github.com/EswarAdityaReddy/Foodie/entity"
	"github.com/EswarAdityaReddy/Foodie/pkg/resp"
	"github.com/EswarAdityaReddy/Foodie/services"
	"github.com/EswarAdityaReddy/Foodie/utils"

	"github.com/gin-gonic/gin"
)

type SessionController struct {
	Sessions  *services.SessionStore
	JWTSecret string
	JWTTTL    time.Duration
}

func NewSessionController(sessions *services.SessionStore, secret string, ttl time.Duration) *SessionController {
	return &SessionController{Sessions: sessions, JWTSecret: secret, JWTTTL: ttl}
}

// SessionResponse is the session-state surface a client renders from.
type SessionResponse struct {
	ID              string            `json:"id"`
	IsAuthenticated bool              `json:"isAuthenticated"`
	User            *entity.User      `json:"user"`
	Cart            services.CartView `json:"cart"`
	Favorites       []string          `json:"favorites"`
}

func toSessionResponse(s services.Session) SessionResponse {
	return SessionResponse{
		ID:              s.ID,
		IsAuthenticated: s.IsAuthenticated(),
		User:            s.User.Clone(),
		Cart:            services.NewCartView(s.Cart),
		Favorites:       s.Favorites,
	}
}

// POST /sessions
func (h *SessionController) Create(c *gin.Context) {
	sess := h.Sessions.Create()
	token, err := utils.GenerateToken(sess.ID, h.JWTSecret, h.JWTTTL)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.Created(c, gin.H{"token": token, "session": toSessionResponse(sess)})
}

// GET /session
func (h *SessionController) Get(c *gin.Context) {
	sess, err := h.Sessions.Get(utils.CurrentSessionID(c))
	if err != nil {
		writeError(c, err)
		return
	}
	resp.OK(c, toSessionResponse(sess))
}
