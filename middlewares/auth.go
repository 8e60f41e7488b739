package middlewares

import (
	"strings"

	"github.com/EswarAdityaReddy/Foodie/pkg/resp"
	"github.com/EswarAdityaReddy/Foodie/services"
	"github.com/EswarAdityaReddy/Foodie/utils"

	"github.com/gin-gonic/gin"
)

// SessionMiddleware resolves the bearer token to a live session. When
// requireUser is set, the session must also be signed in.
func SessionMiddleware(secret string, sessions *services.SessionStore, requireUser bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			resp.Unauthorized(c, "missing or invalid token")
			c.Abort()
			return
		}
		authorize(c, strings.TrimPrefix(h, "Bearer "), secret, sessions, requireUser)
	}
}

func authorize(c *gin.Context, tokenStr, secret string, sessions *services.SessionStore, requireUser bool) {
	claims, err := utils.ParseToken(tokenStr, secret)
	if err != nil {
		resp.Unauthorized(c, "invalid token")
		c.Abort()
		return
	}
	sess, err := sessions.Get(claims.SessionID)
	if err != nil {
		resp.Unauthorized(c, "session expired")
		c.Abort()
		return
	}
	if requireUser && !sess.IsAuthenticated() {
		resp.Unauthorized(c, "login required")
		c.Abort()
		return
	}

	utils.SetSessionID(c, sess.ID)
	c.Next()
}
