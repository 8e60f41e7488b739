// middlewares/ws_auth.go
package middlewares

import (
	"strings"

	"github.com/EswarAdityaReddy/Foodie/pkg/resp"
	"github.com/EswarAdityaReddy/Foodie/services"

	"github.com/gin-gonic/gin"
)

// WSAuthMiddleware accepts the session token from the query string (browsers
// cannot set headers on a websocket handshake) or the Authorization header.
func WSAuthMiddleware(secret string, sessions *services.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenStr := c.Query("token")
		if tokenStr == "" {
			if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
				tokenStr = strings.TrimPrefix(h, "Bearer ")
			}
		}
		if tokenStr == "" {
			resp.Unauthorized(c, "missing token")
			c.Abort()
			return
		}
		authorize(c, tokenStr, secret, sessions, false)
	}
}
