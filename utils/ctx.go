package utils

import "github.com/gin-gonic/gin"

const sessionIDKey = "sessionId"

func SetSessionID(c *gin.Context, id string) { c.Set(sessionIDKey, id) }

// CurrentSessionID returns the session id put on the context by the auth middleware.
func CurrentSessionID(c *gin.Context) string {
	return c.GetString(sessionIDKey)
}
