package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the client's session ID for search state.
const SessionHeader = "X-Session-ID"

// SessionMiddleware reads the session ID header, generating one when absent.
// The ID is echoed back so the client can reuse it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" || len(sessionID) > 128 {
			sessionID = uuid.NewString()
		}
		c.Set(string(sessionIDKey), sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}
