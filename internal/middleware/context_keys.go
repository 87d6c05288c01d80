package middleware

import (
	"github.com/Sachin796/Worktopia/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey    = contextKey("userID")
	userRoleKey  = contextKey("userRole")
	sessionIDKey = contextKey("sessionID")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (int64, bool) {
	if v, exists := c.Get(string(userIDKey)); exists {
		userID, ok := v.(int64)
		return userID, ok
	}
	// check in the request context as well
	if v, ok := c.Request.Context().Value(userIDKey).(int64); ok {
		return v, true
	}
	return 0, false
}

// GetUserRoleFromContext retrieves the authenticated user's role.
func GetUserRoleFromContext(c *gin.Context) (domain.UserRole, bool) {
	v, exists := c.Get(string(userRoleKey))
	if !exists {
		return "", false
	}
	role, ok := v.(domain.UserRole)
	return role, ok
}

// GetSessionIDFromContext returns the session ID set by SessionMiddleware.
func GetSessionIDFromContext(c *gin.Context) string {
	return c.GetString(string(sessionIDKey))
}
