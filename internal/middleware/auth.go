package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mfalves/todo-list-api/internal/auth"
	"github.com/mfalves/todo-list-api/internal/constants"
	apierrors "github.com/mfalves/todo-list-api/internal/errors"
)

// RequireAuth resolves the bearer credential from the Authorization header.
// The verifier runs exactly once per request; handlers read the resolved
// user ID back from the context via GetUserID.
func RequireAuth(verifier auth.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			apierrors.Unauthorized(c, "Authorization header required")
			c.Abort()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			apierrors.Unauthorized(c, "Invalid authorization format")
			c.Abort()
			return
		}

		identity, err := verifier.Verify(parts[1])
		if err != nil {
			switch err {
			case auth.ErrExpiredToken:
				apierrors.Unauthorized(c, "Token expired")
			default:
				apierrors.Unauthorized(c, "Invalid token")
			}
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, identity.UserID)
		c.Next()
	}
}

// GetUserID retrieves the current user ID from context
func GetUserID(c *gin.Context) (string, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return "", false
	}

	id, ok := userID.(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
