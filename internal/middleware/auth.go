package middleware

import (
	"context"
	"net/http"
	"strings"

	"medcontrol/internal/domain"
	jwtsvc "medcontrol/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID    = "user_id"
	ContextUserEmail = "user_email"
)

// UserLookup resolves the token subject (email) to a user row.
type UserLookup interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Auth validates the bearer token and resolves the caller. The resolved
// user id is placed in the request context and passed explicitly into every
// service call; nothing downstream reads ambient auth state.
func Auth(jwt *jwtsvc.Service, users UserLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" {
			unauthorized(c, "Missing Authorization header")
			return
		}

		if !strings.HasPrefix(h, "Bearer ") {
			unauthorized(c, "Invalid Authorization header")
			return
		}

		tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
		if tokenStr == "" {
			unauthorized(c, "Empty token")
			return
		}

		email, err := jwt.ExtractSubject(tokenStr)
		if err != nil {
			unauthorized(c, "Invalid token")
			return
		}

		user, err := users.GetByEmail(c.Request.Context(), email)
		if err != nil {
			unauthorized(c, "Invalid token")
			return
		}

		c.Set(ContextUserID, user.ID)
		c.Set(ContextUserEmail, user.Email)

		c.Next()
	}
}

// CallerID returns the authenticated user's id set by Auth.
func CallerID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"error": gin.H{
			"code":    "UNAUTHORIZED",
			"message": message,
		},
	})
}
