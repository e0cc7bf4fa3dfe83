package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/skillswap-platform/skillswap/internal/auth"
	"github.com/skillswap-platform/skillswap/internal/auth/domain"
)

// UserGetter loads an account by ID so the middleware can reject banned users.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// RequireAuth validates the bearer access token and stores the user's ID and
// email in the gin context. Missing, invalid, and expired tokens, as well as
// banned or deleted accounts, all get 401.
func RequireAuth(tokens *auth.TokenManager, users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
			c.Abort()
			return
		}

		claims, err := tokens.VerifyAccess(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		user, err := users.GetByID(c.Request.Context(), claims.Subject)
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "load user: " + err.Error()})
			c.Abort()
			return
		}
		if user.IsBanned {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "account is banned"})
			c.Abort()
			return
		}

		c.Set(auth.CtxUserID, user.ID)
		c.Set(auth.CtxUserEmail, user.Email)
		c.Next()
	}
}

// RequireAdmin gates a route group to the administrative account. Must run
// after RequireAuth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if auth.UserEmail(c) != auth.AdminEmail {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// extractToken pulls the bearer token from the Authorization header.
func extractToken(c *gin.Context) string {
	bearerToken := c.GetHeader("Authorization")
	if len(bearerToken) > 7 && strings.HasPrefix(bearerToken, "Bearer ") {
		return bearerToken[7:]
	}
	return ""
}
