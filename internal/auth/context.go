package auth

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const (
	CtxUserID    = "user_id"
	CtxUserEmail = "user_email"
)

// AdminEmail is the fixed administrative address. Mirrored client-side; there
// is no server-asserted role claim.
const AdminEmail = "admin@skillswap.com"

// UserID returns the authenticated user's ID from the gin context. Set by
// RequireAuth.
func UserID(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserID))
}

// UserEmail returns the authenticated user's email from the gin context.
func UserEmail(c *gin.Context) string {
	return strings.TrimSpace(c.GetString(CtxUserEmail))
}
