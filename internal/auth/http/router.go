package http

import "github.com/gin-gonic/gin"

// Register mounts the unauthenticated account endpoints on /api/user.
func (h *Handler) Register(user *gin.RouterGroup) {
	user.POST("/signup/", h.signup)
	user.POST("/verify-email/", h.verifyEmail)
	user.POST("/login/", h.login)
}
