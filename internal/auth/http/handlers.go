package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap-platform/skillswap/internal/auth/domain"
	"github.com/skillswap-platform/skillswap/internal/auth/service"
)

type Handler struct {
	svc *service.AuthService
}

func NewHandler(svc *service.AuthService) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	if err := validateSlots(req.Availability); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isPublic := true
	if req.IsPublic != nil {
		isPublic = *req.IsPublic
	}

	user, err := h.svc.Signup(c.Request.Context(), service.SignupInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		Location:     req.Location,
		Bio:          req.Bio,
		Availability: req.Availability,
		IsPublic:     isPublic,
	})
	if errors.Is(err, domain.ErrEmailTaken) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email already registered"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, signupResponse{
		ID:       user.ID,
		Email:    user.Email,
		Name:     user.Name,
		IsPublic: user.IsPublic,
	})
}

func (h *Handler) verifyEmail(c *gin.Context) {
	var req verifyEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	err := h.svc.VerifyEmail(c.Request.Context(), req.Email, req.OTP)
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
	case errors.Is(err, domain.ErrInvalidOTP):
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid or expired OTP"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, gin.H{"message": "Email verified successfully."})
	}
}

func (h *Handler) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	pair, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
	case errors.Is(err, domain.ErrEmailNotVerified):
		c.JSON(http.StatusForbidden, gin.H{"error": "email not verified"})
	case errors.Is(err, domain.ErrUserBanned):
		c.JSON(http.StatusForbidden, gin.H{"error": "account is banned"})
	case err != nil:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusOK, pair)
	}
}

// validateSlots rejects malformed availability windows at the edge.
func validateSlots(slots []domain.TimeSlot) error {
	for _, slot := range slots {
		if slot.Start == "" || slot.End == "" || slot.Start >= slot.End {
			return errors.New("time slot start must be before end")
		}
	}
	return nil
}
