package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap-platform/skillswap/internal/auth"
	"github.com/skillswap-platform/skillswap/internal/swaps/domain"
	"github.com/skillswap-platform/skillswap/internal/swaps/service"
)

type Handler struct {
	svc *service.SwapService
}

func NewHandler(svc *service.SwapService) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the swap and rating endpoints on an authenticated group.
func (h *Handler) Register(api *gin.RouterGroup) {
	swaps := api.Group("/swaps")
	swaps.GET("/", h.list)
	swaps.POST("/", h.create)
	swaps.PUT("/:id/accept/", h.accept)
	swaps.PUT("/:id/reject/", h.reject)
	swaps.PUT("/:id/complete/", h.complete)

	api.POST("/ratings/", h.rate)
}

type createSwapRequest struct {
	RequesterSkillID  string            `json:"requester_skill_id" binding:"required"`
	ReceiverID        string            `json:"receiver_id" binding:"required"`
	ReceiverSkillID   string            `json:"receiver_skill_id" binding:"required"`
	ProposedTimeSlots []domain.TimeSlot `json:"proposed_time_slots"`
}

type rejectSwapRequest struct {
	Reason string `json:"reason"`
}

type createRatingRequest struct {
	SwapID  string `json:"swap_id" binding:"required"`
	RatedID string `json:"rated_id" binding:"required"`
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment"`
}

func (h *Handler) list(c *gin.Context) {
	swaps, err := h.svc.List(c.Request.Context(), auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, swaps)
}

func (h *Handler) create(c *gin.Context) {
	var req createSwapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	swap, err := h.svc.Create(c.Request.Context(), service.CreateInput{
		RequesterID:       auth.UserID(c),
		ReceiverID:        req.ReceiverID,
		RequesterSkillID:  req.RequesterSkillID,
		ReceiverSkillID:   req.ReceiverSkillID,
		ProposedTimeSlots: req.ProposedTimeSlots,
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, swap)
}

func (h *Handler) accept(c *gin.Context) {
	swap, err := h.svc.Accept(c.Request.Context(), auth.UserID(c), c.Param("id"))
	if err != nil {
		respondSwapError(c, err)
		return
	}
	c.JSON(http.StatusOK, swap)
}

func (h *Handler) reject(c *gin.Context) {
	var req rejectSwapRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
	}

	swap, err := h.svc.Reject(c.Request.Context(), auth.UserID(c), c.Param("id"), req.Reason)
	if err != nil {
		respondSwapError(c, err)
		return
	}
	c.JSON(http.StatusOK, swap)
}

func (h *Handler) complete(c *gin.Context) {
	swap, err := h.svc.Complete(c.Request.Context(), auth.UserID(c), c.Param("id"))
	if err != nil {
		respondSwapError(c, err)
		return
	}
	c.JSON(http.StatusOK, swap)
}

func (h *Handler) rate(c *gin.Context) {
	var req createRatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	rating, err := h.svc.Rate(c.Request.Context(), auth.UserID(c), &domain.Rating{
		SwapID:  req.SwapID,
		RatedID: req.RatedID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		respondSwapError(c, err)
		return
	}
	c.JSON(http.StatusCreated, rating)
}

func respondSwapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSwapNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "swap not found"})
	case errors.Is(err, domain.ErrNotParticipant), errors.Is(err, domain.ErrNotReceiver):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrInvalidTransition),
		errors.Is(err, domain.ErrSwapNotCompleted),
		errors.Is(err, domain.ErrRatingOutOfRange):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
