package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap-platform/skillswap/internal/adminpanel"
	"github.com/skillswap-platform/skillswap/internal/adminpanel/repository"
	"github.com/skillswap-platform/skillswap/internal/auth"
	authdomain "github.com/skillswap-platform/skillswap/internal/auth/domain"
	skillsdomain "github.com/skillswap-platform/skillswap/internal/skills/domain"
)

type Handler struct {
	repo        *repository.Repo
	broadcaster *adminpanel.Broadcaster
}

func NewHandler(repo *repository.Repo, broadcaster *adminpanel.Broadcaster) *Handler {
	return &Handler{repo: repo, broadcaster: broadcaster}
}

// Register mounts the admin panel routes. The group is expected to carry
// RequireAuth and RequireAdmin already.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/users/", h.listUsers)
	rg.PUT("/users/:id/ban/", h.banUser)
	rg.GET("/skills/pending/", h.pendingSkills)
	rg.PUT("/skills/:id/approve/", h.approveSkill)
	rg.PUT("/skills/:id/reject/", h.rejectSkill)
	rg.POST("/messages/broadcast/", h.broadcast)
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.repo.ListUsers(c.Request.Context())
	if err != nil {
		log.Printf("admin: list users: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list users"})
		return
	}
	c.JSON(http.StatusOK, users)
}

type banRequest struct {
	IsBanned bool `json:"is_banned"`
}

func (h *Handler) banUser(c *gin.Context) {
	var req banRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	targetID := c.Param("id")
	ctx := c.Request.Context()
	if err := h.repo.SetBanned(ctx, targetID, req.IsBanned); err != nil {
		if errors.Is(err, authdomain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		log.Printf("admin: ban user %s: %v", targetID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update user"})
		return
	}

	action := "unban_user"
	if req.IsBanned {
		action = "ban_user"
	}
	if err := h.repo.RecordAction(ctx, auth.UserID(c), action, targetID, ""); err != nil {
		log.Printf("admin: record action: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"id": targetID, "is_banned": req.IsBanned})
}

func (h *Handler) pendingSkills(c *gin.Context) {
	skills, err := h.repo.PendingSkills(c.Request.Context())
	if err != nil {
		log.Printf("admin: pending skills: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list skills"})
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *Handler) approveSkill(c *gin.Context) {
	h.moderate(c, skillsdomain.StatusApproved, "approve_skill", "")
}

type rejectSkillRequest struct {
	Reason string `json:"reason"`
}

func (h *Handler) rejectSkill(c *gin.Context) {
	var req rejectSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	h.moderate(c, skillsdomain.StatusRejected, "reject_skill", req.Reason)
}

func (h *Handler) moderate(c *gin.Context, status, action, reason string) {
	skillID := c.Param("id")
	ctx := c.Request.Context()

	if err := h.repo.ModerateSkill(ctx, skillID, status); err != nil {
		switch {
		case errors.Is(err, skillsdomain.ErrSkillNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "skill not found"})
		case errors.Is(err, repository.ErrSkillNotPending):
			c.JSON(http.StatusConflict, gin.H{"error": "skill is not pending"})
		default:
			log.Printf("admin: moderate skill %s: %v", skillID, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update skill"})
		}
		return
	}

	if err := h.repo.RecordAction(ctx, auth.UserID(c), action, skillID, reason); err != nil {
		log.Printf("admin: record action: %v", err)
	}

	c.JSON(http.StatusOK, gin.H{"id": skillID, "status": status})
}

type broadcastRequest struct {
	Message string `json:"message" binding:"required"`
}

func (h *Handler) broadcast(c *gin.Context) {
	var req broadcastRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	bc, err := h.broadcaster.Send(c.Request.Context(), auth.UserID(c), req.Message)
	if err != nil {
		log.Printf("admin: broadcast: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to send broadcast"})
		return
	}
	c.JSON(http.StatusCreated, bc)
}
