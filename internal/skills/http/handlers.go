package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap-platform/skillswap/internal/auth"
	"github.com/skillswap-platform/skillswap/internal/skills/domain"
	"github.com/skillswap-platform/skillswap/internal/skills/repository"
)

type Handler struct {
	repo *repository.Repo
}

func NewHandler(repo *repository.Repo) *Handler {
	return &Handler{repo: repo}
}

// Register mounts the skill endpoints on an authenticated group.
func (h *Handler) Register(api *gin.RouterGroup) {
	skills := api.Group("/skills")
	skills.GET("/", h.list)
	skills.POST("/", h.create)
	skills.PUT("/:id/", h.update)
	skills.DELETE("/:id/", h.delete)
}

type createSkillRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Description string `json:"description" binding:"required,min=10"`
	Category    string `json:"category" binding:"required"`
	Level       string `json:"level" binding:"required"`
	Type        string `json:"type" binding:"required,oneof=offer request"`
}

type updateSkillRequest struct {
	Description string `json:"description" binding:"required,min=10"`
}

func (h *Handler) list(c *gin.Context) {
	skills, err := h.repo.ListVisible(c.Request.Context(), auth.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, skills)
}

func (h *Handler) create(c *gin.Context) {
	var req createSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	skill, err := h.repo.Create(c.Request.Context(), &domain.Skill{
		UserID:      auth.UserID(c),
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Level:       req.Level,
		Type:        req.Type,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, skill)
}

func (h *Handler) update(c *gin.Context) {
	var req updateSkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}

	skill, err := h.repo.UpdateDescription(c.Request.Context(), auth.UserID(c), c.Param("id"), req.Description)
	if err != nil {
		respondSkillError(c, err)
		return
	}
	c.JSON(http.StatusOK, skill)
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.repo.Delete(c.Request.Context(), auth.UserID(c), c.Param("id")); err != nil {
		respondSkillError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "skill deleted"})
}

func respondSkillError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrSkillNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "skill not found"})
	case errors.Is(err, domain.ErrNotOwner):
		c.JSON(http.StatusForbidden, gin.H{"error": "skill belongs to another user"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
