package http

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/skillswap-platform/skillswap/internal/auth"
	authdomain "github.com/skillswap-platform/skillswap/internal/auth/domain"
	"github.com/skillswap-platform/skillswap/internal/photos"
	skillsdomain "github.com/skillswap-platform/skillswap/internal/skills/domain"
	swapsdomain "github.com/skillswap-platform/skillswap/internal/swaps/domain"
	"github.com/skillswap-platform/skillswap/internal/users/repository"
)

// maxPhotoBytes caps a profile photo upload.
const maxPhotoBytes = 5 << 20

type UserGetter interface {
	GetByID(ctx context.Context, id string) (*authdomain.User, error)
}

type SkillLister interface {
	ListByUser(ctx context.Context, userID string) ([]skillsdomain.Skill, error)
}

type RatingLister interface {
	ListReceived(ctx context.Context, userID string) ([]swapsdomain.Rating, error)
}

type Handler struct {
	users   UserGetter
	profile *repository.ProfileRepo
	skills  SkillLister
	ratings RatingLister
	photos  photos.Store
}

func NewHandler(users UserGetter, profile *repository.ProfileRepo, skills SkillLister, ratings RatingLister, photoStore photos.Store) *Handler {
	return &Handler{users: users, profile: profile, skills: skills, ratings: ratings, photos: photoStore}
}

// Register mounts the profile endpoints on an authenticated group.
func (h *Handler) Register(user *gin.RouterGroup) {
	user.GET("/profile/", h.getProfile)
	user.PUT("/profile/", h.updateProfile)
	user.POST("/profile-photo/", h.uploadPhoto)
	user.GET("/profile-photo/:id/", h.getPhoto)
}

type profileResponse struct {
	ID              string                 `json:"id"`
	Email           string                 `json:"email"`
	Name            string                 `json:"name"`
	Location        string                 `json:"location,omitempty"`
	Bio             string                 `json:"bio,omitempty"`
	Availability    []authdomain.TimeSlot  `json:"availability"`
	IsPublic        bool                   `json:"is_public"`
	Skills          []skillsdomain.Skill   `json:"skills"`
	Ratings         []swapsdomain.Rating   `json:"ratings"`
	ProfilePhotoURL string                 `json:"profile_photo_url,omitempty"`
}

type updateProfileRequest struct {
	Bio          *string               `json:"bio"`
	Location     *string               `json:"location"`
	IsPublic     *bool                 `json:"is_public"`
	Availability []authdomain.TimeSlot `json:"availability"`
}

func (h *Handler) getProfile(c *gin.Context) {
	h.respondProfile(c, auth.UserID(c))
}

func (h *Handler) updateProfile(c *gin.Context) {
	var req updateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	for _, slot := range req.Availability {
		if slot.Start == "" || slot.End == "" || slot.Start >= slot.End {
			c.JSON(http.StatusBadRequest, gin.H{"error": "time slot start must be before end"})
			return
		}
	}

	userID := auth.UserID(c)
	err := h.profile.Update(c.Request.Context(), userID, repository.UpdateInput{
		Bio:          req.Bio,
		Location:     req.Location,
		IsPublic:     req.IsPublic,
		Availability: req.Availability,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.respondProfile(c, userID)
}

func (h *Handler) respondProfile(c *gin.Context, userID string) {
	ctx := c.Request.Context()

	user, err := h.users.GetByID(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	skills, err := h.skills.ListByUser(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ratings, err := h.ratings.ListReceived(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := profileResponse{
		ID:           user.ID,
		Email:        user.Email,
		Name:         user.Name,
		Location:     user.Location,
		Bio:          user.Bio,
		Availability: user.Availability,
		IsPublic:     user.IsPublic,
		Skills:       skills,
		Ratings:      ratings,
	}
	if resp.Availability == nil {
		resp.Availability = []authdomain.TimeSlot{}
	}

	if user.ProfilePhoto != "" && h.photos != nil {
		url, err := h.photos.PresignGet(ctx, user.ProfilePhoto)
		if err != nil {
			// Serve the profile anyway; the photo link is best-effort.
			log.Printf("presign photo for %s failed: %v", userID, err)
		} else {
			resp.ProfilePhotoURL = url
		}
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) uploadPhoto(c *gin.Context) {
	if h.photos == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo storage is not configured"})
		return
	}

	file, header, err := c.Request.FormFile("profile_photo")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file provided"})
		return
	}
	defer file.Close()

	if header.Size > maxPhotoBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large"})
		return
	}

	userID := auth.UserID(c)
	key := photos.Key(userID, header.Filename)

	url, err := h.photos.Upload(c.Request.Context(), key, file, header.Header.Get("Content-Type"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if err := h.profile.SetPhotoKey(c.Request.Context(), userID, key); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_photo_url": url})
}

func (h *Handler) getPhoto(c *gin.Context) {
	if h.photos == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "photo storage is not configured"})
		return
	}

	user, err := h.users.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, authdomain.ErrUserNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if user.ProfilePhoto == "" {
		c.JSON(http.StatusNotFound, gin.H{"error": "no profile photo"})
		return
	}

	url, err := h.photos.PresignGet(c.Request.Context(), user.ProfilePhoto)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"profile_photo_url": url})
}
