package skillswap

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
)

// Profile fetches the caller's own profile, including skills, received
// ratings, and a presigned photo URL when one exists.
func (c *Client) Profile(ctx context.Context) (*User, error) {
	var u User
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/profile/", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UpdateProfileRequest carries the editable profile fields. Nil/zero fields
// are omitted and left untouched server-side.
type UpdateProfileRequest struct {
	Bio          *string    `json:"bio,omitempty"`
	Location     *string    `json:"location,omitempty"`
	IsPublic     *bool      `json:"is_public,omitempty"`
	Availability []TimeSlot `json:"availability,omitempty"`
}

// UpdateProfile updates the caller's own profile.
func (c *Client) UpdateProfile(ctx context.Context, req UpdateProfileRequest) (*User, error) {
	if err := checkTimeSlots("availability", req.Availability); err != nil {
		return nil, err
	}

	var u User
	if err := c.doJSON(ctx, http.MethodPut, "/api/user/profile/", req, &u); err != nil {
		return nil, err
	}
	return &u, nil
}

// UploadProfilePhoto sends the photo as a multipart form and returns the
// stored photo URL.
func (c *Client) UploadProfilePhoto(ctx context.Context, filename string, photo io.Reader) (string, error) {
	if filename == "" {
		return "", &ValidationError{Field: "filename", Message: "failed required check"}
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("profile_photo", filename)
	if err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}
	if _, err := io.Copy(part, photo); err != nil {
		return "", fmt.Errorf("read photo: %w", err)
	}
	if err := mw.Close(); err != nil {
		return "", fmt.Errorf("build multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/user/profile-photo/", &buf)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	var resp struct {
		ProfilePhotoURL string `json:"profile_photo_url"`
	}
	if err := c.send(req, &resp); err != nil {
		return "", err
	}
	return resp.ProfilePhotoURL, nil
}

// ProfilePhoto returns a short-lived presigned URL for another user's photo.
func (c *Client) ProfilePhoto(ctx context.Context, userID string) (string, error) {
	var resp struct {
		ProfilePhotoURL string `json:"profile_photo_url"`
	}
	if err := c.doJSON(ctx, http.MethodGet, "/api/user/profile-photo/"+userID+"/", nil, &resp); err != nil {
		return "", err
	}
	return resp.ProfilePhotoURL, nil
}
