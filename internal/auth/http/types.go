package http

import "github.com/skillswap-platform/skillswap/internal/auth/domain"

type signupRequest struct {
	Email        string            `json:"email" binding:"required,email"`
	Password     string            `json:"password" binding:"required,min=8"`
	Name         string            `json:"name" binding:"required"`
	Location     string            `json:"location"`
	Bio          string            `json:"bio"`
	Availability []domain.TimeSlot `json:"availability"`
	IsPublic     *bool             `json:"is_public"`
}

type verifyEmailRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required,len=6,numeric"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type signupResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	IsPublic bool   `json:"is_public"`
}
