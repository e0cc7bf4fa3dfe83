package domain

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailNotVerified   = errors.New("email not verified")
	ErrUserBanned         = errors.New("account is banned")
	ErrInvalidOTP         = errors.New("invalid or expired OTP")
)

// TimeSlot mirrors the wire shape used for availability windows. Start/End
// are zero-padded "HH:MM" strings, Start strictly before End.
type TimeSlot struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

// User is the full account record. PasswordHash never leaves the server.
type User struct {
	ID            string
	Email         string
	PasswordHash  string
	Name          string
	Location      string
	Bio           string
	Availability  []TimeSlot
	IsPublic      bool
	IsBanned      bool
	EmailVerified bool
	ProfilePhoto  string
}
