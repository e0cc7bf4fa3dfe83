package skillswap

import (
	"context"
	"net/http"

	"github.com/skillswap-platform/skillswap/pkg/session"
)

// SignupRequest registers a new account. A six-digit OTP is mailed to the
// address for verification.
type SignupRequest struct {
	Email        string     `json:"email" validate:"required,email"`
	Password     string     `json:"password" validate:"required,min=8"`
	Name         string     `json:"name" validate:"required"`
	Location     string     `json:"location,omitempty"`
	Bio          string     `json:"bio,omitempty"`
	Availability []TimeSlot `json:"availability,omitempty"`
	IsPublic     bool       `json:"is_public"`
}

// Signup creates an account. No authentication is required.
func (c *Client) Signup(ctx context.Context, req SignupRequest) error {
	if err := checkStruct(req); err != nil {
		return err
	}
	if err := checkTimeSlots("availability", req.Availability); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, "/api/user/signup/", req, nil)
}

// VerifyEmail confirms ownership of the address with the mailed OTP.
func (c *Client) VerifyEmail(ctx context.Context, email, otp string) error {
	req := struct {
		Email string `json:"email" validate:"required,email"`
		OTP   string `json:"otp" validate:"required,len=6,numeric"`
	}{Email: email, OTP: otp}
	if err := checkStruct(req); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, "/api/user/verify-email/", req, nil)
}

// Login exchanges credentials for a token pair. It satisfies
// session.Authenticator; the session store persists the pair on success. A
// failed login surfaces the server's error unchanged.
func (c *Client) Login(ctx context.Context, email, password string) (session.Credentials, error) {
	req := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{Email: email, Password: password}

	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/api/user/login/", req, &resp); err != nil {
		return session.Credentials{}, err
	}
	return session.Credentials{AccessToken: resp.Access, RefreshToken: resp.Refresh}, nil
}
