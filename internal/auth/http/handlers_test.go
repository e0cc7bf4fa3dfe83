package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap-platform/skillswap/internal/auth"
	"github.com/skillswap-platform/skillswap/internal/auth/domain"
	"github.com/skillswap-platform/skillswap/internal/auth/service"
	"github.com/skillswap-platform/skillswap/internal/email"
)

type memUserStore struct {
	users map[string]*domain.User
}

func (s *memUserStore) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := s.users[u.Email]; ok {
		return nil, domain.ErrEmailTaken
	}
	copied := *u
	copied.ID = "id-" + u.Email
	s.users[u.Email] = &copied
	return &copied, nil
}

func (s *memUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *memUserStore) MarkVerified(_ context.Context, email string) error {
	u, ok := s.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.EmailVerified = true
	return nil
}

type memOTPStore struct {
	codes map[string]string
}

func (s *memOTPStore) Issue(_ context.Context, email string) (string, error) {
	s.codes[email] = "654321"
	return "654321", nil
}

func (s *memOTPStore) Consume(_ context.Context, email, otp string) error {
	if s.codes[email] != otp {
		return domain.ErrInvalidOTP
	}
	delete(s.codes, email)
	return nil
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	tokens := auth.NewTokenManager("test-secret", 30*time.Minute, 7*24*time.Hour)
	svc := service.NewAuthService(
		&memUserStore{users: map[string]*domain.User{}},
		&memOTPStore{codes: map[string]string{}},
		tokens,
		email.LogSender{},
	)

	r := gin.New()
	NewHandler(svc).Register(r.Group("/api/user"))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSignupVerifyLoginFlow(t *testing.T) {
	r := newTestRouter()

	w := postJSON(r, "/api/user/signup/",
		`{"email":"alice@example.com","password":"password123","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "alice@example.com")

	// Login is refused until the email is verified.
	w = postJSON(r, "/api/user/login/",
		`{"email":"alice@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = postJSON(r, "/api/user/verify-email/",
		`{"email":"alice@example.com","otp":"654321"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Email verified successfully.")

	w = postJSON(r, "/api/user/login/",
		`{"email":"alice@example.com","password":"password123"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var pair struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
}

func TestSignupValidation(t *testing.T) {
	r := newTestRouter()

	tests := []struct {
		name string
		body string
	}{
		{"missing email", `{"password":"password123","name":"Alice"}`},
		{"bad email", `{"email":"not-an-email","password":"password123","name":"Alice"}`},
		{"short password", `{"email":"alice@example.com","password":"short","name":"Alice"}`},
		{"missing name", `{"email":"alice@example.com","password":"password123"}`},
		{"misordered slot", `{"email":"alice@example.com","password":"password123","name":"Alice",
			"availability":[{"day":"Monday","start":"17:00","end":"09:00"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(r, "/api/user/signup/", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestSignupDuplicateEmail(t *testing.T) {
	r := newTestRouter()
	body := `{"email":"alice@example.com","password":"password123","name":"Alice"}`

	w := postJSON(r, "/api/user/signup/", body)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(r, "/api/user/signup/", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "already registered")
}

func TestVerifyEmailRejectsBadOTP(t *testing.T) {
	r := newTestRouter()

	w := postJSON(r, "/api/user/signup/",
		`{"email":"alice@example.com","password":"password123","name":"Alice"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	// Wrong shape never reaches the service.
	w = postJSON(r, "/api/user/verify-email/",
		`{"email":"alice@example.com","otp":"12345"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = postJSON(r, "/api/user/verify-email/",
		`{"email":"alice@example.com","otp":"000000"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid or expired OTP")

	w = postJSON(r, "/api/user/verify-email/",
		`{"email":"nobody@example.com","otp":"654321"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLoginInvalidCredentials(t *testing.T) {
	r := newTestRouter()

	w := postJSON(r, "/api/user/login/",
		`{"email":"nobody@example.com","password":"password123"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "invalid credentials")
}
