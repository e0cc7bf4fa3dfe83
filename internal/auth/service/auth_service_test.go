package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillswap-platform/skillswap/internal/auth"
	"github.com/skillswap-platform/skillswap/internal/auth/domain"
)

type fakeUserStore struct {
	users  map[string]*domain.User
	nextID int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*domain.User{}}
}

func (s *fakeUserStore) Create(_ context.Context, u *domain.User) (*domain.User, error) {
	if _, ok := s.users[u.Email]; ok {
		return nil, domain.ErrEmailTaken
	}
	s.nextID++
	copied := *u
	copied.ID = string(rune('a' + s.nextID))
	s.users[u.Email] = &copied
	return &copied, nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return u, nil
}

func (s *fakeUserStore) MarkVerified(_ context.Context, email string) error {
	u, ok := s.users[email]
	if !ok {
		return domain.ErrUserNotFound
	}
	u.EmailVerified = true
	return nil
}

type fakeOTPStore struct {
	codes map[string]string
}

func newFakeOTPStore() *fakeOTPStore {
	return &fakeOTPStore{codes: map[string]string{}}
}

func (s *fakeOTPStore) Issue(_ context.Context, email string) (string, error) {
	s.codes[email] = "123456"
	return "123456", nil
}

func (s *fakeOTPStore) Consume(_ context.Context, email, otp string) error {
	stored, ok := s.codes[email]
	if !ok || stored != otp {
		return domain.ErrInvalidOTP
	}
	delete(s.codes, email)
	return nil
}

type recordingMailer struct {
	sent []string
}

func (m *recordingMailer) Send(to, subject, body string) error {
	m.sent = append(m.sent, subject)
	return nil
}

func newTestService() (*AuthService, *fakeUserStore, *fakeOTPStore, *recordingMailer) {
	users := newFakeUserStore()
	otps := newFakeOTPStore()
	mailer := &recordingMailer{}
	tokens := auth.NewTokenManager("test-secret", 30*time.Minute, 7*24*time.Hour)
	return NewAuthService(users, otps, tokens, mailer), users, otps, mailer
}

func TestSignupSendsOTPAndWelcome(t *testing.T) {
	svc, users, _, mailer := newTestService()

	user, err := svc.Signup(context.Background(), SignupInput{
		Email:    "alice@example.com",
		Password: "password123",
		Name:     "Alice",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.False(t, user.EmailVerified)

	stored, err := users.GetByEmail(context.Background(), "alice@example.com")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")))

	require.Len(t, mailer.sent, 2)
	assert.Contains(t, mailer.sent[0], "OTP")
	assert.Contains(t, mailer.sent[1], "Welcome")
}

func TestSignupDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Email: "alice@example.com", Password: "password123", Name: "Alice"})
	require.NoError(t, err)

	_, err = svc.Signup(ctx, SignupInput{Email: "alice@example.com", Password: "password123", Name: "Alice"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}

func TestVerifyEmailFlow(t *testing.T) {
	svc, users, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Email: "alice@example.com", Password: "password123", Name: "Alice"})
	require.NoError(t, err)

	assert.ErrorIs(t, svc.VerifyEmail(ctx, "alice@example.com", "999999"), domain.ErrInvalidOTP)

	require.NoError(t, svc.VerifyEmail(ctx, "alice@example.com", "123456"))

	stored, err := users.GetByEmail(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.True(t, stored.EmailVerified)
}

func TestVerifyEmailUnknownUser(t *testing.T) {
	svc, _, _, _ := newTestService()
	err := svc.VerifyEmail(context.Background(), "nobody@example.com", "123456")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Email: "alice@example.com", Password: "password123", Name: "Alice"})
	require.NoError(t, err)

	// Unverified accounts cannot log in.
	_, err = svc.Login(ctx, "alice@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrEmailNotVerified)

	require.NoError(t, svc.VerifyEmail(ctx, "alice@example.com", "123456"))

	pair, err := svc.Login(ctx, "alice@example.com", "password123")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.Access)
	assert.NotEmpty(t, pair.Refresh)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Email: "alice@example.com", Password: "password123", Name: "Alice"})
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(ctx, "alice@example.com", "123456"))

	_, err = svc.Login(ctx, "alice@example.com", "wrong-password")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginUnknownEmailLooksLikeBadCredentials(t *testing.T) {
	svc, _, _, _ := newTestService()

	_, err := svc.Login(context.Background(), "nobody@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
}

func TestLoginBannedUser(t *testing.T) {
	svc, users, _, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Signup(ctx, SignupInput{Email: "alice@example.com", Password: "password123", Name: "Alice"})
	require.NoError(t, err)
	require.NoError(t, svc.VerifyEmail(ctx, "alice@example.com", "123456"))

	users.users["alice@example.com"].IsBanned = true

	_, err = svc.Login(ctx, "alice@example.com", "password123")
	assert.ErrorIs(t, err, domain.ErrUserBanned)
}
