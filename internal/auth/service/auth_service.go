package service

import (
	"context"
	"errors"
	"fmt"
	"log"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillswap-platform/skillswap/internal/auth"
	"github.com/skillswap-platform/skillswap/internal/auth/domain"
	"github.com/skillswap-platform/skillswap/internal/email"
)

// UserStore is the slice of the user repository the auth flows need.
type UserStore interface {
	Create(ctx context.Context, u *domain.User) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	MarkVerified(ctx context.Context, email string) error
}

// OTPStore issues and consumes email-verification codes.
type OTPStore interface {
	Issue(ctx context.Context, email string) (string, error)
	Consume(ctx context.Context, email, otp string) error
}

// AuthService implements signup, email verification, and login.
type AuthService struct {
	users  UserStore
	otps   OTPStore
	tokens *auth.TokenManager
	mailer email.Sender
}

func NewAuthService(users UserStore, otps OTPStore, tokens *auth.TokenManager, mailer email.Sender) *AuthService {
	return &AuthService{users: users, otps: otps, tokens: tokens, mailer: mailer}
}

// SignupInput carries the new-account fields after transport validation.
type SignupInput struct {
	Email        string
	Password     string
	Name         string
	Location     string
	Bio          string
	Availability []domain.TimeSlot
	IsPublic     bool
}

// Signup creates an unverified account, issues an OTP, and mails both the
// code and the welcome message. Mail failures are logged, not fatal: the user
// can re-request verification.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &domain.User{
		Email:        in.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Location:     in.Location,
		Bio:          in.Bio,
		Availability: in.Availability,
		IsPublic:     in.IsPublic,
	})
	if err != nil {
		return nil, err
	}

	otp, err := s.otps.Issue(ctx, user.Email)
	if err != nil {
		return nil, fmt.Errorf("issue otp: %w", err)
	}

	subject, body := email.OTPMessage(otp)
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		log.Printf("otp email to %s failed: %v", user.Email, err)
	}
	subject, body = email.WelcomeMessage(user.Name)
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		log.Printf("welcome email to %s failed: %v", user.Email, err)
	}

	return user, nil
}

// VerifyEmail consumes the OTP and marks the account verified.
func (s *AuthService) VerifyEmail(ctx context.Context, emailAddr, otp string) error {
	if _, err := s.users.GetByEmail(ctx, emailAddr); err != nil {
		return err
	}
	if err := s.otps.Consume(ctx, emailAddr, otp); err != nil {
		return err
	}
	return s.users.MarkVerified(ctx, emailAddr)
}

// Login authenticates the credentials and issues a token pair. Unverified and
// banned accounts are rejected before any tokens are signed.
func (s *AuthService) Login(ctx context.Context, emailAddr, password string) (auth.TokenPair, error) {
	user, err := s.users.GetByEmail(ctx, emailAddr)
	if errors.Is(err, domain.ErrUserNotFound) {
		return auth.TokenPair{}, domain.ErrInvalidCredentials
	}
	if err != nil {
		return auth.TokenPair{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return auth.TokenPair{}, domain.ErrInvalidCredentials
	}
	if !user.EmailVerified {
		return auth.TokenPair{}, domain.ErrEmailNotVerified
	}
	if user.IsBanned {
		return auth.TokenPair{}, domain.ErrUserBanned
	}

	return s.tokens.IssuePair(user.ID, user.Email)
}
