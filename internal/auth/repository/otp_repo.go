package repository

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/skillswap-platform/skillswap/internal/auth/domain"
)

const (
	otpKeyPrefix = "auth:otp:" // one pending OTP per email: auth:otp:{email}
	otpTTL       = 10 * time.Minute
	otpDigits    = 6
)

// OTPRepo stores pending email-verification codes in Redis. The TTL bounds
// their validity; no sweeper is needed.
type OTPRepo struct {
	client *redis.Client
}

func NewOTPRepo(client *redis.Client) *OTPRepo {
	return &OTPRepo{client: client}
}

// Issue generates a fresh numeric OTP for the email, replacing any pending one.
func (r *OTPRepo) Issue(ctx context.Context, email string) (string, error) {
	otp, err := generateOTP()
	if err != nil {
		return "", err
	}

	if err := r.client.Set(ctx, otpKeyPrefix+email, otp, otpTTL).Err(); err != nil {
		return "", fmt.Errorf("store otp: %w", err)
	}
	return otp, nil
}

// Consume validates the code and removes it so it cannot be replayed. A
// missing, expired, or mismatched code yields ErrInvalidOTP.
func (r *OTPRepo) Consume(ctx context.Context, email, otp string) error {
	key := otpKeyPrefix + email

	stored, err := r.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return domain.ErrInvalidOTP
	}
	if err != nil {
		return fmt.Errorf("get otp: %w", err)
	}
	if stored != otp {
		return domain.ErrInvalidOTP
	}

	if err := r.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("consume otp: %w", err)
	}
	return nil
}

func generateOTP() (string, error) {
	max := big.NewInt(1)
	for range otpDigits {
		max.Mul(max, big.NewInt(10))
	}

	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", fmt.Errorf("generate otp: %w", err)
	}
	return fmt.Sprintf("%06d", n), nil
}
