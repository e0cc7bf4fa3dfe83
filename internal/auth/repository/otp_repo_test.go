package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap-platform/skillswap/internal/auth/domain"
)

func newTestOTPRepo(t *testing.T) (*OTPRepo, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewOTPRepo(client), mr
}

func TestOTPIssueAndConsume(t *testing.T) {
	repo, _ := newTestOTPRepo(t)
	ctx := context.Background()

	otp, err := repo.Issue(ctx, "alice@example.com")
	require.NoError(t, err)
	assert.Len(t, otp, 6)
	for _, r := range otp {
		assert.True(t, r >= '0' && r <= '9')
	}

	require.NoError(t, repo.Consume(ctx, "alice@example.com", otp))

	// Consumed codes cannot be replayed.
	err = repo.Consume(ctx, "alice@example.com", otp)
	assert.ErrorIs(t, err, domain.ErrInvalidOTP)
}

func TestOTPConsumeWrongCode(t *testing.T) {
	repo, _ := newTestOTPRepo(t)
	ctx := context.Background()

	otp, err := repo.Issue(ctx, "alice@example.com")
	require.NoError(t, err)

	wrong := "000000"
	if otp == wrong {
		wrong = "000001"
	}
	assert.ErrorIs(t, repo.Consume(ctx, "alice@example.com", wrong), domain.ErrInvalidOTP)

	// The right code still works afterwards.
	assert.NoError(t, repo.Consume(ctx, "alice@example.com", otp))
}

func TestOTPExpires(t *testing.T) {
	repo, mr := newTestOTPRepo(t)
	ctx := context.Background()

	otp, err := repo.Issue(ctx, "alice@example.com")
	require.NoError(t, err)

	mr.FastForward(10*time.Minute + time.Second)

	assert.ErrorIs(t, repo.Consume(ctx, "alice@example.com", otp), domain.ErrInvalidOTP)
}

func TestOTPReissueReplaces(t *testing.T) {
	repo, _ := newTestOTPRepo(t)
	ctx := context.Background()

	first, err := repo.Issue(ctx, "alice@example.com")
	require.NoError(t, err)
	second, err := repo.Issue(ctx, "alice@example.com")
	require.NoError(t, err)

	if first != second {
		assert.ErrorIs(t, repo.Consume(ctx, "alice@example.com", first), domain.ErrInvalidOTP)
	}
	assert.NoError(t, repo.Consume(ctx, "alice@example.com", second))
}
