package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillswap-platform/skillswap/internal/auth/domain"
)

// UserRepo owns the account rows: creation, credential lookup, verification
// and ban flags.
type UserRepo struct {
	db *pgxpool.Pool
}

func NewUserRepo(db *pgxpool.Pool) *UserRepo {
	return &UserRepo{db: db}
}

const userColumns = `id::text, email, password_hash, name,
	coalesce(location, ''), coalesce(bio, ''), availability,
	is_public, is_banned, email_verified, coalesce(profile_photo, '')`

func scanUser(row pgx.Row) (*domain.User, error) {
	var u domain.User
	var availability []byte
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.Name, &u.Location, &u.Bio,
		&availability, &u.IsPublic, &u.IsBanned, &u.EmailVerified, &u.ProfilePhoto)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan user: %w", err)
	}

	if len(availability) > 0 {
		if err := json.Unmarshal(availability, &u.Availability); err != nil {
			return nil, fmt.Errorf("decode availability: %w", err)
		}
	}
	return &u, nil
}

// Create inserts a new unverified account and returns it with its generated ID.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}

	availability, err := json.Marshal(u.Availability)
	if err != nil {
		return nil, fmt.Errorf("encode availability: %w", err)
	}
	if u.Availability == nil {
		availability = []byte("[]")
	}

	const q = `
insert into users (id, email, password_hash, name, location, bio, availability, is_public)
values ($1, $2, $3, $4, nullif($5,''), nullif($6,''), $7, $8)
returning ` + userColumns

	created, err := scanUser(r.db.QueryRow(ctx, q,
		u.ID, u.Email, u.PasswordHash, u.Name, u.Location, u.Bio, availability, u.IsPublic))
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrEmailTaken
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	const q = `select ` + userColumns + ` from users where email = $1`
	return scanUser(r.db.QueryRow(ctx, q, email))
}

func (r *UserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	const q = `select ` + userColumns + ` from users where id = $1`
	return scanUser(r.db.QueryRow(ctx, q, id))
}

// MarkVerified flips email_verified after a successful OTP check.
func (r *UserRepo) MarkVerified(ctx context.Context, email string) error {
	tag, err := r.db.Exec(ctx, `update users set email_verified = true where email = $1`, email)
	if err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// PurgeStaleUnverified deletes unverified accounts older than cutoff. Run by
// the nightly cleanup job; returns the number of rows removed.
func (r *UserRepo) PurgeStaleUnverified(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := r.db.Exec(ctx,
		`delete from users where email_verified = false and created_at < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("purge unverified: %w", err)
	}
	return tag.RowsAffected(), nil
}
