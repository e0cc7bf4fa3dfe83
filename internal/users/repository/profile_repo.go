package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillswap-platform/skillswap/internal/auth/domain"
)

// ProfileRepo owns the editable profile fields and the stored photo key.
type ProfileRepo struct {
	db *pgxpool.Pool
}

func NewProfileRepo(db *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{db: db}
}

// UpdateInput carries partial profile changes; nil fields are left untouched.
type UpdateInput struct {
	Bio          *string
	Location     *string
	IsPublic     *bool
	Availability []domain.TimeSlot
}

// Update applies the non-nil fields to the user's row.
func (r *ProfileRepo) Update(ctx context.Context, userID string, in UpdateInput) error {
	var availability []byte
	if in.Availability != nil {
		var err error
		availability, err = json.Marshal(in.Availability)
		if err != nil {
			return fmt.Errorf("encode availability: %w", err)
		}
	}

	const q = `
update users set
  bio          = coalesce($2, bio),
  location     = coalesce($3, location),
  is_public    = coalesce($4, is_public),
  availability = coalesce($5, availability)
where id = $1`

	tag, err := r.db.Exec(ctx, q, userID, in.Bio, in.Location, in.IsPublic, availability)
	if err != nil {
		return fmt.Errorf("update profile: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// SetPhotoKey records the S3 object key for the user's profile photo.
func (r *ProfileRepo) SetPhotoKey(ctx context.Context, userID, key string) error {
	tag, err := r.db.Exec(ctx, `update users set profile_photo = $2 where id = $1`, userID, key)
	if err != nil {
		return fmt.Errorf("set profile photo: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}
