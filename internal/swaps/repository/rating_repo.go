package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillswap-platform/skillswap/internal/swaps/domain"
)

type RatingRepo struct {
	db *pgxpool.Pool
}

func NewRatingRepo(db *pgxpool.Pool) *RatingRepo {
	return &RatingRepo{db: db}
}

const ratingColumns = `id::text, swap_id::text, rater::text, rated::text, rating, comment`

// Create records a rating for a completed swap the rater took part in. The
// eligibility rules live in the service layer.
func (r *RatingRepo) Create(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	if rating.ID == "" {
		rating.ID = uuid.New().String()
	}

	const q = `
insert into ratings (id, swap_id, rater, rated, rating, comment)
values ($1, $2, $3, $4, $5, $6)
returning ` + ratingColumns

	var created domain.Rating
	err := r.db.QueryRow(ctx, q,
		rating.ID, rating.SwapID, rating.RaterID, rating.RatedID, rating.Rating, rating.Comment).
		Scan(&created.ID, &created.SwapID, &created.RaterID, &created.RatedID, &created.Rating, &created.Comment)
	if err != nil {
		return nil, fmt.Errorf("create rating: %w", err)
	}
	return &created, nil
}

// ListReceived returns ratings given to one user.
func (r *RatingRepo) ListReceived(ctx context.Context, userID string) ([]domain.Rating, error) {
	rows, err := r.db.Query(ctx, `select `+ratingColumns+` from ratings where rated = $1`, userID)
	if err != nil {
		return nil, fmt.Errorf("list ratings: %w", err)
	}
	defer rows.Close()

	ratings := []domain.Rating{}
	for rows.Next() {
		var rating domain.Rating
		if err := rows.Scan(&rating.ID, &rating.SwapID, &rating.RaterID, &rating.RatedID,
			&rating.Rating, &rating.Comment); err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		ratings = append(ratings, rating)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ratings, nil
}
