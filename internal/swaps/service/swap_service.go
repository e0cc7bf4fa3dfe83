package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skillswap-platform/skillswap/internal/swaps/domain"
)

// SwapStore is the repository surface the service drives.
type SwapStore interface {
	Create(ctx context.Context, s *domain.Swap) (*domain.Swap, error)
	ListByParticipant(ctx context.Context, userID string) ([]domain.Swap, error)
	Get(ctx context.Context, id string) (*domain.Swap, error)
	Accept(ctx context.Context, callerID, swapID string) (*domain.Swap, error)
	Reject(ctx context.Context, callerID, swapID, reason string) (*domain.Swap, error)
	Complete(ctx context.Context, callerID, swapID string, now time.Time) (*domain.Swap, error)
}

type RatingStore interface {
	Create(ctx context.Context, r *domain.Rating) (*domain.Rating, error)
}

// SwapService owns swap lifecycle rules and rating eligibility.
type SwapService struct {
	swaps   SwapStore
	ratings RatingStore
	now     func() time.Time
}

func NewSwapService(swaps SwapStore, ratings RatingStore) *SwapService {
	return &SwapService{swaps: swaps, ratings: ratings, now: time.Now}
}

// CreateInput describes a proposed swap. The caller is always the requester.
type CreateInput struct {
	RequesterID       string
	ReceiverID        string
	RequesterSkillID  string
	ReceiverSkillID   string
	ProposedTimeSlots []domain.TimeSlot
}

func (s *SwapService) Create(ctx context.Context, in CreateInput) (*domain.Swap, error) {
	if in.RequesterID == in.ReceiverID {
		return nil, fmt.Errorf("cannot propose a swap with yourself")
	}
	for _, slot := range in.ProposedTimeSlots {
		if slot.Start == "" || slot.End == "" || slot.Start >= slot.End {
			return nil, fmt.Errorf("time slot start must be before end")
		}
	}

	return s.swaps.Create(ctx, &domain.Swap{
		RequesterID:       in.RequesterID,
		ReceiverID:        in.ReceiverID,
		RequesterSkillID:  in.RequesterSkillID,
		ReceiverSkillID:   in.ReceiverSkillID,
		ProposedTimeSlots: in.ProposedTimeSlots,
	})
}

func (s *SwapService) List(ctx context.Context, userID string) ([]domain.Swap, error) {
	return s.swaps.ListByParticipant(ctx, userID)
}

func (s *SwapService) Accept(ctx context.Context, callerID, swapID string) (*domain.Swap, error) {
	return s.swaps.Accept(ctx, callerID, swapID)
}

func (s *SwapService) Reject(ctx context.Context, callerID, swapID, reason string) (*domain.Swap, error) {
	return s.swaps.Reject(ctx, callerID, swapID, reason)
}

func (s *SwapService) Complete(ctx context.Context, callerID, swapID string) (*domain.Swap, error) {
	return s.swaps.Complete(ctx, callerID, swapID, s.now())
}

// Rate records a rating once a swap is completed. Only a participant may
// rate, and only the other participant can be rated.
func (s *SwapService) Rate(ctx context.Context, raterID string, rating *domain.Rating) (*domain.Rating, error) {
	if rating.Rating < 1 || rating.Rating > 5 {
		return nil, domain.ErrRatingOutOfRange
	}

	swap, err := s.swaps.Get(ctx, rating.SwapID)
	if err != nil {
		return nil, err
	}
	if swap.Status != domain.StatusCompleted {
		return nil, domain.ErrSwapNotCompleted
	}
	if raterID != swap.RequesterID && raterID != swap.ReceiverID {
		return nil, domain.ErrNotParticipant
	}

	other := swap.RequesterID
	if raterID == swap.RequesterID {
		other = swap.ReceiverID
	}
	if rating.RatedID != other {
		return nil, errors.New("can only rate the other participant")
	}

	rating.RaterID = raterID
	return s.ratings.Create(ctx, rating)
}
