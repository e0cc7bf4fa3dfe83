package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillswap-platform/skillswap/internal/swaps/domain"
)

type SwapRepo struct {
	db *pgxpool.Pool
}

func NewSwapRepo(db *pgxpool.Pool) *SwapRepo {
	return &SwapRepo{db: db}
}

const swapColumns = `id::text, requester::text, receiver::text,
	requester_skill_id::text, receiver_skill_id::text, status,
	proposed_time_slots, coalesce(rejection_reason, ''), actual_time`

func scanSwap(row pgx.Row) (*domain.Swap, error) {
	var s domain.Swap
	var slots []byte
	err := row.Scan(&s.ID, &s.RequesterID, &s.ReceiverID, &s.RequesterSkillID,
		&s.ReceiverSkillID, &s.Status, &slots, &s.RejectionReason, &s.ActualTime)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSwapNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan swap: %w", err)
	}

	if len(slots) > 0 {
		if err := json.Unmarshal(slots, &s.ProposedTimeSlots); err != nil {
			return nil, fmt.Errorf("decode proposed slots: %w", err)
		}
	}
	if s.ProposedTimeSlots == nil {
		s.ProposedTimeSlots = []domain.TimeSlot{}
	}
	return &s, nil
}

// Create inserts a pending swap.
func (r *SwapRepo) Create(ctx context.Context, s *domain.Swap) (*domain.Swap, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	slots, err := json.Marshal(s.ProposedTimeSlots)
	if err != nil {
		return nil, fmt.Errorf("encode proposed slots: %w", err)
	}
	if s.ProposedTimeSlots == nil {
		slots = []byte("[]")
	}

	const q = `
insert into swaps (id, requester, receiver, requester_skill_id, receiver_skill_id, status, proposed_time_slots)
values ($1, $2, $3, $4, $5, 'pending', $6)
returning ` + swapColumns

	created, err := scanSwap(r.db.QueryRow(ctx, q,
		s.ID, s.RequesterID, s.ReceiverID, s.RequesterSkillID, s.ReceiverSkillID, slots))
	if err != nil {
		return nil, fmt.Errorf("create swap: %w", err)
	}
	return created, nil
}

// ListByParticipant returns swaps where the user is requester or receiver.
func (r *SwapRepo) ListByParticipant(ctx context.Context, userID string) ([]domain.Swap, error) {
	const q = `select ` + swapColumns + ` from swaps where requester = $1 or receiver = $1 order by created_at desc`

	rows, err := r.db.Query(ctx, q, userID)
	if err != nil {
		return nil, fmt.Errorf("list swaps: %w", err)
	}
	defer rows.Close()

	swaps := []domain.Swap{}
	for rows.Next() {
		s, err := scanSwap(rows)
		if err != nil {
			return nil, err
		}
		swaps = append(swaps, *s)
	}
	return swaps, rows.Err()
}

func (r *SwapRepo) Get(ctx context.Context, id string) (*domain.Swap, error) {
	return scanSwap(r.db.QueryRow(ctx, `select `+swapColumns+` from swaps where id = $1`, id))
}

// Accept moves a pending swap to accepted. The conditional update is the
// atomicity boundary; on zero rows the swap is reloaded to name the refusal.
func (r *SwapRepo) Accept(ctx context.Context, callerID, swapID string) (*domain.Swap, error) {
	const q = `
update swaps set status = 'accepted'
where id = $1 and receiver = $2 and status = 'pending'
returning ` + swapColumns

	swap, err := scanSwap(r.db.QueryRow(ctx, q, swapID, callerID))
	if errors.Is(err, domain.ErrSwapNotFound) {
		return nil, r.explainRefusal(ctx, callerID, swapID, true)
	}
	return swap, err
}

// Reject moves a pending swap to rejected, recording the reason.
func (r *SwapRepo) Reject(ctx context.Context, callerID, swapID, reason string) (*domain.Swap, error) {
	const q = `
update swaps set status = 'rejected', rejection_reason = nullif($3, '')
where id = $1 and receiver = $2 and status = 'pending'
returning ` + swapColumns

	swap, err := scanSwap(r.db.QueryRow(ctx, q, swapID, callerID, reason))
	if errors.Is(err, domain.ErrSwapNotFound) {
		return nil, r.explainRefusal(ctx, callerID, swapID, true)
	}
	return swap, err
}

// Complete moves an accepted swap to completed and stamps the actual time.
// Either party may complete.
func (r *SwapRepo) Complete(ctx context.Context, callerID, swapID string, now time.Time) (*domain.Swap, error) {
	const q = `
update swaps set status = 'completed', actual_time = $3
where id = $1 and (requester = $2 or receiver = $2) and status = 'accepted'
returning ` + swapColumns

	swap, err := scanSwap(r.db.QueryRow(ctx, q, swapID, callerID, now))
	if errors.Is(err, domain.ErrSwapNotFound) {
		return nil, r.explainRefusal(ctx, callerID, swapID, false)
	}
	return swap, err
}

// explainRefusal distinguishes not-found, wrong-party, and wrong-status after
// a conditional transition matched nothing.
func (r *SwapRepo) explainRefusal(ctx context.Context, callerID, swapID string, receiverOnly bool) error {
	swap, err := r.Get(ctx, swapID)
	if err != nil {
		return err
	}
	if callerID != swap.RequesterID && callerID != swap.ReceiverID {
		return domain.ErrNotParticipant
	}
	if receiverOnly && callerID != swap.ReceiverID {
		return domain.ErrNotReceiver
	}
	return domain.ErrInvalidTransition
}
