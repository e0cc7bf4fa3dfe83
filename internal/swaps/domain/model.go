package domain

import (
	"errors"
	"time"
)

var (
	ErrSwapNotFound      = errors.New("swap not found")
	ErrNotParticipant    = errors.New("swap involves another user")
	ErrNotReceiver       = errors.New("only the receiver can act on this swap")
	ErrInvalidTransition = errors.New("swap status does not allow this transition")
	ErrSwapNotCompleted  = errors.New("swap is not completed")
	ErrRatingOutOfRange  = errors.New("rating must be between 1 and 5")
)

// Swap statuses. pending→accepted|rejected by the receiver, accepted→completed
// by either party. The server is the only authority for these transitions.
const (
	StatusPending   = "pending"
	StatusAccepted  = "accepted"
	StatusRejected  = "rejected"
	StatusCompleted = "completed"
)

// TimeSlot mirrors the wire shape used for proposed meeting windows.
type TimeSlot struct {
	Day   string `json:"day"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type Swap struct {
	ID                string     `json:"id"`
	RequesterID       string     `json:"requester"`
	ReceiverID        string     `json:"receiver"`
	RequesterSkillID  string     `json:"requester_skill_id"`
	ReceiverSkillID   string     `json:"receiver_skill_id"`
	Status            string     `json:"status"`
	ProposedTimeSlots []TimeSlot `json:"proposed_time_slots"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
	ActualTime        *time.Time `json:"actual_time,omitempty"`
}

type Rating struct {
	ID      string `json:"id"`
	SwapID  string `json:"swap_id"`
	RaterID string `json:"rater_id"`
	RatedID string `json:"rated_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
