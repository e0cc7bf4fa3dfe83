package domain

import "errors"

var (
	ErrSkillNotFound = errors.New("skill not found")
	ErrNotOwner      = errors.New("skill belongs to another user")
)

// Moderation statuses. Only the admin panel moves a skill out of pending.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Skill types.
const (
	TypeOffer   = "offer"
	TypeRequest = "request"
)

type Skill struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Type        string `json:"type"`
	Status      string `json:"status"`
}
