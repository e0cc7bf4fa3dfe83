package skillswap

// TimeSlot is one recurring availability window. Start and End are "HH:MM"
// strings compared lexicographically; Start must sort before End.
type TimeSlot struct {
	Day   string `json:"day" validate:"required,oneof=Monday Tuesday Wednesday Thursday Friday Saturday Sunday"`
	Start string `json:"start" validate:"required,timeofday"`
	End   string `json:"end" validate:"required,timeofday"`
}

// User is a profile as returned by the platform. Owned by the session; pages
// treat it as read-only.
type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	Location        string     `json:"location,omitempty"`
	Bio             string     `json:"bio,omitempty"`
	Availability    []TimeSlot `json:"availability,omitempty"`
	IsPublic        bool       `json:"is_public"`
	IsBanned        bool       `json:"is_banned,omitempty"`
	Skills          []Skill    `json:"skills,omitempty"`
	Ratings         []Rating   `json:"ratings,omitempty"`
	ProfilePhotoURL string     `json:"profile_photo_url,omitempty"`
}

// Skill statuses are set exclusively by moderation; the owning user never
// writes them.
const (
	SkillPending  = "pending"
	SkillApproved = "approved"
	SkillRejected = "rejected"
)

// Skill types.
const (
	SkillOffer   = "offer"
	SkillRequest = "request"
)

type Skill struct {
	ID          string `json:"id"`
	UserID      string `json:"user_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`
	Level       string `json:"level"`
	Type        string `json:"type"`
	Status      string `json:"status"`
}

// Swap statuses. Transitions are server-authoritative; the client only
// requests them and reflects the returned state.
const (
	SwapPending   = "pending"
	SwapAccepted  = "accepted"
	SwapRejected  = "rejected"
	SwapCompleted = "completed"
)

type Swap struct {
	ID                string     `json:"id"`
	RequesterID       string     `json:"requester"`
	ReceiverID        string     `json:"receiver"`
	RequesterSkillID  string     `json:"requester_skill_id"`
	ReceiverSkillID   string     `json:"receiver_skill_id"`
	Status            string     `json:"status"`
	ProposedTimeSlots []TimeSlot `json:"proposed_time_slots,omitempty"`
	RejectionReason   string     `json:"rejection_reason,omitempty"`
	ActualTime        string     `json:"actual_time,omitempty"`
}

type Rating struct {
	ID      string `json:"id"`
	SwapID  string `json:"swap_id"`
	RaterID string `json:"rater_id"`
	RatedID string `json:"rated_id"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}
