package skillswap

import (
	"context"
	"net/http"
)

// CreateSwapRequest proposes a skill exchange with another user. The caller
// becomes the requester.
type CreateSwapRequest struct {
	RequesterSkillID  string     `json:"requester_skill_id" validate:"required"`
	ReceiverID        string     `json:"receiver_id" validate:"required"`
	ReceiverSkillID   string     `json:"receiver_skill_id" validate:"required"`
	ProposedTimeSlots []TimeSlot `json:"proposed_time_slots,omitempty"`
}

// Swaps lists all swaps the caller is a party to.
func (c *Client) Swaps(ctx context.Context) ([]Swap, error) {
	var swaps []Swap
	if err := c.doJSON(ctx, http.MethodGet, "/api/swaps/", nil, &swaps); err != nil {
		return nil, err
	}
	return swaps, nil
}

// CreateSwap proposes a new swap.
func (c *Client) CreateSwap(ctx context.Context, req CreateSwapRequest) (*Swap, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}
	if err := checkTimeSlots("proposed_time_slots", req.ProposedTimeSlots); err != nil {
		return nil, err
	}

	var swap Swap
	if err := c.doJSON(ctx, http.MethodPost, "/api/swaps/", req, &swap); err != nil {
		return nil, err
	}
	return &swap, nil
}

// AcceptSwap requests the pending→accepted transition. The server decides
// whether it is legal; the returned swap reflects the authoritative state.
func (c *Client) AcceptSwap(ctx context.Context, id string) (*Swap, error) {
	var swap Swap
	if err := c.doJSON(ctx, http.MethodPut, "/api/swaps/"+id+"/accept/", nil, &swap); err != nil {
		return nil, err
	}
	return &swap, nil
}

// RejectSwap requests the pending→rejected transition with a reason.
func (c *Client) RejectSwap(ctx context.Context, id, reason string) (*Swap, error) {
	req := struct {
		Reason string `json:"reason"`
	}{Reason: reason}

	var swap Swap
	if err := c.doJSON(ctx, http.MethodPut, "/api/swaps/"+id+"/reject/", req, &swap); err != nil {
		return nil, err
	}
	return &swap, nil
}

// CompleteSwap requests the accepted→completed transition.
func (c *Client) CompleteSwap(ctx context.Context, id string) (*Swap, error) {
	var swap Swap
	if err := c.doJSON(ctx, http.MethodPut, "/api/swaps/"+id+"/complete/", nil, &swap); err != nil {
		return nil, err
	}
	return &swap, nil
}

// CreateRatingRequest rates the other party of a completed swap.
type CreateRatingRequest struct {
	SwapID  string `json:"swap_id" validate:"required"`
	RaterID string `json:"rater_id" validate:"required"`
	RatedID string `json:"rated_id" validate:"required"`
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment"`
}

// CreateRating records a rating for a completed swap.
func (c *Client) CreateRating(ctx context.Context, req CreateRatingRequest) (*Rating, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var rating Rating
	if err := c.doJSON(ctx, http.MethodPost, "/api/ratings/", req, &rating); err != nil {
		return nil, err
	}
	return &rating, nil
}
