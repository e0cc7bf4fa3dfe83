package skillswap

import (
	"context"
	"net/http"
)

// Admin operations. The server enforces the admin requirement; a non-admin
// token gets a 403, which is propagated unchanged like any other failure.

// AdminUsers lists every registered user.
func (c *Client) AdminUsers(ctx context.Context) ([]User, error) {
	var users []User
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/users/", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

// AdminBanUser sets or clears a user's ban flag.
func (c *Client) AdminBanUser(ctx context.Context, id string, banned bool) error {
	req := struct {
		IsBanned bool `json:"is_banned"`
	}{IsBanned: banned}
	return c.doJSON(ctx, http.MethodPut, "/api/admin/users/"+id+"/ban/", req, nil)
}

// AdminPendingSkills lists skills awaiting moderation.
func (c *Client) AdminPendingSkills(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	if err := c.doJSON(ctx, http.MethodGet, "/api/admin/skills/pending/", nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// AdminApproveSkill approves a pending skill.
func (c *Client) AdminApproveSkill(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodPut, "/api/admin/skills/"+id+"/approve/", nil, nil)
}

// AdminRejectSkill rejects a pending skill with a reason.
func (c *Client) AdminRejectSkill(ctx context.Context, id, reason string) error {
	req := struct {
		Reason string `json:"reason"`
	}{Reason: reason}
	return c.doJSON(ctx, http.MethodPut, "/api/admin/skills/"+id+"/reject/", req, nil)
}

// AdminBroadcast publishes an announcement to every user.
func (c *Client) AdminBroadcast(ctx context.Context, message string) error {
	req := struct {
		Message string `json:"message" validate:"required"`
	}{Message: message}
	if err := checkStruct(req); err != nil {
		return err
	}
	return c.doJSON(ctx, http.MethodPost, "/api/admin/messages/broadcast/", req, nil)
}
