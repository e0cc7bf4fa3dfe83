package skillswap

import (
	"context"
	"net/http"
)

// CreateSkillRequest describes a skill to offer or request. Status is not a
// field: new skills are always pending and only moderation changes that.
type CreateSkillRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required,min=10"`
	Category    string `json:"category" validate:"required"`
	Level       string `json:"level" validate:"required"`
	Type        string `json:"type" validate:"required,oneof=offer request"`
}

// Skills lists approved skills of public users plus all of the caller's own.
func (c *Client) Skills(ctx context.Context) ([]Skill, error) {
	var skills []Skill
	if err := c.doJSON(ctx, http.MethodGet, "/api/skills/", nil, &skills); err != nil {
		return nil, err
	}
	return skills, nil
}

// CreateSkill lists a new skill for the caller. It enters moderation as
// pending.
func (c *Client) CreateSkill(ctx context.Context, req CreateSkillRequest) (*Skill, error) {
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var skill Skill
	if err := c.doJSON(ctx, http.MethodPost, "/api/skills/", req, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// UpdateSkill rewrites the description of one of the caller's skills.
func (c *Client) UpdateSkill(ctx context.Context, id, description string) (*Skill, error) {
	req := struct {
		Description string `json:"description" validate:"required,min=10"`
	}{Description: description}
	if err := checkStruct(req); err != nil {
		return nil, err
	}

	var skill Skill
	if err := c.doJSON(ctx, http.MethodPut, "/api/skills/"+id+"/", req, &skill); err != nil {
		return nil, err
	}
	return &skill, nil
}

// DeleteSkill removes one of the caller's skills.
func (c *Client) DeleteSkill(ctx context.Context, id string) error {
	return c.doJSON(ctx, http.MethodDelete, "/api/skills/"+id+"/", nil, nil)
}
