package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	authdomain "github.com/skillswap-platform/skillswap/internal/auth/domain"
	skillsdomain "github.com/skillswap-platform/skillswap/internal/skills/domain"
)

var ErrSkillNotPending = errors.New("skill is not pending moderation")

// Repo backs the admin panel: user listing and bans, skill moderation, and
// the audit trail of admin actions.
type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

// ListUsers returns every account, newest first.
func (r *Repo) ListUsers(ctx context.Context) ([]authdomain.User, error) {
	const q = `
select id::text, email, name, coalesce(location, ''), coalesce(bio, ''),
       availability, is_public, is_banned, email_verified
from users order by created_at desc`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	users := []authdomain.User{}
	for rows.Next() {
		var u authdomain.User
		var availability []byte
		if err := rows.Scan(&u.ID, &u.Email, &u.Name, &u.Location, &u.Bio,
			&availability, &u.IsPublic, &u.IsBanned, &u.EmailVerified); err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		if len(availability) > 0 {
			if err := json.Unmarshal(availability, &u.Availability); err != nil {
				return nil, fmt.Errorf("decode availability: %w", err)
			}
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// SetBanned flips a user's ban flag.
func (r *Repo) SetBanned(ctx context.Context, userID string, banned bool) error {
	tag, err := r.db.Exec(ctx, `update users set is_banned = $2 where id = $1`, userID, banned)
	if err != nil {
		return fmt.Errorf("set banned: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return authdomain.ErrUserNotFound
	}
	return nil
}

// PendingSkills lists skills awaiting moderation.
func (r *Repo) PendingSkills(ctx context.Context) ([]skillsdomain.Skill, error) {
	const q = `
select id::text, user_id::text, name, description, category, level, type, status
from skills where status = 'pending' order by name`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list pending skills: %w", err)
	}
	defer rows.Close()

	skills := []skillsdomain.Skill{}
	for rows.Next() {
		var s skillsdomain.Skill
		if err := rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Description,
			&s.Category, &s.Level, &s.Type, &s.Status); err != nil {
			return nil, fmt.Errorf("scan skill: %w", err)
		}
		skills = append(skills, s)
	}
	return skills, rows.Err()
}

// ModerateSkill moves a pending skill to approved or rejected. Skills already
// out of pending cannot be moderated again.
func (r *Repo) ModerateSkill(ctx context.Context, skillID, status string) error {
	const q = `update skills set status = $2 where id = $1 and status = 'pending'`

	tag, err := r.db.Exec(ctx, q, skillID, status)
	if err != nil {
		return fmt.Errorf("moderate skill: %w", err)
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err := r.db.QueryRow(ctx, `select exists(select 1 from skills where id = $1)`, skillID).Scan(&exists); err != nil {
			return fmt.Errorf("moderate skill: %w", err)
		}
		if !exists {
			return skillsdomain.ErrSkillNotFound
		}
		return ErrSkillNotPending
	}
	return nil
}

// RecordAction appends to the admin audit trail.
func (r *Repo) RecordAction(ctx context.Context, adminID, actionType, targetID, reason string) error {
	const q = `
insert into admin_actions (id, admin_id, action_type, target_id, reason)
values ($1, $2, $3, $4, $5)`

	if _, err := r.db.Exec(ctx, q, uuid.New().String(), adminID, actionType, targetID, reason); err != nil {
		return fmt.Errorf("record admin action: %w", err)
	}
	return nil
}
