package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/skillswap-platform/skillswap/internal/skills/domain"
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{db: db}
}

const skillColumns = `id::text, user_id::text, name, description, category, level, type, status`

func scanSkill(row pgx.Row) (*domain.Skill, error) {
	var s domain.Skill
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Description, &s.Category, &s.Level, &s.Type, &s.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrSkillNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan skill: %w", err)
	}
	return &s, nil
}

func collectSkills(rows pgx.Rows) ([]domain.Skill, error) {
	defer rows.Close()

	skills := []domain.Skill{}
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		skills = append(skills, *s)
	}
	return skills, rows.Err()
}

// Create inserts a new skill. Status is forced to pending regardless of input;
// only moderation changes it.
func (r *Repo) Create(ctx context.Context, s *domain.Skill) (*domain.Skill, error) {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}

	const q = `
insert into skills (id, user_id, name, description, category, level, type, status)
values ($1, $2, $3, $4, $5, $6, $7, 'pending')
returning ` + skillColumns

	created, err := scanSkill(r.db.QueryRow(ctx, q,
		s.ID, s.UserID, s.Name, s.Description, s.Category, s.Level, s.Type))
	if err != nil {
		return nil, fmt.Errorf("create skill: %w", err)
	}
	return created, nil
}

// ListVisible returns approved skills of public users plus everything owned by
// the caller, whatever its status.
func (r *Repo) ListVisible(ctx context.Context, callerID string) ([]domain.Skill, error) {
	const q = `
select ` + skillColumns + ` from skills
where user_id = $1
   or (status = 'approved' and user_id in (select id from users where is_public and not is_banned))
order by name`

	rows, err := r.db.Query(ctx, q, callerID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return collectSkills(rows)
}

// ListByUser returns every skill owned by one user.
func (r *Repo) ListByUser(ctx context.Context, userID string) ([]domain.Skill, error) {
	rows, err := r.db.Query(ctx, `select `+skillColumns+` from skills where user_id = $1 order by name`, userID)
	if err != nil {
		return nil, fmt.Errorf("list skills: %w", err)
	}
	return collectSkills(rows)
}

// UpdateDescription rewrites the description of a skill the caller owns.
func (r *Repo) UpdateDescription(ctx context.Context, callerID, skillID, description string) (*domain.Skill, error) {
	owner, err := r.ownerOf(ctx, skillID)
	if err != nil {
		return nil, err
	}
	if owner != callerID {
		return nil, domain.ErrNotOwner
	}

	const q = `update skills set description = $1 where id = $2 returning ` + skillColumns
	updated, err := scanSkill(r.db.QueryRow(ctx, q, description, skillID))
	if err != nil {
		return nil, fmt.Errorf("update skill: %w", err)
	}
	return updated, nil
}

// Delete removes a skill the caller owns.
func (r *Repo) Delete(ctx context.Context, callerID, skillID string) error {
	owner, err := r.ownerOf(ctx, skillID)
	if err != nil {
		return err
	}
	if owner != callerID {
		return domain.ErrNotOwner
	}

	if _, err := r.db.Exec(ctx, `delete from skills where id = $1`, skillID); err != nil {
		return fmt.Errorf("delete skill: %w", err)
	}
	return nil
}

func (r *Repo) ownerOf(ctx context.Context, skillID string) (string, error) {
	var owner string
	err := r.db.QueryRow(ctx, `select user_id::text from skills where id = $1`, skillID).Scan(&owner)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", domain.ErrSkillNotFound
	}
	if err != nil {
		return "", fmt.Errorf("load skill owner: %w", err)
	}
	return owner, nil
}
