package candidates

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const skillSeparator = "\n"

// UpsertByEmail creates or refreshes the candidate keyed by email.
func (r *PGRepo) UpsertByEmail(ctx context.Context, cand Candidate) (Candidate, error) {
	email := strings.ToLower(strings.TrimSpace(cand.Email))
	if email == "" {
		return Candidate{}, ErrInvalidInput
	}

	const query = `
INSERT INTO candidates (
    id, name, email, phone, skills, experience,
    tenth_school, tenth_year, tenth_percentage,
    twelfth_school, twelfth_year, twelfth_percentage,
    created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $13)
ON CONFLICT (email) DO UPDATE SET
    name = EXCLUDED.name,
    phone = EXCLUDED.phone,
    skills = EXCLUDED.skills,
    experience = EXCLUDED.experience,
    tenth_school = EXCLUDED.tenth_school,
    tenth_year = EXCLUDED.tenth_year,
    tenth_percentage = EXCLUDED.tenth_percentage,
    twelfth_school = EXCLUDED.twelfth_school,
    twelfth_year = EXCLUDED.twelfth_year,
    twelfth_percentage = EXCLUDED.twelfth_percentage,
    updated_at = EXCLUDED.updated_at
RETURNING id, created_at, updated_at`

	now := time.Now().UTC()
	id := cand.ID
	if id == "" {
		id = uuid.NewString()
	}

	var stored Candidate
	err := r.DB.QueryRowContext(
		ctx,
		query,
		id,
		cand.Name,
		email,
		cand.Phone,
		JoinSkills(cand.Skills),
		cand.Experience,
		cand.Education.Tenth.School,
		cand.Education.Tenth.Year,
		cand.Education.Tenth.Percentage,
		cand.Education.Twelfth.School,
		cand.Education.Twelfth.Year,
		cand.Education.Twelfth.Percentage,
		now,
	).Scan(&stored.ID, &stored.CreatedAt, &stored.UpdatedAt)
	if err != nil {
		return Candidate{}, err
	}

	out := cand
	out.ID = stored.ID
	out.Email = email
	out.CreatedAt = stored.CreatedAt
	out.UpdatedAt = stored.UpdatedAt
	return out, nil
}

// GetByID returns a candidate by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Candidate, error) {
	const query = `
SELECT id, name, email, phone, skills, experience,
       tenth_school, tenth_year, tenth_percentage,
       twelfth_school, twelfth_year, twelfth_percentage,
       created_at, updated_at
FROM candidates
WHERE id = $1`

	var (
		cand   Candidate
		skills string
	)
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&cand.ID,
		&cand.Name,
		&cand.Email,
		&cand.Phone,
		&skills,
		&cand.Experience,
		&cand.Education.Tenth.School,
		&cand.Education.Tenth.Year,
		&cand.Education.Tenth.Percentage,
		&cand.Education.Twelfth.School,
		&cand.Education.Twelfth.Year,
		&cand.Education.Twelfth.Percentage,
		&cand.CreatedAt,
		&cand.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Candidate{}, ErrNotFound
	}
	if err != nil {
		return Candidate{}, err
	}
	cand.Skills = SplitSkills(skills)
	return cand, nil
}

// JoinSkills flattens a skill list into the stored single-column form.
func JoinSkills(skills []string) string {
	return strings.Join(skills, skillSeparator)
}

// SplitSkills restores a stored skill column into a list. Empty input yields
// an empty, non-nil slice.
func SplitSkills(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return []string{}
	}
	parts := strings.Split(raw, skillSeparator)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
