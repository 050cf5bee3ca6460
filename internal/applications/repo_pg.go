package applications

import (
	"context"
	"database/sql"

	"recruitflow-backend/internal/candidates"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new application.
func (r *PGRepo) Create(ctx context.Context, app Application) error {
	const query = `
INSERT INTO applications (
    id, position_id, candidate_id, candidate_name, email, phone,
    skills, experience, match_score, extraction_note, status, submitted_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	status := app.Status
	if status == "" {
		status = StatusPending
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		app.ID,
		app.PositionID,
		app.CandidateID,
		app.CandidateName,
		app.Email,
		app.Phone,
		candidates.JoinSkills(app.Skills),
		app.Experience,
		app.MatchScore,
		app.ExtractionNote,
		status,
		app.SubmittedAt,
	)
	return err
}

const selectColumns = `
SELECT id, position_id, candidate_id, candidate_name, email, phone,
       skills, experience, match_score, extraction_note, status, submitted_at
FROM applications`

// ListByPosition returns applications for a position, newest first.
func (r *PGRepo) ListByPosition(ctx context.Context, positionID string) ([]Application, error) {
	query := selectColumns + `
WHERE position_id = $1
ORDER BY submitted_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query, positionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

// ListAll returns every application, newest first.
func (r *PGRepo) ListAll(ctx context.Context) ([]Application, error) {
	query := selectColumns + `
ORDER BY submitted_at DESC, id`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanApplications(rows)
}

func scanApplications(rows *sql.Rows) ([]Application, error) {
	var out []Application
	for rows.Next() {
		var (
			app    Application
			skills string
		)
		if err := rows.Scan(
			&app.ID,
			&app.PositionID,
			&app.CandidateID,
			&app.CandidateName,
			&app.Email,
			&app.Phone,
			&skills,
			&app.Experience,
			&app.MatchScore,
			&app.ExtractionNote,
			&app.Status,
			&app.SubmittedAt,
		); err != nil {
			return nil, err
		}
		app.Skills = candidates.SplitSkills(skills)
		out = append(out, app)
	}
	return out, rows.Err()
}
