package positions

import (
	"context"
	"database/sql"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

// Create inserts a new position.
func (r *PGRepo) Create(ctx context.Context, pos Position) error {
	const query = `
INSERT INTO positions (id, title, department, description, requirements, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

	status := pos.Status
	if status == "" {
		status = StatusOpen
	}

	_, err := r.DB.ExecContext(
		ctx,
		query,
		pos.ID,
		pos.Title,
		pos.Department,
		pos.Description,
		pos.Requirements,
		status,
		pos.CreatedAt,
	)
	return err
}

// GetByID returns a position by ID.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Position, error) {
	const query = `
SELECT id, title, department, description, requirements, status, created_at
FROM positions
WHERE id = $1`

	var pos Position
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&pos.ID,
		&pos.Title,
		&pos.Department,
		&pos.Description,
		&pos.Requirements,
		&pos.Status,
		&pos.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return Position{}, ErrNotFound
	}
	if err != nil {
		return Position{}, err
	}
	return pos, nil
}

// List returns positions, newest first, optionally filtered by status.
func (r *PGRepo) List(ctx context.Context, status string) ([]Position, error) {
	query := `
SELECT id, title, department, description, requirements, status, created_at
FROM positions`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Position
	for rows.Next() {
		var pos Position
		if err := rows.Scan(
			&pos.ID,
			&pos.Title,
			&pos.Department,
			&pos.Description,
			&pos.Requirements,
			&pos.Status,
			&pos.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	return out, rows.Err()
}
