package positions

import "context"

// Repo defines persistence operations for positions.
type Repo interface {
	Create(ctx context.Context, pos Position) error
	GetByID(ctx context.Context, id string) (Position, error)
	// List returns positions, newest first. An empty status returns all.
	List(ctx context.Context, status string) ([]Position, error)
}
