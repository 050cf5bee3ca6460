package applications

import "context"

// Repo defines persistence operations for applications.
type Repo interface {
	Create(ctx context.Context, app Application) error
	ListByPosition(ctx context.Context, positionID string) ([]Application, error)
	ListAll(ctx context.Context) ([]Application, error)
}
