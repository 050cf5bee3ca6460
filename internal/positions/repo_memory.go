package positions

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Position
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Position)}
}

// Create stores a position.
func (r *MemoryRepo) Create(ctx context.Context, pos Position) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[pos.ID] = pos
	return nil
}

// GetByID returns a position by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	pos, ok := r.data[id]
	if !ok {
		return Position{}, ErrNotFound
	}
	return pos, nil
}

// List returns positions, newest first, optionally filtered by status.
func (r *MemoryRepo) List(ctx context.Context, status string) ([]Position, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Position, 0, len(r.data))
	for _, pos := range r.data {
		if status != "" && pos.Status != status {
			continue
		}
		out = append(out, pos)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}
