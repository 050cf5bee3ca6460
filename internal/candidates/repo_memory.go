package candidates

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu      sync.RWMutex
	byID    map[string]Candidate
	byEmail map[string]string // email -> id
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		byID:    make(map[string]Candidate),
		byEmail: make(map[string]string),
	}
}

// UpsertByEmail creates or refreshes the candidate keyed by email.
func (r *MemoryRepo) UpsertByEmail(ctx context.Context, cand Candidate) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	email := strings.ToLower(strings.TrimSpace(cand.Email))
	if email == "" {
		return Candidate{}, ErrInvalidInput
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	if id, ok := r.byEmail[email]; ok {
		existing := r.byID[id]
		cand.ID = existing.ID
		cand.CreatedAt = existing.CreatedAt
		cand.UpdatedAt = now
		cand.Email = email
		r.byID[id] = cand
		return cand, nil
	}

	cand.ID = uuid.NewString()
	cand.Email = email
	cand.CreatedAt = now
	cand.UpdatedAt = now
	r.byID[cand.ID] = cand
	r.byEmail[email] = cand.ID
	return cand, nil
}

// GetByID returns a candidate by ID.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Candidate, error) {
	if err := ctx.Err(); err != nil {
		return Candidate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	cand, ok := r.byID[id]
	if !ok {
		return Candidate{}, ErrNotFound
	}
	return cand, nil
}
