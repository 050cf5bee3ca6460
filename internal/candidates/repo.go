package candidates

import "context"

// Repo defines persistence operations for candidates.
type Repo interface {
	// UpsertByEmail creates the candidate or refreshes an existing record
	// with the same email, returning the stored row.
	UpsertByEmail(ctx context.Context, cand Candidate) (Candidate, error)
	GetByID(ctx context.Context, id string) (Candidate, error)
}
