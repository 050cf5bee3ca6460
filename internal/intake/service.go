package intake

import (
	"context"
	"io"

	"recruitflow-backend/internal/candidates"
	"recruitflow-backend/internal/match"
	"recruitflow-backend/internal/positions"
	"recruitflow-backend/internal/tempstore"
)

// Service orchestrates resume intake: temp storage, the extraction tier
// chain, normalization and scoring.
type Service struct {
	Temp      *tempstore.Store
	Chain     *Chain
	Positions positions.Repo
}

// SubmitResult carries the normalized profile plus the signals behind it.
type SubmitResult struct {
	Profile candidates.Profile
	Tier    string
	Signals match.Signals
}

// Submit runs the full intake pipeline for one uploaded resume. Validation
// failures (bad extension, oversized payload, unknown position) reject the
// request before extraction begins; after that point the pipeline cannot
// fail, only degrade. The temporary file is released on every exit path.
func (s *Service) Submit(ctx context.Context, r io.Reader, fileName, positionID string) (SubmitResult, error) {
	var (
		pos     positions.Position
		havePos bool
	)
	if positionID != "" {
		found, err := s.Positions.GetByID(ctx, positionID)
		if err != nil {
			return SubmitResult{}, err
		}
		pos = found
		havePos = true
	}

	handle, err := s.Temp.Save(ctx, r, fileName)
	if err != nil {
		return SubmitResult{}, err
	}
	defer s.Temp.Release(handle)

	rec, tier := s.Chain.Run(ctx, handle)
	profile := Normalize(rec, tier)

	result := SubmitResult{Tier: tier}
	if havePos {
		score, signals := match.Score(profile, pos)
		profile.MatchScore = score
		result.Signals = signals
	}
	result.Profile = profile
	return result, nil
}
