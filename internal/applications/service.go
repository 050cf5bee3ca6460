package applications

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"recruitflow-backend/internal/candidates"
	"recruitflow-backend/internal/match"
	"recruitflow-backend/internal/positions"
)

// Service contains business logic for applications.
type Service struct {
	Repo       Repo
	Candidates candidates.Repo
	Positions  positions.Repo
}

// Create upserts the candidate by email and records the application against
// the position.
func (s *Service) Create(ctx context.Context, positionID string, profile candidates.Profile) (Application, error) {
	if strings.TrimSpace(positionID) == "" {
		return Application{}, fmt.Errorf("%w: positionId is required", ErrInvalidInput)
	}
	if strings.TrimSpace(profile.Name) == "" || strings.TrimSpace(profile.Email) == "" {
		return Application{}, fmt.Errorf("%w: name and email are required", ErrInvalidInput)
	}

	pos, err := s.Positions.GetByID(ctx, positionID)
	if err != nil {
		return Application{}, err
	}

	cand, err := s.Candidates.UpsertByEmail(ctx, candidates.Candidate{
		Name:       profile.Name,
		Email:      profile.Email,
		Phone:      profile.Phone,
		Skills:     profile.Skills,
		Experience: profile.Experience,
		Education:  profile.Education,
	})
	if err != nil {
		return Application{}, err
	}

	app := Application{
		ID:             uuid.NewString(),
		PositionID:     pos.ID,
		CandidateID:    cand.ID,
		CandidateName:  profile.Name,
		Email:          cand.Email,
		Phone:          profile.Phone,
		Skills:         profile.Skills,
		Experience:     profile.Experience,
		MatchScore:     profile.MatchScore,
		ExtractionNote: profile.ExtractionNote,
		Status:         StatusPending,
		SubmittedAt:    time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, app); err != nil {
		return Application{}, err
	}
	return app, nil
}

// CandidatesForPosition re-scores every application against the position's
// current requirements and returns them ranked. Scoring works over an
// in-memory snapshot fetched once; nothing is mutated.
func (s *Service) CandidatesForPosition(ctx context.Context, positionID string) ([]ScoredApplication, error) {
	pos, err := s.Positions.GetByID(ctx, positionID)
	if err != nil {
		return nil, err
	}

	apps, err := s.Repo.ListByPosition(ctx, positionID)
	if err != nil {
		return nil, err
	}

	scored := make([]ScoredApplication, 0, len(apps))
	for _, app := range apps {
		score, signals := match.Score(app.Profile(), pos)
		scored = append(scored, ScoredApplication{
			Application:   app,
			PositionTitle: pos.Title,
			MatchScore:    score,
			MatchedSkills: signals.MatchedSkills,
			MissingSkills: signals.MissingSkills,
		})
	}

	return Rank(scored), nil
}
