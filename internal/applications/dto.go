package applications

import (
	"time"

	"recruitflow-backend/internal/candidates"
)

// CreateRequest is the inbound payload for recording an application. Its
// shape mirrors the intake submit response so the parsed profile can be
// posted back as-is, with corrections applied by the applicant.
type CreateRequest struct {
	PositionID string               `json:"positionId"`
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Phone      string               `json:"phone"`
	Skills     []string             `json:"skills"`
	Experience string               `json:"experience"`
	MatchScore int                  `json:"matchScore"`
	Education  candidates.Education `json:"education"`
	Note       string               `json:"note"`
}

// ApplicationResponse is the outward-facing representation of an application.
type ApplicationResponse struct {
	ID          string    `json:"id"`
	PositionID  string    `json:"positionId"`
	CandidateID string    `json:"candidateId"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	MatchScore  int       `json:"matchScore"`
	Status      string    `json:"status"`
	SubmittedAt time.Time `json:"submittedAt"`
}

// RankedCandidateResponse is one row of a ranked candidate listing.
type RankedCandidateResponse struct {
	Rank          int       `json:"rank"`
	ApplicationID string    `json:"applicationId"`
	CandidateID   string    `json:"candidateId"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	Position      string    `json:"position"`
	MatchScore    int       `json:"matchScore"`
	MatchedSkills []string  `json:"matchedSkills"`
	MissingSkills []string  `json:"missingSkills"`
	Status        string    `json:"status"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

func toApplicationResponse(app Application) ApplicationResponse {
	return ApplicationResponse{
		ID:          app.ID,
		PositionID:  app.PositionID,
		CandidateID: app.CandidateID,
		Name:        app.CandidateName,
		Email:       app.Email,
		MatchScore:  app.MatchScore,
		Status:      app.Status,
		SubmittedAt: app.SubmittedAt,
	}
}

func toRankedResponse(sa ScoredApplication) RankedCandidateResponse {
	return RankedCandidateResponse{
		Rank:          sa.Rank,
		ApplicationID: sa.Application.ID,
		CandidateID:   sa.Application.CandidateID,
		Name:          sa.Application.CandidateName,
		Email:         sa.Application.Email,
		Phone:         sa.Application.Phone,
		Position:      sa.PositionTitle,
		MatchScore:    sa.MatchScore,
		MatchedSkills: sa.MatchedSkills,
		MissingSkills: sa.MissingSkills,
		Status:        sa.Application.Status,
		SubmittedAt:   sa.Application.SubmittedAt,
	}
}
