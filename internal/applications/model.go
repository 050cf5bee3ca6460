package applications

import (
	"time"

	"recruitflow-backend/internal/candidates"
)

// Application status values.
const (
	StatusPending     = "PENDING"
	StatusShortlisted = "SHORTLISTED"
	StatusRejected    = "REJECTED"
)

// Application is a candidate's submission against one position. The profile
// fields are denormalized onto the application so listings do not need a
// candidate join.
type Application struct {
	ID             string
	PositionID     string
	CandidateID    string
	CandidateName  string
	Email          string
	Phone          string
	Skills         []string
	Experience     string
	MatchScore     int
	ExtractionNote string
	Status         string
	SubmittedAt    time.Time
}

// Profile reconstitutes the scoring-relevant view of the application.
func (a Application) Profile() candidates.Profile {
	skills := a.Skills
	if skills == nil {
		skills = []string{}
	}
	return candidates.Profile{
		Name:           a.CandidateName,
		Email:          a.Email,
		Phone:          a.Phone,
		Skills:         skills,
		Experience:     a.Experience,
		MatchScore:     a.MatchScore,
		ExtractionNote: a.ExtractionNote,
	}
}

// ScoredApplication is the per-request view used for ranking. It is derived
// on demand and never persisted.
type ScoredApplication struct {
	Application   Application
	PositionTitle string
	MatchScore    int
	MatchedSkills []string
	MissingSkills []string
	Rank          int
}
