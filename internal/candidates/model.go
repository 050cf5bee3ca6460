package candidates

import "time"

// Milestone is one qualifying-exam record (10th or 12th standard).
type Milestone struct {
	School     string `json:"school"`
	Year       string `json:"year"`
	Percentage string `json:"percentage"`
}

// Education holds the two fixed academic milestones tracked per candidate.
type Education struct {
	Tenth   Milestone `json:"tenth"`
	Twelfth Milestone `json:"twelfth"`
}

// Profile is the canonical, tier-independent representation of a candidate
// produced by the intake normalizer. No field is ever null: absent data is
// the empty string or an empty slice.
type Profile struct {
	Name           string
	Email          string
	Phone          string
	Skills         []string // lowercased, deduplicated, sorted
	Experience     string
	Education      Education
	MatchScore     int // always in [0,100]
	ExtractionNote string
}

// Candidate is a persisted profile keyed by email.
type Candidate struct {
	ID         string
	Name       string
	Email      string
	Phone      string
	Skills     []string
	Experience string
	Education  Education
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
