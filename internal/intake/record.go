package intake

// Milestone is one best-effort qualifying-exam sub-record.
type Milestone struct {
	School     string `json:"school"`
	Year       string `json:"year"`
	Percentage string `json:"percentage"`
}

// Education holds the two fixed academic milestones extractors look for.
type Education struct {
	Tenth   Milestone `json:"tenth"`
	Twelfth Milestone `json:"twelfth"`
}

// Record is the raw, tier-specific extraction output before normalization.
// Any field may be empty; none is ever null.
type Record struct {
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Skills         []string  `json:"skills"`
	Experience     string    `json:"experience"`
	Education      Education `json:"education"`
	MatchIndicator int       `json:"matchScore"`
}
