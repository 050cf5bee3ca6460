package intake

import "recruitflow-backend/internal/candidates"

// ProfileResponse is the flat outward-facing shape of a parsed resume. All
// keys are always present except note, which appears only on degraded
// extractions.
type ProfileResponse struct {
	Name       string               `json:"name"`
	Email      string               `json:"email"`
	Phone      string               `json:"phone"`
	Skills     []string             `json:"skills"`
	Experience string               `json:"experience"`
	MatchScore int                  `json:"matchScore"`
	Education  candidates.Education `json:"education"`
	Note       string               `json:"note,omitempty"`
}

func toResponse(profile candidates.Profile) ProfileResponse {
	skills := profile.Skills
	if skills == nil {
		skills = []string{}
	}
	return ProfileResponse{
		Name:       profile.Name,
		Email:      profile.Email,
		Phone:      profile.Phone,
		Skills:     skills,
		Experience: profile.Experience,
		MatchScore: profile.MatchScore,
		Education:  profile.Education,
		Note:       profile.ExtractionNote,
	}
}
