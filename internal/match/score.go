// Package match computes a transparent 0-100 fit score between a candidate
// profile and a position. The score is dominated by skill overlap against the
// position's tokenized requirements, with a bounded experience bonus and a
// penalty when extraction fell through to a degraded tier.
package match

import (
	"regexp"
	"strings"

	"recruitflow-backend/internal/candidates"
	"recruitflow-backend/internal/positions"
)

const (
	// skillWeight is the ceiling of the skill-overlap component.
	skillWeight = 75
	// maxExperienceBonus caps the experience component.
	maxExperienceBonus = 20
	// degradedPenalty is subtracted when the profile came from a fallback
	// extraction tier, so low-fidelity data does not score artificially high.
	degradedPenalty = 10
)

var (
	yearsPattern      = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)`)
	seniorityKeywords = []string{"senior", "lead", "principal", "architect", "staff"}
)

// Signals exposes the components behind a score so rankings stay explainable.
type Signals struct {
	MatchedSkills []string
	MissingSkills []string
	SkillPoints   int
	ExpBonus      int
	Penalty       int
}

// Score compares a candidate profile against a position and returns a value
// in [0,100]. It never fails: unparseable requirements count as an empty
// token set. A profile with no skills and no experience text scores 0.
func Score(profile candidates.Profile, pos positions.Position) (int, Signals) {
	sig := Signals{MatchedSkills: []string{}, MissingSkills: []string{}}

	if len(profile.Skills) == 0 && strings.TrimSpace(profile.Experience) == "" {
		return 0, sig
	}

	required := TokenizeRequirements(pos.Requirements)
	for _, token := range required {
		if skillMatches(profile.Skills, token) {
			sig.MatchedSkills = append(sig.MatchedSkills, token)
		} else {
			sig.MissingSkills = append(sig.MissingSkills, token)
		}
	}

	if len(required) > 0 {
		sig.SkillPoints = (skillWeight*len(sig.MatchedSkills) + len(required)/2) / len(required)
	}

	sig.ExpBonus = experienceBonus(profile.Experience)
	if profile.ExtractionNote != "" {
		sig.Penalty = degradedPenalty
	}

	score := sig.SkillPoints + sig.ExpBonus - sig.Penalty
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return score, sig
}

// skillMatches reports whether any candidate skill covers the requirement
// token, by equality or containment either way ("node" matches "node.js").
func skillMatches(skills []string, token string) bool {
	for _, skill := range skills {
		if skill == token {
			return true
		}
		if len(skill) >= 3 && strings.Contains(token, skill) {
			return true
		}
		if len(token) >= 3 && strings.Contains(skill, token) {
			return true
		}
	}
	return false
}

func experienceBonus(experience string) int {
	text := strings.ToLower(experience)
	if strings.TrimSpace(text) == "" {
		return 0
	}

	bonus := 0
	if m := yearsPattern.FindStringSubmatch(text); m != nil {
		years := 0
		for _, ch := range m[1] {
			years = years*10 + int(ch-'0')
		}
		bonus = years * 5
		if bonus > 15 {
			bonus = 15
		}
	}
	for _, kw := range seniorityKeywords {
		if strings.Contains(text, kw) {
			bonus += 5
			break
		}
	}
	if bonus > maxExperienceBonus {
		bonus = maxExperienceBonus
	}
	return bonus
}
