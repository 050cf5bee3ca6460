package intake

import (
	"sort"
	"strings"

	"recruitflow-backend/internal/candidates"
)

// Tier names, in descending fidelity order.
const (
	TierGemini    = "gemini"
	TierHeuristic = "heuristic"
	TierFilename  = "filename"
)

// HeuristicNote is surfaced on profiles produced by the heuristic tier.
const HeuristicNote = "Parsed with basic pattern matching. Please verify the extracted details."

// Normalize maps a raw extraction record from any tier into the canonical
// candidate profile. This is the single choke point guaranteeing downstream
// consumers never branch on which tier produced the data: every string is
// trimmed, skills are case-normalized into a deduplicated sorted set, the
// match indicator is clamped into [0,100], and the extraction note is set
// only when a tier below the top one was used.
func Normalize(rec Record, tier string) candidates.Profile {
	profile := candidates.Profile{
		Name:       strings.TrimSpace(rec.Name),
		Email:      strings.TrimSpace(rec.Email),
		Phone:      strings.TrimSpace(rec.Phone),
		Skills:     normalizeSkills(rec.Skills),
		Experience: strings.TrimSpace(rec.Experience),
		Education: candidates.Education{
			Tenth:   normalizeMilestone(rec.Education.Tenth),
			Twelfth: normalizeMilestone(rec.Education.Twelfth),
		},
		MatchScore: clampScore(rec.MatchIndicator),
	}

	switch tier {
	case TierHeuristic:
		profile.ExtractionNote = HeuristicNote
	case TierFilename:
		profile.ExtractionNote = ManualCompletionNote
		profile.MatchScore = 0
	}

	return profile
}

func normalizeSkills(raw []string) []string {
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		skill := strings.ToLower(strings.TrimSpace(s))
		if skill == "" {
			continue
		}
		if _, ok := seen[skill]; ok {
			continue
		}
		seen[skill] = struct{}{}
		out = append(out, skill)
	}
	sort.Strings(out)
	return out
}

func normalizeMilestone(m Milestone) candidates.Milestone {
	return candidates.Milestone{
		School:     strings.TrimSpace(m.School),
		Year:       strings.TrimSpace(m.Year),
		Percentage: strings.TrimSpace(m.Percentage),
	}
}

func clampScore(score int) int {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
