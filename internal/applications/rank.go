package applications

import "sort"

// Rank orders scored applications for listing and shortlisting: match score
// descending, then most recent submission first, then candidate name
// ascending, with the application ID as the final tie-break so the ordering
// is fully deterministic regardless of input order. The input slice is not
// modified; ranks are assigned 1-based on the returned copy.
func Rank(apps []ScoredApplication) []ScoredApplication {
	out := make([]ScoredApplication, len(apps))
	copy(out, apps)

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.MatchScore != b.MatchScore {
			return a.MatchScore > b.MatchScore
		}
		if !a.Application.SubmittedAt.Equal(b.Application.SubmittedAt) {
			return a.Application.SubmittedAt.After(b.Application.SubmittedAt)
		}
		if a.Application.CandidateName != b.Application.CandidateName {
			return a.Application.CandidateName < b.Application.CandidateName
		}
		return a.Application.ID < b.Application.ID
	})

	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
