package match

import (
	"reflect"
	"testing"

	"recruitflow-backend/internal/candidates"
	"recruitflow-backend/internal/positions"
)

func TestScoreZeroWhenProfileIsEmpty(t *testing.T) {
	pos := positions.Position{Requirements: "JavaScript\nReact"}
	score, sig := Score(candidates.Profile{Skills: []string{}}, pos)
	if score != 0 {
		t.Fatalf("expected 0 for empty profile, got %d", score)
	}
	if len(sig.MatchedSkills) != 0 || len(sig.MissingSkills) != 0 {
		t.Fatalf("expected empty signals, got %+v", sig)
	}
}

func TestScoreMoreOverlapScoresStrictlyHigher(t *testing.T) {
	pos := positions.Position{Requirements: "JavaScript\nReact\nNode.js"}

	both, _ := Score(candidates.Profile{Skills: []string{"javascript", "react"}}, pos)
	one, _ := Score(candidates.Profile{Skills: []string{"javascript"}}, pos)

	if both != 50 {
		t.Fatalf("two of three matched: got %d, want 50", both)
	}
	if one != 25 {
		t.Fatalf("one of three matched: got %d, want 25", one)
	}
	if both <= one {
		t.Fatalf("expected strict ordering, got %d <= %d", both, one)
	}
}

func TestScoreReportsMatchedAndMissing(t *testing.T) {
	pos := positions.Position{Requirements: "JavaScript\nReact\nKubernetes"}
	_, sig := Score(candidates.Profile{Skills: []string{"react", "javascript"}}, pos)

	if !reflect.DeepEqual(sig.MatchedSkills, []string{"javascript", "react"}) {
		t.Fatalf("matched: got %v", sig.MatchedSkills)
	}
	if !reflect.DeepEqual(sig.MissingSkills, []string{"kubernetes"}) {
		t.Fatalf("missing: got %v", sig.MissingSkills)
	}
}

func TestScoreContainmentMatchesRelatedTokens(t *testing.T) {
	pos := positions.Position{Requirements: "Node.js"}
	score, sig := Score(candidates.Profile{Skills: []string{"node"}}, pos)
	if len(sig.MatchedSkills) != 1 {
		t.Fatalf("expected node to cover node.js, got missing %v", sig.MissingSkills)
	}
	if score != 75 {
		t.Fatalf("full overlap: got %d, want 75", score)
	}
}

func TestScoreExperienceBonusIsBounded(t *testing.T) {
	pos := positions.Position{Requirements: ""}

	score, sig := Score(candidates.Profile{
		Skills:     []string{"go"},
		Experience: "12 years as Senior Engineer",
	}, pos)
	if sig.ExpBonus != 20 {
		t.Fatalf("expected capped bonus 20, got %d", sig.ExpBonus)
	}
	if score != 20 {
		t.Fatalf("no requirements means bonus only: got %d", score)
	}

	_, sig = Score(candidates.Profile{Skills: []string{"go"}, Experience: "2 years"}, pos)
	if sig.ExpBonus != 10 {
		t.Fatalf("2 years: got bonus %d, want 10", sig.ExpBonus)
	}
}

func TestScorePenalizesDegradedExtraction(t *testing.T) {
	pos := positions.Position{Requirements: "JavaScript"}
	clean, _ := Score(candidates.Profile{Skills: []string{"javascript"}}, pos)
	degraded, sig := Score(candidates.Profile{
		Skills:         []string{"javascript"},
		ExtractionNote: "Parsed with basic pattern matching. Please verify the extracted details.",
	}, pos)

	if sig.Penalty != 10 {
		t.Fatalf("expected penalty 10, got %d", sig.Penalty)
	}
	if degraded != clean-10 {
		t.Fatalf("degraded score: got %d, want %d", degraded, clean-10)
	}
}

func TestScoreNeverLeavesRange(t *testing.T) {
	pos := positions.Position{Requirements: "JavaScript"}

	low, _ := Score(candidates.Profile{
		Skills:         []string{"cobol"},
		ExtractionNote: "note",
	}, pos)
	if low != 0 {
		t.Fatalf("expected floor at 0, got %d", low)
	}

	high, _ := Score(candidates.Profile{
		Skills:     []string{"javascript"},
		Experience: "20 years as principal engineer",
	}, pos)
	if high < 0 || high > 100 {
		t.Fatalf("score out of range: %d", high)
	}
}

func TestScoreUnparseableRequirementsCountAsEmpty(t *testing.T) {
	pos := positions.Position{Requirements: ";;;,,,\n- \n"}
	score, sig := Score(candidates.Profile{Skills: []string{"go"}, Experience: "3 years"}, pos)
	if sig.SkillPoints != 0 {
		t.Fatalf("expected no skill points, got %d", sig.SkillPoints)
	}
	if score != 15 {
		t.Fatalf("expected experience-only score 15, got %d", score)
	}
}
