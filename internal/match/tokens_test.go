package match

import (
	"reflect"
	"testing"
)

func TestTokenizeRequirementsSplitsAndNormalizes(t *testing.T) {
	raw := "- JavaScript\n* React\n• Node.js\nSQL, PostgreSQL; Docker\n\n  \n"
	got := TokenizeRequirements(raw)
	want := []string{"javascript", "react", "node.js", "sql", "postgresql", "docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("TokenizeRequirements: got %v, want %v", got, want)
	}
}

func TestTokenizeRequirementsDeduplicates(t *testing.T) {
	got := TokenizeRequirements("React\nreact\nREACT, react")
	if len(got) != 1 || got[0] != "react" {
		t.Fatalf("expected single react token, got %v", got)
	}
}

func TestTokenizeRequirementsEmptyInput(t *testing.T) {
	for _, raw := range []string{"", "   ", "\n\n", "- \n* "} {
		if got := TokenizeRequirements(raw); len(got) != 0 {
			t.Fatalf("expected no tokens for %q, got %v", raw, got)
		}
	}
}
