package match

import "strings"

// TokenizeRequirements splits a position's free-text requirements into a
// deduplicated set of lowercase tokens. Requirements are primarily
// newline-delimited; commas, semicolons and leading bullet characters are
// tolerated. Unparseable or empty input yields an empty set.
func TokenizeRequirements(raw string) []string {
	seen := make(map[string]struct{})
	var out []string

	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == '\r' || r == ',' || r == ';'
	})
	for _, f := range fields {
		token := normalizeToken(f)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		out = append(out, token)
	}
	return out
}

func normalizeToken(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.TrimLeft(s, "-*• \t")
	return strings.ToLower(strings.TrimSpace(s))
}
