package intake

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"recruitflow-backend/internal/extract"
	"recruitflow-backend/internal/tempstore"
)

// HeuristicExtractor is the dependency-light middle tier: regex and keyword
// matching over the file's raw text. It fails when no text can be pulled
// from the file, advancing the chain to the filename tier.
type HeuristicExtractor struct {
	ReadFile func(tempstore.Handle) ([]byte, error)
}

var (
	errEmptyText = errors.New("heuristic: no usable text in file")

	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(?:\+\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	yearsPattern = regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)\s*(?:of\s*)?experience`)

	skillsSectionPattern     = regexp.MustCompile(`(?i)\n\s*(?:SKILLS|TECHNICAL SKILLS|CORE COMPETENCIES)\s*\n`)
	experienceSectionPattern = regexp.MustCompile(`(?i)\n\s*(?:EXPERIENCE|WORK EXPERIENCE|EMPLOYMENT HISTORY)\s*\n`)
	educationSectionPattern  = regexp.MustCompile(`(?i)\n\s*(?:EDUCATION|QUALIFICATION|ACADEMIC|EDUCATIONAL BACKGROUND)\s*\n`)
	inlineSkillsPattern      = regexp.MustCompile(`(?i)(?:skills|technical skills|core competencies):\s*([^.\n]+)`)

	tenthSchoolPattern     = regexp.MustCompile(`(?i)(?:10th|X\b|SSC|Secondary School Certificate).*?(?:from|at|in)?\s*([A-Za-z0-9 .]+(?:School|College|Institution|Academy|High School))`)
	tenthYearPattern       = regexp.MustCompile(`(?i)(?:10th|X\b|SSC|Secondary School Certificate)\D*?(\d{4})`)
	tenthPercentPattern    = regexp.MustCompile(`(?i)(?:10th|X\b|SSC|Secondary School Certificate).*?(\d+(?:\.\d+)?%)`)
	twelfthSchoolPattern   = regexp.MustCompile(`(?i)(?:12th|XII|HSC|Higher Secondary Certificate).*?(?:from|at|in)?\s*([A-Za-z0-9 .]+(?:School|College|Institution|Academy|Junior College))`)
	twelfthYearPattern     = regexp.MustCompile(`(?i)(?:12th|XII|HSC|Higher Secondary Certificate)\D*?(\d{4})`)
	twelfthPercentPattern  = regexp.MustCompile(`(?i)(?:12th|XII|HSC|Higher Secondary Certificate).*?(\d+(?:\.\d+)?%)`)
	headerExclusionMarkers = []string{"resume", "cv", "curriculum vitae", "email", "phone", "address"}
)

// skillKeywords is the recognition vocabulary for skill extraction. The
// inline "Skills:" list pattern supplements anything not in here.
var skillKeywords = []string{
	"javascript", "typescript", "react", "vue", "angular", "node.js", "express",
	"next.js", "python", "django", "flask", "java", "spring", "c#", ".net",
	"php", "laravel", "ruby", "rails", "golang", "rust", "sql", "mongodb",
	"postgresql", "mysql", "redis", "graphql", "rest api", "html", "css",
	"aws", "azure", "gcp", "docker", "kubernetes", "terraform", "git",
	"ci/cd", "jenkins", "github actions", "devops", "machine learning", "ai",
	"data science", "analytics", "testing", "unit testing", "integration testing",
	"automation", "agile", "scrum", "leadership", "communication",
	"problem solving", "project management", "cloud computing",
}

// Name returns the tier identifier.
func (HeuristicExtractor) Name() string { return "heuristic" }

// Attempt extracts raw text and mines it for recognizable resume fields.
func (e HeuristicExtractor) Attempt(ctx context.Context, file tempstore.Handle) (Record, error) {
	data, err := e.ReadFile(file)
	if err != nil {
		return Record{}, fmt.Errorf("heuristic: read file: %w", err)
	}

	text, err := extract.Text(ctx, data, file.DeclaredName)
	if err != nil {
		return Record{}, fmt.Errorf("heuristic: extract text: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return Record{}, errEmptyText
	}

	skills := extractSkills(text)
	experience := extractExperience(text)

	rec := Record{
		Name:           extractName(text, file.DeclaredName),
		Email:          firstMatch(emailPattern, text),
		Phone:          firstMatch(phonePattern, text),
		Skills:         skills,
		Experience:     experience,
		Education:      extractEducation(text),
		MatchIndicator: matchIndicator(skills, experience),
	}
	return rec, nil
}

// extractName takes the first non-header line of the document, falling back
// to the filename-derived name.
func extractName(text, fileName string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	max := len(lines)
	if max > 5 {
		max = 5
	}
	for _, line := range lines[:max] {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		lower := strings.ToLower(trimmed)
		excluded := false
		for _, marker := range headerExclusionMarkers {
			if strings.Contains(lower, marker) {
				excluded = true
				break
			}
		}
		if !excluded {
			return trimmed
		}
	}
	return DeriveNameFromFilename(fileName)
}

func extractSkills(text string) []string {
	section := sectionAfter(skillsSectionPattern, text)
	if section == "" {
		section = text
	}
	lower := strings.ToLower(section)

	var found []string
	seen := make(map[string]struct{})
	add := func(skill string) {
		skill = strings.ToLower(strings.TrimSpace(skill))
		if skill == "" {
			return
		}
		if _, ok := seen[skill]; ok {
			return
		}
		seen[skill] = struct{}{}
		found = append(found, skill)
	}

	for _, kw := range skillKeywords {
		if strings.Contains(lower, kw) {
			add(kw)
		}
	}

	if m := inlineSkillsPattern.FindStringSubmatch(text); m != nil {
		for _, part := range strings.Split(m[1], ",") {
			add(part)
		}
	}

	if found == nil {
		return []string{}
	}
	return found
}

func extractExperience(text string) string {
	section := sectionAfter(experienceSectionPattern, text)
	if section == "" {
		section = text
	}
	return firstMatch(yearsPattern, section)
}

func extractEducation(text string) Education {
	section := sectionAfter(educationSectionPattern, text)
	if section == "" {
		section = text
	}
	return Education{
		Tenth: Milestone{
			School:     submatch(tenthSchoolPattern, section),
			Year:       submatch(tenthYearPattern, section),
			Percentage: submatch(tenthPercentPattern, section),
		},
		Twelfth: Milestone{
			School:     submatch(twelfthSchoolPattern, section),
			Year:       submatch(twelfthYearPattern, section),
			Percentage: submatch(twelfthPercentPattern, section),
		},
	}
}

// matchIndicator is the tier-local fit estimate: up to 50 points for skill
// count, up to 50 for years of experience.
func matchIndicator(skills []string, experience string) int {
	score := len(skills) * 5
	if score > 50 {
		score = 50
	}
	if m := yearsPattern.FindStringSubmatch(experience); m != nil {
		if years, err := strconv.Atoi(m[1]); err == nil {
			expScore := years * 10
			if expScore > 50 {
				expScore = 50
			}
			score += expScore
		}
	}
	return score
}

func sectionAfter(pattern *regexp.Regexp, text string) string {
	parts := pattern.Split(text, 2)
	if len(parts) > 1 {
		return parts[1]
	}
	return ""
}

func firstMatch(pattern *regexp.Regexp, text string) string {
	return strings.TrimSpace(pattern.FindString(text))
}

func submatch(pattern *regexp.Regexp, text string) string {
	if m := pattern.FindStringSubmatch(text); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}
