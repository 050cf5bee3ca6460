// Package gemini implements the AI-assisted extraction tier on top of the
// Google GenAI API. Any failure mode (missing credential, transport error,
// timeout, unparseable output) is reported as a tier error so the chain can
// advance to the heuristic tier.
package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"recruitflow-backend/internal/extract"
	"recruitflow-backend/internal/intake"
	"recruitflow-backend/internal/tempstore"
)

const defaultModel = "gemini-2.0-flash"

// ErrNotConfigured is returned by Attempt when no API key was supplied.
var ErrNotConfigured = errors.New("gemini extractor is not configured")

// Extractor delegates field extraction to the Gemini API.
type Extractor struct {
	client   *genai.Client
	model    string
	timeout  time.Duration
	readFile func(tempstore.Handle) ([]byte, error)
}

// New builds the extractor. An empty API key yields an extractor whose
// Attempt always fails with ErrNotConfigured, keeping the chain shape fixed
// whether or not the capability is available.
func New(ctx context.Context, apiKey, model string, timeout time.Duration, readFile func(tempstore.Handle) ([]byte, error)) (*Extractor, error) {
	if model = strings.TrimSpace(model); model == "" {
		model = defaultModel
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}

	e := &Extractor{model: model, timeout: timeout, readFile: readFile}

	if strings.TrimSpace(apiKey) == "" {
		return e, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	e.client = client
	return e, nil
}

// Name returns the tier identifier.
func (e *Extractor) Name() string { return "gemini" }

// Attempt extracts the file's text, asks Gemini for a structured record and
// parses the response. The configured per-tier timeout bounds the call.
func (e *Extractor) Attempt(ctx context.Context, file tempstore.Handle) (intake.Record, error) {
	if e.client == nil {
		return intake.Record{}, ErrNotConfigured
	}

	data, err := e.readFile(file)
	if err != nil {
		return intake.Record{}, fmt.Errorf("gemini: read file: %w", err)
	}

	text, err := extract.Text(ctx, data, file.DeclaredName)
	if err != nil {
		return intake.Record{}, fmt.Errorf("gemini: extract text: %w", err)
	}

	callCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	resp, err := e.client.Models.GenerateContent(callCtx, e.model, genai.Text(buildPrompt(text)), nil)
	if err != nil {
		return intake.Record{}, fmt.Errorf("gemini: generate content: %w", err)
	}

	raw := collectText(resp)
	if raw == "" {
		return intake.Record{}, errors.New("gemini: empty response")
	}

	return parseRecord(raw)
}

func buildPrompt(resumeText string) string {
	return `You are a resume parser API. Extract the following from the resume text below:
full name, email address, phone number, skills (as a list), experience duration,
and education details for the 10th and 12th standard milestones (school name,
year, percentage or CGPA for each).

Respond ONLY with a JSON object of this exact shape and no additional text:
{
  "name": "", "email": "", "phone": "",
  "skills": [], "experience": "",
  "education": {
    "tenth": {"school": "", "year": "", "percentage": ""},
    "twelfth": {"school": "", "year": "", "percentage": ""}
  }
}

Use empty strings or arrays for anything you cannot find.

Resume text:
` + resumeText
}

func collectText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var builder strings.Builder
	for _, candidate := range resp.Candidates {
		if candidate == nil || candidate.Content == nil {
			continue
		}
		for _, part := range candidate.Content.Parts {
			if part == nil {
				continue
			}
			text := strings.TrimSpace(part.Text)
			if text == "" {
				continue
			}
			if builder.Len() > 0 {
				builder.WriteString("\n")
			}
			builder.WriteString(text)
		}
	}
	return strings.TrimSpace(builder.String())
}

// parseRecord decodes the model output, tolerating markdown code fences
// around the JSON object.
func parseRecord(raw string) (intake.Record, error) {
	cleaned := stripCodeFences(raw)

	var rec intake.Record
	if err := json.Unmarshal([]byte(cleaned), &rec); err != nil {
		return intake.Record{}, fmt.Errorf("gemini: parse response: %w", err)
	}
	if rec.Skills == nil {
		rec.Skills = []string{}
	}
	return rec, nil
}

func stripCodeFences(raw string) string {
	raw = strings.TrimSpace(raw)
	if strings.HasPrefix(raw, "```") {
		raw = strings.TrimPrefix(raw, "```json")
		raw = strings.TrimPrefix(raw, "```")
		raw = strings.TrimSpace(raw)
		if idx := strings.LastIndex(raw, "```"); idx != -1 {
			raw = raw[:idx]
		}
	}
	return strings.TrimSpace(strings.Trim(raw, "`"))
}
