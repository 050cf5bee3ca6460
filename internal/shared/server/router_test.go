package server

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"recruitflow-backend/internal/shared/config"
)

const resumeText = `John Smith
Software Engineer
Email: john.smith@example.com
Phone: 555-123-4567
5 years of experience building web applications
SKILLS
JavaScript, React, Node.js, PostgreSQL
`

func testConfig(t *testing.T) config.Config {
	t.Helper()
	return config.Config{
		Port:            "0",
		CORSAllowOrigin: []string{"http://localhost:3000"},
		TempDir:         t.TempDir(),
		MaxUploadBytes:  1 << 20,
		Env:             "dev",
	}
}

func newRouter(t *testing.T) (*gin.Engine, config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	return NewRouter(cfg), cfg
}

func uploadResume(t *testing.T, router *gin.Engine, fileName, content, positionID string) *httptest.ResponseRecorder {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	fileWriter, err := writer.CreateFormFile("file", fileName)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fileWriter.Write([]byte(content)); err != nil {
		t.Fatalf("write file: %v", err)
	}
	if positionID != "" {
		if err := writer.WriteField("positionId", positionID); err != nil {
			t.Fatalf("write field: %v", err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resumes", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func createPosition(t *testing.T, router *gin.Engine, title, requirements string) string {
	t.Helper()

	payload, _ := json.Marshal(map[string]string{
		"title":        title,
		"requirements": requirements,
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/positions", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("create position: got %d, body %s", resp.Code, resp.Body.String())
	}

	var created struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		t.Fatalf("decode position: %v", err)
	}
	return created.ID
}

type profileBody struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Experience string   `json:"experience"`
	MatchScore int      `json:"matchScore"`
	Note       string   `json:"note"`
}

type errorBody struct {
	Error struct {
		Code string `json:"code"`
	} `json:"error"`
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("got %d", resp.Code)
	}
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request id header")
	}
}

func TestResumeSubmitExtractsAndScores(t *testing.T) {
	router, cfg := newRouter(t)
	posID := createPosition(t, router, "Frontend Engineer", "JavaScript\nReact")

	resp := uploadResume(t, router, "resume.doc", resumeText, posID)
	if resp.Code != http.StatusOK {
		t.Fatalf("submit: got %d, body %s", resp.Code, resp.Body.String())
	}

	var profile profileBody
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if profile.Name != "John Smith" {
		t.Fatalf("name: got %q", profile.Name)
	}
	if profile.Email != "john.smith@example.com" {
		t.Fatalf("email: got %q", profile.Email)
	}
	if profile.Skills == nil {
		t.Fatal("skills must never be null")
	}
	if profile.MatchScore <= 0 || profile.MatchScore > 100 {
		t.Fatalf("match score out of range: %d", profile.MatchScore)
	}
	if profile.Note == "" {
		t.Fatal("expected a note from the degraded extraction tier")
	}

	entries, err := os.ReadDir(cfg.TempDir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("temporary files not cleaned up: %d left", len(entries))
	}
}

func TestResumeSubmitUnparseableFallsBackToFilename(t *testing.T) {
	router, _ := newRouter(t)

	resp := uploadResume(t, router, "jane_doe.doc", "\x00\x01\x02\x03", "")
	if resp.Code != http.StatusOK {
		t.Fatalf("submit: got %d, body %s", resp.Code, resp.Body.String())
	}

	var profile profileBody
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if profile.Name != "Jane Doe" {
		t.Fatalf("derived name: got %q", profile.Name)
	}
	if profile.MatchScore != 0 {
		t.Fatalf("filename tier must score 0, got %d", profile.MatchScore)
	}
	if !strings.Contains(profile.Note, "manually") {
		t.Fatalf("expected manual completion note, got %q", profile.Note)
	}
}

func TestResumeSubmitRejectsBadUploads(t *testing.T) {
	router, _ := newRouter(t)

	resp := uploadResume(t, router, "resume.txt", "hello", "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("bad extension: got %d", resp.Code)
	}
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "invalid_file_type" {
		t.Fatalf("error code: got %q", body.Error.Code)
	}

	resp = uploadResume(t, router, "resume.doc", resumeText, "no-such-position")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("unknown position: got %d", resp.Code)
	}
}

func TestResumeSubmitEnforcesSizeCap(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := testConfig(t)
	cfg.MaxUploadBytes = 64
	router := NewRouter(cfg)

	resp := uploadResume(t, router, "resume.doc", strings.Repeat("x", 200), "")
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("oversized upload: got %d", resp.Code)
	}
	var body errorBody
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body.Error.Code != "file_too_large" {
		t.Fatalf("error code: got %q", body.Error.Code)
	}
}

func TestApplicationFlowEndToEnd(t *testing.T) {
	router, _ := newRouter(t)
	posID := createPosition(t, router, "Frontend Engineer", "JavaScript\nReact")

	apply := func(name, email string, skills []string) {
		t.Helper()
		payload, _ := json.Marshal(map[string]any{
			"positionId": posID,
			"name":       name,
			"email":      email,
			"skills":     skills,
		})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != http.StatusCreated {
			t.Fatalf("apply %s: got %d, body %s", name, resp.Code, resp.Body.String())
		}
	}

	apply("Partial Match", "partial@example.com", []string{"javascript"})
	apply("Full Match", "full@example.com", []string{"javascript", "react"})

	reqAll := httptest.NewRequest(http.MethodGet, "/api/v1/applications", nil)
	respAll := httptest.NewRecorder()
	router.ServeHTTP(respAll, reqAll)
	if respAll.Code != http.StatusOK {
		t.Fatalf("list applications: got %d", respAll.Code)
	}
	var all []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(respAll.Body).Decode(&all); err != nil {
		t.Fatalf("decode applications: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 applications, got %d", len(all))
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/positions/"+posID+"/candidates", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("candidates: got %d, body %s", resp.Code, resp.Body.String())
	}

	var ranked []struct {
		Rank          int      `json:"rank"`
		Name          string   `json:"name"`
		MatchScore    int      `json:"matchScore"`
		MatchedSkills []string `json:"matchedSkills"`
		MissingSkills []string `json:"missingSkills"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&ranked); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 candidates, got %d", len(ranked))
	}
	if ranked[0].Name != "Full Match" || ranked[0].Rank != 1 {
		t.Fatalf("top candidate: %+v", ranked[0])
	}
	if ranked[0].MatchScore <= ranked[1].MatchScore {
		t.Fatalf("ordering: %d vs %d", ranked[0].MatchScore, ranked[1].MatchScore)
	}
	if len(ranked[1].MissingSkills) != 1 {
		t.Fatalf("missing skills: %v", ranked[1].MissingSkills)
	}
}

func TestApplicationValidation(t *testing.T) {
	router, _ := newRouter(t)
	posID := createPosition(t, router, "Backend Engineer", "Go")

	cases := []struct {
		name    string
		payload map[string]any
		want    int
	}{
		{"missing email", map[string]any{"positionId": posID, "name": "X"}, http.StatusBadRequest},
		{"missing name", map[string]any{"positionId": posID, "email": "x@y.com"}, http.StatusBadRequest},
		{"unknown position", map[string]any{"positionId": "nope", "name": "X", "email": "x@y.com"}, http.StatusNotFound},
	}
	for _, tc := range cases {
		payload, _ := json.Marshal(tc.payload)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/applications", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
		resp := httptest.NewRecorder()
		router.ServeHTTP(resp, req)
		if resp.Code != tc.want {
			t.Fatalf("%s: got %d, want %d", tc.name, resp.Code, tc.want)
		}
	}
}
