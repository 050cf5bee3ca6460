package intake

import (
	"context"
	"testing"

	"recruitflow-backend/internal/tempstore"
)

func TestDeriveNameFromFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"john_doe-resume.pdf", "John Doe Resume"},
		{"JANE-SMITH.docx", "Jane Smith"},
		{"cv.pdf", "Cv"},
		{"  ", ""},
		{"single.doc", "Single"},
		{"a_b_c.pdf", "A B C"},
	}
	for _, tc := range cases {
		if got := DeriveNameFromFilename(tc.in); got != tc.want {
			t.Fatalf("DeriveNameFromFilename(%q): got %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFilenameExtractorNeverFails(t *testing.T) {
	rec, err := FilenameExtractor{}.Attempt(context.Background(), tempstore.Handle{
		DeclaredName: "john_doe.pdf",
	})
	if err != nil {
		t.Fatalf("Attempt: %v", err)
	}
	if rec.Name != "John Doe" {
		t.Fatalf("name: got %q", rec.Name)
	}
	if rec.Skills == nil || len(rec.Skills) != 0 {
		t.Fatalf("expected empty non-nil skills, got %v", rec.Skills)
	}
	if rec.Email != "" || rec.Phone != "" || rec.MatchIndicator != 0 {
		t.Fatalf("expected empty record beyond name, got %+v", rec)
	}
}
