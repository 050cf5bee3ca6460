package intake

import (
	"context"
	"path/filepath"
	"strings"

	"recruitflow-backend/internal/tempstore"
)

// ManualCompletionNote is surfaced on profiles produced by the filename tier.
const ManualCompletionNote = "Automatic parsing failed. Please fill in your details manually."

// FilenameExtractor is the minimal last tier. It derives a best-effort name
// from the declared file name and leaves everything else empty. It never
// fails.
type FilenameExtractor struct{}

// Name returns the tier identifier.
func (FilenameExtractor) Name() string { return "filename" }

// Attempt builds a record from the file name alone.
func (FilenameExtractor) Attempt(_ context.Context, file tempstore.Handle) (Record, error) {
	return Record{
		Name:   DeriveNameFromFilename(file.DeclaredName),
		Skills: []string{},
	}, nil
}

// DeriveNameFromFilename strips the extension, replaces separator characters
// with spaces and title-cases each word: "john_doe-resume.pdf" -> "John Doe Resume".
func DeriveNameFromFilename(fileName string) string {
	stem := strings.TrimSuffix(fileName, filepath.Ext(fileName))
	stem = strings.NewReplacer("_", " ", "-", " ").Replace(stem)

	words := strings.Fields(stem)
	for i, w := range words {
		runes := []rune(w)
		words[i] = strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
	}
	return strings.Join(words, " ")
}
