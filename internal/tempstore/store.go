// Package tempstore persists uploaded resume payloads to a scoped scratch
// location for the duration of a single extraction request.
package tempstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"recruitflow-backend/internal/shared/telemetry"
	"recruitflow-backend/internal/shared/util"
)

var (
	// ErrInvalidFileType is returned when the declared extension is not accepted.
	ErrInvalidFileType = errors.New("invalid file type: only pdf, doc and docx are accepted")
	// ErrFileTooLarge is returned when the payload exceeds the configured cap.
	ErrFileTooLarge = errors.New("file exceeds the maximum allowed size")
)

var allowedExtensions = map[string]struct{}{
	".pdf":  {},
	".doc":  {},
	".docx": {},
}

// Handle identifies a stored temporary file. It is valid until Release.
type Handle struct {
	Path         string
	DeclaredName string
	Ext          string
	SizeBytes    int64
}

// Store writes uploads into baseDir and enforces type/size constraints.
type Store struct {
	baseDir  string
	maxBytes int64
}

// New creates a Store rooted at baseDir with the given size cap in bytes.
func New(baseDir string, maxBytes int64) *Store {
	return &Store{baseDir: baseDir, maxBytes: maxBytes}
}

// Save validates the declared name, then streams the payload to a
// collision-resistant scratch path. Validation failures happen before any
// byte is written.
func (s *Store) Save(ctx context.Context, r io.Reader, declaredName string) (Handle, error) {
	if err := ctx.Err(); err != nil {
		return Handle{}, err
	}

	sanitized, err := util.SanitizeFileName(declaredName)
	if err != nil {
		return Handle{}, fmt.Errorf("%w: %q", ErrInvalidFileType, declaredName)
	}

	ext := strings.ToLower(filepath.Ext(sanitized))
	if _, ok := allowedExtensions[ext]; !ok {
		return Handle{}, fmt.Errorf("%w: %q", ErrInvalidFileType, ext)
	}

	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return Handle{}, fmt.Errorf("mkdir scratch dir: %w", err)
	}

	name := fmt.Sprintf("resume-%d-%s%s", time.Now().UnixNano(), randomSuffix(), ext)
	fullPath := filepath.Join(s.baseDir, name)

	f, err := os.OpenFile(fullPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, 0o600)
	if err != nil {
		return Handle{}, fmt.Errorf("open scratch file: %w", err)
	}

	written, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	if err != nil {
		s.remove(fullPath)
		return Handle{}, fmt.Errorf("write scratch file: %w", err)
	}
	if closeErr != nil {
		s.remove(fullPath)
		return Handle{}, fmt.Errorf("close scratch file: %w", closeErr)
	}
	if written > s.maxBytes {
		s.remove(fullPath)
		return Handle{}, fmt.Errorf("%w: cap is %d bytes", ErrFileTooLarge, s.maxBytes)
	}

	return Handle{
		Path:         fullPath,
		DeclaredName: sanitized,
		Ext:          ext,
		SizeBytes:    written,
	}, nil
}

// Release deletes the temporary file. It must be called exactly once per
// successful Save, on every exit path of the caller. It never fails: a
// missing file is logged and ignored, as is any other unlink error.
func (s *Store) Release(h Handle) {
	if h.Path == "" {
		return
	}
	err := os.Remove(h.Path)
	switch {
	case err == nil:
	case os.IsNotExist(err):
		telemetry.Info("tempstore.release.already_gone", map[string]any{"path": h.Path})
	default:
		telemetry.Error("tempstore.release.failed", map[string]any{"path": h.Path, "error": err.Error()})
	}
}

// ReadAll loads the stored payload back into memory for extraction.
func (s *Store) ReadAll(h Handle) ([]byte, error) {
	return os.ReadFile(h.Path)
}

func (s *Store) remove(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		telemetry.Error("tempstore.cleanup.failed", map[string]any{"path": path, "error": err.Error()})
	}
}

func randomSuffix() string {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return fmt.Sprintf("%d", time.Now().UnixNano())
	}
	return hex.EncodeToString(b[:])
}
