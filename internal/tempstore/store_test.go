package tempstore

import (
	"context"
	"errors"
	"os"
	"strings"
	"testing"
)

func TestSaveRejectsUnsupportedExtensions(t *testing.T) {
	store := New(t.TempDir(), 1<<20)

	for _, name := range []string{"resume.txt", "resume.exe", "resume", "resume.pdf.sh"} {
		_, err := store.Save(context.Background(), strings.NewReader("data"), name)
		if !errors.Is(err, ErrInvalidFileType) {
			t.Fatalf("%q: expected ErrInvalidFileType, got %v", name, err)
		}
	}
}

func TestSaveRejectsPathTraversal(t *testing.T) {
	store := New(t.TempDir(), 1<<20)

	_, err := store.Save(context.Background(), strings.NewReader("data"), "../../etc/passwd.pdf")
	if !errors.Is(err, ErrInvalidFileType) {
		t.Fatalf("expected ErrInvalidFileType, got %v", err)
	}
}

func TestSaveRejectsOversizedPayloadAndCleansUp(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, 10)

	_, err := store.Save(context.Background(), strings.NewReader(strings.Repeat("x", 11)), "resume.pdf")
	if !errors.Is(err, ErrFileTooLarge) {
		t.Fatalf("expected ErrFileTooLarge, got %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected no leftover files, found %d", len(entries))
	}
}

func TestSaveReadAllReleaseLifecycle(t *testing.T) {
	dir := t.TempDir()
	store := New(dir, 1<<20)

	handle, err := store.Save(context.Background(), strings.NewReader("resume body"), "John Doe.pdf")
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if handle.Ext != ".pdf" || handle.SizeBytes != int64(len("resume body")) {
		t.Fatalf("handle: %+v", handle)
	}

	data, err := store.ReadAll(handle)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(data) != "resume body" {
		t.Fatalf("payload: got %q", data)
	}

	store.Release(handle)

	if _, err := os.Stat(handle.Path); !os.IsNotExist(err) {
		t.Fatalf("expected file removed, stat err: %v", err)
	}

	// Releasing again must not panic or fail.
	store.Release(handle)
	store.Release(Handle{})
}

func TestSaveGeneratesDistinctPaths(t *testing.T) {
	store := New(t.TempDir(), 1<<20)

	a, err := store.Save(context.Background(), strings.NewReader("a"), "resume.pdf")
	if err != nil {
		t.Fatalf("first Save: %v", err)
	}
	b, err := store.Save(context.Background(), strings.NewReader("b"), "resume.pdf")
	if err != nil {
		t.Fatalf("second Save: %v", err)
	}
	if a.Path == b.Path {
		t.Fatalf("expected distinct paths, both %s", a.Path)
	}
}
