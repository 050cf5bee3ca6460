package candidates

import (
	"context"
	"errors"
	"reflect"
	"testing"
)

func TestMemoryRepoUpsertKeepsIdentityAcrossResubmission(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first, err := repo.UpsertByEmail(ctx, Candidate{Name: "John", Email: "john@example.com"})
	if err != nil {
		t.Fatalf("first upsert: %v", err)
	}

	second, err := repo.UpsertByEmail(ctx, Candidate{
		Name:   "John Updated",
		Email:  "JOHN@example.com",
		Skills: []string{"go"},
	})
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	if first.ID != second.ID {
		t.Fatalf("expected stable id, got %s then %s", first.ID, second.ID)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("created_at changed on update")
	}

	got, err := repo.GetByID(ctx, first.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "John Updated" || len(got.Skills) != 1 {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestMemoryRepoGetByIDNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSplitSkillsDropsEmptySegments(t *testing.T) {
	got := SplitSkills("javascript\n\n react \n")
	if !reflect.DeepEqual(got, []string{"javascript", "react"}) {
		t.Fatalf("SplitSkills: got %v", got)
	}
	if got := SplitSkills("  "); len(got) != 0 || got == nil {
		t.Fatalf("expected empty non-nil slice, got %v", got)
	}
}
