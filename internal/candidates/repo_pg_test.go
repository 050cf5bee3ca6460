package candidates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertByEmailLowercasesEmail(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	now := time.Now().UTC()

	mock.ExpectQuery("INSERT INTO candidates").
		WithArgs(
			sqlmock.AnyArg(), // generated id
			"John Doe",
			"john@example.com",
			"",
			"javascript\nreact",
			"",
			"", "", "",
			"", "", "",
			sqlmock.AnyArg(),
		).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow("cand-1", now, now))

	stored, err := repo.UpsertByEmail(context.Background(), Candidate{
		Name:   "John Doe",
		Email:  "  John@Example.COM ",
		Skills: []string{"javascript", "react"},
	})
	if err != nil {
		t.Fatalf("UpsertByEmail: %v", err)
	}
	if stored.ID != "cand-1" {
		t.Fatalf("id: got %s", stored.ID)
	}
	if stored.Email != "john@example.com" {
		t.Fatalf("email not normalized: %s", stored.Email)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoUpsertByEmailRejectsEmptyEmail(t *testing.T) {
	repo := &PGRepo{}
	if _, err := repo.UpsertByEmail(context.Background(), Candidate{Name: "X"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
