package applications

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoCreateFlattensSkills(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	app := Application{
		ID:            "app-1",
		PositionID:    "pos-1",
		CandidateID:   "cand-1",
		CandidateName: "John Doe",
		Email:         "john@example.com",
		Phone:         "555-123-4567",
		Skills:        []string{"javascript", "react"},
		Experience:    "5 years",
		MatchScore:    75,
		SubmittedAt:   time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO applications").
		WithArgs(
			app.ID,
			app.PositionID,
			app.CandidateID,
			app.CandidateName,
			app.Email,
			app.Phone,
			"javascript\nreact",
			app.Experience,
			app.MatchScore,
			"",
			StatusPending,
			app.SubmittedAt,
		).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Create(context.Background(), app); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoListByPositionRestoresSkills(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	repo := &PGRepo{DB: db}
	submitted := time.Now().UTC()

	rows := sqlmock.NewRows([]string{
		"id", "position_id", "candidate_id", "candidate_name", "email", "phone",
		"skills", "experience", "match_score", "extraction_note", "status", "submitted_at",
	}).AddRow(
		"app-1", "pos-1", "cand-1", "John Doe", "john@example.com", "",
		"javascript\nreact", "5 years", 75, "", StatusPending, submitted,
	)

	mock.ExpectQuery("SELECT id, position_id").
		WithArgs("pos-1").
		WillReturnRows(rows)

	apps, err := repo.ListByPosition(context.Background(), "pos-1")
	if err != nil {
		t.Fatalf("ListByPosition: %v", err)
	}
	if len(apps) != 1 {
		t.Fatalf("expected 1 application, got %d", len(apps))
	}
	if len(apps[0].Skills) != 2 || apps[0].Skills[0] != "javascript" {
		t.Fatalf("skills not restored: %v", apps[0].Skills)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
