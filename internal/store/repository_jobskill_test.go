package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jobdori/profile-api/internal/logger"
)

func newTestJobSkillRepo(t *testing.T) (*jobSkillRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &jobSkillRepository{
		db:     &DB{DB: db, logger: l, errorClassificator: NewPostgresErrorClassifier()},
		logger: l,
	}
	return repo, mock, db
}

func TestFindJobSkillsByNames_Success(t *testing.T) {
	repo, mock, db := newTestJobSkillRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"code", "name"}).
		AddRow(3, "Go").
		AddRow(7, "SQL")

	mock.ExpectQuery("SELECT (.+) FROM job_skills").
		WithArgs("Go", "SQL").
		WillReturnRows(rows)

	found, err := repo.FindJobSkillsByNames(ctx, []string{"Go", "SQL"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 2 {
		t.Fatalf("expected 2 job skills, got %d", len(found))
	}
	if found[0].Code != 3 || found[0].Name != "Go" {
		t.Errorf("unexpected first job skill: %+v", found[0])
	}
}

func TestFindJobSkillsByNames_UnknownNamesAbsent(t *testing.T) {
	repo, mock, db := newTestJobSkillRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"code", "name"}).
		AddRow(3, "Go")

	mock.ExpectQuery("SELECT (.+) FROM job_skills").
		WithArgs("Go", "Cobol").
		WillReturnRows(rows)

	found, err := repo.FindJobSkillsByNames(ctx, []string{"Go", "Cobol"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// unknown names are simply missing; cardinality check is the caller's job
	if len(found) != 1 {
		t.Fatalf("expected 1 job skill, got %d", len(found))
	}
}

func TestFindJobSkillsByNames_EmptyInput(t *testing.T) {
	repo, _, db := newTestJobSkillRepo(t)
	defer db.Close()

	found, err := repo.FindJobSkillsByNames(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found != nil {
		t.Errorf("expected nil result for empty input, got %v", found)
	}
}

func TestFindJobSkillsByNames_QueryError(t *testing.T) {
	repo, mock, db := newTestJobSkillRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT (.+) FROM job_skills").
		WillReturnError(errors.New("db network error"))

	_, err := repo.FindJobSkillsByNames(context.Background(), []string{"Go"})
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}

func TestGetAllJobSkills_Success(t *testing.T) {
	repo, mock, db := newTestJobSkillRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"code", "name"}).
		AddRow(1, "Java").
		AddRow(2, "Kotlin").
		AddRow(3, "Go")

	mock.ExpectQuery("SELECT (.+) FROM job_skills").
		WillReturnRows(rows)

	found, err := repo.GetAllJobSkills(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(found) != 3 {
		t.Fatalf("expected 3 job skills, got %d", len(found))
	}
	if found[2].Name != "Go" {
		t.Errorf("expected Go as third entry, got %q", found[2].Name)
	}
}

func TestGetAllJobSkills_ScanError(t *testing.T) {
	repo, mock, db := newTestJobSkillRepo(t)
	defer db.Close()

	rows := sqlmock.
		NewRows([]string{"code"}). // wrong shape → scan error
		AddRow(1)

	mock.ExpectQuery("SELECT (.+) FROM job_skills").
		WillReturnRows(rows)

	_, err := repo.GetAllJobSkills(context.Background())
	if !errors.Is(err, ErrScanningRows) {
		t.Fatalf("expected ErrScanningRows, got %v", err)
	}
}
