package repository

import (
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/DriesFaems/thesis--evaluation/internal/common"
	"github.com/DriesFaems/thesis--evaluation/internal/session"
)

// testRepo opens an in-memory SQLite database. A single connection keeps
// the :memory: database alive across queries.
func testRepo(t *testing.T) EvaluationRepository {
	t.Helper()
	cfg := common.DatabaseConfig{
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
		DialTimeout:     time.Second,
	}
	db, err := Open(context.Background(), cfg, slog.Default())
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewEvaluationRepository(db, false)
}

func TestEvaluationCRUD(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	ev := session.Defaults()
	ev.StudentName = "Max Mustermann"
	ev.StudentID = "12345678"
	ev.ThesisTitle = "A Study of Something"
	ev.ThesisPoints = 82

	if err := repo.Create(ctx, ev); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if ev.ID == uuid.Nil {
		t.Fatal("Create did not assign an ID")
	}

	got, err := repo.GetByID(ctx, ev.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.StudentName != "Max Mustermann" || got.ThesisPoints != 82 {
		t.Errorf("loaded evaluation mismatch: %+v", got)
	}
	if got.FirstSupervisor != ev.FirstSupervisor {
		t.Errorf("first_supervisor = %q, want %q", got.FirstSupervisor, ev.FirstSupervisor)
	}

	got.DefensePoints = 70
	got.Criteria[0].GradeLevel = "Good"
	if err := repo.Update(ctx, got); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	again, err := repo.GetByID(ctx, ev.ID)
	if err != nil {
		t.Fatalf("GetByID after update failed: %v", err)
	}
	if again.DefensePoints != 70 || again.Criteria[0].GradeLevel != "Good" {
		t.Errorf("update not persisted: %+v", again)
	}

	summaries, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("List returned %d rows, want 1", len(summaries))
	}
	if summaries[0].ID != ev.ID || summaries[0].DefensePoints != 70 {
		t.Errorf("summary mismatch: %+v", summaries[0])
	}

	if err := repo.Delete(ctx, ev.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := repo.GetByID(ctx, ev.ID); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("GetByID after delete = %v, want ErrNotFound", err)
	}
}

func TestEvaluationNotFound(t *testing.T) {
	repo := testRepo(t)
	ctx := context.Background()

	id := uuid.New()
	if _, err := repo.GetByID(ctx, id); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("GetByID = %v, want ErrNotFound", err)
	}
	if err := repo.Delete(ctx, id); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Delete = %v, want ErrNotFound", err)
	}
	ev := session.Defaults()
	ev.ID = id
	if err := repo.Update(ctx, ev); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("Update = %v, want ErrNotFound", err)
	}
}

func TestRebind(t *testing.T) {
	r := &evaluationRepo{pg: true}
	got := r.rebind("INSERT INTO t (a, b) VALUES (?, ?)")
	want := "INSERT INTO t (a, b) VALUES ($1, $2)"
	if got != want {
		t.Errorf("rebind = %q, want %q", got, want)
	}

	r = &evaluationRepo{pg: false}
	q := "SELECT * FROM t WHERE a = ?"
	if got := r.rebind(q); got != q {
		t.Errorf("sqlite rebind changed query: %q", got)
	}
}
