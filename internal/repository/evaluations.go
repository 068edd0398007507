package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/DriesFaems/thesis--evaluation/internal/common"
	"github.com/DriesFaems/thesis--evaluation/internal/entity"
	"github.com/DriesFaems/thesis--evaluation/internal/session"
)

// EvaluationSummary is the listing row: the indexed columns without the
// full session payload.
type EvaluationSummary struct {
	ID            uuid.UUID `json:"id"`
	StudentName   string    `json:"student_name"`
	StudentID     string    `json:"student_id"`
	ThesisTitle   string    `json:"thesis_title"`
	ThesisPoints  float64   `json:"thesis_points"`
	DefensePoints float64   `json:"defense_points"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// EvaluationRepository persists evaluations. The full editable state is
// stored as the session JSON payload; a few scalar columns are duplicated
// for listing and lookup.
type EvaluationRepository interface {
	Create(ctx context.Context, ev *entity.Evaluation) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Evaluation, error)
	List(ctx context.Context) ([]EvaluationSummary, error)
	Update(ctx context.Context, ev *entity.Evaluation) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type evaluationRepo struct {
	db *sql.DB
	pg bool
}

// NewEvaluationRepository returns a repository backed by db. Set pg when the
// underlying driver uses $N placeholders (pgx); SQLite uses ?.
func NewEvaluationRepository(db *sql.DB, pg bool) EvaluationRepository {
	return &evaluationRepo{db: db, pg: pg}
}

// rebind rewrites ? placeholders to $N for the Postgres driver.
func (r *evaluationRepo) rebind(query string) string {
	if !r.pg {
		return query
	}
	var b strings.Builder
	n := 0
	for _, c := range query {
		if c == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(c)
	}
	return b.String()
}

func (r *evaluationRepo) Create(ctx context.Context, ev *entity.Evaluation) error {
	if ev.ID == uuid.Nil {
		ev.ID = uuid.New()
	}
	now := time.Now().UTC()
	ev.CreatedAt = now
	ev.UpdatedAt = now

	payload, err := session.Export(ev)
	if err != nil {
		return common.WrapError(err, "encode evaluation")
	}
	_, err = r.db.ExecContext(ctx, r.rebind(
		`INSERT INTO evaluations
		 (id, student_name, student_id, thesis_title, thesis_points, defense_points, payload, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		ev.ID.String(), ev.StudentName, ev.StudentID, ev.ThesisTitle,
		ev.ThesisPoints, ev.DefensePoints, string(payload),
		now.Format(time.RFC3339Nano), now.Format(time.RFC3339Nano),
	)
	if err != nil {
		return common.WrapError(err, "insert evaluation")
	}
	return nil
}

func (r *evaluationRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Evaluation, error) {
	row := r.db.QueryRowContext(ctx, r.rebind(
		`SELECT payload, created_at, updated_at FROM evaluations WHERE id = ?`),
		id.String(),
	)
	var payload, createdAt, updatedAt string
	if err := row.Scan(&payload, &createdAt, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, common.WrapError(err, "load evaluation")
	}
	ev, err := session.Load([]byte(payload))
	if err != nil {
		return nil, common.WrapError(err, "decode evaluation")
	}
	ev.ID = id
	ev.CreatedAt = parseTime(createdAt)
	ev.UpdatedAt = parseTime(updatedAt)
	return ev, nil
}

func (r *evaluationRepo) List(ctx context.Context) ([]EvaluationSummary, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, student_name, student_id, thesis_title, thesis_points, defense_points, created_at, updated_at
		 FROM evaluations ORDER BY updated_at DESC`)
	if err != nil {
		return nil, common.WrapError(err, "list evaluations")
	}
	defer rows.Close()

	var out []EvaluationSummary
	for rows.Next() {
		var (
			s                    EvaluationSummary
			id, created, updated string
		)
		if err := rows.Scan(&id, &s.StudentName, &s.StudentID, &s.ThesisTitle,
			&s.ThesisPoints, &s.DefensePoints, &created, &updated); err != nil {
			return nil, common.WrapError(err, "scan evaluation")
		}
		s.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, common.WrapError(err, "parse evaluation id")
		}
		s.CreatedAt = parseTime(created)
		s.UpdatedAt = parseTime(updated)
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *evaluationRepo) Update(ctx context.Context, ev *entity.Evaluation) error {
	now := time.Now().UTC()
	ev.UpdatedAt = now

	payload, err := session.Export(ev)
	if err != nil {
		return common.WrapError(err, "encode evaluation")
	}
	res, err := r.db.ExecContext(ctx, r.rebind(
		`UPDATE evaluations
		 SET student_name = ?, student_id = ?, thesis_title = ?,
		     thesis_points = ?, defense_points = ?, payload = ?, updated_at = ?
		 WHERE id = ?`),
		ev.StudentName, ev.StudentID, ev.ThesisTitle,
		ev.ThesisPoints, ev.DefensePoints, string(payload),
		now.Format(time.RFC3339Nano), ev.ID.String(),
	)
	if err != nil {
		return common.WrapError(err, "update evaluation")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func (r *evaluationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, r.rebind(
		`DELETE FROM evaluations WHERE id = ?`), id.String())
	if err != nil {
		return common.WrapError(err, "delete evaluation")
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return common.ErrNotFound
	}
	return nil
}

func parseTime(s string) time.Time {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}
	}
	return t
}
