package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"

	"problem-tracker-service/internal/problems/core/domain"
	"problem-tracker-service/internal/problems/core/ports"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, nil
}

// fakeRowScanner implements RowScanner for tests.
type fakeRowScanner struct {
	rows [][]any
	i    int
	err  error
}

func (f *fakeRowScanner) Next() bool {
	return f.i < len(f.rows)
}

func (f *fakeRowScanner) Scan(dest ...any) error {
	row := f.rows[f.i]
	if len(dest) != len(row) {
		return errors.New("dest length mismatch")
	}
	for i := range dest {
		switch d := dest[i].(type) {
		case *string:
			*d = row[i].(string)
		case *time.Time:
			*d = row[i].(time.Time)
		case *pq.StringArray:
			*d = row[i].([]string)
		case *[]byte:
			*d = []byte(row[i].(string))
		default:
			return errors.New("unsupported dest type")
		}
	}
	f.i++
	return nil
}

func (f *fakeRowScanner) Err() error   { return f.err }
func (f *fakeRowScanner) Close() error { return nil }

// fakeDB implements DB interface for tests.
type fakeDB struct {
	ExecFn    func(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryFn   func(ctx context.Context, query string, args ...any) (RowScanner, error)
	queries   []string
	lastArgs  []any
	execCalls int
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execCalls++
	f.queries = append(f.queries, query)
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}

func (f *fakeDB) QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error) {
	f.queries = append(f.queries, query)
	f.lastArgs = args
	return f.QueryFn(ctx, query, args...)
}

var createdAt = time.Date(2025, 4, 1, 9, 30, 0, 0, time.UTC)

func problemRow(id, title, difficulty string, tags []string, comments string) []any {
	return []any{id, title, "https://leetcode.com/problems/" + id, difficulty, tags, "Gaurav", "notes", createdAt, comments}
}

// ------------------------------------------------------------
// INSERT
// ------------------------------------------------------------

func TestProblemRepository_InsertProblem(t *testing.T) {
	db := &fakeDB{}
	repo := NewProblemRepository(db)

	p := &domain.Problem{
		ID:         "p1",
		Title:      "Two Sum",
		Difficulty: domain.Easy,
		Tags:       []string{"Array"},
		SolvedBy:   "Gaurav",
		CreatedAt:  createdAt,
		Comments:   []domain.Comment{},
	}

	if err := repo.InsertProblem(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.queries[0], "INSERT INTO problems") {
		t.Fatalf("unexpected query: %s", db.queries[0])
	}
	if len(db.lastArgs) != 9 {
		t.Fatalf("expected 9 args, got %d", len(db.lastArgs))
	}
	if db.lastArgs[3] != "Easy" {
		t.Errorf("expected difficulty arg Easy, got %v", db.lastArgs[3])
	}
	if db.lastArgs[8].(string) != "[]" {
		t.Errorf("expected empty comments json, got %s", db.lastArgs[8])
	}
}

func TestProblemRepository_InsertProblem_Error(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New("db error")
		},
	}

	err := NewProblemRepository(db).InsertProblem(context.Background(), &domain.Problem{ID: "p1"})
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}

// ------------------------------------------------------------
// QUERY
// ------------------------------------------------------------

func TestProblemRepository_ListProblems(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: [][]any{
				problemRow("p1", "Two Sum", "Easy", []string{"Array"}, `[{"user":"Her Name","text":"nice","createdAt":"2025-04-01T10:00:00Z"}]`),
				problemRow("p2", "LRU Cache", "Medium", nil, `[]`),
			}}, nil
		},
	}

	problems, err := NewProblemRepository(db).ListProblems(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(db.queries[0], "ORDER BY created_at DESC") {
		t.Fatalf("expected newest-first ordering, got query: %s", db.queries[0])
	}
	if len(problems) != 2 {
		t.Fatalf("expected 2 problems, got %d", len(problems))
	}
	if len(problems[0].Comments) != 1 || problems[0].Comments[0].User != "Her Name" {
		t.Errorf("unexpected comments: %+v", problems[0].Comments)
	}
	if problems[1].Tags == nil || len(problems[1].Tags) != 0 {
		t.Errorf("expected empty non-nil tags, got %#v", problems[1].Tags)
	}
	if problems[1].Difficulty != domain.Medium {
		t.Errorf("expected Medium, got %s", problems[1].Difficulty)
	}
}

func TestProblemRepository_ListProblems_BadCommentsJSON(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{rows: [][]any{
				problemRow("p1", "Two Sum", "Easy", nil, `{not json`),
			}}, nil
		},
	}

	if _, err := NewProblemRepository(db).ListProblems(context.Background()); err == nil {
		t.Fatalf("expected error, got nil")
	}
}

func TestProblemRepository_GetProblem_NotFound(t *testing.T) {
	db := &fakeDB{
		QueryFn: func(ctx context.Context, query string, args ...any) (RowScanner, error) {
			return &fakeRowScanner{}, nil
		},
	}

	_, err := NewProblemRepository(db).GetProblem(context.Background(), "missing")
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if db.lastArgs[0] != "missing" {
		t.Errorf("expected id arg, got %v", db.lastArgs)
	}
}

// ------------------------------------------------------------
// COMMENTS
// ------------------------------------------------------------

func TestProblemRepository_AppendComment(t *testing.T) {
	db := &fakeDB{}
	c := domain.Comment{User: "Gaurav", Text: "again tomorrow", CreatedAt: createdAt}

	if err := NewProblemRepository(db).AppendComment(context.Background(), "p1", c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var payload []map[string]any
	if err := json.Unmarshal([]byte(db.lastArgs[1].(string)), &payload); err != nil {
		t.Fatalf("invalid comment payload: %v", err)
	}
	if len(payload) != 1 || payload[0]["text"] != "again tomorrow" {
		t.Errorf("unexpected payload: %v", payload)
	}
}

func TestProblemRepository_AppendComment_NotFound(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return &fakeResult{rowsAffected: 0}, nil
		},
	}

	err := NewProblemRepository(db).AppendComment(context.Background(), "nope", domain.Comment{User: "a", Text: "b"})
	if !errors.Is(err, ports.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

// ------------------------------------------------------------
// SCHEMA
// ------------------------------------------------------------

func TestEnsureSchema(t *testing.T) {
	db := &fakeDB{}

	if err := EnsureSchema(context.Background(), db); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if db.execCalls != len(schemaStatements) {
		t.Fatalf("expected %d statements, got %d", len(schemaStatements), db.execCalls)
	}
	all := strings.Join(db.queries, "\n")
	if !strings.Contains(all, "pg_notify('"+ChangesChannel+"'") {
		t.Errorf("expected trigger to notify %s", ChangesChannel)
	}
}

func TestEnsureSchema_StopsOnError(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New("permission denied")
		},
	}

	if err := EnsureSchema(context.Background(), db); err == nil {
		t.Fatalf("expected error, got nil")
	}
	if db.execCalls != 1 {
		t.Errorf("expected to stop after first failure, got %d calls", db.execCalls)
	}
}
