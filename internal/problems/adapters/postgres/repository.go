package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"problem-tracker-service/internal/problems/core/domain"
	"problem-tracker-service/internal/problems/core/ports"

	"github.com/lib/pq"
)

type ProblemRepository struct {
	db DB
}

func NewProblemRepository(db DB) *ProblemRepository {
	return &ProblemRepository{db: db}
}

var _ ports.ProblemRepositoryPort = (*ProblemRepository)(nil)

// commentRow is the JSONB shape of one comment.
type commentRow struct {
	User      string    `json:"user"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

const insertProblemSQL = `
INSERT INTO problems (
    id,
    title,
    link,
    difficulty,
    tags,
    solved_by,
    notes,
    created_at,
    comments
) VALUES (
    $1, $2, $3, $4, $5,
    $6, $7, $8, $9
)`

const selectProblemSQL = `
SELECT
    id,
    title,
    link,
    difficulty,
    tags,
    solved_by,
    notes,
    created_at,
    comments
FROM problems`

const appendCommentSQL = `
UPDATE problems
SET comments = comments || $2::jsonb
WHERE id = $1`

func (r *ProblemRepository) InsertProblem(ctx context.Context, p *domain.Problem) error {
	commentsJSON, err := marshalComments(p.Comments)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, insertProblemSQL,
		p.ID,
		p.Title,
		p.Link,
		string(p.Difficulty),
		pq.Array(p.Tags),
		p.SolvedBy,
		p.Notes,
		p.CreatedAt,
		string(commentsJSON),
	)
	if err != nil {
		return fmt.Errorf("insert problem: %w", err)
	}
	return nil
}

func (r *ProblemRepository) ListProblems(ctx context.Context) ([]domain.Problem, error) {
	return r.query(ctx, selectProblemSQL+"\nORDER BY created_at DESC")
}

func (r *ProblemRepository) GetProblem(ctx context.Context, id string) (*domain.Problem, error) {
	problems, err := r.query(ctx, selectProblemSQL+"\nWHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	if len(problems) == 0 {
		return nil, ports.ErrNotFound
	}
	return &problems[0], nil
}

func (r *ProblemRepository) AppendComment(ctx context.Context, id string, c domain.Comment) error {
	payload, err := marshalComments([]domain.Comment{c})
	if err != nil {
		return err
	}

	res, err := r.db.ExecContext(ctx, appendCommentSQL, id, string(payload))
	if err != nil {
		return fmt.Errorf("append comment: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return ports.ErrNotFound
	}
	return nil
}

func (r *ProblemRepository) query(ctx context.Context, query string, args ...any) ([]domain.Problem, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query problems: %w", err)
	}
	defer rows.Close()

	var problems []domain.Problem
	for rows.Next() {
		var (
			p            domain.Problem
			difficulty   string
			tags         pq.StringArray
			commentsJSON []byte
		)
		if err := rows.Scan(
			&p.ID,
			&p.Title,
			&p.Link,
			&difficulty,
			&tags,
			&p.SolvedBy,
			&p.Notes,
			&p.CreatedAt,
			&commentsJSON,
		); err != nil {
			return nil, fmt.Errorf("scan problem: %w", err)
		}

		p.Difficulty = domain.Difficulty(difficulty)
		p.Tags = []string(tags)
		if p.Tags == nil {
			p.Tags = []string{}
		}
		p.Comments, err = unmarshalComments(commentsJSON)
		if err != nil {
			return nil, fmt.Errorf("decode comments of %s: %w", p.ID, err)
		}

		problems = append(problems, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return problems, nil
}

func marshalComments(comments []domain.Comment) ([]byte, error) {
	out := make([]commentRow, 0, len(comments))
	for _, c := range comments {
		out = append(out, commentRow{User: c.User, Text: c.Text, CreatedAt: c.CreatedAt})
	}
	return json.Marshal(out)
}

func unmarshalComments(data []byte) ([]domain.Comment, error) {
	comments := []domain.Comment{}
	if len(data) == 0 {
		return comments, nil
	}

	var rows []commentRow
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, err
	}
	for _, row := range rows {
		comments = append(comments, domain.Comment{User: row.User, Text: row.Text, CreatedAt: row.CreatedAt})
	}
	return comments, nil
}
