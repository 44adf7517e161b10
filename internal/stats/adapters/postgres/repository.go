package postgres

import (
	"context"
	"fmt"
	"time"

	"problem-tracker-service/internal/stats/core/domain"
	"problem-tracker-service/internal/stats/core/ports"

	"github.com/lib/pq"
)

type ActivityRepository struct {
	db DB
}

func NewActivityRepository(db DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

var _ ports.ActivitySnapshotReader = (*ActivityRepository)(nil)

const listActivitySQL = `
SELECT
    id,
    created_at,
    solved_by,
    difficulty,
    tags
FROM problems`

func (r *ActivityRepository) ListActivity(ctx context.Context) ([]domain.ActivityRecord, error) {
	rows, err := r.db.QueryContext(ctx, listActivitySQL)
	if err != nil {
		return nil, fmt.Errorf("query activity: %w", err)
	}
	defer rows.Close()

	var records []domain.ActivityRecord
	for rows.Next() {
		var (
			id, author, difficulty string
			createdAt              time.Time
			tags                   pq.StringArray
		)
		if err := rows.Scan(&id, &createdAt, &author, &difficulty, &tags); err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}

		records = append(records, domain.ActivityRecord{
			ID:         id,
			CreatedAt:  createdAt,
			Author:     author,
			Difficulty: domain.Difficulty(difficulty),
			Tags:       []string(tags),
		})
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}
