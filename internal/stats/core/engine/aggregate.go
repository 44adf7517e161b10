package engine

import (
	"errors"
	"fmt"
	"time"

	"problem-tracker-service/internal/stats/core/domain"
)

var ErrInvalidRecord = errors.New("invalid activity record")

// ComputeAggregate tallies records in a single pass. It rejects the whole
// snapshot if any record lacks a timestamp or carries a difficulty outside
// Easy/Medium/Hard, rather than returning counts that silently miss it.
func ComputeAggregate(records []domain.ActivityRecord, today time.Time) (domain.AggregateStats, error) {
	for _, r := range records {
		if err := validateRecord(r); err != nil {
			return domain.AggregateStats{}, err
		}
	}

	loc := today.Location()
	todayDay := dayOf(today, loc)

	stats := domain.AggregateStats{
		Total:        len(records),
		ByAuthor:     make(map[string]int),
		ByDifficulty: make(map[domain.Difficulty]int, len(domain.Difficulties)),
		ByTag:        make(map[string]int),
	}
	for _, d := range domain.Difficulties {
		stats.ByDifficulty[d] = 0
	}

	for _, r := range records {
		stats.ByAuthor[r.Author]++
		stats.ByDifficulty[r.Difficulty]++
		for _, tag := range r.Tags {
			stats.ByTag[tag]++
		}
		if dayOf(r.CreatedAt, loc) == todayDay {
			stats.SolvedToday++
		}
	}

	stats.Streak = ComputeStreak(records, today)

	return stats, nil
}

func validateRecord(r domain.ActivityRecord) error {
	if r.CreatedAt.IsZero() {
		return fmt.Errorf("%w: record %q has no created_at", ErrInvalidRecord, r.ID)
	}
	if !r.Difficulty.Valid() {
		return fmt.Errorf("%w: record %q has difficulty %q", ErrInvalidRecord, r.ID, r.Difficulty)
	}
	return nil
}
