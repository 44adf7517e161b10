package usecase

import (
	"context"
	"fmt"
	"time"

	"problem-tracker-service/internal/stats/core/domain"
	"problem-tracker-service/internal/stats/core/engine"
	"problem-tracker-service/internal/stats/core/ports"
)

// Clock returns the reference "now" the engine computes against.
type Clock func() time.Time

// LocalClock returns a Clock reading the wall clock in loc.
func LocalClock(loc *time.Location) Clock {
	return func() time.Time {
		return time.Now().In(loc)
	}
}

type GetStatsUseCase struct {
	reader  ports.ActivitySnapshotReader
	now     Clock
	authors []string
}

// NewGetStatsUseCase builds the stats use case. Every name in authors is
// present in ByAuthor, with 0 when it has no records yet.
func NewGetStatsUseCase(reader ports.ActivitySnapshotReader, now Clock, authors ...string) *GetStatsUseCase {
	return &GetStatsUseCase{reader: reader, now: now, authors: authors}
}

func (uc *GetStatsUseCase) Execute(ctx context.Context) (*domain.Snapshot, error) {
	records, err := uc.reader.ListActivity(ctx)
	if err != nil {
		return nil, fmt.Errorf("read activity snapshot: %w", err)
	}

	today := uc.now()

	stats, err := engine.ComputeAggregate(records, today)
	if err != nil {
		return nil, err
	}

	for _, name := range uc.authors {
		if _, ok := stats.ByAuthor[name]; !ok {
			stats.ByAuthor[name] = 0
		}
	}

	return &domain.Snapshot{
		Stats:       stats,
		TopTags:     engine.TopTags(stats, 0),
		Leader:      engine.Leader(stats, uc.authors),
		GeneratedAt: today,
	}, nil
}
