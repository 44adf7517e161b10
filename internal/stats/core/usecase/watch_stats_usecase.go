package usecase

import (
	"context"
	"fmt"

	"github.com/charmbracelet/log"

	"problem-tracker-service/internal/stats/core/domain"
	"problem-tracker-service/internal/stats/core/ports"
)

type SnapshotComputer interface {
	Execute(ctx context.Context) (*domain.Snapshot, error)
}

// WatchStatsUseCase recomputes the snapshot on every store change and hands
// it to a publisher.
type WatchStatsUseCase struct {
	stats  SnapshotComputer
	sub    ports.ChangeSubscriber
	logger *log.Logger
}

func NewWatchStatsUseCase(stats SnapshotComputer, sub ports.ChangeSubscriber, logger *log.Logger) *WatchStatsUseCase {
	return &WatchStatsUseCase{stats: stats, sub: sub, logger: logger}
}

// Run publishes an initial snapshot, then one per change notification, until
// ctx is cancelled or the subscription ends. A failed recompute is logged and
// skipped; the next change retries.
func (uc *WatchStatsUseCase) Run(ctx context.Context, publish func(*domain.Snapshot)) error {
	changes, err := uc.sub.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("subscribe to changes: %w", err)
	}

	uc.refresh(ctx, publish)

	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-changes:
			if !ok {
				if ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("change subscription closed")
			}
			uc.refresh(ctx, publish)
		}
	}
}

func (uc *WatchStatsUseCase) refresh(ctx context.Context, publish func(*domain.Snapshot)) {
	snap, err := uc.stats.Execute(ctx)
	if err != nil {
		uc.logger.Error("recompute stats", "err", err)
		return
	}
	uc.logger.Debug("stats recomputed", "total", snap.Stats.Total, "streak", snap.Stats.Streak)
	publish(snap)
}
