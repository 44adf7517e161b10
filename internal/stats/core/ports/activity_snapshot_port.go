package ports

import (
	"context"

	"problem-tracker-service/internal/stats/core/domain"
)

type ActivitySnapshotReader interface {
	// ListActivity returns every stored record. Order is not significant.
	ListActivity(ctx context.Context) ([]domain.ActivityRecord, error)
}

// ChangeSubscriber delivers a signal whenever the underlying store changes.
// The channel is closed once ctx is done or the subscription fails for good;
// cancelling ctx is the unsubscribe.
type ChangeSubscriber interface {
	Subscribe(ctx context.Context) (<-chan struct{}, error)
}
