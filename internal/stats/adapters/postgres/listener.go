package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/lib/pq"

	"problem-tracker-service/internal/stats/core/ports"
)

// NotificationSource is the subset of *pq.Listener the change listener uses.
type NotificationSource interface {
	Listen(channel string) error
	Unlisten(channel string) error
	NotificationChannel() <-chan *pq.Notification
	Ping() error
	Close() error
}

// ChangeListener turns Postgres NOTIFY messages on one channel into change
// signals. It supports a single active subscription.
type ChangeListener struct {
	src       NotificationSource
	channel   string
	pingEvery time.Duration
	logger    *log.Logger
}

var _ ports.ChangeSubscriber = (*ChangeListener)(nil)

// NewPQListener opens a reconnecting pq.Listener for dsn.
func NewPQListener(dsn string, logger *log.Logger) *pq.Listener {
	return pq.NewListener(dsn, 5*time.Second, time.Minute, func(ev pq.ListenerEventType, err error) {
		switch ev {
		case pq.ListenerEventConnected:
			logger.Info("change listener connected")
		case pq.ListenerEventDisconnected:
			logger.Warn("change listener disconnected", "err", err)
		case pq.ListenerEventReconnected:
			logger.Info("change listener reconnected")
		case pq.ListenerEventConnectionAttemptFailed:
			logger.Warn("change listener connect attempt failed", "err", err)
		}
	})
}

func NewChangeListener(src NotificationSource, channel string, logger *log.Logger) *ChangeListener {
	return &ChangeListener{
		src:       src,
		channel:   channel,
		pingEvery: 90 * time.Second,
		logger:    logger,
	}
}

// Subscribe starts listening. The returned channel has capacity 1, so a burst
// of notifications collapses into a single pending signal.
func (l *ChangeListener) Subscribe(ctx context.Context) (<-chan struct{}, error) {
	if err := l.src.Listen(l.channel); err != nil {
		return nil, fmt.Errorf("listen %s: %w", l.channel, err)
	}

	out := make(chan struct{}, 1)
	go l.forward(ctx, out)
	return out, nil
}

func (l *ChangeListener) forward(ctx context.Context, out chan<- struct{}) {
	defer close(out)

	ticker := time.NewTicker(l.pingEvery)
	defer ticker.Stop()

	notifications := l.src.NotificationChannel()
	for {
		select {
		case <-ctx.Done():
			if err := l.src.Unlisten(l.channel); err != nil {
				l.logger.Debug("unlisten", "channel", l.channel, "err", err)
			}
			return
		case n, ok := <-notifications:
			if !ok {
				return
			}
			// nil is sent after a reconnect: changes may have been missed.
			if n != nil {
				l.logger.Debug("store changed", "channel", n.Channel, "payload", n.Extra)
			}
			select {
			case out <- struct{}{}:
			default:
			}
		case <-ticker.C:
			if err := l.src.Ping(); err != nil {
				l.logger.Warn("change listener ping", "err", err)
			}
		}
	}
}

// Close releases the underlying connection.
func (l *ChangeListener) Close() error {
	return l.src.Close()
}
