package jobs

import (
	"context"
	"log"
	"log/slog"
	"time"
)

// HistoryStore deletes old query records.
type HistoryStore interface {
	DeleteQueryRecordsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// HistoryPruner periodically removes query history older than the retention
// period.
type HistoryPruner struct {
	store     HistoryStore
	interval  time.Duration
	retention time.Duration
	now       func() time.Time
}

// NewHistoryPruner creates a new history pruner.
func NewHistoryPruner(store HistoryStore, interval, retention time.Duration) *HistoryPruner {
	return &HistoryPruner{
		store:     store,
		interval:  interval,
		retention: retention,
		now:       time.Now,
	}
}

// Start runs the prune loop until ctx is cancelled. A zero retention
// disables pruning.
func (p *HistoryPruner) Start(ctx context.Context) {
	if p.retention <= 0 || p.interval <= 0 {
		log.Println("History pruner disabled")
		return
	}

	log.Printf("History pruner started (interval: %v, retention: %v)", p.interval, p.retention)

	// Run immediately on start
	p.prune(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("History pruner stopped")
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

func (p *HistoryPruner) prune(ctx context.Context) {
	cutoff := p.now().Add(-p.retention)
	n, err := p.store.DeleteQueryRecordsBefore(ctx, cutoff)
	if err != nil {
		slog.Error("history pruner: failed to delete old records", "cutoff", cutoff, "error", err)
		return
	}
	if n > 0 {
		slog.Info("history pruner: deleted old records", "count", n, "cutoff", cutoff)
	}
}
