// Package history records answered queries in the background so that
// answering never waits on storage.
package history

import (
	"context"
	"log/slog"
	"time"

	"krishisahay/internal/metrics"
	"krishisahay/internal/models"
)

// Sink persists query records.
type Sink interface {
	InsertQueryRecord(ctx context.Context, rec *models.QueryRecord) error
}

// DefaultWriteTimeout bounds each sink write when no positive timeout is given.
const DefaultWriteTimeout = 5 * time.Second

// Recorder queues records and writes them to a Sink from a single worker.
type Recorder struct {
	sink    Sink
	queue   chan *models.QueryRecord
	timeout time.Duration
	now     func() time.Time
}

// NewRecorder creates a recorder with a queue of the given size. Each write
// to the sink gets its own timeout; a non-positive timeout means
// DefaultWriteTimeout.
func NewRecorder(sink Sink, queueSize int, writeTimeout time.Duration) *Recorder {
	if queueSize < 1 {
		queueSize = 1
	}
	if writeTimeout <= 0 {
		writeTimeout = DefaultWriteTimeout
	}
	return &Recorder{
		sink:    sink,
		queue:   make(chan *models.QueryRecord, queueSize),
		timeout: writeTimeout,
		now:     time.Now,
	}
}

// Record enqueues rec without blocking. It reports false when the queue was
// full and the record was dropped.
func (r *Recorder) Record(rec *models.QueryRecord) bool {
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = r.now()
	}

	select {
	case r.queue <- rec:
		return true
	default:
		metrics.RecordHistoryDropped()
		slog.Warn("history queue full, dropping record",
			"user_id", rec.UserID,
			"category", rec.Category,
		)
		return false
	}
}

// Run writes queued records until ctx is cancelled, then drains whatever is
// already queued and returns. Write failures are logged and counted.
func (r *Recorder) Run(ctx context.Context) error {
	for {
		select {
		case rec := <-r.queue:
			r.write(ctx, rec)
		case <-ctx.Done():
			r.drain(context.WithoutCancel(ctx))
			return nil
		}
	}
}

func (r *Recorder) drain(ctx context.Context) {
	for {
		select {
		case rec := <-r.queue:
			r.write(ctx, rec)
		default:
			return
		}
	}
}

func (r *Recorder) write(ctx context.Context, rec *models.QueryRecord) {
	if ctx.Err() != nil {
		ctx = context.WithoutCancel(ctx)
	}
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	if err := r.sink.InsertQueryRecord(ctx, rec); err != nil {
		metrics.RecordHistoryWrite(metrics.WriteFailed)
		slog.Error("failed to record query",
			"user_id", rec.UserID,
			"category", rec.Category,
			"error", err,
		)
		return
	}
	metrics.RecordHistoryWrite(metrics.WriteOK)
}
