package history

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"krishisahay/internal/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakeSink struct {
	mu      sync.Mutex
	records []*models.QueryRecord
	err     error
	block   chan struct{}
}

func (f *fakeSink) InsertQueryRecord(ctx context.Context, rec *models.QueryRecord) error {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.records = append(f.records, rec)
	return nil
}

func (f *fakeSink) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.records)
}

func record(query string) *models.QueryRecord {
	return &models.QueryRecord{
		UserID:   uuid.New(),
		Category: models.CategoryCrops,
		Query:    query,
		Answer:   "answer",
		Intent:   "grow",
	}
}

func TestRecorder_WritesRecords(t *testing.T) {
	sink := &fakeSink{}
	r := NewRecorder(sink, 8, time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error)
	go func() { done <- r.Run(ctx) }()

	require.True(t, r.Record(record("how to grow rice")))
	require.True(t, r.Record(record("how to grow wheat")))

	assert.Eventually(t, func() bool { return sink.len() == 2 }, time.Second, 5*time.Millisecond)

	cancel()
	require.NoError(t, <-done)
}

func TestRecorder_SetsCreatedAt(t *testing.T) {
	r := NewRecorder(&fakeSink{}, 1, time.Second)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	r.now = func() time.Time { return fixed }

	rec := record("q")
	r.Record(rec)
	assert.Equal(t, fixed, rec.CreatedAt)

	given := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	rec = record("q")
	rec.CreatedAt = given
	r.Record(rec) // queue full; CreatedAt still untouched
	assert.Equal(t, given, rec.CreatedAt)
}

func TestRecorder_DropsWhenFull(t *testing.T) {
	r := NewRecorder(&fakeSink{}, 1, time.Second)

	assert.True(t, r.Record(record("first")))
	assert.False(t, r.Record(record("second")))
}

func TestRecorder_DrainsOnCancel(t *testing.T) {
	sink := &fakeSink{}
	r := NewRecorder(sink, 4, time.Second)

	for _, q := range []string{"a", "b", "c"} {
		require.True(t, r.Record(record(q)))
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.NoError(t, r.Run(ctx))

	assert.Equal(t, 3, sink.len())
}

func TestRecorder_SwallowsSinkErrors(t *testing.T) {
	sink := &fakeSink{err: errors.New("connection refused")}
	r := NewRecorder(sink, 2, time.Second)

	r.Record(record("a"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, r.Run(ctx))
	assert.Equal(t, 0, sink.len())
}

func TestRecorder_WriteTimeout(t *testing.T) {
	sink := &fakeSink{block: make(chan struct{})}
	r := NewRecorder(sink, 1, 20*time.Millisecond)

	r.Record(record("slow"))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	require.NoError(t, r.Run(ctx))
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, 0, sink.len())
}

func TestRecorder_NonPositiveTimeoutStillWrites(t *testing.T) {
	for _, timeout := range []time.Duration{0, -time.Second} {
		sink := &fakeSink{}
		r := NewRecorder(sink, 4, timeout)
		assert.Equal(t, DefaultWriteTimeout, r.timeout)

		require.True(t, r.Record(record("how to grow rice")))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		require.NoError(t, r.Run(ctx))
		assert.Equal(t, 1, sink.len(), "timeout %v", timeout)
	}
}
