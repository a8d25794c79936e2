package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

type fakeStore struct {
	mu      sync.Mutex
	cutoffs []time.Time
	err     error
}

func (f *fakeStore) DeleteQueryRecordsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return 1, f.err
}

func (f *fakeStore) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}

func TestHistoryPruner_PrunesOnStart(t *testing.T) {
	store := &fakeStore{}
	p := NewHistoryPruner(store, time.Hour, 24*time.Hour)
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return now }

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		p.Start(ctx)
		close(done)
	}()

	deadline := time.After(time.Second)
	for store.calls() == 0 {
		select {
		case <-deadline:
			t.Fatal("pruner did not run on start")
		case <-time.After(5 * time.Millisecond):
		}
	}
	cancel()
	<-done

	want := now.Add(-24 * time.Hour)
	if got := store.cutoffs[0]; !got.Equal(want) {
		t.Errorf("cutoff = %v, want %v", got, want)
	}
}

func TestHistoryPruner_Disabled(t *testing.T) {
	store := &fakeStore{}
	p := NewHistoryPruner(store, time.Hour, 0)

	// Returns immediately without touching the store.
	p.Start(context.Background())

	if store.calls() != 0 {
		t.Errorf("disabled pruner made %d calls, want 0", store.calls())
	}
}

func TestHistoryPruner_ErrorIsSwallowed(t *testing.T) {
	store := &fakeStore{err: errors.New("db down")}
	p := NewHistoryPruner(store, time.Hour, time.Hour)

	p.prune(context.Background())

	if store.calls() != 1 {
		t.Errorf("calls = %d, want 1", store.calls())
	}
}
