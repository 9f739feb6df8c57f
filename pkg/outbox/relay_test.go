package outbox

import (
	"context"
	"sync"
	"testing"
	"time"
)

type memOutboxStore struct {
	mu      sync.Mutex
	pending []Event
	sent    []int64
	failed  map[int64]string
}

func (s *memOutboxStore) LockBatch(_ context.Context, _ string, _ int, _ time.Duration) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	batch := s.pending
	s.pending = nil
	return batch, nil
}

func (s *memOutboxStore) MarkSent(_ context.Context, ids []int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, ids...)
	return nil
}

func (s *memOutboxStore) MarkFailed(_ context.Context, id int64, errMsg string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failed == nil {
		s.failed = map[int64]string{}
	}
	s.failed[id] = errMsg
	return nil
}

func (s *memOutboxStore) ExtendLease(_ context.Context, _ string, _ []int64, _ time.Duration) error {
	return nil
}

func TestRelay_PublishesPendingBatch(t *testing.T) {
	store := &memOutboxStore{pending: []Event{
		{ID: 1, AggregateID: "book_1", Type: "StockReserved"},
		{ID: 2, AggregateID: "book_2", Type: "StockAdjusted"},
	}}
	producer := &captureProducer{}
	relay := NewRelay(discardLogger(), store, NewDispatcher(discardLogger(), producer, "inventory.events"), "test-relay")

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := relay.Run(ctx); err != nil {
		t.Fatalf("relay: %v", err)
	}

	store.mu.Lock()
	defer store.mu.Unlock()
	if len(store.sent) != 2 {
		t.Fatalf("marked %d events sent, want 2", len(store.sent))
	}
	if len(producer.msgs) != 2 {
		t.Errorf("published %d messages, want 2", len(producer.msgs))
	}
}
