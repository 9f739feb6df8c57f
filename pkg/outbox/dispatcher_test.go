package outbox

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/segmentio/kafka-go"
)

type captureProducer struct {
	msgs []kafka.Message
	err  error
}

func (p *captureProducer) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if p.err != nil {
		return p.err
	}
	p.msgs = append(p.msgs, msgs...)
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestDispatch(t *testing.T) {
	producer := &captureProducer{}
	d := NewDispatcher(discardLogger(), producer, "inventory.events")

	ev := Event{
		ID:          7,
		AggregateID: "book_1",
		Type:        "StockReserved",
		Payload:     []byte(`{"item_id":"book_1","quantity":2}`),
		Headers:     map[string]string{"source": "inventory-service"},
		Traceparent: "00-abc-def-01",
	}
	if err := d.Dispatch(context.Background(), ev); err != nil {
		t.Fatalf("dispatch: %v", err)
	}

	if len(producer.msgs) != 1 {
		t.Fatalf("wrote %d messages, want 1", len(producer.msgs))
	}
	msg := producer.msgs[0]
	if msg.Topic != "inventory.events" || string(msg.Key) != "book_1" {
		t.Errorf("topic=%q key=%q", msg.Topic, msg.Key)
	}

	headers := map[string]string{}
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	if headers["event_type"] != "StockReserved" {
		t.Errorf("event_type header = %q", headers["event_type"])
	}
	if headers["traceparent"] != "00-abc-def-01" {
		t.Errorf("traceparent header = %q", headers["traceparent"])
	}
	if headers["source"] != "inventory-service" {
		t.Errorf("source header = %q", headers["source"])
	}
}

func TestDispatch_NoTraceparentHeaderWhenEmpty(t *testing.T) {
	producer := &captureProducer{}
	d := NewDispatcher(discardLogger(), producer, "inventory.events")

	if err := d.Dispatch(context.Background(), Event{AggregateID: "book_1", Type: "StockReleased"}); err != nil {
		t.Fatalf("dispatch: %v", err)
	}
	for _, h := range producer.msgs[0].Headers {
		if h.Key == "traceparent" {
			t.Error("traceparent header present for event without trace context")
		}
	}
}

func TestDispatch_ProducerError(t *testing.T) {
	producer := &captureProducer{err: errors.New("broker down")}
	d := NewDispatcher(discardLogger(), producer, "inventory.events")

	if err := d.Dispatch(context.Background(), Event{ID: 1}); err == nil {
		t.Error("producer failure must propagate")
	}
}
