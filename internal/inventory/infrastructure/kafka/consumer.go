package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/segmentio/kafka-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/application"
	"github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/domain"
	"github.com/dmehra2102/Bookstore-Inventory-Service/pkg/idempotency"
	"github.com/dmehra2102/Bookstore-Inventory-Service/pkg/tracing"
)

// Consumer replays order lifecycle events against the reservation engine.
// Delivery is at-least-once; redeliveries are dropped by the Redis-backed
// idempotency check before any stock is touched. A message is committed
// after its items were attempted, whatever the per-item outcomes, so a
// partially failed event is not redelivered.
type Consumer struct {
	log    *slog.Logger
	reader *kafka.Reader
	svc    *application.Service
	idem   *idempotency.Store
	tracer trace.Tracer
}

func NewConsumer(log *slog.Logger, brokers []string, topic, group string, svc *application.Service, idem *idempotency.Store) *Consumer {
	r := kafka.NewReader(kafka.ReaderConfig{
		Brokers: brokers,
		Topic:   topic,
		GroupID: group,
	})
	return &Consumer{
		log:    log,
		reader: r,
		svc:    svc,
		idem:   idem,
		tracer: otel.Tracer("inventory-consumer"),
	}
}

func (c *Consumer) Run(ctx context.Context) error {
	defer c.reader.Close()
	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			return err
		}
		key := c.idem.Key(msg.Topic, msg.Partition, msg.Offset)
		seen, err := c.idem.Seen(ctx, key)
		if err != nil {
			c.log.Error("idempotency check failed", "err", err)
			continue
		}
		if seen {
			c.log.Info("duplicate message skipped", "key", key)
			_ = c.reader.CommitMessages(ctx, msg)
			continue
		}

		msgCtx := tracing.ExtractKafkaHeaders(ctx, msg.Headers)
		msgCtx, span := c.tracer.Start(msgCtx, "ConsumeOrderEvent")

		if err := c.process(msgCtx, msg.Value); err != nil {
			c.log.Error("order event processing incomplete", "err", err)
		}
		span.End()
		_ = c.reader.CommitMessages(ctx, msg)
	}
}

// process decodes and applies one event. A decode failure is a bad message,
// not a fault: it is reported, and the caller still commits.
func (c *Consumer) process(ctx context.Context, body []byte) error {
	var ev domain.OrderEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal order event: %w", err)
	}
	return c.svc.ApplyOrderEvent(ctx, ev)
}
