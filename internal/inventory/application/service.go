package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/domain"
)

// Service implements the reservation protocol (check, reserve, release,
// confirm) on top of the store's atomic primitives. It holds no inventory
// state of its own: two Services over the same store behave identically, so
// the gRPC facade and the event consumer can share one or run their own.
type Service struct {
	log   *slog.Logger
	store StockStore
}

func NewService(log *slog.Logger, store StockStore) *Service {
	return &Service{log: log, store: store}
}

// CheckStock reports the available units for an item. An unresolvable item
// is a normal zero-stock result, not a fault; the returned error is non-nil
// only for store failures.
func (s *Service) CheckStock(ctx context.Context, itemID string) (int64, bool, error) {
	item, err := s.store.Lookup(ctx, itemID)
	if errors.Is(err, domain.ErrItemNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("check stock %s: %w", itemID, err)
	}
	return item.Stock, item.InStock(), nil
}

// Reserve decrements stock by qty if and only if enough stock is present at
// apply time. A reservation that loses the race is reported as insufficient
// stock and never retried here; the caller decides whether to try again.
func (s *Service) Reserve(ctx context.Context, itemID string, qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("reserve %s: %w", itemID, domain.ErrInvalidQuantity)
	}
	item, err := s.store.Lookup(ctx, itemID)
	if err != nil {
		return fmt.Errorf("reserve %s: %w", itemID, err)
	}
	applied, err := s.store.ConditionalDecrement(ctx, item.ItemID, qty)
	if err != nil {
		return fmt.Errorf("reserve %s: %w", itemID, err)
	}
	if !applied {
		// item.Stock was read before the decrement attempt and may be
		// stale by now; it is reported for diagnostics only.
		return &domain.InsufficientStockError{ItemID: itemID, Requested: qty, Available: item.Stock}
	}
	s.log.Info("stock reserved", "item_id", item.ItemID, "quantity", qty)
	return nil
}

// Release restores qty units after a failed downstream step. The increment
// is unconditional: nothing bounds it to a prior reservation, so callers own
// the compensation bookkeeping.
func (s *Service) Release(ctx context.Context, itemID string, qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("release %s: %w", itemID, domain.ErrInvalidQuantity)
	}
	item, err := s.store.Lookup(ctx, itemID)
	if err != nil {
		return fmt.Errorf("release %s: %w", itemID, err)
	}
	if err := s.store.Increment(ctx, item.ItemID, qty); err != nil {
		return fmt.Errorf("release %s: %w", itemID, err)
	}
	s.log.Info("stock released", "item_id", item.ItemID, "quantity", qty)
	return nil
}

// ConfirmReduction finalizes a reservation after external success. The
// decrement already happened at reserve time, so confirmation only verifies
// the item still resolves; it never touches stock.
func (s *Service) ConfirmReduction(ctx context.Context, itemID string, qty int64) error {
	if qty <= 0 {
		return fmt.Errorf("confirm %s: %w", itemID, domain.ErrInvalidQuantity)
	}
	_, err := s.store.Lookup(ctx, itemID)
	if errors.Is(err, domain.ErrItemNotFound) {
		return fmt.Errorf("%w: item %s does not exist", domain.ErrNotConfirmed, itemID)
	}
	if err != nil {
		return fmt.Errorf("confirm %s: %w", itemID, err)
	}
	s.log.Info("stock reduction confirmed", "item_id", itemID, "quantity", qty)
	return nil
}

// ApplyOrderEvent replays one order lifecycle event against stock. Items are
// applied independently through the store's atomic adjust primitives; a
// failing item is logged and skipped so the rest of the event still lands.
// There is no event-level atomicity.
func (s *Service) ApplyOrderEvent(ctx context.Context, ev domain.OrderEvent) error {
	var apply func(context.Context, string, int64) error
	switch ev.EventType {
	case domain.EventOrderCreated:
		apply = s.store.AdjustOnOrderCreated
	case domain.EventOrderCanceled:
		apply = s.store.AdjustOnOrderCanceled
	default:
		s.log.Warn("unknown order event type, ignoring", "event_type", ev.EventType)
		return nil
	}

	var failed int
	for _, it := range ev.Items {
		if it.Quantity <= 0 {
			s.log.Warn("skipping event item with non-positive quantity",
				"item_id", it.ItemID, "quantity", it.Quantity)
			continue
		}
		if err := apply(ctx, it.ItemID, it.Quantity); err != nil {
			failed++
			s.log.Error("order event item failed", "event_type", ev.EventType,
				"item_id", it.ItemID, "err", err)
			continue
		}
		s.log.Info("order event applied", "event_type", ev.EventType,
			"item_id", it.ItemID, "quantity", it.Quantity)
	}
	if failed > 0 {
		return fmt.Errorf("order event %s: %d of %d items failed", ev.EventType, failed, len(ev.Items))
	}
	return nil
}
