package application

import (
	"context"

	"github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/domain"
)

// StockStore is the atomic primitive surface of the backing store. Every
// mutation is a single indivisible operation with respect to concurrent
// callers; all cross-caller coordination lives here, not in process memory.
type StockStore interface {
	// Lookup resolves an item by its item ID first, then by the internal
	// record key. Returns domain.ErrItemNotFound when neither matches.
	Lookup(ctx context.Context, key string) (domain.InventoryItem, error)

	// ConditionalDecrement applies stock -= qty only if stock >= qty at
	// apply time. Reports false when no record matched the precondition.
	ConditionalDecrement(ctx context.Context, itemID string, qty int64) (bool, error)

	// Increment applies stock += qty unconditionally.
	Increment(ctx context.Context, itemID string, qty int64) error

	// AdjustOnOrderCreated applies stock = max(stock - qty, 0) as one
	// atomic operation, creating the record at zero if absent.
	AdjustOnOrderCreated(ctx context.Context, itemID string, qty int64) error

	// AdjustOnOrderCanceled applies stock += qty, creating the record if
	// absent.
	AdjustOnOrderCanceled(ctx context.Context, itemID string, qty int64) error

	// SetStock overwrites the stock value. Administrative path only; the
	// reservation protocol never calls it.
	SetStock(ctx context.Context, itemID string, stock int64) error
}
