package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrItemNotFound means the item resolved by neither the item ID nor
	// the internal record key.
	ErrItemNotFound = errors.New("inventory item not found")

	// ErrInvalidQuantity rejects zero or negative quantities before any
	// store round trip.
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")

	// ErrNotConfirmed means a stock reduction could not be confirmed
	// because the item no longer resolves.
	ErrNotConfirmed = errors.New("stock reduction not confirmed")
)

// InsufficientStockError is returned when the conditional decrement was not
// applied. Available is the stock observed at the precondition check and may
// be stale relative to the instant of failure; it is informational only.
type InsufficientStockError struct {
	ItemID    string
	Requested int64
	Available int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ItemID, e.Requested, e.Available)
}
