package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmehra2102/Bookstore-Inventory-Service/internal/inventory/domain"
	"github.com/dmehra2102/Bookstore-Inventory-Service/pkg/tracing"
)

// Repository is the authoritative stock store. Each mutating primitive is a
// single UPDATE or upsert statement, so the precondition is re-evaluated and
// applied in one indivisible step; concurrent racers resolve to exactly one
// winner without any external lock. Reservation-protocol mutations also
// enqueue an outbox event inside the same transaction.
type Repository struct {
	log  *slog.Logger
	pool *pgxpool.Pool
}

func NewRepository(log *slog.Logger, pool *pgxpool.Pool) *Repository {
	return &Repository{
		log:  log,
		pool: pool,
	}
}

// EnsureSchema creates the inventory and outbox tables when absent.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS inventory_items (
		internal_key TEXT NOT NULL UNIQUE,
		item_id TEXT PRIMARY KEY,
		stock BIGINT NOT NULL DEFAULT 0 CHECK (stock >= 0)
	)`)
	if err != nil {
		return err
	}
	_, err = r.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS outbox (
		id BIGSERIAL PRIMARY KEY,
		aggregate_type TEXT NOT NULL,
		aggregate_id TEXT NOT NULL,
		type TEXT NOT NULL,
		payload JSONB NOT NULL,
		headers JSONB,
		traceparent TEXT,
		status TEXT NOT NULL DEFAULT 'pending',
		relay_id TEXT,
		lease_until TIMESTAMPTZ,
		retry_count INT NOT NULL DEFAULT 0,
		last_error TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`)
	return err
}

// Lookup resolves first by item_id, then by internal_key. Item IDs are the
// common case, so the fallback query only runs on a miss; the order is fixed
// and shared by every operation.
func (r *Repository) Lookup(ctx context.Context, key string) (domain.InventoryItem, error) {
	var item domain.InventoryItem
	err := r.pool.QueryRow(ctx,
		`SELECT internal_key, item_id, stock FROM inventory_items WHERE item_id=$1`, key).
		Scan(&item.InternalKey, &item.ItemID, &item.Stock)
	if errors.Is(err, pgx.ErrNoRows) {
		err = r.pool.QueryRow(ctx,
			`SELECT internal_key, item_id, stock FROM inventory_items WHERE internal_key=$1`, key).
			Scan(&item.InternalKey, &item.ItemID, &item.Stock)
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.InventoryItem{}, domain.ErrItemNotFound
	}
	if err != nil {
		return domain.InventoryItem{}, fmt.Errorf("lookup item: %w", err)
	}
	return item, nil
}

// ConditionalDecrement applies stock -= qty only when stock >= qty holds at
// execution time. Zero rows affected means the record is absent or stock is
// insufficient right now, regardless of what an earlier read saw.
func (r *Repository) ConditionalDecrement(ctx context.Context, itemID string, qty int64) (bool, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return false, err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tag, err := tx.Exec(ctx,
		`UPDATE inventory_items SET stock = stock - $2 WHERE item_id=$1 AND stock >= $2`,
		itemID, qty)
	if err != nil {
		return false, fmt.Errorf("conditional decrement: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err := r.enqueue(ctx, tx, itemID, "StockReserved",
		domain.StockReserved{ItemID: itemID, Quantity: qty}); err != nil {
		return false, err
	}
	return true, tx.Commit(ctx)
}

// Increment applies stock += qty unconditionally.
func (r *Repository) Increment(ctx context.Context, itemID string, qty int64) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	tag, err := tx.Exec(ctx,
		`UPDATE inventory_items SET stock = stock + $2 WHERE item_id=$1`, itemID, qty)
	if err != nil {
		return fmt.Errorf("increment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}

	if err := r.enqueue(ctx, tx, itemID, "StockReleased",
		domain.StockReleased{ItemID: itemID, Quantity: qty}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// AdjustOnOrderCreated applies stock = max(stock - qty, 0) atomically,
// creating an empty record when the item is unknown. The floor lives inside
// the statement, so a concurrent reserve can never push the value negative.
func (r *Repository) AdjustOnOrderCreated(ctx context.Context, itemID string, qty int64) error {
	return r.adjust(ctx, itemID, qty, domain.EventOrderCreated,
		`INSERT INTO inventory_items (internal_key, item_id, stock)
		 VALUES (gen_random_uuid()::text, $1, 0)
		 ON CONFLICT (item_id) DO UPDATE SET stock = GREATEST(inventory_items.stock - $2, 0)`)
}

// AdjustOnOrderCanceled applies stock += qty, creating the record at qty
// when the item is unknown.
func (r *Repository) AdjustOnOrderCanceled(ctx context.Context, itemID string, qty int64) error {
	return r.adjust(ctx, itemID, qty, domain.EventOrderCanceled,
		`INSERT INTO inventory_items (internal_key, item_id, stock)
		 VALUES (gen_random_uuid()::text, $1, $2)
		 ON CONFLICT (item_id) DO UPDATE SET stock = inventory_items.stock + $2`)
}

func (r *Repository) adjust(ctx context.Context, itemID string, qty int64, reason, stmt string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, stmt, itemID, qty); err != nil {
		return fmt.Errorf("adjust stock (%s): %w", reason, err)
	}
	if err := r.enqueue(ctx, tx, itemID, "StockAdjusted",
		domain.StockAdjusted{ItemID: itemID, Quantity: qty, Reason: reason}); err != nil {
		return err
	}
	return tx.Commit(ctx)
}

// SetStock overwrites the stock value, upserting the record. Administrative
// path; no outbox event.
func (r *Repository) SetStock(ctx context.Context, itemID string, stock int64) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO inventory_items (internal_key, item_id, stock)
		 VALUES (gen_random_uuid()::text, $1, $2)
		 ON CONFLICT (item_id) DO UPDATE SET stock = $2`,
		itemID, stock)
	if err != nil {
		return fmt.Errorf("set stock: %w", err)
	}
	return nil
}

// List returns every item record, ordered by item ID.
func (r *Repository) List(ctx context.Context) ([]domain.InventoryItem, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT internal_key, item_id, stock FROM inventory_items ORDER BY item_id`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var items []domain.InventoryItem
	for rows.Next() {
		var item domain.InventoryItem
		if err := rows.Scan(&item.InternalKey, &item.ItemID, &item.Stock); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// Delete removes an item record by item ID.
func (r *Repository) Delete(ctx context.Context, itemID string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM inventory_items WHERE item_id=$1`, itemID)
	if err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *Repository) enqueue(ctx context.Context, tx pgx.Tx, itemID, eventType string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	headers := map[string]string{"source": "inventory-service"}
	_, err = tx.Exec(ctx, `INSERT INTO outbox (aggregate_type, aggregate_id, type, payload, headers,
		traceparent, status) VALUES ($1,$2,$3,$4,$5,$6,'pending')`,
		"inventory", itemID, eventType, body, headers, tracing.Traceparent(ctx))
	return err
}
