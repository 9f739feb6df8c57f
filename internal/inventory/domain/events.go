package domain

// Event types consumed from the order lifecycle feed.
const (
	EventOrderCreated  = "order_created"
	EventOrderCanceled = "order_canceled"
)

// OrderEvent is the message body received from the broker. It is transient:
// applied to stock and then acknowledged, never persisted.
type OrderEvent struct {
	EventType string      `json:"event_type"`
	Items     []EventItem `json:"items"`
}

type EventItem struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

// Outbox event payloads published on the stock change feed.

type StockReserved struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

type StockReleased struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
}

type StockAdjusted struct {
	ItemID   string `json:"item_id"`
	Quantity int64  `json:"quantity"`
	Reason   string `json:"reason"`
}
