package domain

// InventoryItem is the persisted stock record for a single book.
// ItemID is the externally assigned business identifier and the primary
// lookup key; InternalKey is the store's own record key, used as a lookup
// fallback for records created before item IDs were assigned consistently.
type InventoryItem struct {
	InternalKey string `json:"internal_key"`
	ItemID      string `json:"item_id"`
	Stock       int64  `json:"stock"`
}

// InStock reports whether at least one unit is available.
func (i InventoryItem) InStock() bool {
	return i.Stock > 0
}
