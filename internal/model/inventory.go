package model

// InventoryItem is a product in the live catalog. IDs are assigned by the
// record store (max existing id + 1) and are unique within the inventory list.
type InventoryItem struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`

	// DayEndQuantity is stamped on surviving items when a trading day closes.
	DayEndQuantity *int `json:"dayEndQuantity,omitempty"`
}

// ProductUpdate carries a partial update for an inventory item.
// Nil fields are left untouched.
type ProductUpdate struct {
	Name     *string  `json:"name,omitempty"`
	Quantity *int     `json:"quantity,omitempty"`
	Price    *float64 `json:"price,omitempty"`
}

// InventoryHistoryEntry is an immutable end-of-day snapshot of the catalog.
type InventoryHistoryEntry struct {
	Date      string          `json:"date"`
	Inventory []InventoryItem `json:"inventory"`
}
