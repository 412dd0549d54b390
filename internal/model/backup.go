package model

// BackupEnvelope wraps all persisted collections into a single JSON document
// with a generation timestamp. Created only by export, consumed only by import.
type BackupEnvelope struct {
	Timestamp string     `json:"timestamp"`
	Data      BackupData `json:"data"`
}

// BackupData holds the four record collections of an exported store.
type BackupData struct {
	Inventory        []InventoryItem         `json:"inventory"`
	Sales            SalesRecord             `json:"sales"`
	SalesHistory     []SalesHistoryEntry     `json:"salesHistory"`
	InventoryHistory []InventoryHistoryEntry `json:"inventoryHistory"`
}
