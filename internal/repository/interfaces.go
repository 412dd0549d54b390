package repository

import (
	"context"

	"bakery-pos-api/internal/model"
)

// RecordStore defines typed access to the five persisted records. Reads of a
// missing record return that record's default value, never an error.
type RecordStore interface {
	// GetInventory returns the live catalog (default: empty list).
	GetInventory(ctx context.Context) ([]model.InventoryItem, error)

	// SaveInventory replaces the live catalog.
	SaveInventory(ctx context.Context, items []model.InventoryItem) error

	// AddProduct assigns id = max existing id + 1 (1 when empty) and appends.
	AddProduct(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error)

	// UpdateProduct merges the given partial fields into the item with the
	// given id. Returns nil when the id is absent (no-op).
	UpdateProduct(ctx context.Context, id int, update model.ProductUpdate) (*model.InventoryItem, error)

	// DeleteProduct removes the item with the given id. Idempotent: deleting
	// an absent id succeeds and leaves the catalog unchanged.
	DeleteProduct(ctx context.Context, id int) error

	// GetSales returns the current day's sales record
	// (default: {dailySales: [], nextId: 1}).
	GetSales(ctx context.Context) (model.SalesRecord, error)

	// AddSale assigns the stored counter id, stamps the timestamp, appends
	// the sale and increments the counter.
	AddSale(ctx context.Context, sale model.Sale) (model.Sale, error)

	// GetSalesHistory returns the archived day-close entries (default: empty).
	GetSalesHistory(ctx context.Context) ([]model.SalesHistoryEntry, error)

	// GetInventoryHistory returns the archived inventory snapshots (default: empty).
	GetInventoryHistory(ctx context.Context) ([]model.InventoryHistoryEntry, error)

	// GetDayStatus returns the day status
	// (default: {dayStarted: false, dayStartTime: null}).
	GetDayStatus(ctx context.Context) (model.DayStatus, error)

	// SetDayStatus replaces the day status.
	SetDayStatus(ctx context.Context, status model.DayStatus) error

	// NewJournal starts a staged multi-record mutation.
	NewJournal() *Journal

	// Commit persists the journal manifest, applies the staged writes, then
	// clears the manifest.
	Commit(ctx context.Context, j *Journal) error

	// Recovered reports whether an interrupted commit was replayed at open.
	Recovered() bool

	// BackendName identifies the storage tier backing the store.
	BackendName() string
}
