package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"bakery-pos-api/internal/model"
	"bakery-pos-api/internal/storage"
)

// The five fixed record keys.
const (
	KeyInventory        = "inventory"
	KeySales            = "sales"
	KeySalesHistory     = "sales_history"
	KeyInventoryHistory = "inventory_history"
	KeyDayStatus        = "day_status"
)

// Store is the record store: typed accessors for the five named records,
// each serialized as one JSON document under its fixed key. Physical I/O is
// delegated to a storage backend.
type Store struct {
	backend   storage.Backend
	recovered bool

	// now is swapped out in tests for deterministic timestamps.
	now func() time.Time
}

// New opens a record store over the given backend. A non-empty journal
// manifest left by an interrupted commit is replayed before the store is
// handed out.
func New(backend storage.Backend) (*Store, error) {
	s := &Store{
		backend: backend,
		now:     time.Now,
	}

	recovered, err := s.recoverJournal(context.Background())
	if err != nil {
		return nil, fmt.Errorf("failed to recover journal: %w", err)
	}
	s.recovered = recovered

	return s, nil
}

// Recovered reports whether an interrupted commit was replayed at open.
func (s *Store) Recovered() bool { return s.recovered }

// BackendName identifies the storage tier backing the store.
func (s *Store) BackendName() string { return s.backend.Name() }

// read unmarshals the record under key into dst. Returns false when the
// record does not exist yet.
func (s *Store) read(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := s.backend.Read(ctx, key)
	if err != nil {
		if err == storage.ErrNotFound {
			return false, nil
		}
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

// write marshals value and stores it under key.
func (s *Store) write(ctx context.Context, key string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.backend.Write(ctx, key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// GetInventory returns the live catalog.
func (s *Store) GetInventory(ctx context.Context) ([]model.InventoryItem, error) {
	var items []model.InventoryItem
	ok, err := s.read(ctx, KeyInventory, &items)
	if err != nil {
		return nil, err
	}
	if !ok || items == nil {
		return []model.InventoryItem{}, nil
	}
	return items, nil
}

// SaveInventory replaces the live catalog.
func (s *Store) SaveInventory(ctx context.Context, items []model.InventoryItem) error {
	return s.write(ctx, KeyInventory, items)
}

// AddProduct assigns the next id (max existing + 1, or 1 when the catalog is
// empty) and appends the item.
func (s *Store) AddProduct(ctx context.Context, item model.InventoryItem) (model.InventoryItem, error) {
	items, err := s.GetInventory(ctx)
	if err != nil {
		return model.InventoryItem{}, err
	}

	nextID := 1
	for _, existing := range items {
		if existing.ID >= nextID {
			nextID = existing.ID + 1
		}
	}
	item.ID = nextID

	items = append(items, item)
	if err := s.SaveInventory(ctx, items); err != nil {
		return model.InventoryItem{}, err
	}
	return item, nil
}

// UpdateProduct merges the partial fields into the matching item. A missing
// id is a no-op and returns nil.
func (s *Store) UpdateProduct(ctx context.Context, id int, update model.ProductUpdate) (*model.InventoryItem, error) {
	items, err := s.GetInventory(ctx)
	if err != nil {
		return nil, err
	}

	var updated *model.InventoryItem
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if update.Name != nil {
			items[i].Name = *update.Name
		}
		if update.Quantity != nil {
			items[i].Quantity = *update.Quantity
		}
		if update.Price != nil {
			items[i].Price = *update.Price
		}
		updated = &items[i]
		break
	}

	if updated == nil {
		return nil, nil
	}

	if err := s.SaveInventory(ctx, items); err != nil {
		return nil, err
	}

	result := *updated
	return &result, nil
}

// DeleteProduct filters out the matching item and reports success whether or
// not the id was ever present.
func (s *Store) DeleteProduct(ctx context.Context, id int) error {
	items, err := s.GetInventory(ctx)
	if err != nil {
		return err
	}

	remaining := make([]model.InventoryItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			remaining = append(remaining, item)
		}
	}

	return s.SaveInventory(ctx, remaining)
}

// GetSales returns the current day's sales record.
func (s *Store) GetSales(ctx context.Context) (model.SalesRecord, error) {
	var record model.SalesRecord
	ok, err := s.read(ctx, KeySales, &record)
	if err != nil {
		return model.SalesRecord{}, err
	}
	if !ok {
		return model.SalesRecord{DailySales: []model.Sale{}, NextID: 1}, nil
	}
	if record.DailySales == nil {
		record.DailySales = []model.Sale{}
	}
	if record.NextID < 1 {
		record.NextID = 1
	}
	return record, nil
}

// AddSale assigns the stored counter id, stamps the write-time timestamp,
// appends the sale and increments the counter.
func (s *Store) AddSale(ctx context.Context, sale model.Sale) (model.Sale, error) {
	record, err := s.GetSales(ctx)
	if err != nil {
		return model.Sale{}, err
	}

	sale.ID = record.NextID
	sale.Timestamp = s.now().UTC().Format(time.RFC3339)

	record.DailySales = append(record.DailySales, sale)
	record.NextID++

	if err := s.write(ctx, KeySales, record); err != nil {
		return model.Sale{}, err
	}
	return sale, nil
}

// GetSalesHistory returns the archived day-close entries.
func (s *Store) GetSalesHistory(ctx context.Context) ([]model.SalesHistoryEntry, error) {
	var entries []model.SalesHistoryEntry
	ok, err := s.read(ctx, KeySalesHistory, &entries)
	if err != nil {
		return nil, err
	}
	if !ok || entries == nil {
		return []model.SalesHistoryEntry{}, nil
	}
	return entries, nil
}

// GetInventoryHistory returns the archived inventory snapshots.
func (s *Store) GetInventoryHistory(ctx context.Context) ([]model.InventoryHistoryEntry, error) {
	var entries []model.InventoryHistoryEntry
	ok, err := s.read(ctx, KeyInventoryHistory, &entries)
	if err != nil {
		return nil, err
	}
	if !ok || entries == nil {
		return []model.InventoryHistoryEntry{}, nil
	}
	return entries, nil
}

// GetDayStatus returns the day status.
func (s *Store) GetDayStatus(ctx context.Context) (model.DayStatus, error) {
	var status model.DayStatus
	ok, err := s.read(ctx, KeyDayStatus, &status)
	if err != nil {
		return model.DayStatus{}, err
	}
	if !ok {
		return model.DayStatus{DayStarted: false, DayStartTime: nil}, nil
	}
	return status, nil
}

// SetDayStatus replaces the day status.
func (s *Store) SetDayStatus(ctx context.Context, status model.DayStatus) error {
	return s.write(ctx, KeyDayStatus, status)
}

var _ RecordStore = (*Store)(nil)
