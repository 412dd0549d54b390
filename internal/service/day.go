package service

import (
	"context"
	"log"
	"time"

	"bakery-pos-api/internal/model"
	"bakery-pos-api/internal/repository"
)

// DayService drives the trading-day state machine: Closed -> Open on start,
// Open -> Closed on end. Closing a day archives the day's sales and an
// inventory snapshot, then resets the live sales record.
type DayService struct {
	store repository.RecordStore

	// now is swapped out in tests for deterministic timestamps.
	now func() time.Time
}

// NewDayService creates a new day lifecycle service.
// Returns nil if store is nil (required dependency).
func NewDayService(store repository.RecordStore) *DayService {
	if store == nil {
		return nil
	}
	return &DayService{
		store: store,
		now:   time.Now,
	}
}

// Status returns the persisted day status.
func (s *DayService) Status(ctx context.Context) (model.DayStatus, error) {
	return s.store.GetDayStatus(ctx)
}

// StartDay opens the trading day and stamps its start time. Starting an
// already-open day is a no-op that returns the existing status, so the
// original start time is never re-stamped.
func (s *DayService) StartDay(ctx context.Context) (model.DayStatus, error) {
	status, err := s.store.GetDayStatus(ctx)
	if err != nil {
		return model.DayStatus{}, err
	}
	if status.DayStarted {
		return status, nil
	}

	startTime := s.now().UTC().Format(time.RFC3339)
	status = model.DayStatus{DayStarted: true, DayStartTime: &startTime}
	if err := s.store.SetDayStatus(ctx, status); err != nil {
		return model.DayStatus{}, err
	}

	log.Printf("[DayService] Trading day started at %s", startTime)
	return status, nil
}

// EndDay closes the trading day in one journaled commit: the current sales
// and an inventory snapshot are appended to both history collections, the
// sales record resets to {[], 1}, the day status resets to closed, and sold-
// out items are dropped from the live catalog with survivors stamped with
// their day-end quantity. A day with no sales archives an empty entry rather
// than erroring.
func (s *DayService) EndDay(ctx context.Context) (model.SalesHistoryEntry, error) {
	status, err := s.store.GetDayStatus(ctx)
	if err != nil {
		return model.SalesHistoryEntry{}, err
	}
	if !status.DayStarted {
		return model.SalesHistoryEntry{}, ErrDayNotStarted
	}

	salesRecord, err := s.store.GetSales(ctx)
	if err != nil {
		return model.SalesHistoryEntry{}, err
	}
	inventory, err := s.store.GetInventory(ctx)
	if err != nil {
		return model.SalesHistoryEntry{}, err
	}
	salesHistory, err := s.store.GetSalesHistory(ctx)
	if err != nil {
		return model.SalesHistoryEntry{}, err
	}
	inventoryHistory, err := s.store.GetInventoryHistory(ctx)
	if err != nil {
		return model.SalesHistoryEntry{}, err
	}

	date := s.now().UTC().Format(time.RFC3339)

	// The archived snapshot freezes id/name/quantity/price only.
	snapshot := make([]model.InventoryItem, len(inventory))
	for i, item := range inventory {
		snapshot[i] = model.InventoryItem{
			ID:       item.ID,
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		}
	}

	entry := model.SalesHistoryEntry{
		Date:      date,
		Sales:     salesRecord.DailySales,
		Inventory: snapshot,
	}
	salesHistory = append(salesHistory, entry)
	inventoryHistory = append(inventoryHistory, model.InventoryHistoryEntry{
		Date:      date,
		Inventory: snapshot,
	})

	// Sold-out items leave the live catalog; the rest keep their closing
	// quantity for the next day's count.
	live := make([]model.InventoryItem, 0, len(inventory))
	for _, item := range inventory {
		if item.Quantity <= 0 {
			continue
		}
		closing := item.Quantity
		item.DayEndQuantity = &closing
		live = append(live, item)
	}

	j := s.store.NewJournal()
	if err := j.Stage(repository.KeySalesHistory, salesHistory); err != nil {
		return model.SalesHistoryEntry{}, err
	}
	if err := j.Stage(repository.KeyInventoryHistory, inventoryHistory); err != nil {
		return model.SalesHistoryEntry{}, err
	}
	if err := j.Stage(repository.KeySales, model.SalesRecord{DailySales: []model.Sale{}, NextID: 1}); err != nil {
		return model.SalesHistoryEntry{}, err
	}
	if err := j.Stage(repository.KeyInventory, live); err != nil {
		return model.SalesHistoryEntry{}, err
	}
	if err := j.Stage(repository.KeyDayStatus, model.DayStatus{DayStarted: false, DayStartTime: nil}); err != nil {
		return model.SalesHistoryEntry{}, err
	}

	if err := s.store.Commit(ctx, j); err != nil {
		return model.SalesHistoryEntry{}, err
	}

	log.Printf("[DayService] Trading day closed: %d sales archived", len(entry.Sales))
	return entry, nil
}
