package service

import (
	"context"
	"log"

	"bakery-pos-api/internal/model"
	"bakery-pos-api/internal/repository"
)

// MaintenanceService implements the destructive reset operations behind the
// settings screen. Each reset is one journaled commit.
type MaintenanceService struct {
	store repository.RecordStore
}

// NewMaintenanceService creates a new maintenance service.
// Returns nil if store is nil (required dependency).
func NewMaintenanceService(store repository.RecordStore) *MaintenanceService {
	if store == nil {
		return nil
	}
	return &MaintenanceService{store: store}
}

// ResetAll restores all five records to their defaults.
func (s *MaintenanceService) ResetAll(ctx context.Context) error {
	j := s.store.NewJournal()
	if err := stageDefaults(j,
		repository.KeyInventory,
		repository.KeySales,
		repository.KeySalesHistory,
		repository.KeyInventoryHistory,
		repository.KeyDayStatus,
	); err != nil {
		return err
	}
	if err := s.store.Commit(ctx, j); err != nil {
		return err
	}

	log.Printf("[MaintenanceService] All records reset")
	return nil
}

// ResetInventory restores the live catalog, current sales and day status to
// their defaults. History collections are kept.
func (s *MaintenanceService) ResetInventory(ctx context.Context) error {
	j := s.store.NewJournal()
	if err := stageDefaults(j,
		repository.KeyInventory,
		repository.KeySales,
		repository.KeyDayStatus,
	); err != nil {
		return err
	}
	if err := s.store.Commit(ctx, j); err != nil {
		return err
	}

	log.Printf("[MaintenanceService] Inventory, sales and day status reset")
	return nil
}

func stageDefaults(j *repository.Journal, keys ...string) error {
	for _, key := range keys {
		var value interface{}
		switch key {
		case repository.KeyInventory:
			value = []model.InventoryItem{}
		case repository.KeySales:
			value = model.SalesRecord{DailySales: []model.Sale{}, NextID: 1}
		case repository.KeySalesHistory:
			value = []model.SalesHistoryEntry{}
		case repository.KeyInventoryHistory:
			value = []model.InventoryHistoryEntry{}
		case repository.KeyDayStatus:
			value = model.DayStatus{DayStarted: false, DayStartTime: nil}
		}
		if err := j.Stage(key, value); err != nil {
			return err
		}
	}
	return nil
}
