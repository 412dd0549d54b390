package service

import (
	"context"
	"encoding/json"
	"time"

	"bakery-pos-api/internal/model"
	"bakery-pos-api/internal/repository"
)

// BackupService serializes the whole store into a single timestamped JSON
// envelope and restores stores from such envelopes.
type BackupService struct {
	store repository.RecordStore

	// now is swapped out in tests for deterministic timestamps.
	now func() time.Time
}

// NewBackupService creates a new backup service.
// Returns nil if store is nil (required dependency).
func NewBackupService(store repository.RecordStore) *BackupService {
	if store == nil {
		return nil
	}
	return &BackupService{
		store: store,
		now:   time.Now,
	}
}

// Export reads all four collections and wraps them with a generation
// timestamp. The day status is deliberately not part of the envelope.
func (s *BackupService) Export(ctx context.Context) (model.BackupEnvelope, error) {
	inventory, err := s.store.GetInventory(ctx)
	if err != nil {
		return model.BackupEnvelope{}, err
	}
	sales, err := s.store.GetSales(ctx)
	if err != nil {
		return model.BackupEnvelope{}, err
	}
	salesHistory, err := s.store.GetSalesHistory(ctx)
	if err != nil {
		return model.BackupEnvelope{}, err
	}
	inventoryHistory, err := s.store.GetInventoryHistory(ctx)
	if err != nil {
		return model.BackupEnvelope{}, err
	}

	return model.BackupEnvelope{
		Timestamp: s.now().UTC().Format(time.RFC3339),
		Data: model.BackupData{
			Inventory:        inventory,
			Sales:            sales,
			SalesHistory:     salesHistory,
			InventoryHistory: inventoryHistory,
		},
	}, nil
}

// backupWire mirrors the envelope with presence-preserving pointers so import
// can tell an absent collection from an empty one.
type backupWire struct {
	Timestamp *string `json:"timestamp"`
	Data      *struct {
		Inventory        *[]model.InventoryItem         `json:"inventory"`
		Sales            *model.SalesRecord             `json:"sales"`
		SalesHistory     *[]model.SalesHistoryEntry     `json:"salesHistory"`
		InventoryHistory *[]model.InventoryHistoryEntry `json:"inventoryHistory"`
	} `json:"data"`
}

// Import validates the envelope shape and overwrites each collection present
// in data, in one journaled commit. Collections absent from the envelope are
// left untouched. A missing timestamp or data field rejects the whole import
// with no writes.
func (s *BackupService) Import(ctx context.Context, raw []byte) error {
	var wire backupWire
	if err := json.Unmarshal(raw, &wire); err != nil {
		return ErrInvalidBackup
	}
	if wire.Timestamp == nil || *wire.Timestamp == "" || wire.Data == nil {
		return ErrInvalidBackup
	}

	j := s.store.NewJournal()
	if wire.Data.Inventory != nil {
		if err := j.Stage(repository.KeyInventory, *wire.Data.Inventory); err != nil {
			return err
		}
	}
	if wire.Data.Sales != nil {
		if err := j.Stage(repository.KeySales, *wire.Data.Sales); err != nil {
			return err
		}
	}
	if wire.Data.SalesHistory != nil {
		if err := j.Stage(repository.KeySalesHistory, *wire.Data.SalesHistory); err != nil {
			return err
		}
	}
	if wire.Data.InventoryHistory != nil {
		if err := j.Stage(repository.KeyInventoryHistory, *wire.Data.InventoryHistory); err != nil {
			return err
		}
	}

	return s.store.Commit(ctx, j)
}
