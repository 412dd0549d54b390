package service

import (
	"context"
	"fmt"

	"bakery-pos-api/internal/model"
	"bakery-pos-api/internal/repository"
)

// InventoryService handles catalog business logic. Every mutation requires an
// open trading day; the rule is uniform across add, update, delete and both
// quantity directions.
type InventoryService struct {
	store repository.RecordStore
}

// NewInventoryService creates a new inventory service.
// Returns nil if store is nil (required dependency).
func NewInventoryService(store repository.RecordStore) *InventoryService {
	if store == nil {
		return nil
	}
	return &InventoryService{store: store}
}

// requireOpenDay rejects the operation while the trading day is closed.
func (s *InventoryService) requireOpenDay(ctx context.Context) error {
	status, err := s.store.GetDayStatus(ctx)
	if err != nil {
		return err
	}
	if !status.DayStarted {
		return ErrDayNotStarted
	}
	return nil
}

// List returns the live catalog.
func (s *InventoryService) List(ctx context.Context) ([]model.InventoryItem, error) {
	return s.store.GetInventory(ctx)
}

// History returns the archived end-of-day inventory snapshots.
func (s *InventoryService) History(ctx context.Context) ([]model.InventoryHistoryEntry, error) {
	return s.store.GetInventoryHistory(ctx)
}

// AddProduct validates and appends a new product. The id is assigned by the
// record store.
func (s *InventoryService) AddProduct(ctx context.Context, name string, quantity int, price float64) (model.InventoryItem, error) {
	if err := s.requireOpenDay(ctx); err != nil {
		return model.InventoryItem{}, err
	}

	if name == "" {
		return model.InventoryItem{}, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if quantity < 0 {
		return model.InventoryItem{}, fmt.Errorf("%w: quantity must not be negative", ErrInvalidProduct)
	}
	if price < 0 {
		return model.InventoryItem{}, fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}

	return s.store.AddProduct(ctx, model.InventoryItem{
		Name:     name,
		Quantity: quantity,
		Price:    roundCents(price),
	})
}

// UpdateProduct merges partial fields into an existing product.
func (s *InventoryService) UpdateProduct(ctx context.Context, id int, update model.ProductUpdate) (model.InventoryItem, error) {
	if err := s.requireOpenDay(ctx); err != nil {
		return model.InventoryItem{}, err
	}

	if update.Name != nil && *update.Name == "" {
		return model.InventoryItem{}, fmt.Errorf("%w: name is required", ErrInvalidProduct)
	}
	if update.Quantity != nil && *update.Quantity < 0 {
		return model.InventoryItem{}, fmt.Errorf("%w: quantity must not be negative", ErrInvalidProduct)
	}
	if update.Price != nil && *update.Price < 0 {
		return model.InventoryItem{}, fmt.Errorf("%w: price must not be negative", ErrInvalidProduct)
	}

	updated, err := s.store.UpdateProduct(ctx, id, update)
	if err != nil {
		return model.InventoryItem{}, err
	}
	if updated == nil {
		return model.InventoryItem{}, ErrProductNotFound
	}
	return *updated, nil
}

// AdjustQuantity applies a signed quantity change to a product, clamped so
// the stored quantity never drops below zero.
func (s *InventoryService) AdjustQuantity(ctx context.Context, id, change int) (model.InventoryItem, error) {
	if err := s.requireOpenDay(ctx); err != nil {
		return model.InventoryItem{}, err
	}

	items, err := s.store.GetInventory(ctx)
	if err != nil {
		return model.InventoryItem{}, err
	}

	var current *model.InventoryItem
	for i := range items {
		if items[i].ID == id {
			current = &items[i]
			break
		}
	}
	if current == nil {
		return model.InventoryItem{}, ErrProductNotFound
	}

	newQuantity := current.Quantity + change
	if newQuantity < 0 {
		newQuantity = 0
	}

	updated, err := s.store.UpdateProduct(ctx, id, model.ProductUpdate{Quantity: &newQuantity})
	if err != nil {
		return model.InventoryItem{}, err
	}
	return *updated, nil
}

// DeleteProduct removes a product. Deleting an id that was never present
// still succeeds (the record-store delete is idempotent).
func (s *InventoryService) DeleteProduct(ctx context.Context, id int) error {
	if err := s.requireOpenDay(ctx); err != nil {
		return err
	}
	return s.store.DeleteProduct(ctx, id)
}
