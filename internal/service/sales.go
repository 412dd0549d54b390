package service

import (
	"context"
	"fmt"
	"time"

	"bakery-pos-api/internal/model"
	"bakery-pos-api/internal/repository"
)

// CheckoutItem is one requested cart line: a product id and how many units.
type CheckoutItem struct {
	ID       int `json:"id"`
	Quantity int `json:"quantity"`
}

// CheckoutRequest describes a sale about to be completed.
type CheckoutRequest struct {
	Items         []CheckoutItem      `json:"items"`
	PaymentMethod model.PaymentMethod `json:"paymentMethod"`
	PaymentAmount float64             `json:"paymentAmount"`
}

// CheckoutResult is the completed sale plus the change due. Change is
// computed for the caller and never persisted.
type CheckoutResult struct {
	Sale   model.Sale `json:"sale"`
	Change float64    `json:"change"`
}

// SalesService handles checkout and access to the current day's sales.
type SalesService struct {
	store repository.RecordStore

	// now is swapped out in tests for deterministic timestamps.
	now func() time.Time
}

// NewSalesService creates a new sales service.
// Returns nil if store is nil (required dependency).
func NewSalesService(store repository.RecordStore) *SalesService {
	if store == nil {
		return nil
	}
	return &SalesService{
		store: store,
		now:   time.Now,
	}
}

// Current returns the current day's sales record.
func (s *SalesService) Current(ctx context.Context) (model.SalesRecord, error) {
	return s.store.GetSales(ctx)
}

// History returns the archived day-close entries.
func (s *SalesService) History(ctx context.Context) ([]model.SalesHistoryEntry, error) {
	return s.store.GetSalesHistory(ctx)
}

// Checkout completes a sale: validates the cart against the live catalog,
// computes subtotal, HST and total, checks the payment, then decrements the
// sold stock and appends the sale in one journaled commit. The sale's line
// items are frozen copies of the catalog entries, not live references.
func (s *SalesService) Checkout(ctx context.Context, req CheckoutRequest) (CheckoutResult, error) {
	status, err := s.store.GetDayStatus(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}
	if !status.DayStarted {
		return CheckoutResult{}, ErrDayNotStarted
	}

	if len(req.Items) == 0 {
		return CheckoutResult{}, ErrEmptyCart
	}
	if !req.PaymentMethod.Valid() {
		return CheckoutResult{}, fmt.Errorf("%w: unknown payment method %q", ErrInvalidPayment, req.PaymentMethod)
	}

	inventory, err := s.store.GetInventory(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}

	byID := make(map[int]*model.InventoryItem, len(inventory))
	for i := range inventory {
		byID[inventory[i].ID] = &inventory[i]
	}

	var subtotal float64
	requested := make(map[int]int, len(req.Items))
	lines := make([]model.SaleItem, 0, len(req.Items))
	for _, line := range req.Items {
		if line.Quantity <= 0 {
			return CheckoutResult{}, fmt.Errorf("%w: quantity for product %d must be positive", ErrInvalidCart, line.ID)
		}
		product, ok := byID[line.ID]
		if !ok {
			return CheckoutResult{}, fmt.Errorf("%w: id %d", ErrProductNotFound, line.ID)
		}
		// Sufficiency is checked against the cart's running total for the
		// product, so duplicate lines for one id cannot oversell.
		requested[line.ID] += line.Quantity
		if product.Quantity < requested[line.ID] {
			return CheckoutResult{}, fmt.Errorf("%w: %s has %d left", ErrInsufficientStock, product.Name, product.Quantity)
		}

		lines = append(lines, model.SaleItem{
			ID:       product.ID,
			Name:     product.Name,
			Price:    product.Price,
			Quantity: line.Quantity,
		})
		subtotal += product.Price * float64(line.Quantity)
	}

	subtotal = roundCents(subtotal)
	hst := roundCents(subtotal * HSTRate)
	total := roundCents(subtotal + hst)

	// Non-cash payments are charged the exact total.
	payment := req.PaymentAmount
	if req.PaymentMethod != model.PaymentCash && payment == 0 {
		payment = total
	}
	if payment < total {
		return CheckoutResult{}, fmt.Errorf("%w: amount %.2f is below total %.2f", ErrInvalidPayment, payment, total)
	}

	// Decrement sold stock, clamped at zero.
	for _, line := range lines {
		product := byID[line.ID]
		product.Quantity -= line.Quantity
		if product.Quantity < 0 {
			product.Quantity = 0
		}
	}

	salesRecord, err := s.store.GetSales(ctx)
	if err != nil {
		return CheckoutResult{}, err
	}

	sale := model.Sale{
		ID:            salesRecord.NextID,
		Timestamp:     s.now().UTC().Format(time.RFC3339),
		Items:         lines,
		Subtotal:      subtotal,
		HST:           hst,
		Total:         total,
		PaymentMethod: req.PaymentMethod,
		PaymentAmount: payment,
	}
	salesRecord.DailySales = append(salesRecord.DailySales, sale)
	salesRecord.NextID++

	j := s.store.NewJournal()
	if err := j.Stage(repository.KeyInventory, inventory); err != nil {
		return CheckoutResult{}, err
	}
	if err := j.Stage(repository.KeySales, salesRecord); err != nil {
		return CheckoutResult{}, err
	}
	if err := s.store.Commit(ctx, j); err != nil {
		return CheckoutResult{}, err
	}

	return CheckoutResult{
		Sale:   sale,
		Change: roundCents(payment - total),
	}, nil
}
