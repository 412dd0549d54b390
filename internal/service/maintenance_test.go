package service

import (
	"context"
	"testing"

	"bakery-pos-api/internal/model"
	"bakery-pos-api/internal/repository"

	"github.com/stretchr/testify/require"
)

// seedBusyStore fills every collection so the resets have something to wipe.
func seedBusyStore(t *testing.T) *repository.Store {
	t.Helper()
	store := newTestStore(t)
	openDay(t, store)
	ctx := context.Background()

	id := seedProduct(t, store, "Bread", 10, 7.00)
	sales := NewSalesService(store)
	_, err := sales.Checkout(ctx, CheckoutRequest{
		Items:         []CheckoutItem{{ID: id, Quantity: 2}},
		PaymentMethod: model.PaymentCash,
		PaymentAmount: 20,
	})
	require.NoError(t, err)

	day := NewDayService(store)
	_, err = day.EndDay(ctx)
	require.NoError(t, err)

	// Reopen and sell again so the live records are non-default too.
	openDay(t, store)
	_, err = sales.Checkout(ctx, CheckoutRequest{
		Items:         []CheckoutItem{{ID: id, Quantity: 1}},
		PaymentMethod: model.PaymentCard,
	})
	require.NoError(t, err)

	return store
}

func TestMaintenanceService_ResetAll(t *testing.T) {
	store := seedBusyStore(t)
	ctx := context.Background()

	require.NoError(t, NewMaintenanceService(store).ResetAll(ctx))

	items, err := store.GetInventory(ctx)
	require.NoError(t, err)
	require.Empty(t, items)

	record, err := store.GetSales(ctx)
	require.NoError(t, err)
	require.Empty(t, record.DailySales)
	require.Equal(t, 1, record.NextID)

	salesHistory, err := store.GetSalesHistory(ctx)
	require.NoError(t, err)
	require.Empty(t, salesHistory)

	inventoryHistory, err := store.GetInventoryHistory(ctx)
	require.NoError(t, err)
	require.Empty(t, inventoryHistory)

	status, err := store.GetDayStatus(ctx)
	require.NoError(t, err)
	require.False(t, status.DayStarted)
	require.Nil(t, status.DayStartTime)
}

func TestMaintenanceService_ResetInventoryKeepsHistory(t *testing.T) {
	store := seedBusyStore(t)
	ctx := context.Background()

	require.NoError(t, NewMaintenanceService(store).ResetInventory(ctx))

	items, err := store.GetInventory(ctx)
	require.NoError(t, err)
	require.Empty(t, items)

	record, err := store.GetSales(ctx)
	require.NoError(t, err)
	require.Empty(t, record.DailySales)
	require.Equal(t, 1, record.NextID)

	status, err := store.GetDayStatus(ctx)
	require.NoError(t, err)
	require.False(t, status.DayStarted)

	salesHistory, err := store.GetSalesHistory(ctx)
	require.NoError(t, err)
	require.Len(t, salesHistory, 1)

	inventoryHistory, err := store.GetInventoryHistory(ctx)
	require.NoError(t, err)
	require.Len(t, inventoryHistory, 1)
}
