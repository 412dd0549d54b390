package service

import (
	"context"
	"encoding/json"
	"testing"

	"bakery-pos-api/internal/model"
	"bakery-pos-api/internal/repository"

	"github.com/stretchr/testify/require"
)

func exportImport(t *testing.T, src, dst *repository.Store) {
	t.Helper()
	ctx := context.Background()

	envelope, err := NewBackupService(src).Export(ctx)
	require.NoError(t, err)

	raw, err := json.Marshal(envelope)
	require.NoError(t, err)

	require.NoError(t, NewBackupService(dst).Import(ctx, raw))
}

func TestBackupService_RoundTripRestoresStore(t *testing.T) {
	src := newTestStore(t)
	openDay(t, src)
	ctx := context.Background()

	id := seedProduct(t, src, "Bread", 5, 7.00)
	sales := NewSalesService(src)
	_, err := sales.Checkout(ctx, CheckoutRequest{
		Items:         []CheckoutItem{{ID: id, Quantity: 2}},
		PaymentMethod: model.PaymentCash,
		PaymentAmount: 20,
	})
	require.NoError(t, err)

	day := NewDayService(src)
	_, err = day.EndDay(ctx)
	require.NoError(t, err)

	dst := newTestStore(t)
	exportImport(t, src, dst)

	srcInventory, err := src.GetInventory(ctx)
	require.NoError(t, err)
	dstInventory, err := dst.GetInventory(ctx)
	require.NoError(t, err)
	require.Equal(t, srcInventory, dstInventory)

	srcSales, err := src.GetSales(ctx)
	require.NoError(t, err)
	dstSales, err := dst.GetSales(ctx)
	require.NoError(t, err)
	require.Equal(t, srcSales, dstSales)

	srcHistory, err := src.GetSalesHistory(ctx)
	require.NoError(t, err)
	dstHistory, err := dst.GetSalesHistory(ctx)
	require.NoError(t, err)
	require.Equal(t, srcHistory, dstHistory)

	srcInvHistory, err := src.GetInventoryHistory(ctx)
	require.NoError(t, err)
	dstInvHistory, err := dst.GetInventoryHistory(ctx)
	require.NoError(t, err)
	require.Equal(t, srcInvHistory, dstInvHistory)
}

func TestBackupService_RoundTripEmptyStore(t *testing.T) {
	src := newTestStore(t)
	dst := newTestStore(t)

	exportImport(t, src, dst)

	inventory, err := dst.GetInventory(context.Background())
	require.NoError(t, err)
	require.Empty(t, inventory)

	record, err := dst.GetSales(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, record.NextID)
}

func TestBackupService_ImportRejectsMissingEnvelopeFields(t *testing.T) {
	store := newTestStore(t)
	openDay(t, store)
	seedProduct(t, store, "Bread", 5, 7.00)

	svc := NewBackupService(store)
	ctx := context.Background()

	cases := []string{
		`not json`,
		`{}`,
		`{"timestamp":"2025-03-16T10:00:00Z"}`,
		`{"data":{"inventory":[]}}`,
		`{"timestamp":"","data":{}}`,
	}
	for _, raw := range cases {
		require.ErrorIs(t, svc.Import(ctx, []byte(raw)), ErrInvalidBackup)
	}

	// No partial writes happened.
	items, err := store.GetInventory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestBackupService_PartialEnvelopeLeavesAbsentCollectionsUntouched(t *testing.T) {
	store := newTestStore(t)
	openDay(t, store)
	seedProduct(t, store, "Bread", 5, 7.00)
	ctx := context.Background()

	svc := NewBackupService(store)
	raw := []byte(`{
		"timestamp": "2025-03-16T10:00:00Z",
		"data": {
			"sales": {"dailySales": [], "nextId": 9}
		}
	}`)
	require.NoError(t, svc.Import(ctx, raw))

	// Sales overwritten, inventory untouched.
	record, err := store.GetSales(ctx)
	require.NoError(t, err)
	require.Equal(t, 9, record.NextID)

	items, err := store.GetInventory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestBackupService_ExportStampsTimestamp(t *testing.T) {
	store := newTestStore(t)
	svc := NewBackupService(store)
	svc.now = testClock

	envelope, err := svc.Export(context.Background())
	require.NoError(t, err)
	require.Equal(t, "2025-03-16T10:00:00Z", envelope.Timestamp)
}
