package service

import (
	"context"
	"testing"
	"time"

	"bakery-pos-api/internal/repository"
	"bakery-pos-api/internal/storage"

	"github.com/stretchr/testify/require"
)

var testClock = func() time.Time {
	return time.Date(2025, 3, 16, 10, 0, 0, 0, time.UTC)
}

func newTestStore(t *testing.T) *repository.Store {
	t.Helper()

	s, err := repository.New(storage.NewMemoryBackend())
	require.NoError(t, err)
	return s
}

func openDay(t *testing.T, store repository.RecordStore) {
	t.Helper()

	day := NewDayService(store)
	day.now = testClock
	_, err := day.StartDay(context.Background())
	require.NoError(t, err)
}

func seedProduct(t *testing.T, store repository.RecordStore, name string, quantity int, price float64) int {
	t.Helper()

	inv := NewInventoryService(store)
	item, err := inv.AddProduct(context.Background(), name, quantity, price)
	require.NoError(t, err)
	return item.ID
}
