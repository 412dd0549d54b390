package repository

import (
	"context"
	"encoding/json"
	"testing"

	"bakery-pos-api/internal/model"
	"bakery-pos-api/internal/storage"

	"github.com/stretchr/testify/require"
)

func TestJournal_CommitAppliesAllStagedWrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	j := s.NewJournal()
	require.NoError(t, j.Stage(KeyInventory, []model.InventoryItem{{ID: 1, Name: "Bread", Quantity: 5}}))
	require.NoError(t, j.Stage(KeySales, model.SalesRecord{DailySales: []model.Sale{}, NextID: 4}))
	require.NoError(t, s.Commit(ctx, j))

	items, err := s.GetInventory(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)

	record, err := s.GetSales(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, record.NextID)
}

func TestJournal_CommitClearsManifest(t *testing.T) {
	backend := storage.NewMemoryBackend()
	s, err := New(backend)
	require.NoError(t, err)
	ctx := context.Background()

	j := s.NewJournal()
	require.NoError(t, j.Stage(KeyInventory, []model.InventoryItem{}))
	require.NoError(t, s.Commit(ctx, j))

	data, err := backend.Read(ctx, KeyJournal)
	require.NoError(t, err)
	require.JSONEq(t, `[]`, string(data))
}

func TestJournal_StagingSameKeyKeepsLaterValue(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	j := s.NewJournal()
	require.NoError(t, j.Stage(KeySales, model.SalesRecord{NextID: 1}))
	require.NoError(t, j.Stage(KeySales, model.SalesRecord{NextID: 7}))
	require.Equal(t, 1, j.Len())
	require.NoError(t, s.Commit(ctx, j))

	record, err := s.GetSales(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, record.NextID)
}

func TestJournal_EmptyCommitIsNoop(t *testing.T) {
	backend := storage.NewMemoryBackend()
	s, err := New(backend)
	require.NoError(t, err)

	require.NoError(t, s.Commit(context.Background(), s.NewJournal()))

	_, err = backend.Read(context.Background(), KeyJournal)
	require.ErrorIs(t, err, storage.ErrNotFound)
}

func TestStore_RecoversInterruptedCommit(t *testing.T) {
	backend := storage.NewMemoryBackend()
	ctx := context.Background()

	// Simulate a process that died after writing the manifest but before
	// applying the staged records.
	staged := []journalEntry{
		{Key: KeySales, Value: json.RawMessage(`{"dailySales":[],"nextId":1}`)},
		{Key: KeyDayStatus, Value: json.RawMessage(`{"dayStarted":false,"dayStartTime":null}`)},
	}
	manifest, err := json.Marshal(staged)
	require.NoError(t, err)
	require.NoError(t, backend.Write(ctx, KeyJournal, manifest))

	// Pre-existing state the interrupted commit was about to replace.
	require.NoError(t, backend.Write(ctx, KeySales, []byte(`{"dailySales":[{"id":1}],"nextId":2}`)))

	s, err := New(backend)
	require.NoError(t, err)
	require.True(t, s.Recovered())

	record, err := s.GetSales(ctx)
	require.NoError(t, err)
	require.Empty(t, record.DailySales)
	require.Equal(t, 1, record.NextID)

	// The manifest is cleared after replay.
	s2, err := New(backend)
	require.NoError(t, err)
	require.False(t, s2.Recovered())
}

func TestStore_CleanManifestNeedsNoRecovery(t *testing.T) {
	s := newTestStore(t)
	require.False(t, s.Recovered())
}
