package storage

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemoryBackend_ReadMissingKey(t *testing.T) {
	m := NewMemoryBackend()

	_, err := m.Read(context.Background(), "inventory")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryBackend_WriteThenRead(t *testing.T) {
	m := NewMemoryBackend()
	ctx := context.Background()

	require.NoError(t, m.Write(ctx, "inventory", []byte(`[{"id":1}]`)))

	got, err := m.Read(ctx, "inventory")
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":1}]`, string(got))
}

func TestMemoryBackend_ReadReturnsCopy(t *testing.T) {
	m := NewMemoryBackend()
	ctx := context.Background()

	require.NoError(t, m.Write(ctx, "sales", []byte(`{"nextId":1}`)))

	got, err := m.Read(ctx, "sales")
	require.NoError(t, err)
	got[0] = 'X'

	again, err := m.Read(ctx, "sales")
	require.NoError(t, err)
	require.Equal(t, byte('{'), again[0])
}

func TestMemoryBackend_OverwriteReplaces(t *testing.T) {
	m := NewMemoryBackend()
	ctx := context.Background()

	require.NoError(t, m.Write(ctx, "day_status", []byte(`{"dayStarted":false}`)))
	require.NoError(t, m.Write(ctx, "day_status", []byte(`{"dayStarted":true}`)))

	got, err := m.Read(ctx, "day_status")
	require.NoError(t, err)
	require.JSONEq(t, `{"dayStarted":true}`, string(got))
}

func TestMemoryBackend_Delete(t *testing.T) {
	m := NewMemoryBackend()
	ctx := context.Background()

	require.NoError(t, m.Write(ctx, "inventory", []byte(`[]`)))
	m.Delete(ctx, "inventory")

	_, err := m.Read(ctx, "inventory")
	require.ErrorIs(t, err, ErrNotFound)
}
