// Package storage provides the persistence tiers for the record store.
//
// A Backend is a flat key/value document store: one JSON document per key.
// Four tiers exist, ranked by capability: a database file (SQLite, or MySQL
// when a networked database is configured), plain JSON files in a data
// directory, an external Redis key/value service, and an in-process map as
// the last resort. Select probes the ranked list once at startup and the
// chosen tier is recorded for diagnostics.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Read when no document exists for the key.
var ErrNotFound = errors.New("storage: record not found")

// Backend reads and writes JSON documents by key.
type Backend interface {
	// Read returns the document stored under key, or ErrNotFound.
	Read(ctx context.Context, key string) ([]byte, error)

	// Write stores value under key, replacing any previous document.
	Write(ctx context.Context, key string, value []byte) error

	// Name identifies the tier ("sqlite", "mysql", "file", "redis", "memory").
	Name() string

	// Close releases the backend's resources.
	Close() error
}
