package storage

import (
	"context"
	"log"
	"sync/atomic"
)

// Fallback wraps a primary backend with the in-memory tier. Any primary I/O
// failure degrades silently: the write lands in memory and still reports
// success, so callers see a working store with a weaker durability guarantee.
// Degradations are counted for the admin diagnostics endpoint.
type Fallback struct {
	primary      Backend
	overlay      *MemoryBackend
	degradations atomic.Int64
}

// NewFallback wraps primary with an in-memory overlay. A primary that is
// already the memory tier needs no wrapper, but wrapping it is harmless.
func NewFallback(primary Backend) *Fallback {
	return &Fallback{
		primary: primary,
		overlay: NewMemoryBackend(),
	}
}

// Read consults the overlay first: a key that degraded on write only exists
// there. Primary errors other than ErrNotFound also degrade to the overlay.
func (f *Fallback) Read(ctx context.Context, key string) ([]byte, error) {
	if value, err := f.overlay.Read(ctx, key); err == nil {
		return value, nil
	}

	value, err := f.primary.Read(ctx, key)
	if err != nil && err != ErrNotFound {
		log.Printf("Warning: %s read failed for %s, degrading to memory: %v",
			f.primary.Name(), key, err)
		f.degradations.Add(1)
		return nil, ErrNotFound
	}
	return value, err
}

// Write attempts the primary tier and silently degrades to memory on failure.
// A successful primary write drops any stale overlay entry for the key.
func (f *Fallback) Write(ctx context.Context, key string, value []byte) error {
	if err := f.primary.Write(ctx, key, value); err != nil {
		log.Printf("Warning: %s write failed for %s, degrading to memory: %v",
			f.primary.Name(), key, err)
		f.degradations.Add(1)
		return f.overlay.Write(ctx, key, value)
	}

	f.overlay.Delete(ctx, key)
	return nil
}

// Degradations returns how many operations fell back to the memory tier.
func (f *Fallback) Degradations() int64 {
	return f.degradations.Load()
}

// Name returns the primary tier name.
func (f *Fallback) Name() string { return f.primary.Name() }

// Close closes the primary backend.
func (f *Fallback) Close() error { return f.primary.Close() }

var _ Backend = (*Fallback)(nil)
