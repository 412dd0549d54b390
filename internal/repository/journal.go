package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"bakery-pos-api/internal/storage"
)

// KeyJournal holds the manifest of a staged multi-record commit. The store
// never hands this key out through the typed accessors.
const KeyJournal = "journal"

// journalEntry is one staged record write.
type journalEntry struct {
	Key   string          `json:"key"`
	Value json.RawMessage `json:"value"`
}

// Journal stages a set of record mutations that belong to one logical
// transaction (day close, resets, backup import). Commit persists the full
// staged set as a manifest before touching any record, so an interrupted
// commit can be replayed at the next open instead of leaving the store with
// some collections updated and others not.
type Journal struct {
	entries []journalEntry
}

// NewJournal starts an empty journal.
func (s *Store) NewJournal() *Journal {
	return &Journal{}
}

// Stage marshals value and queues it for the given record key. A key staged
// twice keeps the later value.
func (j *Journal) Stage(key string, value interface{}) error {
	data, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode staged %s: %w", key, err)
	}

	for i := range j.entries {
		if j.entries[i].Key == key {
			j.entries[i].Value = data
			return nil
		}
	}
	j.entries = append(j.entries, journalEntry{Key: key, Value: data})
	return nil
}

// Len returns the number of staged writes.
func (j *Journal) Len() int { return len(j.entries) }

// Commit writes the manifest first, applies each staged record write, then
// clears the manifest. Whole-document writes make replay idempotent: if the
// process dies between manifest and clear, recovery at the next open applies
// the same values again.
func (s *Store) Commit(ctx context.Context, j *Journal) error {
	if j == nil || len(j.entries) == 0 {
		return nil
	}

	manifest, err := json.Marshal(j.entries)
	if err != nil {
		return fmt.Errorf("failed to encode journal: %w", err)
	}
	if err := s.backend.Write(ctx, KeyJournal, manifest); err != nil {
		return fmt.Errorf("failed to write journal: %w", err)
	}

	if err := s.applyEntries(ctx, j.entries); err != nil {
		return err
	}

	if err := s.clearJournal(ctx); err != nil {
		return err
	}
	return nil
}

func (s *Store) applyEntries(ctx context.Context, entries []journalEntry) error {
	for _, entry := range entries {
		if err := s.backend.Write(ctx, entry.Key, entry.Value); err != nil {
			return fmt.Errorf("failed to apply staged %s: %w", entry.Key, err)
		}
	}
	return nil
}

func (s *Store) clearJournal(ctx context.Context) error {
	if err := s.backend.Write(ctx, KeyJournal, []byte("[]")); err != nil {
		return fmt.Errorf("failed to clear journal: %w", err)
	}
	return nil
}

// recoverJournal replays a non-empty manifest left behind by an interrupted
// commit. Returns true when a replay happened.
func (s *Store) recoverJournal(ctx context.Context) (bool, error) {
	data, err := s.backend.Read(ctx, KeyJournal)
	if err != nil {
		if err == storage.ErrNotFound {
			return false, nil
		}
		return false, err
	}

	var entries []journalEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return false, fmt.Errorf("failed to decode journal: %w", err)
	}
	if len(entries) == 0 {
		return false, nil
	}

	log.Printf("[Store] Incomplete commit detected, replaying %d staged writes", len(entries))

	if err := s.applyEntries(ctx, entries); err != nil {
		return false, err
	}
	if err := s.clearJournal(ctx); err != nil {
		return false, err
	}
	return true, nil
}
