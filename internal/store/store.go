package store

import (
	"encoding/json"
	"fmt"
)

// Store is the shared key-value namespace backing every collection. Values
// are whole JSON documents; Set is a full overwrite and the last writer
// wins. Callers do read-modify-write over entire collections.
type Store interface {
	// Get returns the raw value for key. A missing key is (_, false, nil).
	Get(key string) (value string, ok bool, err error)
	// Set overwrites the value for key.
	Set(key, value string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(key string) error
	// Keys lists every key currently present.
	Keys() ([]string, error)
}

// Read decodes the collection at key, falling back to def when the key is
// missing, the backend fails, or the stored value is not valid JSON for T.
// It never returns an error: corrupted state degrades to the default.
func Read[T any](s Store, key string, def T) T {
	raw, ok, err := s.Get(key)
	if err != nil || !ok {
		return def
	}
	var v T
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return def
	}
	return v
}

// Write encodes v and overwrites the collection at key.
func Write[T any](s Store, key string, v T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode collection %s: %w", key, err)
	}
	if err := s.Set(key, string(raw)); err != nil {
		return fmt.Errorf("failed to write collection %s: %w", key, err)
	}
	return nil
}
