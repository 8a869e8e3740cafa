// Package storage persists session blobs behind a key-value contract.
// The transition core only ever sees the Store interface; the encoding of
// what goes into a blob belongs to the caller.
package storage

import (
	"context"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v5"
)

// Store is an asynchronous key-value store. Load returns (nil, nil) for a
// missing key.
type Store interface {
	Save(ctx context.Context, key string, blob []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
	Close() error
}

// SaveWithRetry saves a blob, retrying transient failures with exponential
// backoff. Used by the session save hook, where a checkpoint is worth a few
// attempts but must never stall play for long.
func SaveWithRetry(ctx context.Context, store Store, key string, blob []byte) error {
	operation := func() (struct{}, error) {
		return struct{}{}, store.Save(ctx, key, blob)
	}
	_, err := backoff.Retry(ctx, operation,
		backoff.WithBackOff(backoff.NewExponentialBackOff()),
		backoff.WithMaxTries(4),
		backoff.WithMaxElapsedTime(3*time.Second),
	)
	return err
}

// MemoryStore is an in-process Store for tests and ephemeral sessions.
type MemoryStore struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Save stores a copy of the blob.
func (m *MemoryStore) Save(_ context.Context, key string, blob []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(blob))
	copy(cp, blob)
	m.blobs[key] = cp
	return nil
}

// Load returns a copy of the stored blob, or (nil, nil) if absent.
func (m *MemoryStore) Load(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.blobs[key]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(blob))
	copy(cp, blob)
	return cp, nil
}

// Close releases nothing; it exists to satisfy Store.
func (m *MemoryStore) Close() error {
	return nil
}
