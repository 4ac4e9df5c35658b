package storage

import (
	"context"
	"sync"
)

// Memory is an in-process Adapter. Used in tests and as the last-resort
// backend when no database path is configured.
type Memory struct {
	mu    sync.Mutex
	blobs map[string][]byte

	// FailWrites makes every Set return this error when non-nil. Lets
	// tests exercise the persistence-warning path.
	FailWrites error
}

// NewMemory creates an empty in-memory adapter.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

func (m *Memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	blob, ok := m.blobs[key]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]byte, len(blob))
	copy(out, blob)
	return out, nil
}

func (m *Memory) Set(_ context.Context, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites != nil {
		return m.FailWrites
	}
	blob := make([]byte, len(value))
	copy(blob, value)
	m.blobs[key] = blob
	return nil
}
