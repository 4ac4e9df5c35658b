// Package storage defines the persistence boundary of the engine: a
// key-value adapter holding serialized JSON blobs. The object store owns the
// keys exclusively; no other component writes through the adapter.
package storage

import (
	"context"
	"errors"
)

// Storage keys. They mirror the layout of previously exported data, so a
// round-trip through export/import stays compatible.
const (
	KeyObjects   = "core.objects"
	KeyReviewLog = "core.reviewLog"
)

var (
	// ErrNotFound is returned when a key has never been written.
	ErrNotFound = errors.New("key not found")
)

// Adapter persists serialized blobs by key. Implementations may fail on
// either side (quota, corruption); callers treat write failures as
// non-fatal warnings.
type Adapter interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
}
