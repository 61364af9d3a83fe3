// Package kv provides the blob storage the inventory store persists into.
// Each collection lives under a single stable key; backends only need to
// round-trip opaque byte slices.
package kv

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no value exists under the key.
// Callers treat it as an empty collection, never as a failure.
var ErrNotFound = errors.New("kv: key not found")

// Store is the contract every persistence backend implements.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
