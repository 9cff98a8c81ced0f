// Package storage defines the backend-agnostic key/value interface that task
// lists are persisted to.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("key not found")

// Store is a string key/value store.
// Backends live under internal/backend; commands never import them directly.
type Store interface {
	// Get returns the value stored under key, or ErrNotFound.
	Get(ctx context.Context, key string) (string, error)

	// Set overwrites the value stored under key.
	Set(ctx context.Context, key, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Keys returns all keys in sorted order.
	Keys(ctx context.Context) ([]string, error)

	// Close releases resources held by the backend.
	Close() error
}
