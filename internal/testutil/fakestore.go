// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sort"
	"sync"

	"todos/internal/storage"
)

// FakeStore is an in-memory implementation of storage.Store for testing.
type FakeStore struct {
	mu     sync.RWMutex
	data   map[string]string
	writes int
	closed bool

	// Error injection for testing
	GetErr    error
	SetErr    error
	DeleteErr error
	KeysErr   error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{data: make(map[string]string)}
}

// Put seeds a value without counting it as a write.
func (f *FakeStore) Put(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
}

// Value returns the raw value under key and whether it exists.
func (f *FakeStore) Value(key string) (string, bool) {
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.data[key]
	return v, ok
}

// Writes returns the number of successful Set and Delete calls.
func (f *FakeStore) Writes() int {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.writes
}

// Closed reports whether Close was called.
func (f *FakeStore) Closed() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.closed
}

// Get implements storage.Store.
func (f *FakeStore) Get(ctx context.Context, key string) (string, error) {
	if f.GetErr != nil {
		return "", f.GetErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	v, ok := f.data[key]
	if !ok {
		return "", storage.ErrNotFound
	}
	return v, nil
}

// Set implements storage.Store.
func (f *FakeStore) Set(ctx context.Context, key, value string) error {
	if f.SetErr != nil {
		return f.SetErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.data[key] = value
	f.writes++
	return nil
}

// Delete implements storage.Store.
func (f *FakeStore) Delete(ctx context.Context, key string) error {
	if f.DeleteErr != nil {
		return f.DeleteErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.data, key)
	f.writes++
	return nil
}

// Keys implements storage.Store.
func (f *FakeStore) Keys(ctx context.Context) ([]string, error) {
	if f.KeysErr != nil {
		return nil, f.KeysErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	keys := make([]string, 0, len(f.data))
	for k := range f.data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys, nil
}

// Close implements storage.Store.
func (f *FakeStore) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closed = true
	return nil
}
