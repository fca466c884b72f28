// Package memory provides a process-local Repository.
package memory

import (
	"context"
	"sync"

	"habit-tracker/internal/errors"
)

// Repository keeps values in a map guarded by a mutex
type Repository struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool
}

// New creates an empty in-memory repository
func New() *Repository {
	return &Repository{values: make(map[string]string)}
}

// NewWithValues creates a repository pre-populated with values
func NewWithValues(values map[string]string) *Repository {
	repo := New()
	for k, v := range values {
		repo.values[k] = v
	}
	return repo
}

// Get returns the value stored under key
func (r *Repository) Get(ctx context.Context, key string) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, errors.NewStorageError("get "+key, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()
	if r.closed {
		return "", false, errors.NewStorageError("get "+key, errClosed)
	}
	value, ok := r.values[key]
	return value, ok, nil
}

// Set stores value under key
func (r *Repository) Set(ctx context.Context, key, value string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewStorageError("set "+key, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.closed {
		return errors.NewStorageError("set "+key, errClosed)
	}
	r.values[key] = value
	return nil
}

// Close marks the repository closed; later calls fail
func (r *Repository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}

// Snapshot returns a copy of every stored value
func (r *Repository) Snapshot() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]string, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}
