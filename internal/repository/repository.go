// Package repository defines the key-value contract the tracker persists through.
package repository

import "context"

// Repository is a string key-value store. Each call is independent; there
// are no multi-key transactions.
type Repository interface {
	// Get returns the stored value and true, or "" and false when the key
	// has never been written.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
