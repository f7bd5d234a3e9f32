// Package interfaces defines the core interfaces used throughout the application.
// These interfaces allow for dependency injection and make the code testable.
package interfaces

import (
	"context"
	"time"
)

// Cache defines the interface for cache operations.
// Implementations are in-memory, Redis or SQLite.
//
// Example usage:
//
//	// Store a listing for five minutes
//	err := cache.Set(ctx, "listing:nba", payload, 5*time.Minute)
//
//	// Retrieve it
//	data, err := cache.Get(ctx, "listing:nba")
//	if errors.IsCacheMiss(err) {
//		// fetch from Reddit
//	}
type Cache interface {
	// Get retrieves a value from the cache by key.
	// Returns an error wrapping errors.ErrCacheMiss if the key is absent or expired.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value in the cache with the given key and TTL.
	// If ttl is 0, the value should be stored indefinitely.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a value from the cache by key.
	// Returns nil if the key doesn't exist.
	Delete(ctx context.Context, key string) error
}
