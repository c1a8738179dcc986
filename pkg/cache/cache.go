// Package cache provides caching for generation pipeline stages.
//
// Outline generation and image generation are slow, paid network calls, so
// their results are cached aggressively. Rendered decks are cached briefly so
// repeated runs with identical inputs are instant.
//
// # Backends
//
//   - FileCache: sha256-sharded JSON entries on disk, for CLI usage
//   - RedisCache: shared cache for server deployments
//   - NullCache: disables caching (testing, --no-cache)
//
// # Keys
//
// Cache keys are built by a Keyer so that every input that affects a stage's
// output is part of the key. See DefaultKeyer.
package cache

import (
	"context"
	"time"
)

// Cache is the interface all cache backends implement.
type Cache interface {
	// Get retrieves a value. The second return value reports whether the key
	// was present and unexpired.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value with the given TTL. A zero TTL means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// TTLs per stage. Outlines and images are expensive to produce and stable for
// a given prompt; rendered decks are cheap and invalidated often by theme or
// layout tweaks.
const (
	TTLOutline = 24 * time.Hour
	TTLImage   = 7 * 24 * time.Hour
	TTLDeck    = time.Hour
)
