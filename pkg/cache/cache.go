// Package cache stores rendered badge artifacts.
//
// Rendering a badge is cheap, but rasterizing or converting it to PDF is not,
// and the HTTP server tends to be asked for the same few icons repeatedly.
// The [Cache] interface is implemented by a file-backed cache for the CLI
// ([FileCache]), a Redis-backed cache shared between server replicas
// ([RedisCache]), and a no-op cache ([NullCache]).
//
// Keys are produced by a [Keyer]. [DefaultKeyer] hashes the rendering inputs
// so that any change to the resolved instructions yields a new key;
// [ScopedKeyer] namespaces keys, for example per catalog.
//
// All implementations are safe for concurrent use.
package cache

import (
	"context"
	"time"
)

// Cache is a byte store with per-entry expiration.
type Cache interface {
	// Get returns the value for key. The boolean reports whether the key
	// was present; a miss is not an error.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A ttl of zero means no expiration.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases resources held by the cache.
	Close() error
}

// Default TTLs.
const (
	// TTLArtifact applies to single rendered badges.
	TTLArtifact = 7 * 24 * time.Hour

	// TTLSheet applies to contact sheets, which change whenever a catalog does.
	TTLSheet = 24 * time.Hour
)

// WithTTL returns a cache that stores every entry with ttl, overriding the
// ttl passed to Set. A non-positive ttl returns c unchanged.
func WithTTL(c Cache, ttl time.Duration) Cache {
	if ttl <= 0 {
		return c
	}
	return ttlCache{Cache: c, ttl: ttl}
}

type ttlCache struct {
	Cache
	ttl time.Duration
}

func (c ttlCache) Set(ctx context.Context, key string, data []byte, _ time.Duration) error {
	return c.Cache.Set(ctx, key, data, c.ttl)
}
