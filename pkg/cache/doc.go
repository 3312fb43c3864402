// Package cache provides a small generic in-memory cache with TTL
// expiration and stampede protection.
//
// It is used to share a downloaded workbook between alert variants that fire
// at the same time, so the remote store is hit once per TTL window:
//
//	c := cache.NewMemory[[]byte](cache.WithDefaultTTL(5 * time.Minute))
//	raw, err := c.GetOrSet(ctx, path, func(ctx context.Context) ([]byte, error) {
//	    return download(ctx, path)
//	})
//
// TTL semantics for Set:
//   - Positive duration: item expires after this duration
//   - Zero: use the cache's configured default TTL
//   - Negative: item never expires
//
// Expired entries are dropped lazily, on access and on insertion.
// Concurrent GetOrSet misses for the same key call the loader once
// (golang.org/x/sync/singleflight); loader errors are never cached.
package cache
