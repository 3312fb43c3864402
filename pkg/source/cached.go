package source

import (
	"context"

	"github.com/dmitrymomot/deadline/pkg/cache"
)

// Cached is a read-through cache in front of another Source.
// Failed fetches are not cached.
type Cached struct {
	src   Source
	cache *cache.Memory[[]byte]
}

// NewCached wraps src with c.
func NewCached(src Source, c *cache.Memory[[]byte]) *Cached {
	return &Cached{src: src, cache: c}
}

// Fetch returns the cached bytes for path, downloading them on a miss.
func (c *Cached) Fetch(ctx context.Context, path string) ([]byte, error) {
	return c.cache.GetOrSet(ctx, path, func(ctx context.Context) ([]byte, error) {
		return c.src.Fetch(ctx, path)
	})
}

// Invalidate drops the cached bytes for path.
func (c *Cached) Invalidate(ctx context.Context, path string) error {
	return c.cache.Delete(ctx, path)
}
