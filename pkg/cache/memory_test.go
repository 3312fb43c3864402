package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/deadline/pkg/cache"
)

// fakeClock is a manually advanced time source.
type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, time.August, 1, 9, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestMemory_GetSet(t *testing.T) {
	t.Parallel()

	t.Run("returns ErrNotFound for missing key", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		_, err := c.Get(context.Background(), "missing")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("returns stored value", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[int]()
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", 42, time.Minute))

		val, err := c.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, 42, val)
	})

	t.Run("expires after ttl", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := cache.NewMemory[string](cache.WithClock(clock.Now))
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", time.Minute))

		clock.Advance(59 * time.Second)
		_, err := c.Get(ctx, "key")
		require.NoError(t, err)

		clock.Advance(2 * time.Second)
		_, err = c.Get(ctx, "key")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})

	t.Run("zero ttl uses default", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := cache.NewMemory[string](cache.WithClock(clock.Now), cache.WithDefaultTTL(time.Hour))
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", 0))

		clock.Advance(30 * time.Minute)
		require.Equal(t, 1, c.Len())

		clock.Advance(31 * time.Minute)
		require.Equal(t, 0, c.Len())
	})

	t.Run("negative ttl never expires", func(t *testing.T) {
		t.Parallel()

		clock := newFakeClock()
		c := cache.NewMemory[string](cache.WithClock(clock.Now))
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", -1))

		clock.Advance(24 * 365 * time.Hour)
		val, err := c.Get(ctx, "key")
		require.NoError(t, err)
		require.Equal(t, "value", val)
	})

	t.Run("delete removes entry", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		ctx := context.Background()
		require.NoError(t, c.Set(ctx, "key", "value", time.Minute))
		require.NoError(t, c.Delete(ctx, "key"))

		_, err := c.Get(ctx, "key")
		require.ErrorIs(t, err, cache.ErrNotFound)
	})
}

func TestMemory_GetOrSet(t *testing.T) {
	t.Parallel()

	t.Run("loads once and caches", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[[]byte]()
		var calls atomic.Int32
		load := func(context.Context) ([]byte, error) {
			calls.Add(1)
			return []byte("workbook"), nil
		}

		for range 3 {
			v, err := c.GetOrSet(context.Background(), "/path.xlsx", load)
			require.NoError(t, err)
			require.Equal(t, []byte("workbook"), v)
		}
		require.Equal(t, int32(1), calls.Load())
	})

	t.Run("errors are not cached", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		boom := errors.New("boom")

		_, err := c.GetOrSet(context.Background(), "k", func(context.Context) (string, error) {
			return "", boom
		})
		require.ErrorIs(t, err, boom)

		v, err := c.GetOrSet(context.Background(), "k", func(context.Context) (string, error) {
			return "ok", nil
		})
		require.NoError(t, err)
		require.Equal(t, "ok", v)
	})

	t.Run("concurrent misses share one load", func(t *testing.T) {
		t.Parallel()

		c := cache.NewMemory[string]()
		var calls atomic.Int32
		release := make(chan struct{})

		var wg sync.WaitGroup
		for range 10 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				v, err := c.GetOrSet(context.Background(), "k", func(context.Context) (string, error) {
					calls.Add(1)
					<-release
					return "v", nil
				})
				require.NoError(t, err)
				require.Equal(t, "v", v)
			}()
		}

		time.Sleep(20 * time.Millisecond)
		close(release)
		wg.Wait()

		require.LessOrEqual(t, calls.Load(), int32(2))
	})
}
