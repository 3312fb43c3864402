package cache

import "time"

// Option configures the in-memory cache.
type Option func(*options)

type options struct {
	now        func() time.Time
	defaultTTL time.Duration
}

func defaultOptions() *options {
	return &options{
		now:        time.Now,
		defaultTTL: 5 * time.Minute,
	}
}

// WithDefaultTTL sets the expiration used when Set is called with a zero TTL.
// Default: 5 minutes.
func WithDefaultTTL(d time.Duration) Option {
	return func(o *options) {
		o.defaultTTL = d
	}
}

// WithClock sets the time source used for expiration.
// Default: time.Now.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.now = now
		}
	}
}
