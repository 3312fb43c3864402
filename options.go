package deadline

import (
	"log/slog"
	"time"

	"github.com/dmitrymomot/deadline/pkg/digest"
)

// DefaultLocation is the time zone used to determine "today".
const DefaultLocation = "Asia/Tokyo"

// Option configures an App.
type Option func(*App)

// WithLogger sets the application logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithClock sets the time source. Defaults to time.Now.
func WithClock(now func() time.Time) Option {
	return func(a *App) {
		if now != nil {
			a.now = now
		}
	}
}

// WithLocation sets the time zone used to determine "today".
// Defaults to Asia/Tokyo, or UTC when the zone database is unavailable.
func WithLocation(loc *time.Location) Option {
	return func(a *App) {
		if loc != nil {
			a.loc = loc
		}
	}
}

// WithFormatter replaces the default digest formatter.
func WithFormatter(f *digest.Formatter) Option {
	return func(a *App) {
		if f != nil {
			a.formatter = f
		}
	}
}

// WithRecipients sets the resolver from a variant's recipient key to
// addresses. An empty key asks for the default list.
func WithRecipients(resolve func(key string) []string) Option {
	return func(a *App) {
		if resolve != nil {
			a.recipients = resolve
		}
	}
}

// WithRunID sets the run id generator. Defaults to random UUIDs.
func WithRunID(next func() string) Option {
	return func(a *App) {
		if next != nil {
			a.runID = next
		}
	}
}
