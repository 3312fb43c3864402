package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	sentryslog "github.com/getsentry/sentry-go/slog"
)

const flushTimeout = 2 * time.Second

// New creates a JSON logger writing to stdout, forwarding to Sentry when
// configured. The returned function flushes pending Sentry events.
func New(cfg Config, extractors ...ContextExtractor) (*slog.Logger, func()) {
	return NewWithWriter(os.Stdout, cfg, extractors...)
}

// NewWithWriter is New with a custom output writer.
func NewWithWriter(w io.Writer, cfg Config, extractors ...ContextExtractor) (*slog.Logger, func()) {
	level, err := ParseLevel(cfg.Level)
	out := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level})
	if err != nil {
		slog.New(out).Warn("falling back to info level", slog.String("error", err.Error()))
	}

	noop := func() {}
	if cfg.Sentry.DSN == "" {
		return slog.New(NewContextHandler(out, extractors...)), noop
	}

	if err := sentry.Init(sentry.ClientOptions{
		Dsn:         cfg.Sentry.DSN,
		Environment: cfg.Sentry.Environment,
		Release:     cfg.Sentry.Release,
		EnableLogs:  true,
	}); err != nil {
		slog.New(out).Error("failed to initialize Sentry", slog.String("error", err.Error()))
		return slog.New(NewContextHandler(out, extractors...)), noop
	}

	sentryHandler := sentryslog.Option{
		EventLevel: []slog.Level{slog.LevelError},
		LogLevel:   sentryLogLevels(cfg.Sentry.MinLevel),
	}.NewSentryHandler(context.Background())

	log := slog.New(NewContextHandler(fanout{out, sentryHandler}, extractors...))
	return log, func() { sentry.Flush(flushTimeout) }
}

// NewNope creates a logger that discards all output.
func NewNope() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// sentryLogLevels lists the levels kept as Sentry logs, from min upwards.
func sentryLogLevels(min string) []slog.Level {
	lvl, err := ParseLevel(min)
	if err != nil {
		lvl = slog.LevelWarn
	}
	var out []slog.Level
	for _, l := range []slog.Level{slog.LevelDebug, slog.LevelInfo, slog.LevelWarn, slog.LevelError} {
		if l >= lvl {
			out = append(out, l)
		}
	}
	return out
}
