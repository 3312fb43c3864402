// Package logger provides structured JSON logging with run-scoped context
// attributes and optional Sentry reporting.
//
// Every alert run carries a run id and the variant name in its context.
// Context extractors copy them onto each record, so lines from concurrent
// variants in the daemon can be told apart:
//
//	log, flush := logger.New(cfg, logger.RunIDExtractor(), logger.VariantExtractor())
//	defer flush()
//
//	ctx = logger.WithRunID(ctx, uuid.NewString())
//	ctx = logger.WithVariant(ctx, "sewing")
//	log.InfoContext(ctx, "alerts selected", slog.Int("count", 3))
//	// {"level":"INFO","msg":"alerts selected","count":3,"run_id":"...","variant":"sewing"}
//
// When SentryConfig.DSN is set, errors become Sentry issues and warnings are
// kept as Sentry logs. If the DSN is empty or Sentry fails to initialize,
// only stdout logging is used. The flush function returned by New waits for
// buffered Sentry events; short-lived processes must call it before exit.
package logger
