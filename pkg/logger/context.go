package logger

import (
	"context"
	"log/slog"
)

type (
	runIDKey   struct{}
	variantKey struct{}
)

// WithRunID returns a context carrying a run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, runIDKey{}, id)
}

// RunID returns the run identifier stored in ctx, if any.
func RunID(ctx context.Context) string {
	id, _ := ctx.Value(runIDKey{}).(string)
	return id
}

// WithVariant returns a context carrying the alert variant name.
func WithVariant(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, variantKey{}, name)
}

// Variant returns the alert variant name stored in ctx, if any.
func Variant(ctx context.Context) string {
	v, _ := ctx.Value(variantKey{}).(string)
	return v
}

// RunIDExtractor adds "run_id" to records logged with a run context.
func RunIDExtractor() ContextExtractor {
	return stringExtractor("run_id", RunID)
}

// VariantExtractor adds "variant" to records logged with a variant context.
func VariantExtractor() ContextExtractor {
	return stringExtractor("variant", Variant)
}

func stringExtractor(key string, get func(context.Context) string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		if v := get(ctx); v != "" {
			return slog.String(key, v), true
		}
		return slog.Attr{}, false
	}
}
