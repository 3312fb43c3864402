package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/deadline"
)

// Exit codes returned by Main.
const (
	ExitOK    = 0
	ExitError = 1
)

// Main runs a single variant with configuration from the process
// environment and returns the process exit code.
func Main(name string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rt, err := Bootstrap(os.Environ())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitError
	}
	defer rt.Close()

	if _, err := rt.RunOnce(ctx, name); err != nil {
		return ExitError
	}
	return ExitOK
}

// RunOnce runs the named variant once.
func (r *Runtime) RunOnce(ctx context.Context, name string) (*deadline.Result, error) {
	v, err := r.Variants.Lookup(name)
	if err != nil {
		r.Logger.ErrorContext(ctx, "unknown variant", slog.String("variant", name))
		return nil, err
	}

	res, err := r.App.Run(ctx, v)
	if err != nil {
		r.Logger.ErrorContext(ctx, "alert run failed",
			slog.String("variant", name),
			slog.String("error", err.Error()),
		)
		return res, err
	}
	return res, nil
}
