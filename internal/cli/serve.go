package cli

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dmitrymomot/deadline/internal/scheduler"
	"github.com/dmitrymomot/deadline/pkg/health"
)

// Serve runs every enabled variant on its cron schedule and serves health
// endpoints on the configured address until ctx is cancelled.
func (r *Runtime) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", r.Config.HealthAddr)
	if err != nil {
		return err
	}
	return r.serve(ctx, ln)
}

func (r *Runtime) serve(ctx context.Context, ln net.Listener) error {
	log := r.Logger

	sched, err := scheduler.New(r.App, r.Variants, r.Location, scheduler.WithLogger(log))
	if err != nil {
		_ = ln.Close()
		return err
	}

	server := &http.Server{
		Handler: health.Routes(health.Checks{
			"scheduler": sched.Healthcheck(),
		}, health.WithLogger(log)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	if err := sched.Start(ctx); err != nil {
		_ = ln.Close()
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("health server starting", slog.String("address", ln.Addr().String()))
		if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	var serveErr error
	select {
	case serveErr = <-errCh:
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), r.Config.ShutdownTimeout)
	defer cancel()

	errs := []error{serveErr}
	if err := server.Shutdown(shutdownCtx); err != nil {
		errs = append(errs, err)
	}
	if err := sched.Stop(shutdownCtx); err != nil {
		errs = append(errs, err)
	}

	if err := errors.Join(errs...); err != nil {
		log.Error("shutdown completed with errors", slog.String("error", err.Error()))
		return err
	}

	log.Info("shutdown completed")
	return nil
}
