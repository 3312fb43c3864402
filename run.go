package deadline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/deadline/internal/variant"
	"github.com/dmitrymomot/deadline/pkg/schedule"
	"github.com/dmitrymomot/deadline/pkg/sheet"
)

// load fetches and extracts the variant's rows.
// Failures mark res.NoData and yield no rows.
func (a *App) load(ctx context.Context, v variant.Variant, res *Result) []schedule.Row {
	raw, err := a.source.Fetch(ctx, v.Path)
	if err != nil {
		res.NoData = true
		a.logger.ErrorContext(ctx, "failed to fetch schedule",
			slog.String("path", v.Path),
			slog.String("error", err.Error()),
		)
		return nil
	}

	rows, err := sheet.Extract(raw, v.Layout)
	if err != nil {
		res.NoData = true
		a.logger.ErrorContext(ctx, "failed to read schedule",
			slog.String("path", v.Path),
			slog.String("sheet", v.Layout.Sheet),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return rows
}

func (a *App) notify(ctx context.Context, v variant.Variant, res *Result) error {
	recipients := a.recipients(v.RecipientKey)
	if len(recipients) == 0 && !a.dryRun() {
		return fmt.Errorf("%w: variant %q, key %q", ErrNoRecipients, v.Name, v.RecipientKey)
	}

	if err := a.notifier.SendText(ctx, res.Subject, res.Body, recipients); err != nil {
		return errors.Join(ErrDeliveryFailed, err)
	}
	res.Notified = true
	return nil
}

// dryRun reports whether the notifier only logs instead of delivering.
func (a *App) dryRun() bool {
	dr, ok := a.notifier.(interface{ DryRun() bool })
	return ok && dr.DryRun()
}
