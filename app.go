package deadline

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/deadline/internal/variant"
	"github.com/dmitrymomot/deadline/pkg/digest"
	"github.com/dmitrymomot/deadline/pkg/logger"
	"github.com/dmitrymomot/deadline/pkg/schedule"
	"github.com/dmitrymomot/deadline/pkg/sheet"
	"github.com/dmitrymomot/deadline/pkg/source"
)

// Notifier delivers a text digest.
// *mailer.Mailer satisfies it. A notifier that also has a DryRun() bool
// method reporting true is not required to have recipients.
type Notifier interface {
	SendText(ctx context.Context, subject, body string, recipients []string) error
}

// App runs alert variants against one source and one notifier.
// It holds no per-run state and is safe for concurrent use.
type App struct {
	source     source.Source
	notifier   Notifier
	formatter  *digest.Formatter
	logger     *slog.Logger
	now        func() time.Time
	loc        *time.Location
	recipients func(key string) []string
	runID      func() string
}

// New creates an App with the given options.
func New(src source.Source, notifier Notifier, opts ...Option) *App {
	loc, err := time.LoadLocation(DefaultLocation)
	if err != nil {
		loc = time.UTC
	}

	a := &App{
		source:     src,
		notifier:   notifier,
		formatter:  digest.New(),
		logger:     logger.NewNope(),
		now:        time.Now,
		loc:        loc,
		recipients: func(string) []string { return nil },
		runID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result describes one finished run.
type Result struct {
	RunID   string
	Variant string
	Today   schedule.Date
	Alerts  []schedule.Alert
	Subject string
	Body    string
	// Rows is the number of rows extracted before filtering.
	Rows int
	// NoData is set when the workbook could not be fetched or read.
	NoData bool
	// Skipped is set when an empty digest was not sent.
	Skipped bool
	// Notified is set when the notifier accepted the digest.
	Notified bool
}

// Run executes one alert run for v.
//
// Fetch and workbook errors are logged and the run continues with no rows.
// An invalid variant or a delivery failure is returned.
func (a *App) Run(ctx context.Context, v variant.Variant) (*Result, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	rule, err := v.Rule()
	if err != nil {
		return nil, err
	}

	res := &Result{
		RunID:   a.runID(),
		Variant: v.Name,
		Today:   schedule.Today(a.now(), a.loc),
	}
	ctx = logger.WithVariant(logger.WithRunID(ctx, res.RunID), v.Name)
	a.logger.InfoContext(ctx, "alert run started",
		slog.String("label", v.Label),
		slog.String("path", v.Path),
		slog.String("today", res.Today.String()),
		slog.Int("alert_days", v.AlertDays),
	)

	rows := a.load(ctx, v, res)
	res.Rows = len(rows)

	rows = sheet.Exclude(rows, rule)
	if v.Layout.HasFlag() {
		rows = schedule.Dedupe(rows)
	}
	rows = schedule.WithDue(rows)
	res.Alerts = schedule.Select(rows, v.AlertDays, res.Today)

	a.logger.InfoContext(ctx, "alerts selected",
		slog.Int("rows", res.Rows),
		slog.Int("candidates", len(rows)),
		slog.Int("alerts", len(res.Alerts)),
	)

	if len(res.Alerts) == 0 && v.SkipWhenEmpty {
		res.Skipped = true
		a.logger.InfoContext(ctx, "no alerts, email skipped")
		return res, nil
	}

	res.Subject = a.formatter.Subject(v.Label)
	res.Body = a.formatter.Text(v.Label, res.Alerts)

	if err := a.notify(ctx, v, res); err != nil {
		a.logger.ErrorContext(ctx, "failed to send digest", slog.String("error", err.Error()))
		return res, err
	}

	a.logger.InfoContext(ctx, "alert run finished", slog.Bool("notified", res.Notified))
	return res, nil
}
