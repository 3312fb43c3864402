package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dmitrymomot/deadline"
	"github.com/dmitrymomot/deadline/internal/config"
	"github.com/dmitrymomot/deadline/internal/variant"
	"github.com/dmitrymomot/deadline/pkg/digest"
	"github.com/dmitrymomot/deadline/pkg/logger"
	"github.com/dmitrymomot/deadline/pkg/mailer"
	"github.com/dmitrymomot/deadline/pkg/mailer/resend"
	"github.com/dmitrymomot/deadline/pkg/mailer/smtp"
	"github.com/dmitrymomot/deadline/pkg/source"
)

// Runtime is a fully wired process.
type Runtime struct {
	Config   *config.Config
	Logger   *slog.Logger
	App      *deadline.App
	Variants variant.Set
	Location *time.Location

	flush func()
}

// Option configures Bootstrap.
type Option func(*options)

type options struct {
	logOutput io.Writer
	clock     func() time.Time
}

// WithLogOutput redirects log output. Defaults to stdout.
func WithLogOutput(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.logOutput = w
		}
	}
}

// WithClock overrides the clock used to determine today.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// Bootstrap builds a Runtime from environ, in os.Environ format.
func Bootstrap(environ []string, opts ...Option) (*Runtime, error) {
	o := &options{logOutput: os.Stdout}
	for _, opt := range opts {
		opt(o)
	}

	cfg, err := config.Load(environ)
	if err != nil {
		return nil, errors.Join(ErrBootstrap, err)
	}

	log, flush := logger.NewWithWriter(o.logOutput, cfg.Logger,
		logger.RunIDExtractor(),
		logger.VariantExtractor(),
	)
	rt := &Runtime{Config: cfg, Logger: log, flush: flush}

	fail := func(err error) (*Runtime, error) {
		log.Error("bootstrap failed", slog.String("error", err.Error()))
		rt.Close()
		return nil, errors.Join(ErrBootstrap, err)
	}

	if rt.Location, err = cfg.Location(); err != nil {
		return fail(err)
	}

	if rt.Variants, err = variant.LoadFile(cfg.VariantsFile, variant.Presets()); err != nil {
		return fail(err)
	}

	src, err := source.New(cfg.Source)
	if err != nil {
		return fail(err)
	}

	sender, err := newSender(cfg)
	if err != nil {
		if !cfg.Mailer.DryRun {
			return fail(err)
		}
		log.Warn("mail transport not configured, dry run only", slog.String("error", err.Error()))
	}

	m := mailer.New(sender, cfg.Mailer,
		mailer.WithBodyRenderer(digest.NewHTMLRenderer()),
		mailer.WithLogger(log),
	)

	appOpts := []deadline.Option{
		deadline.WithLogger(log),
		deadline.WithLocation(rt.Location),
		deadline.WithRecipients(cfg.RecipientsFor),
	}
	if o.clock != nil {
		appOpts = append(appOpts, deadline.WithClock(o.clock))
	}
	rt.App = deadline.New(src, m, appOpts...)

	return rt, nil
}

// Close flushes buffered log events.
func (r *Runtime) Close() {
	if r.flush != nil {
		r.flush()
	}
}

func newSender(cfg *config.Config) (mailer.Sender, error) {
	switch cfg.Mailer.Provider {
	case "", "smtp":
		s, err := smtp.New(cfg.SMTP)
		if err != nil {
			return nil, err
		}
		return s, nil
	case "resend":
		s, err := resend.New(cfg.Resend)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, cfg.Mailer.Provider)
	}
}
