// Package scheduler runs alert variants on cron schedules.
package scheduler

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dmitrymomot/deadline"
	"github.com/dmitrymomot/deadline/internal/variant"
	"github.com/dmitrymomot/deadline/pkg/logger"
)

const defaultRunTimeout = 20 * time.Minute

// Runner executes one alert run. *deadline.App satisfies it.
type Runner interface {
	Run(ctx context.Context, v variant.Variant) (*deadline.Result, error)
}

// Status is the outcome of a variant's most recent run.
type Status struct {
	LastRun time.Time
	LastErr error
	Runs    int
}

// Scheduler fires each enabled variant on its cron schedule.
// A variant whose previous run is still going is skipped.
type Scheduler struct {
	cron     *cron.Cron
	runner   Runner
	logger   *slog.Logger
	variants variant.Set
	entries  map[string]cron.EntryID
	timeout  time.Duration

	mu      sync.Mutex
	status  map[string]Status
	started bool
	baseCtx context.Context
	cancel  context.CancelFunc
}

// Option configures a Scheduler.
type Option func(*Scheduler)

// WithLogger sets the scheduler logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Scheduler) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithRunTimeout bounds each scheduled run. Defaults to 20 minutes.
func WithRunTimeout(d time.Duration) Option {
	return func(s *Scheduler) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// New registers every enabled variant of set. Schedules are interpreted
// in loc.
func New(runner Runner, set variant.Set, loc *time.Location, opts ...Option) (*Scheduler, error) {
	s := &Scheduler{
		runner:  runner,
		logger:  logger.NewNope(),
		timeout: defaultRunTimeout,
		entries: make(map[string]cron.EntryID),
		status:  make(map[string]Status),
	}
	for _, opt := range opts {
		opt(s)
	}
	if loc == nil {
		loc = time.UTC
	}

	s.cron = cron.New(
		cron.WithLocation(loc),
		cron.WithChain(cron.SkipIfStillRunning(cronLogger{s.logger})),
	)

	for _, v := range set.Enabled() {
		expr := v.Schedule
		if expr == "" {
			expr = variant.DefaultSchedule
		}
		sched, err := ParseSchedule(expr)
		if err != nil {
			return nil, fmt.Errorf("%w: variant %q: %v", ErrInvalidSchedule, v.Name, err)
		}
		s.entries[v.Name] = s.cron.Schedule(sched, cron.FuncJob(func() { s.fire(v) }))
		s.variants = append(s.variants, v)
	}
	return s, nil
}

// ParseSchedule parses a five-field cron expression or a descriptor such
// as "@daily".
func ParseSchedule(expr string) (cron.Schedule, error) {
	parser := cron.NewParser(cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)
	return parser.Parse(strings.TrimSpace(expr))
}

// Start begins firing scheduled runs. Runs use a context derived from ctx.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return ErrAlreadyStarted
	}
	s.baseCtx, s.cancel = context.WithCancel(ctx)
	s.cron.Start()
	s.started = true

	s.logger.Info("scheduler started", slog.Any("variants", s.variants.Names()))
	return nil
}

// Stop stops firing runs and waits for running ones until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return ErrNotStarted
	}
	s.started = false
	cancel := s.cancel
	s.mu.Unlock()

	done := s.cron.Stop()
	select {
	case <-done.Done():
		cancel()
		s.logger.Info("scheduler stopped")
		return nil
	case <-ctx.Done():
		cancel()
		return fmt.Errorf("scheduler: stop: %w", ctx.Err())
	}
}

// RunNow runs the named variant immediately, outside its schedule.
func (s *Scheduler) RunNow(ctx context.Context, name string) (*deadline.Result, error) {
	v, err := s.variants.Lookup(name)
	if err != nil {
		return nil, err
	}
	return s.run(ctx, v)
}

// Status returns the latest status of every scheduled variant.
func (s *Scheduler) Status() map[string]Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]Status, len(s.status))
	for k, v := range s.status {
		out[k] = v
	}
	return out
}

// Next returns the next fire time of the named variant. The zero time is
// returned before Start or for unknown names.
func (s *Scheduler) Next(name string) time.Time {
	id, ok := s.entries[name]
	if !ok {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

// Healthcheck reports unhealthy when the scheduler is stopped or the most
// recent run of any variant failed. Compatible with health.CheckFunc.
func (s *Scheduler) Healthcheck() func(ctx context.Context) error {
	return func(context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()

		if !s.started {
			return errors.Join(ErrHealthcheckFailed, ErrNotStarted)
		}

		var failed []string
		for name, st := range s.status {
			if st.LastErr != nil {
				failed = append(failed, name)
			}
		}
		if len(failed) > 0 {
			sort.Strings(failed)
			return fmt.Errorf("%w: last run failed: %s", ErrHealthcheckFailed, strings.Join(failed, ", "))
		}
		return nil
	}
}

func (s *Scheduler) fire(v variant.Variant) {
	s.mu.Lock()
	ctx := s.baseCtx
	s.mu.Unlock()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	_, _ = s.run(ctx, v)
}

func (s *Scheduler) run(ctx context.Context, v variant.Variant) (*deadline.Result, error) {
	res, err := s.runner.Run(ctx, v)

	s.mu.Lock()
	st := s.status[v.Name]
	st.LastRun = time.Now()
	st.LastErr = err
	st.Runs++
	s.status[v.Name] = st
	s.mu.Unlock()

	if err != nil {
		s.logger.ErrorContext(ctx, "scheduled run failed",
			slog.String("variant", v.Name),
			slog.String("error", err.Error()),
		)
	}
	return res, err
}

// cronLogger adapts slog to cron.Logger.
type cronLogger struct {
	l *slog.Logger
}

func (c cronLogger) Info(msg string, keysAndValues ...any) {
	c.l.Debug("cron: "+msg, keysAndValues...)
}

func (c cronLogger) Error(err error, msg string, keysAndValues ...any) {
	c.l.Error("cron: "+msg, append(keysAndValues, slog.String("error", err.Error()))...)
}
