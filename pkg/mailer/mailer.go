package mailer

import (
	"context"
	"errors"
	"log/slog"
)

// Mailer validates and delivers text emails through a Sender.
type Mailer struct {
	sender   Sender
	renderer BodyRenderer
	logger   *slog.Logger
	config   Config
}

// Option configures a Mailer.
type Option func(*Mailer)

// WithBodyRenderer sets the renderer used for the HTML part when
// Config.HTMLBody is enabled.
func WithBodyRenderer(r BodyRenderer) Option {
	return func(m *Mailer) {
		m.renderer = r
	}
}

// WithLogger sets the logger used for dry-run output.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mailer) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a new Mailer with the given sender.
func New(sender Sender, cfg Config, opts ...Option) *Mailer {
	m := &Mailer{
		sender: sender,
		logger: slog.Default(),
		config: cfg,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// DryRun reports whether delivery is disabled.
func (m *Mailer) DryRun() bool {
	return m.config.DryRun
}

// SendText sends a plain-text email to recipients.
// Blank recipient entries are ignored. In dry-run mode the message is
// logged but not delivered, and recipients are not required.
func (m *Mailer) SendText(ctx context.Context, subject, body string, recipients []string) error {
	email := &Email{
		To:      cleanAddresses(recipients),
		Subject: subject,
		Text:    body,
	}

	if m.config.HTMLBody && m.renderer != nil && body != "" {
		html, err := m.renderer.Render(body)
		if err != nil {
			return errors.Join(ErrRenderFailed, err)
		}
		email.HTML = html
	}

	return m.SendRaw(ctx, email)
}

// SendRaw sends a pre-built email.
func (m *Mailer) SendRaw(ctx context.Context, email *Email) error {
	if email.Subject == "" {
		return ErrNoSubject
	}
	if email.Text == "" && email.HTML == "" {
		return ErrNoContent
	}

	// Dry run logs even without recipients; nothing is delivered.
	if m.config.DryRun {
		m.logger.InfoContext(ctx, "dry run: email not sent",
			slog.String("subject", email.Subject),
			slog.Any("to", email.To),
			slog.Int("text_bytes", len(email.Text)),
			slog.Bool("html", email.HTML != ""),
			slog.String("body", email.Text),
		)
		return nil
	}

	if len(email.To) == 0 {
		return ErrNoRecipient
	}
	if err := m.sender.Send(ctx, email); err != nil {
		return errors.Join(ErrSendFailed, err)
	}

	return nil
}
