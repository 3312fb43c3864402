package smtp

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/mail"
	netsmtp "net/smtp"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/deadline/pkg/mailer"
)

// Sender implements mailer.Sender over SMTP submission
// (STARTTLS followed by PLAIN authentication).
type Sender struct {
	tlsConfig *tls.Config
	now       func() time.Time
	config    Config
}

// Option configures a Sender.
type Option func(*Sender)

// WithTLSConfig sets the TLS configuration used for STARTTLS.
func WithTLSConfig(c *tls.Config) Option {
	return func(s *Sender) {
		s.tlsConfig = c
	}
}

// New creates a new SMTP sender.
func New(cfg Config, opts ...Option) (*Sender, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("%w: host is required", ErrInvalidConfig)
	}
	if cfg.Port <= 0 {
		cfg.Port = 587
	}
	if cfg.SenderEmail == "" {
		cfg.SenderEmail = cfg.Username
	}
	if cfg.SenderEmail == "" {
		return nil, fmt.Errorf("%w: sender email or username is required", ErrInvalidConfig)
	}

	s := &Sender{
		tlsConfig: &tls.Config{ServerName: cfg.Host, MinVersion: tls.VersionTLS12},
		now:       time.Now,
		config:    cfg,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Send implements mailer.Sender.
func (s *Sender) Send(ctx context.Context, email *mailer.Email) error {
	from := email.From
	if from == "" {
		from = mailer.Recipient(s.config.SenderName, s.config.SenderEmail)
	}

	msg, err := buildMessage(from, s.domain(), email, s.now())
	if err != nil {
		return fmt.Errorf("smtp: build message: %w", err)
	}

	if s.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.config.Timeout)
		defer cancel()
	}

	addr := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("smtp: dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := netsmtp.NewClient(conn, s.config.Host)
	if err != nil {
		_ = conn.Close()
		return fmt.Errorf("smtp: greeting: %w", err)
	}
	defer c.Close()

	if err := s.deliver(c, s.config.SenderEmail, email.Recipients(), msg); err != nil {
		return err
	}
	return c.Quit()
}

func (s *Sender) deliver(c *netsmtp.Client, from string, to []string, msg []byte) error {
	if s.config.StartTLS {
		if ok, _ := c.Extension("STARTTLS"); !ok {
			return ErrTLSUnavailable
		}
		if err := c.StartTLS(s.tlsConfig); err != nil {
			return fmt.Errorf("smtp: starttls: %w", err)
		}
	}

	if s.config.Username != "" {
		if ok, _ := c.Extension("AUTH"); !ok {
			return ErrAuthUnavailable
		}
		auth := netsmtp.PlainAuth("", s.config.Username, s.config.Password, s.config.Host)
		if err := c.Auth(auth); err != nil {
			return fmt.Errorf("smtp: auth: %w", err)
		}
	}

	if err := c.Mail(from); err != nil {
		return fmt.Errorf("smtp: mail from: %w", err)
	}
	for _, rcpt := range to {
		if a, err := mail.ParseAddress(rcpt); err == nil {
			rcpt = a.Address
		}
		if err := c.Rcpt(rcpt); err != nil {
			return fmt.Errorf("smtp: rcpt %s: %w", rcpt, err)
		}
	}

	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp: data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		_ = w.Close()
		return fmt.Errorf("smtp: write body: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp: end data: %w", err)
	}
	return nil
}

func (s *Sender) domain() string {
	if i := strings.LastIndexByte(s.config.SenderEmail, '@'); i >= 0 {
		return s.config.SenderEmail[i+1:]
	}
	return s.config.Host
}
