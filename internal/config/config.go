// Package config loads process configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
	_ "time/tzdata" // embedded zone database for minimal container images

	"github.com/caarlos0/env/v11"

	"github.com/dmitrymomot/deadline/pkg/logger"
	"github.com/dmitrymomot/deadline/pkg/mailer"
	"github.com/dmitrymomot/deadline/pkg/mailer/resend"
	"github.com/dmitrymomot/deadline/pkg/mailer/smtp"
	"github.com/dmitrymomot/deadline/pkg/source"
)

// DefaultRecipientsKey holds the recipient list used when a variant names
// no team or its team variable is empty.
const DefaultRecipientsKey = "EMAIL_RECIPIENTS"

const teamPrefix = "EMAIL_"

// ErrInvalidConfig is returned when the environment cannot be parsed.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the complete process configuration.
type Config struct {
	Timezone        string        `env:"ALERT_TIMEZONE" envDefault:"Asia/Tokyo"`
	VariantsFile    string        `env:"VARIANTS_FILE"`
	HealthAddr      string        `env:"HEALTH_ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
	Recipients      []string      `env:"EMAIL_RECIPIENTS" envSeparator:","`

	Logger logger.Config
	Mailer mailer.Config
	SMTP   smtp.Config
	Resend resend.Config
	Source source.Config

	// Teams maps EMAIL_* variable names to their recipient lists.
	Teams map[string][]string `env:"-"`
}

// Load parses configuration from environ, in os.Environ format.
func Load(environ []string) (*Config, error) {
	vars := env.ToMap(environ)

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: vars}); err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	cfg.Recipients = mailer.SplitAddresses(strings.Join(cfg.Recipients, ","))

	cfg.Teams = make(map[string][]string)
	for k, v := range vars {
		if k == DefaultRecipientsKey || !strings.HasPrefix(k, teamPrefix) {
			continue
		}
		if addrs := mailer.SplitAddresses(v); len(addrs) > 0 {
			cfg.Teams[k] = addrs
		}
	}

	if _, err := cfg.Location(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Location returns the time zone used to determine "today".
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, c.Timezone, err)
	}
	return loc, nil
}

// RecipientsFor returns the recipients for a team key such as EMAIL_EIGYO.
// An empty key, or a key with no addresses, falls back to EMAIL_RECIPIENTS.
func (c *Config) RecipientsFor(key string) []string {
	if addrs := c.Teams[key]; key != "" && len(addrs) > 0 {
		return addrs
	}
	return c.Recipients
}

// TeamKeys returns the configured team variable names, sorted.
func (c *Config) TeamKeys() []string {
	keys := make([]string, 0, len(c.Teams))
	for k := range c.Teams {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
