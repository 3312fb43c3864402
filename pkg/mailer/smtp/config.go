package smtp

import "time"

// Config holds SMTP provider configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	Host     string `env:"SMTP_SERVER"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USER"`
	Password string `env:"SMTP_PASSWORD"`
	// SenderEmail defaults to Username.
	SenderEmail string        `env:"SMTP_FROM_EMAIL"`
	SenderName  string        `env:"SMTP_FROM_NAME"`
	StartTLS    bool          `env:"SMTP_STARTTLS" envDefault:"true"`
	Timeout     time.Duration `env:"SMTP_TIMEOUT" envDefault:"30s"`
}
