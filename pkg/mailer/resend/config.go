package resend

// Config holds Resend API settings, parsed with caarlos0/env.
type Config struct {
	APIKey      string `env:"RESEND_API_KEY"`
	SenderEmail string `env:"RESEND_FROM_EMAIL"`
	SenderName  string `env:"RESEND_FROM_NAME"`
	// ReplyTo applies when the email sets none.
	ReplyTo string `env:"RESEND_REPLY_TO"`
}
