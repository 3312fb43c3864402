package mailer

// Config holds mailer configuration.
// Embed this in your app config for env parsing with caarlos0/env.
type Config struct {
	// Provider selects the Sender implementation: "smtp" or "resend".
	Provider string `env:"MAILER_PROVIDER" envDefault:"smtp"`
	// DryRun logs messages instead of sending them. Accepts 1/true.
	DryRun bool `env:"DRY_RUN" envDefault:"false"`
	// HTMLBody attaches an HTML alternative rendered from the text body.
	HTMLBody bool `env:"MAILER_HTML_BODY" envDefault:"false"`
}
