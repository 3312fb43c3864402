// Package mailer provides a provider-independent email sending interface
// for plain-text digests.
//
// # Architecture
//
//   - Sender: interface that email providers implement (smtp, resend)
//   - BodyRenderer: optional converter from text body to an HTML part
//   - Mailer: validates messages, applies dry-run and delegates to a Sender
//
// # Usage
//
//	sender, err := smtp.New(smtp.Config{
//		Host:     "smtp.example.com",
//		Port:     587,
//		Username: "alerts@example.com",
//		Password: os.Getenv("SMTP_PASSWORD"),
//	})
//	if err != nil {
//		return err
//	}
//
//	m := mailer.New(sender, mailer.Config{DryRun: false})
//	err = m.SendText(ctx, "[縫製納期アラート]", body, []string{"team@example.com"})
//
// With Config.DryRun set, SendText logs the message instead of delivering
// it; recipients are not required in that mode. With Config.HTMLBody set and a renderer configured via
// WithBodyRenderer, an HTML alternative part is attached.
//
// # Custom Providers
//
// Implement the Sender interface to add support for other email providers:
//
//	type MySender struct{}
//
//	func (s *MySender) Send(ctx context.Context, email *mailer.Email) error {
//		return nil
//	}
//
// # Errors
//
//   - ErrNoRecipient: No recipient specified
//   - ErrNoSubject: No subject provided
//   - ErrNoContent: Neither text nor HTML content provided
//   - ErrRenderFailed: HTML body rendering failed
//   - ErrSendFailed: Email sending failed
package mailer
