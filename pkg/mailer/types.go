package mailer

import (
	"net/mail"
	"strings"
)

// Recipient formats a name and email into RFC 5322 address format.
// Returns just email when name is empty. Non-ASCII names are RFC 2047
// encoded so the result is safe as a header value.
func Recipient(name, email string) string {
	if name == "" {
		return email
	}
	return (&mail.Address{Name: name, Address: email}).String()
}

// SplitAddresses splits a comma-separated address list.
// Blank entries are dropped and surrounding spaces trimmed.
func SplitAddresses(list string) []string {
	return cleanAddresses(strings.Split(list, ","))
}

func cleanAddresses(in []string) []string {
	out := make([]string, 0, len(in))
	for _, a := range in {
		if a = strings.TrimSpace(a); a != "" {
			out = append(out, a)
		}
	}
	return out
}

// Email represents a fully-prepared email message ready for sending.
type Email struct {
	Headers map[string]string // Custom headers
	Subject string            // Email subject
	Text    string            // Plain text body
	HTML    string            // Optional HTML alternative
	From    string            // Override default sender (if provider allows)
	ReplyTo string            // Reply-to address
	To      []string          // Recipients (at least one required)
	CC      []string          // Carbon copy recipients
	BCC     []string          // Blind carbon copy recipients
}

// Recipients returns all envelope recipients: To, CC and BCC.
func (e *Email) Recipients() []string {
	all := make([]string, 0, len(e.To)+len(e.CC)+len(e.BCC))
	all = append(all, e.To...)
	all = append(all, e.CC...)
	return append(all, e.BCC...)
}
