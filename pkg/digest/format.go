package digest

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/deadline/pkg/schedule"
)

// Formatter renders digests with a fixed set of templates.
type Formatter struct {
	msgs Messages
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithMessages replaces the default templates.
func WithMessages(m Messages) Option {
	return func(f *Formatter) {
		f.msgs = m
	}
}

// New creates a Formatter using DefaultMessages unless overridden.
func New(opts ...Option) *Formatter {
	f := &Formatter{msgs: DefaultMessages}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Subject returns the email subject for an alert label.
func (f *Formatter) Subject(label string) string {
	return fmt.Sprintf(f.msgs.Subject, label)
}

// Text renders alerts as a plain-text digest.
//
// The body starts with a header line and a blank line. Without alerts it
// ends with the fixed empty sentence. Otherwise each person heading is
// followed by its brand groups; a blank line closes every brand group and
// every person group.
func (f *Formatter) Text(label string, alerts []schedule.Alert) string {
	return f.Render(label, Group(alerts, f.msgs.Placeholder))
}

// Render renders an already grouped digest.
func (f *Formatter) Render(label string, d *Digest) string {
	lines := []string{fmt.Sprintf(f.msgs.Header, label), ""}
	if d.Empty() {
		return strings.Join(append(lines, f.msgs.Empty), "\n")
	}

	for _, p := range d.Persons {
		lines = append(lines, fmt.Sprintf(f.msgs.Person, p.Person))
		for _, b := range p.Brands {
			lines = append(lines, fmt.Sprintf(f.msgs.Brand, b.Brand))
			for _, a := range b.Alerts {
				lines = append(lines, f.line(a))
			}
			lines = append(lines, "")
		}
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}

func (f *Formatter) line(a schedule.Alert) string {
	if a.Overdue() {
		return fmt.Sprintf(f.msgs.Overdue, a.Item, -a.Delta, a.Due)
	}
	return fmt.Sprintf(f.msgs.Upcoming, a.Item, a.Delta, a.Due)
}
