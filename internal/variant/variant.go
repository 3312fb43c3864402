package variant

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/deadline/pkg/sheet"
)

// Variant is the full configuration of one alert run.
type Variant struct {
	Name      string       `yaml:"name"`
	Label     string       `yaml:"label"`
	Path      string       `yaml:"path"`
	Layout    sheet.Layout `yaml:"layout"`
	AlertDays int          `yaml:"alert_days"`
	// RecipientKey names the environment variable holding the team's
	// recipient list, e.g. EMAIL_EIGYO. Empty means EMAIL_RECIPIENTS.
	RecipientKey string `yaml:"recipient_key"`
	// Exclusion is a rule name accepted by sheet.ParseRule.
	Exclusion string   `yaml:"exclusion"`
	Colors    []string `yaml:"colors,omitempty"`
	// SkipWhenEmpty suppresses the email when nothing matches.
	SkipWhenEmpty bool `yaml:"skip_when_empty"`
	// Schedule is the cron expression used by the daemon.
	Schedule string `yaml:"schedule"`
	Disabled bool   `yaml:"disabled"`
}

// Validate checks that v can be run.
func (v Variant) Validate() error {
	var errs []error
	if v.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if v.Label == "" {
		errs = append(errs, errors.New("label is required"))
	}
	if v.Path == "" {
		errs = append(errs, errors.New("path is required"))
	}
	if v.AlertDays < 0 {
		errs = append(errs, fmt.Errorf("alert days must be non-negative, got %d", v.AlertDays))
	}
	if err := v.Layout.Validate(); err != nil {
		errs = append(errs, err)
	}
	if _, err := v.Rule(); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w %q: %w", ErrInvalidVariant, v.Name, errors.Join(errs...))
	}
	return nil
}

// Rule returns the exclusion rule of v.
func (v Variant) Rule() (sheet.ExclusionRule, error) {
	return sheet.ParseRule(v.Exclusion, v.Colors)
}

// Set is an ordered collection of variants.
type Set []Variant

// Lookup returns the variant with the given name.
func (s Set) Lookup(name string) (Variant, error) {
	for _, v := range s {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// Enabled returns the variants that are not disabled.
func (s Set) Enabled() Set {
	out := make(Set, 0, len(s))
	for _, v := range s {
		if !v.Disabled {
			out = append(out, v)
		}
	}
	return out
}

// Names returns the variant names in order.
func (s Set) Names() []string {
	names := make([]string, len(s))
	for i, v := range s {
		names[i] = v.Name
	}
	return names
}
