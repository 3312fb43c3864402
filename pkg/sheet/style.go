package sheet

import (
	"fmt"
	"strings"

	"github.com/dmitrymomot/deadline/pkg/schedule"
)

// Exclusion rule names accepted by ParseRule.
const (
	RuleNone       = "none"
	RuleBackground = "background"
	RuleNonWhite   = "non-white"
)

var (
	// DefaultSkipBackground lists the background colors that mark a row as
	// not applicable.
	DefaultSkipBackground = []string{"F7DFDF"}

	// DefaultWhite lists the color values treated as "no color" by NonWhite.
	DefaultWhite = []string{"", "FFFFFF", "FFFFFFFF", "00000000"}
)

// ExclusionRule decides from the due-date cell style whether a row is dropped.
type ExclusionRule interface {
	Excluded(style schedule.CellStyle) bool
}

// ExclusionFunc adapts a function to ExclusionRule.
type ExclusionFunc func(style schedule.CellStyle) bool

// Excluded implements ExclusionRule.
func (f ExclusionFunc) Excluded(style schedule.CellStyle) bool {
	return f(style)
}

// NoExclusion keeps every row.
func NoExclusion() ExclusionRule {
	return ExclusionFunc(func(schedule.CellStyle) bool { return false })
}

// BackgroundIn excludes rows whose background matches one of colors.
// Colors are compared on their lower six hex digits, case-insensitively,
// so RGB and ARGB values match alike.
func BackgroundIn(colors ...string) ExclusionRule {
	set := make(map[string]struct{}, len(colors))
	for _, c := range colors {
		set[rgb(c)] = struct{}{}
	}
	return ExclusionFunc(func(style schedule.CellStyle) bool {
		if style.Background == "" {
			return false
		}
		_, ok := set[rgb(style.Background)]
		return ok
	})
}

// NonWhite excludes rows whose background or font color is outside the
// white set. Without arguments DefaultWhite is used.
func NonWhite(white ...string) ExclusionRule {
	if len(white) == 0 {
		white = DefaultWhite
	}
	set := make(map[string]struct{}, len(white))
	for _, c := range white {
		set[normalizeColor(c)] = struct{}{}
	}
	return ExclusionFunc(func(style schedule.CellStyle) bool {
		_, bgWhite := set[normalizeColor(style.Background)]
		_, fontWhite := set[normalizeColor(style.Font)]
		return !bgWhite || !fontWhite
	})
}

// ParseRule returns the exclusion rule with the given name.
// colors overrides the rule's default color set when not empty.
func ParseRule(name string, colors []string) (ExclusionRule, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", RuleNone:
		return NoExclusion(), nil
	case RuleBackground:
		if len(colors) == 0 {
			colors = DefaultSkipBackground
		}
		return BackgroundIn(colors...), nil
	case RuleNonWhite:
		return NonWhite(colors...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownRule, name)
	}
}

// Exclude drops rows matched by rule.
// A nil rule keeps every row.
func Exclude(rows []schedule.Row, rule ExclusionRule) []schedule.Row {
	if rule == nil {
		return rows
	}
	out := make([]schedule.Row, 0, len(rows))
	for _, r := range rows {
		if !rule.Excluded(r.Style) {
			out = append(out, r)
		}
	}
	return out
}

func normalizeColor(c string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(c), "#"))
}

func rgb(c string) string {
	c = normalizeColor(c)
	if len(c) > 6 {
		return c[len(c)-6:]
	}
	return c
}
