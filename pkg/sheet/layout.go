package sheet

import "fmt"

// Layout describes where schedule fields live in a sheet.
// Column indexes are 0-based (A = 0). FirstRow is the 1-based number of the
// first data row.
type Layout struct {
	Sheet    string `yaml:"sheet"`
	FirstRow int    `yaml:"first_row"`
	Person   int    `yaml:"person"`
	Brand    int    `yaml:"brand"`
	Item     int    `yaml:"item"`
	Due      int    `yaml:"due"`
	Flag     *int   `yaml:"flag,omitempty"` // nil when the sheet has no flag column
}

// Column returns an optional column index, for use in Layout.Flag.
func Column(i int) *int {
	return &i
}

// HasFlag reports whether the layout has a flag column.
func (l Layout) HasFlag() bool {
	return l.Flag != nil
}

// Validate checks that every position is set and non-negative.
func (l Layout) Validate() error {
	if l.Sheet == "" {
		return fmt.Errorf("%w: sheet name is required", ErrInvalidLayout)
	}
	if l.FirstRow < 1 {
		return fmt.Errorf("%w: first row must be at least 1, got %d", ErrInvalidLayout, l.FirstRow)
	}
	cols := map[string]int{"person": l.Person, "brand": l.Brand, "item": l.Item, "due": l.Due}
	if l.Flag != nil {
		cols["flag"] = *l.Flag
	}
	for name, col := range cols {
		if col < 0 {
			return fmt.Errorf("%w: %s column must be non-negative, got %d", ErrInvalidLayout, name, col)
		}
	}
	return nil
}
