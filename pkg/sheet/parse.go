package sheet

import (
	"strconv"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/width"

	"github.com/dmitrymomot/deadline/pkg/schedule"
)

// maxSerial is the serial number of 9999-12-31 in the 1900 date system.
const maxSerial = 2958465

// dateLayouts are the textual date forms accepted in due-date cells.
var dateLayouts = []string{
	time.DateOnly,
	time.DateTime,
	"2006/01/02",
	"2006/1/2",
	"2006/01/02 15:04:05",
	"2006/1/2 15:04",
	"2006-1-2",
	"2006.01.02",
	"2006.1.2",
	"2006年1月2日",
	"01/02/2006",
	"1/2/2006",
	time.RFC3339,
}

// ParseDate parses a raw due-date cell value.
// Numbers are Excel serial dates; date1904 selects the 1904 date system.
// Blank or unparseable values yield the zero Date.
func ParseDate(raw string, date1904 bool) schedule.Date {
	raw = strings.TrimSpace(width.Fold.String(raw))
	if raw == "" {
		return schedule.Date{}
	}

	if serial, err := strconv.ParseFloat(raw, 64); err == nil {
		if serial <= 0 || serial > maxSerial {
			return schedule.Date{}
		}
		t, err := excelize.ExcelDateToTime(serial, date1904)
		if err != nil {
			return schedule.Date{}
		}
		return schedule.DateOf(t)
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return schedule.DateOf(t)
		}
	}
	return schedule.Date{}
}

// truthy are the flag values that mark a preferred row.
var truthy = map[string]struct{}{
	"true": {},
	"1":    {},
	"yes":  {},
	"y":    {},
	"✓":    {},
}

// IsTruthy reports whether a flag cell marks its row as preferred.
// Full-width forms are folded before comparison.
func IsTruthy(raw string) bool {
	v := strings.ToLower(strings.TrimSpace(width.Fold.String(raw)))
	_, ok := truthy[v]
	return ok
}
