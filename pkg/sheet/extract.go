package sheet

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/dmitrymomot/deadline/pkg/schedule"
)

// Extract reads the schedule rows described by layout from an xlsx workbook.
//
// Every row from layout.FirstRow to the last non-empty row yields one
// schedule.Row, including rows with blank cells; filtering is left to the
// caller. Text fields are trimmed. The style of each due-date cell is read
// into Row.Style.
func Extract(raw []byte, layout Layout) ([]schedule.Row, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		return nil, errors.Join(ErrOpenWorkbook, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(layout.Sheet); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, layout.Sheet)
	}

	date1904 := false
	if props, err := f.GetWorkbookProps(); err == nil && props.Date1904 != nil {
		date1904 = *props.Date1904
	}

	cells, err := f.GetRows(layout.Sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, errors.Join(ErrReadFailed, err)
	}

	styles := newStyleReader(f, layout.Sheet)
	rows := make([]schedule.Row, 0, max(len(cells)-layout.FirstRow+1, 0))
	for i := layout.FirstRow - 1; i < len(cells); i++ {
		line := i + 1
		style, err := styles.read(layout.Due, line)
		if err != nil {
			return nil, errors.Join(ErrReadFailed, err)
		}

		row := schedule.Row{
			Brand:  cell(cells[i], layout.Brand),
			Person: cell(cells[i], layout.Person),
			Item:   cell(cells[i], layout.Item),
			Due:    ParseDate(cell(cells[i], layout.Due), date1904),
			Style:  style,
			Line:   line,
		}
		if layout.Flag != nil {
			row.Flag = IsTruthy(cell(cells[i], *layout.Flag))
		}
		rows = append(rows, row)
	}

	return rows, nil
}

func cell(row []string, col int) string {
	if col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// styleReader resolves cell styles, caching them by style index.
type styleReader struct {
	f     *excelize.File
	sheet string
	cache map[int]schedule.CellStyle
}

func newStyleReader(f *excelize.File, sheet string) *styleReader {
	return &styleReader{f: f, sheet: sheet, cache: make(map[int]schedule.CellStyle)}
}

// read returns the style of the cell at the 0-based column and 1-based row.
func (s *styleReader) read(col, line int) (schedule.CellStyle, error) {
	name, err := excelize.CoordinatesToCellName(col+1, line)
	if err != nil {
		return schedule.CellStyle{}, err
	}

	idx, err := s.f.GetCellStyle(s.sheet, name)
	if err != nil {
		return schedule.CellStyle{}, fmt.Errorf("style of %s: %w", name, err)
	}
	if cached, ok := s.cache[idx]; ok {
		return cached, nil
	}

	st, err := s.f.GetStyle(idx)
	if err != nil {
		return schedule.CellStyle{}, fmt.Errorf("style %d: %w", idx, err)
	}

	var out schedule.CellStyle
	if st != nil {
		if st.Fill.Type == "pattern" && st.Fill.Pattern != 0 && len(st.Fill.Color) > 0 {
			out.Background = st.Fill.Color[0]
		}
		if st.Font != nil {
			out.Font = st.Font.Color
		}
	}
	s.cache[idx] = out
	return out, nil
}
