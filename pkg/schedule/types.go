package schedule

// CellStyle is the visual style of a sheet cell.
// Colors are hex strings as stored in the workbook (RGB or ARGB, no "#").
type CellStyle struct {
	Background string
	Font       string
}

// Row is one parsed schedule row.
type Row struct {
	Brand  string
	Person string
	Item   string
	Due    Date      // zero when the cell is blank or unparseable
	Style  CellStyle // style of the due-date cell
	Line   int       // 1-based sheet row number
	Flag   bool      // preferred row marker; only meaningful with a flag column
}

// Alert is a row selected by the alert window.
type Alert struct {
	Brand  string
	Person string
	Item   string
	Due    Date
	Delta  int // due - today in days; negative when overdue
}

// Overdue reports whether the due date has passed.
func (a Alert) Overdue() bool {
	return a.Delta < 0
}
