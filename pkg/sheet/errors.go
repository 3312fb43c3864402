package sheet

import "errors"

var (
	// ErrOpenWorkbook indicates the bytes are not a readable xlsx workbook.
	ErrOpenWorkbook = errors.New("sheet: failed to open workbook")

	// ErrSheetNotFound indicates the workbook has no sheet with the layout's name.
	ErrSheetNotFound = errors.New("sheet: sheet not found")

	// ErrReadFailed indicates rows or styles could not be read.
	ErrReadFailed = errors.New("sheet: failed to read sheet")

	// ErrInvalidLayout indicates a layout with missing or negative positions.
	ErrInvalidLayout = errors.New("sheet: invalid layout")

	// ErrUnknownRule indicates an unknown exclusion rule name.
	ErrUnknownRule = errors.New("sheet: unknown exclusion rule")
)
