// Package sheet extracts schedule rows from an xlsx workbook.
//
// A [Layout] names the sheet, the first data row and the column of each
// field. [Extract] reads the raw cell values of that rectangle together with
// the style of every due-date cell, so that rows marked by color can be
// excluded later through an [ExclusionRule]:
//
//	rows, err := sheet.Extract(raw, layout)
//	if err != nil {
//	    return err
//	}
//	rows = sheet.Exclude(rows, sheet.BackgroundIn(sheet.DefaultSkipBackground...))
//
// Due dates are read from raw cell values: Excel serial numbers (1900 or
// 1904 date system) and common textual layouts are accepted, anything else
// yields a zero [schedule.Date].
package sheet
