// Package schedule holds the data model of a production schedule and the
// pure decision logic applied to it: the alert window test and duplicate
// item resolution.
//
// # Rows
//
// A [Row] is one parsed spreadsheet row. Its due date is a civil [Date];
// a zero Date means the sheet cell was blank or unparseable.
//
//	today := schedule.Today(time.Now(), loc)
//	rows = schedule.Dedupe(rows)
//	alerts := schedule.Select(rows, 7, today)
//
// # Alert window
//
// [ShouldAlert] is true when the due date is exactly alertDays ahead, or
// one to two days overdue. Rows three or more days overdue are stale and
// never alert. The lead-time test is an exact match, not "within N days".
//
// # Duplicates
//
// [Dedupe] keeps exactly one row per item. A flagged row wins over
// unflagged ones; ties keep the earliest row in sheet order.
package schedule
