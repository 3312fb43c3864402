package schedule

// MaxOverdueDays is the latest a row can be and still alert.
const MaxOverdueDays = 2

// ShouldAlert reports whether a row due on due alerts today.
// It is true when due is exactly alertDays ahead, or one to MaxOverdueDays
// days overdue.
func ShouldAlert(due Date, alertDays int, today Date) bool {
	if due.IsZero() {
		return false
	}
	delta := today.DaysUntil(due)
	if delta == alertDays {
		return true
	}
	return delta < 0 && delta >= -MaxOverdueDays
}

// Select returns alerts for rows that pass the alert window, in row order.
// Rows without a due date are skipped.
func Select(rows []Row, alertDays int, today Date) []Alert {
	alerts := make([]Alert, 0, len(rows))
	for _, r := range rows {
		if !ShouldAlert(r.Due, alertDays, today) {
			continue
		}
		alerts = append(alerts, Alert{
			Brand:  r.Brand,
			Person: r.Person,
			Item:   r.Item,
			Due:    r.Due,
			Delta:  today.DaysUntil(r.Due),
		})
	}
	return alerts
}

// WithDue drops rows without a due date.
func WithDue(rows []Row) []Row {
	out := make([]Row, 0, len(rows))
	for _, r := range rows {
		if !r.Due.IsZero() {
			out = append(out, r)
		}
	}
	return out
}
