package schedule

import "strings"

// Dedupe keeps one row per item.
//
// Within a group of rows sharing an item, the first flagged row wins;
// without flagged rows the first row wins. Survivors stay in the sheet
// order of the winning row. Items are compared after trimming whitespace,
// so blank items form a single group.
func Dedupe(rows []Row) []Row {
	winner := make(map[string]int, len(rows))
	for i, r := range rows {
		key := strings.TrimSpace(r.Item)
		cur, ok := winner[key]
		if !ok || (r.Flag && !rows[cur].Flag) {
			winner[key] = i
		}
	}

	out := make([]Row, 0, len(winner))
	for i, r := range rows {
		if winner[strings.TrimSpace(r.Item)] == i {
			out = append(out, r)
		}
	}
	return out
}
