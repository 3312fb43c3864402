package digest

// Messages holds the fixed templates of a digest.
// Each template is a fmt format string.
type Messages struct {
	Subject     string // alert label
	Header      string // alert label
	Empty       string // no verbs
	Person      string // person
	Brand       string // brand
	Upcoming    string // item, days until due, due date
	Overdue     string // item, days overdue, due date
	Placeholder string // replaces blank person, brand and item values
}

// DefaultMessages are the Japanese templates used by the production team.
var DefaultMessages = Messages{
	Subject:     "[%sアラート]",
	Header:      "【%sアラート】",
	Empty:       "該当する品番はありません。",
	Person:      "【担当: %s】",
	Brand:       "*〔%s〕*",
	Upcoming:    "• 品番: %s — 出荷まで %d 日 (%s)",
	Overdue:     "⚠️ 品番: %s — 出荷日超過 %d 日 (%s)",
	Placeholder: "不明",
}
