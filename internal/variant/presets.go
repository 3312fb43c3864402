package variant

import "github.com/dmitrymomot/deadline/pkg/sheet"

// Preset names.
const (
	Sewing         = "sewing"
	Cutting        = "cutting"
	PreDelivery    = "predelivery"
	MassProduction = "massproduction"
	Dispatch       = "dispatch"
)

// Shared location of the factory schedule.
const (
	SchedulePath  = "/生産部/工場予定表(2025)_新レイアウト.xlsx"
	ScheduleSheet = "25AW"
)

// DefaultSchedule is the cron expression used when a variant has none.
const DefaultSchedule = "0 8 * * *"

// Recipient keys of the teams.
const (
	SalesRecipients      = "EMAIL_EIGYO"
	ProductionRecipients = "EMAIL_SEISAN"
)

// layout returns the factory sheet layout reading due dates from column due.
func layout(due int, flag bool) sheet.Layout {
	l := sheet.Layout{
		Sheet:    ScheduleSheet,
		FirstRow: 8,
		Person:   2, // C
		Brand:    3, // D
		Item:     4, // E
		Due:      due,
	}
	if flag {
		l.Flag = sheet.Column(5) // F
	}
	return l
}

// Presets returns the built-in variants. Every call returns fresh values.
func Presets() Set {
	return Set{
		{
			Name:          Sewing,
			Label:         "縫製納期",
			Path:          SchedulePath,
			Layout:        layout(19, true), // T
			AlertDays:     7,
			RecipientKey:  SalesRecipients,
			Exclusion:     sheet.RuleBackground,
			SkipWhenEmpty: true,
			Schedule:      DefaultSchedule,
		},
		{
			Name:         Cutting,
			Label:        "裁断上がり納期",
			Path:         SchedulePath,
			Layout:       layout(18, true), // S
			AlertDays:    7,
			RecipientKey: SalesRecipients,
			Exclusion:    sheet.RuleNone,
			Schedule:     DefaultSchedule,
		},
		{
			Name:         PreDelivery,
			Label:        "納前納期",
			Path:         SchedulePath,
			Layout:       layout(23, true), // X
			AlertDays:    7,
			RecipientKey: ProductionRecipients,
			Exclusion:    sheet.RuleNone,
			Schedule:     DefaultSchedule,
		},
		{
			Name:      MassProduction,
			Label:     "量産納期",
			Path:      SchedulePath,
			Layout:    layout(22, false), // W
			AlertDays: 7,
			Exclusion: sheet.RuleNone,
			Schedule:  DefaultSchedule,
		},
		{
			Name:      Dispatch,
			Label:     "生産職出し",
			Path:      SchedulePath,
			Layout:    layout(13, false), // N
			AlertDays: 1,
			Exclusion: sheet.RuleNone,
			Schedule:  DefaultSchedule,
		},
	}
}
