// Package variant defines the alert variants: which column of which sheet
// each alert reads, its window, recipients and exclusion rule.
//
// Presets returns the built-in production schedule variants. A YAML file
// can override any preset field or add new variants:
//
//	variants:
//	  - name: sewing
//	    schedule: "0 8 * * 1-5"
//	  - name: inspection
//	    label: 検品納期
//	    path: /生産部/検品予定.xlsx
//	    layout: {sheet: 25AW, first_row: 8, person: 2, brand: 3, item: 4, due: 25}
//	    alert_days: 3
package variant
