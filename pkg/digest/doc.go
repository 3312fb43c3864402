// Package digest groups alerts by person and brand and renders them as the
// body of a reminder email.
//
// Grouping keeps first-appearance order at every level: persons in the
// order they first appear, brands in the order they first appear under
// that person, alerts in input order.
//
//	f := digest.New()
//	subject := f.Subject("縫製納期")
//	body := f.Text("縫製納期", alerts)
//
// Blank person, brand or item values render as [Messages.Placeholder].
//
// An HTML alternative can be produced from the text body with
// [HTMLRenderer]; it converts the text through goldmark and sanitizes the
// result with bluemonday.
package digest
