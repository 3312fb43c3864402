// Package deadline sends production-milestone reminder emails read from a
// factory schedule workbook.
//
// One alert run is a single linear pass:
//
//  1. fetch the workbook from a source.Source
//  2. extract the variant's columns with sheet.Extract
//  3. drop rows with a disqualifying due-cell color, then duplicate items
//     (when the sheet has a flag column), then rows without a due date
//  4. keep rows due in exactly AlertDays days or 1-2 days overdue
//  5. render the digest grouped by person and brand
//  6. email it, unless the variant skips empty digests
//
// A fetch or workbook failure is logged and treated as an empty schedule, so
// recipients still get the "no matching items" digest. A delivery failure is
// returned to the caller.
//
//	app := deadline.New(src, mail,
//	    deadline.WithLogger(log),
//	    deadline.WithLocation(tokyo),
//	    deadline.WithRecipients(cfg.RecipientsFor),
//	)
//	res, err := app.Run(ctx, sewing)
package deadline
