// Package cli wires configuration, logging, the spreadsheet source and the
// mailer into a deadline.App and runs it, either once for a single variant
// or on cron schedules as a daemon.
//
// The alert-* binaries call Main with their variant name:
//
//	func main() {
//		os.Exit(cli.Main(variant.Sewing))
//	}
package cli
