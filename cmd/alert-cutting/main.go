// Command alert-cutting sends the cutting deadline digest once and exits.
package main

import (
	"os"

	"github.com/dmitrymomot/deadline/internal/cli"
	"github.com/dmitrymomot/deadline/internal/variant"
)

func main() {
	os.Exit(cli.Main(variant.Cutting))
}
