// Command alert-predelivery sends the predelivery deadline digest once and exits.
package main

import (
	"os"

	"github.com/dmitrymomot/deadline/internal/cli"
	"github.com/dmitrymomot/deadline/internal/variant"
)

func main() {
	os.Exit(cli.Main(variant.PreDelivery))
}
