// infowriter-convert converts InfoWriter OBS plugin logs into chapter marker lists.
package main

import (
	"os"

	"github.com/ccollicutt/infowriter-convert/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
