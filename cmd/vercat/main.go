// Command vercat inspects, merges and exports Gradle version catalogs.
package main

import (
	"os"

	"github.com/albertocavalcante/go-versioncatalog/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
