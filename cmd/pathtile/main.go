// Command pathtile runs the path tiler against a YAML template
// catalog and tiling request, and validates catalog files.
package main

import (
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"
)

const version = "0.1.0"

type rootCmd struct {
	Version  versionCmd  `command:"version" description:"Show version information"`
	Tile     tileCmd     `command:"tile" description:"Tile a path request against a catalog"`
	Validate validateCmd `command:"validate" description:"Parse and re-encode a catalog file"`
}

func main() {
	var root rootCmd
	parser := flags.NewParser(&root, flags.Default)
	if _, err := parser.Parse(); err != nil {
		if fe, ok := err.(*flags.Error); ok && fe.Type == flags.ErrHelp {
			return
		}
		os.Exit(1)
	}
}

type versionCmd struct{}

// Execute prints the version information.
func (c *versionCmd) Execute(_ []string) error {
	fmt.Printf("pathtile %s\n", version)

	return nil
}
