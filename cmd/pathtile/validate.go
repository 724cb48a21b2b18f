package main

import (
	"fmt"
	"os"

	"github.com/invopop/yaml"

	"github.com/katalvlaran/pathtile/catalog"
)

type validateCmd struct {
	Args struct {
		Input  string `positional-arg-name:"IN" required:"true" description:"Catalog YAML file"`
		Output string `positional-arg-name:"OUT" description:"Re-encoded output file (default: stdout)"`
	} `positional-args:"true"`
}

// Execute parses the catalog, reports its contents, and re-encodes it.
func (c *validateCmd) Execute(_ []string) error {
	raw, err := os.ReadFile(c.Args.Input)
	if err != nil {
		return err
	}

	var file catalog.CatalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return err
	}
	cat, err := file.Build()
	if err != nil {
		return err
	}

	segments := 0
	for _, t := range cat.Templates() {
		segments += len(t.Segments)
	}
	fmt.Printf("templates: %d\n", len(cat.Templates()))
	fmt.Printf("segments: %d\n", segments)

	out, err := catalog.EncodeCatalog(&file)
	if err != nil {
		return err
	}
	if c.Args.Output == "" {
		_, err = os.Stdout.Write(out)

		return err
	}

	return os.WriteFile(c.Args.Output, out, 0o600)
}
