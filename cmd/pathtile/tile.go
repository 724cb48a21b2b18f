package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"

	"github.com/invopop/yaml"

	"github.com/katalvlaran/pathtile/catalog"
	"github.com/katalvlaran/pathtile/grid"
	"github.com/katalvlaran/pathtile/tilemap"
	"github.com/katalvlaran/pathtile/tiler"
)

// errUnfittable reports a request the tiler returned no chain for.
var errUnfittable = errors.New("no conforming tiling exists for the request")

type tileCmd struct {
	Args struct {
		Catalog string `positional-arg-name:"CATALOG" required:"true" description:"Catalog YAML file"`
		Request string `positional-arg-name:"REQUEST" required:"true" description:"Tiling request YAML file"`
	} `positional-args:"true"`

	Render bool  `short:"r" long:"render" description:"Print the painted map"`
	Seed   int64 `short:"s" long:"seed" default:"1" description:"Traceback RNG seed"`
}

// tileRequest is the on-disk request schema.
type tileRequest struct {
	Map struct {
		Width  int `json:"width"`
		Height int `json:"height"`
	} `json:"map"`
	Path struct {
		Points        [][2]int `json:"points"`
		MaxDeviation  int      `json:"max_deviation"`
		MaxSkip       int      `json:"max_skip,omitempty"`
		MinSeparation int      `json:"min_separation,omitempty"`
		Start         string   `json:"start"`
		End           string   `json:"end"`
		Inner         []string `json:"inner,omitempty"`
	} `json:"path"`
}

// Execute tiles the requested path and prints the traversed cells.
func (c *tileCmd) Execute(_ []string) error {
	rawCat, err := os.ReadFile(c.Args.Catalog)
	if err != nil {
		return err
	}
	cat, err := catalog.ParseCatalog(rawCat)
	if err != nil {
		return err
	}

	rawReq, err := os.ReadFile(c.Args.Request)
	if err != nil {
		return err
	}
	var req tileRequest
	if err := yaml.Unmarshal(rawReq, &req); err != nil {
		return fmt.Errorf("request: decode: %w", err)
	}

	m, err := tilemap.New(grid.NewRect(0, 0, req.Map.Width, req.Map.Height))
	if err != nil {
		return fmt.Errorf("request: map bounds: %w", err)
	}

	points := make([]grid.CellPos, len(req.Path.Points))
	for i, p := range req.Path.Points {
		points[i] = grid.CellPos{X: p[0], Y: p[1]}
	}

	inner := req.Path.Inner
	if len(inner) == 0 {
		inner = []string{req.Path.Start, req.Path.End}
	}
	path := tiler.New(m, points, req.Path.MaxDeviation, req.Path.Start, req.Path.End,
		catalog.FromInner(cat, inner...))
	path.MaxSkip = req.Path.MaxSkip
	path.MinSeparation = req.Path.MinSeparation
	path.RetainIfValid()

	result := path.Tile(rand.New(rand.NewSource(c.Seed)))
	if result == nil {
		return errUnfittable
	}

	fmt.Printf("tiled %d cells\n", len(result))
	for _, p := range result {
		fmt.Printf("%d,%d\n", p.X, p.Y)
	}
	if c.Render {
		fmt.Print(m.Render())
	}

	return nil
}
