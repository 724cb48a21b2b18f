package catalog

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/invopop/yaml"

	"github.com/katalvlaran/pathtile/grid"
)

// ErrBadTemplate indicates a template entry with an empty or ragged
// tile grid. Malformed segments report ErrBadSegment or ErrBadLabel.
var ErrBadTemplate = errors.New("catalog: malformed template entry")

// CatalogFile is the on-disk catalog schema. It decodes from YAML or
// JSON; field tags follow the JSON-tag convention invopop/yaml keys on.
type CatalogFile struct {
	Templates []TemplateFileEntry `json:"templates"`
}

// TemplateFileEntry is one authored template. ID is optional; when
// zero, a stable id is derived from the template name via xxhash.
type TemplateFileEntry struct {
	Name     string             `json:"name"`
	ID       int64              `json:"id,omitempty"`
	PickAny  bool               `json:"pick_any,omitempty"`
	Tiles    [][]int            `json:"tiles,omitempty"`
	Segments []SegmentFileEntry `json:"segments"`
}

// SegmentFileEntry is one authored segment: terminal labels and the
// point trace as [x, y] pairs.
type SegmentFileEntry struct {
	Start  string   `json:"start"`
	End    string   `json:"end"`
	Points [][2]int `json:"points"`
}

// ParseCatalog decodes a catalog from YAML or JSON bytes and builds
// the runtime Catalog.
func ParseCatalog(raw []byte) (*Catalog, error) {
	var file CatalogFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("catalog: decode: %w", err)
	}

	return file.Build()
}

// Build constructs the runtime Catalog from a decoded file.
func (f *CatalogFile) Build() (*Catalog, error) {
	c := NewCatalog()
	for i := range f.Templates {
		t, err := f.Templates[i].build()
		if err != nil {
			return nil, err
		}
		c.Add(t)
	}

	return c, nil
}

// build converts one file entry into a TerrainTemplate.
func (e *TemplateFileEntry) build() (*TerrainTemplate, error) {
	id := e.ID
	if id == 0 {
		id = int64(xxhash.Sum64String(e.Name))
	}
	t := &TerrainTemplate{ID: id, Name: e.Name, PickAny: e.PickAny}

	if len(e.Tiles) > 0 {
		w := len(e.Tiles[0])
		if w == 0 {
			return nil, fmt.Errorf("%w: %s has an empty tile row", ErrBadTemplate, e.Name)
		}
		m, err := grid.NewMatrix[int](w, len(e.Tiles))
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrBadTemplate, e.Name, err)
		}
		for y, row := range e.Tiles {
			if len(row) != w {
				return nil, fmt.Errorf("%w: %s has ragged tile rows", ErrBadTemplate, e.Name)
			}
			for x, v := range row {
				m.Set(grid.CellPos{X: x, Y: y}, v)
			}
		}
		t.Tiles = m
	}

	for _, se := range e.Segments {
		points := make([]grid.CellVec, len(se.Points))
		for i, p := range se.Points {
			points[i] = grid.CellVec{X: p[0], Y: p[1]}
		}
		seg, err := NewTemplateSegment(se.Start, se.End, points)
		if err != nil {
			return nil, fmt.Errorf("%w (template %s)", err, e.Name)
		}
		t.Segments = append(t.Segments, seg)
	}

	return t, nil
}

// EncodeCatalog re-encodes a decoded catalog file as YAML, the
// round-trip used by `pathtile validate`.
func EncodeCatalog(file *CatalogFile) ([]byte, error) {
	return yaml.Marshal(file)
}
