package tilemap

import (
	"strings"

	"github.com/katalvlaran/pathtile/grid"
)

// Unset marks a map cell no template has painted yet.
const Unset = -1

// TileMap is a rectangular tile grid addressed in world cell
// coordinates. Bounds need not start at the origin.
type TileMap struct {
	bounds grid.Rect
	tiles  *grid.Matrix[int]
}

// New creates a map covering bounds with every cell Unset.
// Returns grid.ErrInvalidDimensions for a degenerate rectangle.
func New(bounds grid.Rect) (*TileMap, error) {
	tiles, err := grid.NewMatrixFilled(bounds.Dx(), bounds.Dy(), Unset)
	if err != nil {
		return nil, err
	}

	return &TileMap{bounds: bounds, tiles: tiles}, nil
}

// CellBounds returns the rectangle of valid cells.
func (m *TileMap) CellBounds() grid.Rect {
	return m.bounds
}

// Contains reports whether the map covers pos.
func (m *TileMap) Contains(pos grid.CellPos) bool {
	return m.bounds.Contains(pos)
}

// SetTile paints a tile index at pos. Positions outside the bounds
// are ignored, matching the clipped-paint contract.
func (m *TileMap) SetTile(pos grid.CellPos, tile int) {
	if !m.bounds.Contains(pos) {
		return
	}
	m.tiles.Set(m.local(pos), tile)
}

// Tile returns the tile index at pos, or Unset when pos is outside
// the bounds or unpainted.
func (m *TileMap) Tile(pos grid.CellPos) int {
	if !m.bounds.Contains(pos) {
		return Unset
	}

	return m.tiles.At(m.local(pos))
}

// PaintedCount returns the number of cells holding a painted tile.
func (m *TileMap) PaintedCount() int {
	n := 0
	for y := m.bounds.Min.Y; y < m.bounds.Max.Y; y++ {
		for x := m.bounds.Min.X; x < m.bounds.Max.X; x++ {
			if m.Tile(grid.CellPos{X: x, Y: y}) != Unset {
				n++
			}
		}
	}

	return n
}

// Render draws the map as one rune per cell: '.' for unset cells and
// the tile index modulo ten otherwise. Rows are separated by
// newlines, top row first.
func (m *TileMap) Render() string {
	var b strings.Builder
	for y := m.bounds.Min.Y; y < m.bounds.Max.Y; y++ {
		for x := m.bounds.Min.X; x < m.bounds.Max.X; x++ {
			t := m.Tile(grid.CellPos{X: x, Y: y})
			if t == Unset {
				b.WriteByte('.')
				continue
			}
			b.WriteByte(byte('0' + t%10))
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func (m *TileMap) local(pos grid.CellPos) grid.CellPos {
	return grid.CellPos{X: pos.X - m.bounds.Min.X, Y: pos.Y - m.bounds.Min.Y}
}
