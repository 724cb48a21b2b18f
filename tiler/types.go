package tiler

import (
	"errors"
	"math"

	"github.com/katalvlaran/pathtile/catalog"
	"github.com/katalvlaran/pathtile/grid"
)

// MaxCost is the "not admissible / unreached" sentinel for segment
// scores and cost-lattice cells.
const MaxCost = math.MaxInt32

// OverDeviation marks a geometry cell forbidden to the search, either
// beyond the deviation bound or eroded away by MinSeparation.
const OverDeviation = math.MaxInt32

// invalidProgress marks a geometry cell whose nearest-path-point
// index could not be resolved. Real progress values are ≥ 0.
const invalidProgress = -1

// oppositeSentinel is the Progress result for a loop step of exactly
// half the ring when the forward and backward limits differ. See
// signedProgress.
const oppositeSentinel = math.MinInt32

// ErrShrinkMinimumLength is the panic message cause for Shrink with
// minimumLength ≤ 1.
var ErrShrinkMinimumLength = errors.New("tiler: Shrink minimumLength must be > 1")

// ErrPickAnyPaint is the panic cause for painting a pick-any template.
var ErrPickAnyPaint = errors.New("tiler: pick-any templates cannot be painted directly")

// ErrNoTracebackCandidate is the panic cause for a traceback step that
// finds no cost-optimal predecessor; it indicates a lost invariant.
var ErrNoTracebackCandidate = errors.New("tiler: traceback found no optimal predecessor")

// Map is the tiler's contract with the target map: cell bounds for
// edge extension, a coverage test, and writable tiles for painting.
type Map interface {
	// CellBounds returns the axis-aligned rectangle of valid cells.
	CellBounds() grid.Rect
	// Contains reports whether the map covers pos.
	Contains(pos grid.CellPos) bool
	// SetTile paints a tile index at pos. Called only for covered
	// positions.
	SetTile(pos grid.CellPos, tile int)
}

// Rand is the uniform-integer primitive the traceback draws from.
// *math/rand.Rand satisfies it.
type Rand interface {
	// Intn returns a uniform integer in [0, n). n must be > 0.
	Intn(n int) int
}

// Terminal names one end of a tiling: a terminal type and an optional
// direction. A DirNone direction is derived from the path's first or
// last step at search time.
type Terminal struct {
	Type      string
	Direction grid.Direction
}

// TilingPath is the central entity: a target map, the waypoint
// sequence the tiling must approximate, the deviation/skip/separation
// bounds, the start and end terminals, and the permitted segments.
//
// Points may be nil, meaning "no path": every conditioner passes it
// through and Tile returns nil. MaxSkip zero derives the limit as
// 2·MaxDeviation+1 at search time.
type TilingPath struct {
	Map           Map
	Points        []grid.CellPos
	MaxDeviation  int
	MaxSkip       int
	MinSeparation int
	Start         Terminal
	End           Terminal
	Segments      *catalog.PermittedSegments
}

// New builds a TilingPath with unset (auto-derived) terminal
// directions and zero MaxSkip / MinSeparation.
func New(m Map, points []grid.CellPos, maxDeviation int, startType, endType string, segments *catalog.PermittedSegments) *TilingPath {
	return &TilingPath{
		Map:          m,
		Points:       points,
		MaxDeviation: maxDeviation,
		Start:        Terminal{Type: startType, Direction: grid.DirNone},
		End:          Terminal{Type: endType, Direction: grid.DirNone},
		Segments:     segments,
	}
}

// IsLoop reports whether the current point sequence closes on itself.
func (p *TilingPath) IsLoop() bool {
	return isLoop(p.Points)
}

func isLoop(points []grid.CellPos) bool {
	return len(points) >= 2 && points[0] == points[len(points)-1]
}
