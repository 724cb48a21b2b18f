package tiler

import (
	"math"

	"github.com/katalvlaran/pathtile/grid"
)

// ValidatePathPoints reports whether points is a well-formed tiling
// path: non-empty, at least 2 points (3 for a loop), no duplicate
// points apart from the loop-closing repeat, and every step a
// non-diagonal unit offset.
// Complexity: O(n).
func ValidatePathPoints(points []grid.CellPos) bool {
	if len(points) == 0 {
		return false
	}
	loop := isLoop(points)
	minLen := 2
	if loop {
		minLen = 3
	}
	if len(points) < minLen {
		return false
	}

	seen := make(map[grid.CellPos]bool, len(points))
	body := points
	if loop {
		body = points[:len(points)-1]
	}
	for _, p := range body {
		if seen[p] {
			return false
		}
		seen[p] = true
	}

	for i := 1; i < len(points); i++ {
		step := points[i].Sub(points[i-1])
		if absInt(step.X)+absInt(step.Y) != 1 {
			return false
		}
	}

	return true
}

// InertiallyExtendPathPoints prepends and appends extLen points
// marching along the cardinal snap of the path's first and last
// min(inertialRange, len-1) steps. Loops pass through unchanged.
// Complexity: O(n + extLen).
func InertiallyExtendPathPoints(points []grid.CellPos, extLen, inertialRange int) []grid.CellPos {
	if len(points) < 2 || isLoop(points) || extLen <= 0 {
		return points
	}
	n := inertialRange
	if n > len(points)-1 {
		n = len(points) - 1
	}
	if n < 1 {
		return points
	}

	startDir := grid.SnapCardinal(points[n].Sub(points[0]))
	endDir := grid.SnapCardinal(points[len(points)-1].Sub(points[len(points)-1-n]))

	out := make([]grid.CellPos, 0, len(points)+2*extLen)
	for k := extLen; k >= 1; k-- {
		out = append(out, points[0].Add(startDir.Vec().Scale(-k)))
	}
	out = append(out, points...)
	for k := 1; k <= extLen; k++ {
		out = append(out, points[len(points)-1].Add(endDir.Vec().Scale(k)))
	}

	return out
}

// ExtendEdgePathPoints prepends (appends) extLen points marching
// outward along the map edge's outward normal when the first (last)
// point lies on exactly one edge of bounds. Corner and interior
// endpoints, and loops, pass through unchanged.
// Complexity: O(n + extLen).
func ExtendEdgePathPoints(points []grid.CellPos, bounds grid.Rect, extLen int) []grid.CellPos {
	if len(points) < 2 || isLoop(points) || extLen <= 0 {
		return points
	}

	out := points
	if normal, ok := edgeNormal(points[0], bounds); ok {
		ext := make([]grid.CellPos, 0, extLen+len(out))
		for k := extLen; k >= 1; k-- {
			ext = append(ext, points[0].Add(normal.Scale(k)))
		}
		out = append(ext, out...)
	}
	last := points[len(points)-1]
	if normal, ok := edgeNormal(last, bounds); ok {
		for k := 1; k <= extLen; k++ {
			out = append(out, last.Add(normal.Scale(k)))
		}
	}

	return out
}

// edgeNormal returns the outward normal of the single bounds edge p
// lies on. Corners and interior points have no usable normal.
func edgeNormal(p grid.CellPos, bounds grid.Rect) (grid.CellVec, bool) {
	left := p.X == bounds.Min.X
	right := p.X == bounds.Max.X-1
	top := p.Y == bounds.Min.Y
	bottom := p.Y == bounds.Max.Y-1

	onX := left || right
	onY := top || bottom
	if onX == onY {
		// corner (both) or interior (neither)
		return grid.CellVec{}, false
	}
	switch {
	case left:
		return grid.CellVec{X: -1}, true
	case right:
		return grid.CellVec{X: 1}, true
	case top:
		return grid.CellVec{Y: -1}, true
	default:
		return grid.CellVec{Y: 1}, true
	}
}

// OptimizeLoopPathPoints rotates a loop so that the start/end join
// sits at the midpoint of the longest axis-aligned straight, away
// from any bend. Non-loops pass through unchanged.
// Complexity: O(n).
func OptimizeLoopPathPoints(points []grid.CellPos) []grid.CellPos {
	if !isLoop(points) || len(points) < 4 {
		return points
	}
	ring := points[:len(points)-1]
	m := len(ring)

	dirs := make([]grid.CellVec, m)
	for i := 0; i < m; i++ {
		dirs[i] = ring[(i+1)%m].Sub(ring[i])
	}

	var bends []int
	for i := 0; i < m; i++ {
		if dirs[i] != dirs[(i+m-1)%m] {
			bends = append(bends, i)
		}
	}
	if len(bends) == 0 {
		return points
	}

	// Longest straight between two consecutive bends, circularly.
	// Ties keep the run holding the current join so that a second
	// pass reproduces the same rotation.
	bestLen, bestMid := -1, 0
	for j, b := range bends {
		next := bends[(j+1)%len(bends)]
		runLen := (next - b + m) % m
		if runLen == 0 {
			runLen = m
		}
		mid := (b + runLen/2) % m
		if runLen > bestLen || (runLen == bestLen && mid == 0) {
			bestLen = runLen
			bestMid = mid
		}
	}
	if bestMid == 0 {
		return points
	}

	out := make([]grid.CellPos, 0, len(points))
	out = append(out, ring[bestMid:]...)
	out = append(out, ring[:bestMid]...)
	out = append(out, ring[bestMid])

	return out
}

// ShrinkPathPoints trims shrinkBy points from each end of a non-loop,
// or returns nil when fewer than minimumLength points would remain.
// Loops are never trimmed; only the length check applies. A
// minimumLength ≤ 1 is a programmer error and panics.
// Complexity: O(1) (shares the backing array).
func ShrinkPathPoints(points []grid.CellPos, shrinkBy, minimumLength int) []grid.CellPos {
	if minimumLength <= 1 {
		panic(ErrShrinkMinimumLength)
	}
	if points == nil {
		return nil
	}
	if isLoop(points) {
		if len(points) < minimumLength {
			return nil
		}

		return points
	}
	if len(points)-2*shrinkBy < minimumLength {
		return nil
	}

	return points[shrinkBy : len(points)-shrinkBy]
}

// ChirallyNormalizePathPoints gives the path a consistent rotation
// sense. Loops are reversed when the cross product of the in/out
// edges at the top-left-most ring point is negative. Non-loops
// compare the endpoint displacements measured from measureFrom:
// negative cross reverses; a zero cross falls back to distance from
// the measure point, then to absolute endpoint angle.
// Complexity: O(n).
func ChirallyNormalizePathPoints(points []grid.CellPos, measureFrom grid.CellPos) []grid.CellPos {
	if len(points) < 2 {
		return points
	}

	if isLoop(points) {
		ring := points[:len(points)-1]
		m := len(ring)
		tl := 0
		for i := 1; i < m; i++ {
			if ring[i].Y < ring[tl].Y || (ring[i].Y == ring[tl].Y && ring[i].X < ring[tl].X) {
				tl = i
			}
		}
		in := ring[tl].Sub(ring[(tl+m-1)%m])
		out := ring[(tl+1)%m].Sub(ring[tl])
		if in.Cross(out) < 0 {
			return reversedPoints(points)
		}

		return points
	}

	a := points[0].Sub(measureFrom)
	b := points[len(points)-1].Sub(measureFrom)
	cross := a.Cross(b)
	switch {
	case cross < 0:
		return reversedPoints(points)
	case cross > 0:
		return points
	}

	// Colinear endpoints: order by distance from the measure point,
	// then by absolute angle.
	da := a.X*a.X + a.Y*a.Y
	db := b.X*b.X + b.Y*b.Y
	if da != db {
		if da > db {
			return reversedPoints(points)
		}

		return points
	}
	angA := math.Abs(math.Atan2(float64(a.Y), float64(a.X)))
	angB := math.Abs(math.Atan2(float64(b.Y), float64(b.X)))
	if angA > angB {
		return reversedPoints(points)
	}

	return points
}

// RetainDisjointPaths keeps each non-nil point sequence only if it
// shares no cell with any previously retained one, preserving order.
// Complexity: O(total points).
func RetainDisjointPaths(paths [][]grid.CellPos) [][]grid.CellPos {
	claimed := make(map[grid.CellPos]bool)
	var out [][]grid.CellPos
	for _, path := range paths {
		if path == nil {
			continue
		}
		overlaps := false
		for _, p := range path {
			if claimed[p] {
				overlaps = true
				break
			}
		}
		if overlaps {
			continue
		}
		for _, p := range path {
			claimed[p] = true
		}
		out = append(out, path)
	}

	return out
}

// --- chainable conditioners ------------------------------------------------

// RetainIfValid nulls Points unless it is a well-formed tiling path.
func (p *TilingPath) RetainIfValid() *TilingPath {
	if !ValidatePathPoints(p.Points) {
		p.Points = nil
	}

	return p
}

// InertiallyExtend applies InertiallyExtendPathPoints in place.
func (p *TilingPath) InertiallyExtend(extLen, inertialRange int) *TilingPath {
	p.Points = InertiallyExtendPathPoints(p.Points, extLen, inertialRange)

	return p
}

// ExtendEdge applies ExtendEdgePathPoints against the map's cell
// bounds.
func (p *TilingPath) ExtendEdge(extLen int) *TilingPath {
	p.Points = ExtendEdgePathPoints(p.Points, p.Map.CellBounds(), extLen)

	return p
}

// OptimizeLoop applies OptimizeLoopPathPoints in place.
func (p *TilingPath) OptimizeLoop() *TilingPath {
	p.Points = OptimizeLoopPathPoints(p.Points)

	return p
}

// Shrink applies ShrinkPathPoints in place.
func (p *TilingPath) Shrink(shrinkBy, minimumLength int) *TilingPath {
	p.Points = ShrinkPathPoints(p.Points, shrinkBy, minimumLength)

	return p
}

// ChirallyNormalize applies ChirallyNormalizePathPoints, measuring
// from the center of the map's cell bounds.
func (p *TilingPath) ChirallyNormalize() *TilingPath {
	p.Points = ChirallyNormalizePathPoints(p.Points, p.Map.CellBounds().Center())

	return p
}

func reversedPoints(points []grid.CellPos) []grid.CellPos {
	out := make([]grid.CellPos, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}

	return out
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
