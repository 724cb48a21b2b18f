package tiler

import (
	"sort"

	"github.com/katalvlaran/pathtile/grid"
)

// geometry holds the per-cell conditioning matrices the search scores
// against: Chebyshev deviation from the path, and the earliest/latest
// nearest-path-point indexes (lowProgress/highProgress). All
// coordinates are in the padded box frame, min corner at (0,0).
type geometry struct {
	width, height   int
	loop            bool
	progressModulus int
	maxDeviation    int
	maxSkip         int
	minSeparation   int

	deviation    *grid.Matrix[int]
	lowProgress  *grid.Matrix[int]
	highProgress *grid.Matrix[int]
}

// computeGeometry runs the geometric conditioning pass over the
// translated path: progress-carrying deviation fill out to
// maxDeviation+minSeparation, then the minimum-separation erosion.
// Complexity: O(W×H) time and memory.
func computeGeometry(points []grid.CellPos, loop bool, width, height, maxDeviation, maxSkip, minSeparation int) *geometry {
	g := &geometry{
		width:         width,
		height:        height,
		loop:          loop,
		maxDeviation:  maxDeviation,
		maxSkip:       maxSkip,
		minSeparation: minSeparation,
	}
	if loop {
		g.progressModulus = len(points) - 1
	} else {
		g.progressModulus = len(points)
	}

	g.deviation, _ = grid.NewMatrixFilled(width, height, OverDeviation)
	g.lowProgress, _ = grid.NewMatrixFilled(width, height, invalidProgress)
	g.highProgress, _ = grid.NewMatrixFilled(width, height, invalidProgress)

	g.progressFill(points)
	if minSeparation > 0 {
		g.erodeSeparation()
	}

	return g
}

// progressFill seeds every path point at deviation 0 with its own
// index as progress, then spreads deviation outward in BFS layers up
// to scanRange, resolving each newly reached cell's progress from its
// already-settled neighbors.
func (g *geometry) progressFill(points []grid.CellPos) {
	scanRange := g.maxDeviation + g.minSeparation

	seeds := make([]fillSeed, g.progressModulus)
	for i := 0; i < g.progressModulus; i++ {
		p := points[i]
		seeds[i] = fillSeed{pos: p, value: 0}
		g.lowProgress.Set(p, i)
		g.highProgress.Set(p, i)
	}

	floodFill(g.width, g.height, seeds, func(pos grid.CellPos, d int) (int, bool) {
		if g.deviation.At(pos) != OverDeviation {
			return 0, false // already settled at a lower or equal radius
		}
		g.deviation.Set(pos, d)
		if d > 0 {
			g.resolveProgress(pos, d)
		}
		if d >= scanRange {
			return 0, false
		}

		return d + 1, true
	})
}

// resolveProgress computes the low/high progress of a freshly settled
// cell from neighbors settled at a strictly smaller deviation.
func (g *geometry) resolveProgress(pos grid.CellPos, d int) {
	var lows, highs []int
	for _, dv := range neighbors8 {
		n := pos.Add(dv)
		if !g.deviation.In(n) || g.deviation.At(n) >= d {
			continue
		}
		lo, hi := g.lowProgress.At(n), g.highProgress.At(n)
		if lo == invalidProgress || hi == invalidProgress {
			continue
		}
		lows = append(lows, lo)
		highs = append(highs, hi)
	}

	lo, hi, ok := g.findLowAndHigh(lows, highs)
	if !ok {
		return
	}
	g.lowProgress.Set(pos, lo)
	g.highProgress.Set(pos, hi)
}

// findLowAndHigh merges neighbor progress values into one low/high
// pair. Non-loops take the extremes. Loops sort all values on the
// ring and look for the single circular gap wider than half the ring:
// its far side is the cluster's low, its near side the high. Fully
// dispersed values resolve to nothing.
func (g *geometry) findLowAndHigh(lows, highs []int) (int, int, bool) {
	switch len(lows) {
	case 0:
		return 0, 0, false
	case 1:
		return lows[0], highs[0], true
	}

	if !g.loop {
		lo, hi := lows[0], highs[0]
		for i := 1; i < len(lows); i++ {
			if lows[i] < lo {
				lo = lows[i]
			}
			if highs[i] > hi {
				hi = highs[i]
			}
		}

		return lo, hi, true
	}

	values := make([]int, 0, len(lows)+len(highs))
	values = append(values, lows...)
	values = append(values, highs...)
	sort.Ints(values)

	for i := range values {
		a := values[i]
		b := values[(i+1)%len(values)]
		if g.signedProgress(a, b) < 0 {
			return b, a, true
		}
	}

	return 0, 0, false
}

// erodeSeparation excludes cells too close to trouble: cells with
// unresolved progress, cells bordering an over-skip progress jump,
// and cells beyond the deviation bound. Each seed kind carries its
// own starting range; the fill decrements the range outward and marks
// every touched cell that is neither on the path nor already
// excluded.
func (g *geometry) erodeSeparation() {
	var seeds []fillSeed
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			p := grid.CellPos{X: x, Y: y}
			switch {
			case g.lowProgress.At(p) == invalidProgress:
				seeds = append(seeds, fillSeed{pos: p, value: g.minSeparation})
			case g.bordersOverSkip(p):
				seeds = append(seeds, fillSeed{pos: p, value: g.minSeparation - 1})
			}
			if d := g.deviation.At(p); d > g.maxDeviation && d != OverDeviation {
				seeds = append(seeds, fillSeed{pos: p, value: 0})
			}
		}
	}

	bestRange, _ := grid.NewMatrixFilled(g.width, g.height, -1)
	floodFill(g.width, g.height, seeds, func(pos grid.CellPos, r int) (int, bool) {
		if bestRange.At(pos) >= r {
			return 0, false
		}
		bestRange.Set(pos, r)
		if d := g.deviation.At(pos); d != 0 && d != OverDeviation {
			g.deviation.Set(pos, OverDeviation)
		}
		if r <= 0 {
			return 0, false
		}

		return r - 1, true
	})
}

// bordersOverSkip reports whether any 8-neighbor of p sits more than
// maxSkip progress steps away in either scalar.
func (g *geometry) bordersOverSkip(p grid.CellPos) bool {
	plo, phi := g.lowProgress.At(p), g.highProgress.At(p)
	if plo == invalidProgress {
		return false
	}
	for _, dv := range neighbors8 {
		n := p.Add(dv)
		if !g.deviation.In(n) {
			continue
		}
		nlo, nhi := g.lowProgress.At(n), g.highProgress.At(n)
		if nlo == invalidProgress {
			continue
		}
		if g.progressExceeds(g.signedProgress(plo, nlo)) || g.progressExceeds(g.signedProgress(phi, nhi)) {
			return true
		}
	}

	return false
}

// signedProgress is the signed shortest ring distance from one path
// index to another. Non-loops subtract directly. Loops reduce modulo
// progressModulus and pick the shorter way round; a jump of exactly
// half an even ring resolves to the opposite value — forwardLimit
// when the two limits agree, the far sentinel otherwise. Preserve
// this tie-break literally: the loop anti-wrap behavior depends on it.
func (g *geometry) signedProgress(from, to int) int {
	if !g.loop {
		return to - from
	}
	m := g.progressModulus
	p := ((to-from)%m + m) % m
	forwardLimit := (m + 1) / 2
	backwardLimit := m / 2
	if p < forwardLimit {
		return p
	}
	if p > backwardLimit {
		return p - m
	}
	if forwardLimit == backwardLimit {
		return forwardLimit
	}

	return oppositeSentinel
}

// progressExceeds reports whether a signedProgress result violates the
// skip bound. The far sentinel always does.
func (g *geometry) progressExceeds(p int) bool {
	if p == oppositeSentinel {
		return true
	}

	return absInt(p) > g.maxSkip
}

// excluded reports whether a padded-box cell is out of bounds or
// marked OverDeviation.
func (g *geometry) excluded(p grid.CellPos) bool {
	return !g.deviation.In(p) || g.deviation.At(p) == OverDeviation
}
