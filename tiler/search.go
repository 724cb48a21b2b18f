package tiler

import (
	"fmt"

	"github.com/katalvlaran/pathtile/catalog"
	"github.com/katalvlaran/pathtile/grid"
)

// tilingSegment is the search-internal view of one permitted template
// segment: interned terminal-type ids, the point trace re-based to
// (0,0), the net displacement, and the painting offset back into
// template-local coordinates.
type tilingSegment struct {
	source      *catalog.TemplateSegment
	template    *catalog.TerrainTemplate
	startTypeID int
	endTypeID   int
	offset      grid.CellVec   // original first point, template-local
	rel         []grid.CellVec // points re-based so rel[0] == (0,0)
	moves       grid.CellVec   // rel[len-1]
}

// pather owns the scratch of a single Tile invocation: the geometry
// matrices, the interned type registry, the per-type cost lattices,
// and the priority-array frontier. It is built, run, and dropped
// inside one call; nothing is shared between invocations.
type pather struct {
	path *TilingPath
	geo  *geometry

	origin  grid.CellVec // padded-box min corner in world coordinates
	points  []grid.CellPos
	start   grid.CellPos
	end     grid.CellPos
	maxSkip int

	typeIDs      map[string]int
	startTypeID  int
	endTypeID    int
	innerTypeIDs map[int]bool

	segmentsByStart [][]*tilingSegment
	segmentsByEnd   [][]*tilingSegment

	costs    []*grid.Matrix[int]
	frontier *priorityArray
	layer    int // cells per type layer, W×H
}

// Tile fits a segment chain onto the path, paints the chosen
// templates onto the map, and returns the traversed cells in order
// from the path start to the path end (equal for loops). A nil point
// sequence and an unfittable path both return nil; callers tell the
// two apart by inspecting Points.
// Complexity: see the package doc.
func (p *TilingPath) Tile(rng Rand) []grid.CellPos {
	if len(p.Points) < 2 {
		return nil
	}

	pt := newPather(p)
	pt.run()

	best := pt.costs[pt.endTypeID].At(pt.end)
	if best == MaxCost {
		return nil
	}

	return pt.traceback(rng, best)
}

// newPather conditions the invocation: derives unset terminal
// directions, resolves the skip bound, translates the path into the
// padded box, runs the geometry pass, and interns the permitted
// segments into flat per-type tables.
func newPather(p *TilingPath) *pather {
	pt := &pather{path: p}

	loop := p.IsLoop()
	startDir := p.Start.Direction
	if startDir == grid.DirNone {
		startDir = grid.FromCellVec(p.Points[1].Sub(p.Points[0]))
	}
	endDir := p.End.Direction
	if endDir == grid.DirNone {
		if loop {
			endDir = grid.FromCellVec(p.Points[1].Sub(p.Points[0]))
		} else {
			last := len(p.Points) - 1
			endDir = grid.FromCellVec(p.Points[last].Sub(p.Points[last-1]))
		}
	}

	pt.maxSkip = p.MaxSkip
	if pt.maxSkip <= 0 {
		pt.maxSkip = 2*p.MaxDeviation + 1
	}

	// Padded box: room for deviation plus the separation margin on
	// every side; translate so the min corner is (0,0).
	bounds := grid.Bounding(p.Points).Expand(p.MaxDeviation + p.MinSeparation)
	pt.origin = bounds.Min.Sub(grid.CellPos{})
	pt.points = make([]grid.CellPos, len(p.Points))
	for i, wp := range p.Points {
		pt.points[i] = grid.CellPos{X: wp.X - bounds.Min.X, Y: wp.Y - bounds.Min.Y}
	}
	pt.start = pt.points[0]
	pt.end = pt.points[len(pt.points)-1]

	pt.geo = computeGeometry(pt.points, loop, bounds.Dx(), bounds.Dy(), p.MaxDeviation, pt.maxSkip, p.MinSeparation)

	pt.internTypes(startDir, endDir)

	return pt
}

// internTypes assigns dense ids to every terminal type touchable by
// the search and builds the per-type segment tables and cost
// lattices.
func (pt *pather) internTypes(startDir, endDir grid.Direction) {
	pt.typeIDs = make(map[string]int)
	pt.startTypeID = pt.intern(catalog.SegmentType(pt.path.Start.Type, startDir))
	pt.endTypeID = pt.intern(catalog.SegmentType(pt.path.End.Type, endDir))

	all := pt.path.Segments.All()
	for _, seg := range all {
		pt.intern(seg.Start)
		pt.intern(seg.End)
	}

	pt.innerTypeIDs = make(map[int]bool)
	for _, seg := range pt.path.Segments.Inner {
		pt.innerTypeIDs[pt.typeIDs[seg.Start]] = true
		pt.innerTypeIDs[pt.typeIDs[seg.End]] = true
	}

	n := len(pt.typeIDs)
	pt.segmentsByStart = make([][]*tilingSegment, n)
	pt.segmentsByEnd = make([][]*tilingSegment, n)
	for _, seg := range all {
		ts := pt.newTilingSegment(seg)
		pt.segmentsByStart[ts.startTypeID] = append(pt.segmentsByStart[ts.startTypeID], ts)
		pt.segmentsByEnd[ts.endTypeID] = append(pt.segmentsByEnd[ts.endTypeID], ts)
	}

	pt.layer = pt.geo.width * pt.geo.height
	pt.costs = make([]*grid.Matrix[int], n)
	for t := 0; t < n; t++ {
		pt.costs[t], _ = grid.NewMatrixFilled(pt.geo.width, pt.geo.height, MaxCost)
	}
	pt.frontier = newPriorityArray(n * pt.layer)
}

// intern returns the dense id for a terminal-type label, assigning
// one on first sight.
func (pt *pather) intern(label string) int {
	if id, ok := pt.typeIDs[label]; ok {
		return id
	}
	id := len(pt.typeIDs)
	pt.typeIDs[label] = id

	return id
}

// newTilingSegment re-bases a template segment to (0,0) and resolves
// its template. A segment without a template is a broken catalog.
func (pt *pather) newTilingSegment(seg *catalog.TemplateSegment) *tilingSegment {
	tmpl, err := pt.path.Segments.Catalog.TemplateFor(seg)
	if err != nil {
		panic(fmt.Sprintf("tiler: %v", err))
	}
	rel := make([]grid.CellVec, len(seg.Points))
	for i, sp := range seg.Points {
		rel[i] = sp.Sub(seg.Points[0])
	}

	return &tilingSegment{
		source:      seg,
		template:    tmpl,
		startTypeID: pt.typeIDs[seg.Start],
		endTypeID:   pt.typeIDs[seg.End],
		offset:      seg.Points[0],
		rel:         rel,
		moves:       rel[len(rel)-1],
	}
}

// run seeds the frontier from the path start and extracts cells in
// non-decreasing cost order until the path end settles or the
// frontier drains. No visited set exists: a popped cell's priority is
// raised to MaxCost and can never be selected again.
func (pt *pather) run() {
	pt.updateFrom(pt.start, pt.startTypeID, 0)

	for {
		idx := pt.frontier.getMinIndex()
		cost := pt.frontier.at(idx)
		if cost == MaxCost {
			return
		}
		typeID := idx / pt.layer
		pos := grid.CellPos{X: idx % pt.layer % pt.geo.width, Y: idx % pt.layer / pt.geo.width}
		if pos == pt.end {
			return
		}
		pt.updateFrom(pos, typeID, cost)
	}
}

// updateFrom relaxes every permitted segment leaving (from, fromType)
// and then removes the cell from the frontier.
func (pt *pather) updateFrom(from grid.CellPos, fromType, fromCost int) {
	for _, seg := range pt.segmentsByStart[fromType] {
		to := from.Add(seg.moves)
		if pt.geo.excluded(to) {
			continue
		}
		segCost := pt.scoreSegment(seg, from)
		if segCost == MaxCost {
			continue
		}
		toCost := fromCost + segCost
		if toCost >= MaxCost {
			continue
		}
		if toCost < pt.costs[seg.endTypeID].At(to) {
			pt.costs[seg.endTypeID].Set(to, toCost)
			pt.frontier.set(pt.frontierIndex(seg.endTypeID, to), toCost)
		}
	}
	pt.frontier.set(pt.frontierIndex(fromType, from), MaxCost)
}

// frontierIndex flattens (type, cell) into the priority-array index.
func (pt *pather) frontierIndex(typeID int, pos grid.CellPos) int {
	return typeID*pt.layer + pos.Y*pt.geo.width + pos.X
}

// scoreSegment prices laying seg with its first point at from.
// MaxCost means forbidden; any other result is the summed deviation
// of the segment's interior and end points.
func (pt *pather) scoreSegment(seg *tilingSegment, from grid.CellPos) int {
	// Terminal-type gating.
	if from == pt.start {
		if seg.startTypeID != pt.startTypeID {
			return MaxCost
		}
	} else if !pt.innerTypeIDs[seg.startTypeID] {
		return MaxCost
	}
	to := from.Add(seg.moves)
	if to == pt.end {
		if seg.endTypeID != pt.endTypeID {
			return MaxCost
		}
	} else if !pt.innerTypeIDs[seg.endTypeID] {
		return MaxCost
	}

	// Loop anti-wrap: forbid segments that cross back over the seam.
	// The highProgress[to] != 0 exception is tied to the seam sitting
	// at progress 0 after OptimizeLoop; keep the condition as is.
	if pt.geo.loop && to != pt.end {
		if pt.geo.lowProgress.At(from) > pt.geo.highProgress.At(to) && pt.geo.highProgress.At(to) != 0 {
			return MaxCost
		}
	}

	lowAcc, highAcc, deviationAcc := 0, 0, 0
	for i, rv := range seg.rel {
		p := from.Add(rv)
		if pt.geo.excluded(p) {
			return MaxCost
		}
		if i < len(seg.rel)-1 {
			q := from.Add(seg.rel[i+1])
			if pt.geo.excluded(q) {
				return MaxCost
			}
			plo, phi := pt.geo.lowProgress.At(p), pt.geo.highProgress.At(p)
			qlo, qhi := pt.geo.lowProgress.At(q), pt.geo.highProgress.At(q)
			if plo == invalidProgress || qlo == invalidProgress {
				return MaxCost
			}
			dlo := pt.geo.signedProgress(plo, qlo)
			dhi := pt.geo.signedProgress(phi, qhi)
			if pt.geo.progressExceeds(dlo) || pt.geo.progressExceeds(dhi) {
				return MaxCost
			}
			lowAcc += dlo
			highAcc += dhi
		}
		if i > 0 {
			// The first point belongs to the previous segment's tail;
			// skipping it avoids double-counting at joins.
			deviationAcc += pt.geo.deviation.At(p)
		}
	}

	// The chain may pause but may not regress.
	if lowAcc < 0 || highAcc < 0 {
		return MaxCost
	}

	return deviationAcc
}
