package tiler

import (
	"github.com/katalvlaran/pathtile/catalog"
	"github.com/katalvlaran/pathtile/grid"
)

// traceback walks backward from the settled path end, choosing
// uniformly at random among cost-optimal predecessors, painting each
// chosen template and collecting the traversed cells. The forward
// search never assigned a cost to the start seed (so a loop's shared
// start/end cell could not short-circuit it); the walk begins by
// allowing termination against it.
func (pt *pather) traceback(rng Rand, best int) []grid.CellPos {
	pt.costs[pt.startTypeID].Set(pt.start, 0)

	result := []grid.CellPos{pt.world(pt.end)}
	to, toType, toCost := pt.end, pt.endTypeID, best

	type candidate struct {
		seg  *tilingSegment
		cost int
	}
	for {
		var candidates []candidate
		for _, seg := range pt.segmentsByEnd[toType] {
			from := to.Add(seg.moves.Neg())
			if pt.geo.excluded(from) {
				continue
			}
			s := pt.scoreSegment(seg, from)
			if s == MaxCost {
				continue
			}
			if pt.costs[seg.startTypeID].At(from) == toCost-s {
				candidates = append(candidates, candidate{seg: seg, cost: s})
			}
		}
		if len(candidates) == 0 {
			panic(ErrNoTracebackCandidate)
		}

		chosen := candidates[rng.Intn(len(candidates))]
		from := to.Add(chosen.seg.moves.Neg())
		pt.paint(chosen.seg, from)

		// The segment's last point was already emitted by its
		// successor; walk the rest backward.
		for i := len(chosen.seg.rel) - 2; i >= 0; i-- {
			result = append(result, pt.world(from.Add(chosen.seg.rel[i])))
		}

		to = from
		toType = chosen.seg.startTypeID
		toCost -= chosen.cost
		if to == pt.start && toType == pt.startTypeID && toCost == 0 {
			break
		}
	}

	for i, j := 0, len(result)-1; i < j; i, j = i+1, j-1 {
		result[i], result[j] = result[j], result[i]
	}

	return result
}

// paint copies the chosen segment's template onto the map, skipping
// empty cells and clipping to the map's coverage. Pick-any templates
// are resolved elsewhere by the map engine; reaching one here is a
// broken catalog.
func (pt *pather) paint(seg *tilingSegment, from grid.CellPos) {
	if seg.template.PickAny {
		panic(ErrPickAnyPaint)
	}
	tiles := seg.template.Tiles
	if tiles == nil {
		return
	}

	origin := pt.world(from).Add(seg.offset.Neg())
	for ty := 0; ty < tiles.Height; ty++ {
		for tx := 0; tx < tiles.Width; tx++ {
			v := tiles.At(grid.CellPos{X: tx, Y: ty})
			if v == catalog.EmptyTile {
				continue
			}
			mpos := origin.Add(grid.CellVec{X: tx, Y: ty})
			if pt.path.Map.Contains(mpos) {
				pt.path.Map.SetTile(mpos, v)
			}
		}
	}
}

// world translates a padded-box cell back into map coordinates.
func (pt *pather) world(p grid.CellPos) grid.CellPos {
	return p.Add(pt.origin)
}
