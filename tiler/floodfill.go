package tiler

import "github.com/katalvlaran/pathtile/grid"

// fillSeed pairs a starting cell with the value it propagates.
type fillSeed struct {
	pos   grid.CellPos
	value int
}

// neighbors8 is the 8-connected offset table, clockwise from right.
var neighbors8 = [8]grid.CellVec{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// floodFill drives a breadth-first fill over a width×height cell box.
// Every dequeued (cell, value) pair is handed to filler; when filler
// returns ok, the returned next value is propagated to all in-bounds
// 8-neighbors, otherwise propagation stops at that cell. The filler
// owns revisit policy: cells are re-enqueued freely and it is the
// filler's state that decides whether a visit is fresh.
//
// Seeds are processed in order, so equal-value seeds expand as one
// frontier.
// Complexity: O(visits·8); with a visited-once filler, O(W×H).
func floodFill(width, height int, seeds []fillSeed, filler func(pos grid.CellPos, value int) (next int, ok bool)) {
	queue := make([]fillSeed, len(seeds), len(seeds)+width*height)
	copy(queue, seeds)

	for qi := 0; qi < len(queue); qi++ {
		item := queue[qi]
		next, ok := filler(item.pos, item.value)
		if !ok {
			continue
		}
		for _, d := range neighbors8 {
			n := item.pos.Add(d)
			if n.X < 0 || n.X >= width || n.Y < 0 || n.Y >= height {
				continue
			}
			queue = append(queue, fillSeed{pos: n, value: next})
		}
	}
}
