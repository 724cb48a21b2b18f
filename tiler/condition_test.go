package tiler_test

import (
	"testing"

	"github.com/katalvlaran/pathtile/grid"
	"github.com/katalvlaran/pathtile/tiler"
)

func pts(pairs ...[2]int) []grid.CellPos {
	out := make([]grid.CellPos, len(pairs))
	for i, p := range pairs {
		out[i] = grid.CellPos{X: p[0], Y: p[1]}
	}

	return out
}

// TestValidatePathPoints exercises every rejection rule and a few
// accepted shapes; the predicate is total and deterministic.
func TestValidatePathPoints(t *testing.T) {
	cases := []struct {
		name   string
		points []grid.CellPos
		want   bool
	}{
		{"Nil", nil, false},
		{"Empty", []grid.CellPos{}, false},
		{"Single", pts([2]int{0, 0}), false},
		{"Straight", pts([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}), true},
		{"TwoPoint", pts([2]int{0, 0}, [2]int{0, 1}), true},
		{"DiagonalStep", pts([2]int{0, 0}, [2]int{1, 1}), false},
		{"LeapStep", pts([2]int{0, 0}, [2]int{2, 0}), false},
		{"Duplicate", pts([2]int{0, 0}, [2]int{1, 0}, [2]int{0, 0}, [2]int{0, 1}), false},
		{"LoopTooShort", pts([2]int{0, 0}, [2]int{0, 0}), false},
		{"Loop", pts([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{0, 1}, [2]int{0, 0}), true},
		{"LoopInnerDup", pts([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 0}, [2]int{0, 0}), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tiler.ValidatePathPoints(tc.points); got != tc.want {
				t.Errorf("ValidatePathPoints = %v; want %v", got, tc.want)
			}
		})
	}
}

// TestInertiallyExtendPathPoints checks the cardinal snap, both ends,
// and the loop identity.
func TestInertiallyExtendPathPoints(t *testing.T) {
	in := pts([2]int{5, 5}, [2]int{6, 5}, [2]int{7, 5}, [2]int{7, 6})
	got := tiler.InertiallyExtendPathPoints(in, 2, 2)
	// Start run (5,5)->(7,5) snaps to R, so the head marches left;
	// end run (6,5)->(7,6) snaps to R on the horizontal tie.
	want := append(pts([2]int{3, 5}, [2]int{4, 5}), in...)
	want = append(want, grid.CellPos{X: 8, Y: 6}, grid.CellPos{X: 9, Y: 6})
	if !equalPts(got, want) {
		t.Errorf("InertiallyExtend = %v; want %v", got, want)
	}

	loop := pts([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{0, 1}, [2]int{0, 0})
	if !equalPts(tiler.InertiallyExtendPathPoints(loop, 3, 2), loop) {
		t.Error("InertiallyExtend on a loop must be the identity")
	}
}

// TestExtendEdgePathPoints checks edge, corner, and interior
// endpoints against explicit map bounds.
func TestExtendEdgePathPoints(t *testing.T) {
	bounds := grid.NewRect(0, 0, 10, 10)

	onLeft := pts([2]int{0, 4}, [2]int{1, 4}, [2]int{2, 4})
	got := tiler.ExtendEdgePathPoints(onLeft, bounds, 2)
	want := append(pts([2]int{-2, 4}, [2]int{-1, 4}), onLeft...)
	if !equalPts(got, want) {
		t.Errorf("left-edge extension = %v; want %v", got, want)
	}

	onBottom := pts([2]int{4, 7}, [2]int{4, 8}, [2]int{4, 9})
	got = tiler.ExtendEdgePathPoints(onBottom, bounds, 1)
	if gotLast := got[len(got)-1]; gotLast != (grid.CellPos{X: 4, Y: 10}) {
		t.Errorf("bottom-edge extension last = %v; want (4,10)", gotLast)
	}

	// Top row from the top-left corner to the top-right corner.
	corner := pts(
		[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0}, [2]int{4, 0},
		[2]int{5, 0}, [2]int{6, 0}, [2]int{7, 0}, [2]int{8, 0}, [2]int{9, 0},
	)
	if !equalPts(tiler.ExtendEdgePathPoints(corner, bounds, 2), corner) {
		t.Error("corner endpoints must pass through unchanged")
	}

	interior := pts([2]int{4, 4}, [2]int{5, 4})
	if !equalPts(tiler.ExtendEdgePathPoints(interior, bounds, 2), interior) {
		t.Error("interior endpoints must pass through unchanged")
	}
}

// TestOptimizeLoopPathPoints checks the non-loop identity, the seam
// rotation onto the longest straight, and idempotence of the rotation.
func TestOptimizeLoopPathPoints(t *testing.T) {
	line := pts([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0})
	if !equalPts(tiler.OptimizeLoopPathPoints(line), line) {
		t.Error("OptimizeLoop on a non-loop must be the identity")
	}

	// 4×2 rectangle ring: the long straights run along the top and
	// bottom; the seam must land mid-straight, away from any corner.
	loop := pts(
		[2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0},
		[2]int{3, 1}, [2]int{2, 1}, [2]int{1, 1}, [2]int{0, 1},
		[2]int{0, 0},
	)
	got := tiler.OptimizeLoopPathPoints(loop)
	if got[0] != got[len(got)-1] {
		t.Fatal("rotated loop must stay closed")
	}
	corners := map[grid.CellPos]bool{
		{X: 0, Y: 0}: true, {X: 3, Y: 0}: true, {X: 3, Y: 1}: true, {X: 0, Y: 1}: true,
	}
	if corners[got[0]] {
		t.Errorf("seam %v sits on a corner", got[0])
	}

	again := tiler.OptimizeLoopPathPoints(got)
	if !equalPts(again, got) {
		t.Errorf("OptimizeLoop is not idempotent: %v then %v", got, again)
	}
}

// TestShrinkPathPoints covers the documented shrink laws, including
// the minimumLength panic.
func TestShrinkPathPoints(t *testing.T) {
	line := pts([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0})

	got := tiler.ShrinkPathPoints(line, 1, 2)
	if !equalPts(got, pts([2]int{1, 0}, [2]int{2, 0})) {
		t.Errorf("Shrink(1,2) = %v; want [(1,0) (2,0)]", got)
	}
	if got := tiler.ShrinkPathPoints(line, 2, 2); got != nil {
		t.Errorf("Shrink(2,2) = %v; want nil", got)
	}

	loop := pts([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{0, 1}, [2]int{0, 0})
	if !equalPts(tiler.ShrinkPathPoints(loop, 2, 3), loop) {
		t.Error("loops are never trimmed")
	}
	if got := tiler.ShrinkPathPoints(loop, 0, 9); got != nil {
		t.Error("short loop must shrink to nil")
	}

	defer func() {
		if recover() == nil {
			t.Error("Shrink with minimumLength 1 must panic")
		}
	}()
	tiler.ShrinkPathPoints(line, 0, 1)
}

// TestChirallyNormalizePathPoints checks loop handedness, non-loop
// cross ordering, idempotence, and reverse-then-normalize agreement.
func TestChirallyNormalizePathPoints(t *testing.T) {
	center := grid.CellPos{X: 0, Y: 0}

	cw := pts([2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{0, 1}, [2]int{0, 0})
	ccw := reversed(cw)
	normCW := tiler.ChirallyNormalizePathPoints(cw, center)
	normCCW := tiler.ChirallyNormalizePathPoints(ccw, center)
	if !equalPts(normCW, normCCW) {
		t.Errorf("loop normalization differs by input sense: %v vs %v", normCW, normCCW)
	}
	if !equalPts(tiler.ChirallyNormalizePathPoints(normCW, center), normCW) {
		t.Error("loop normalization is not idempotent")
	}

	line := pts([2]int{3, 1}, [2]int{3, 2}, [2]int{2, 2}, [2]int{1, 2})
	a := tiler.ChirallyNormalizePathPoints(line, center)
	b := tiler.ChirallyNormalizePathPoints(reversed(line), center)
	if !equalPts(a, b) {
		t.Errorf("non-loop normalization differs by input sense: %v vs %v", a, b)
	}
	if !equalPts(tiler.ChirallyNormalizePathPoints(a, center), a) {
		t.Error("non-loop normalization is not idempotent")
	}
}

// TestRetainDisjointPaths checks overlap filtering, order
// preservation, and idempotence.
func TestRetainDisjointPaths(t *testing.T) {
	a := pts([2]int{0, 0}, [2]int{1, 0})
	b := pts([2]int{1, 0}, [2]int{1, 1}) // shares (1,0) with a
	c := pts([2]int{5, 5}, [2]int{6, 5})

	got := tiler.RetainDisjointPaths([][]grid.CellPos{a, b, c})
	if len(got) != 2 || !equalPts(got[0], a) || !equalPts(got[1], c) {
		t.Fatalf("RetainDisjointPaths = %v; want [a c]", got)
	}

	again := tiler.RetainDisjointPaths(got)
	if len(again) != 2 || !equalPts(again[0], a) || !equalPts(again[1], c) {
		t.Error("RetainDisjointPaths is not idempotent")
	}
}

func equalPts(a, b []grid.CellPos) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func reversed(points []grid.CellPos) []grid.CellPos {
	out := make([]grid.CellPos, len(points))
	for i, p := range points {
		out[len(points)-1-i] = p
	}

	return out
}
