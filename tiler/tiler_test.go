package tiler_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/pathtile/catalog"
	"github.com/katalvlaran/pathtile/grid"
	"github.com/katalvlaran/pathtile/tilemap"
	"github.com/katalvlaran/pathtile/tiler"
)

// TilerSuite exercises the search end to end against the literal
// beach catalog: straight-H, straight-V, and a bend.
type TilerSuite struct {
	suite.Suite

	cat       *catalog.Catalog
	straightH *catalog.TemplateSegment
	straightV *catalog.TemplateSegment
	bend      *catalog.TemplateSegment
}

func (s *TilerSuite) SetupTest() {
	s.cat = catalog.NewCatalog()

	mk := func(start, end string, pairs ...[2]int) *catalog.TemplateSegment {
		seg, err := catalog.NewTemplateSegment(start, end, cellVecs(pairs))
		require.NoError(s.T(), err)

		return seg
	}
	s.straightH = mk("Beach.R", "Beach.R", [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{3, 0})
	s.straightV = mk("Beach.D", "Beach.D", [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 3})
	s.bend = mk("Beach.R", "Beach.D", [2]int{0, 0}, [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})

	s.addTemplate(1, "straight-h", [][]int{{1, 1, 1, 1}}, s.straightH)
	s.addTemplate(2, "straight-v", [][]int{{2}, {2}, {2}, {2}}, s.straightV)
	s.addTemplate(3, "bend", [][]int{{3, 3}, {-1, 3}, {-1, 3}}, s.bend)
}

func (s *TilerSuite) addTemplate(id int64, name string, tiles [][]int, segs ...*catalog.TemplateSegment) {
	tmpl := &catalog.TerrainTemplate{ID: id, Name: name, Segments: segs}
	if tiles != nil {
		m, err := grid.NewMatrix[int](len(tiles[0]), len(tiles))
		require.NoError(s.T(), err)
		for y, row := range tiles {
			for x, v := range row {
				m.Set(grid.CellPos{X: x, Y: y}, v)
			}
		}
		tmpl.Tiles = m
	}
	s.cat.Add(tmpl)
}

func (s *TilerSuite) newMap() *tilemap.TileMap {
	m, err := tilemap.New(grid.NewRect(0, 0, 24, 24))
	require.NoError(s.T(), err)

	return m
}

func (s *TilerSuite) rng() *rand.Rand {
	return rand.New(rand.NewSource(7))
}

// TestStraightPath is scenario S1: a straight east-west path tiled by
// one straight-H at cost zero, output identical to the input.
func (s *TilerSuite) TestStraightPath() {
	m := s.newMap()
	points := cellPts([2]int{10, 10}, [2]int{11, 10}, [2]int{12, 10}, [2]int{13, 10})
	path := tiler.New(m, points, 0, "Beach", "Beach", catalog.FromInner(s.cat, "Beach"))

	got := path.Tile(s.rng())
	require.Equal(s.T(), points, got)

	// One straight-H painted over the path cells.
	for _, p := range points {
		require.Equal(s.T(), 1, m.Tile(p), "tile at %v", p)
	}
	require.Equal(s.T(), 4, m.PaintedCount())
}

// TestBendPath is scenario S2: an east-then-south path tiled by the
// bend at cost zero.
func (s *TilerSuite) TestBendPath() {
	m := s.newMap()
	points := cellPts([2]int{10, 10}, [2]int{11, 10}, [2]int{11, 11}, [2]int{11, 12})
	path := tiler.New(m, points, 0, "Beach", "Beach", catalog.FromInner(s.cat, "Beach"))

	got := path.Tile(s.rng())
	require.Equal(s.T(), points, got)

	// The bend template paints its L-shape anchored at the start.
	require.Equal(s.T(), 3, m.Tile(grid.CellPos{X: 10, Y: 10}))
	require.Equal(s.T(), 3, m.Tile(grid.CellPos{X: 11, Y: 12}))
	require.Equal(s.T(), tilemap.Unset, m.Tile(grid.CellPos{X: 10, Y: 11}))
}

// TestMissingInnerSegment is scenario S3: with straight-H removed
// from the permitted pool the straight path has no tiling.
func (s *TilerSuite) TestMissingInnerSegment() {
	m := s.newMap()
	points := cellPts([2]int{10, 10}, [2]int{11, 10}, [2]int{12, 10}, [2]int{13, 10})
	// Straight horizontal runs are not permitted as inner segments;
	// only the vertical straight and the bend remain.
	inner := []*catalog.TemplateSegment{s.straightV, s.bend}
	path := tiler.New(m, points, 0, "Beach", "Beach",
		catalog.FromSegments(s.cat, inner, inner, inner))

	require.Nil(s.T(), path.Tile(s.rng()))
	require.Zero(s.T(), m.PaintedCount(), "a failed tiling must not paint")
}

// TestNilPoints: a nil point sequence is a no-op, distinct from an
// unfittable path only by inspecting the input.
func (s *TilerSuite) TestNilPoints() {
	path := tiler.New(s.newMap(), nil, 0, "Beach", "Beach", catalog.FromInner(s.cat, "Beach"))
	require.Nil(s.T(), path.Tile(s.rng()))
	require.Nil(s.T(), path.Points)
}

// TestLoop is scenario S4: a closed square ring tiled by four
// two-straight-then-turn corner segments; the result closes on its
// start.
func (s *TilerSuite) TestLoop() {
	c := catalog.NewCatalog()
	mk := func(start, end string, pairs ...[2]int) *catalog.TemplateSegment {
		seg, err := catalog.NewTemplateSegment(start, end, cellVecs(pairs))
		require.NoError(s.T(), err)

		return seg
	}
	corners := []*catalog.TemplateSegment{
		mk("Beach.R", "Beach.D", [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}),
		mk("Beach.D", "Beach.L", [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{-1, 2}),
		mk("Beach.L", "Beach.U", [2]int{0, 0}, [2]int{-1, 0}, [2]int{-2, 0}, [2]int{-2, -1}),
		mk("Beach.U", "Beach.R", [2]int{0, 0}, [2]int{0, -1}, [2]int{0, -2}, [2]int{1, -2}),
	}
	for i, seg := range corners {
		tmpl := &catalog.TerrainTemplate{ID: int64(i + 1), Name: seg.Start + seg.End, Segments: []*catalog.TemplateSegment{seg}}
		c.Add(tmpl)
	}

	// 4×4 square ring, expanded to unit steps and seam-rotated off
	// the corner.
	loop := cellPts(
		[2]int{10, 10}, [2]int{11, 10}, [2]int{12, 10}, [2]int{13, 10},
		[2]int{13, 11}, [2]int{13, 12}, [2]int{13, 13},
		[2]int{12, 13}, [2]int{11, 13}, [2]int{10, 13},
		[2]int{10, 12}, [2]int{10, 11}, [2]int{10, 10},
	)
	path := tiler.New(s.newMap(), loop, 0, "Beach", "Beach", catalog.FromInner(c, "Beach"))
	path.OptimizeLoop()
	require.True(s.T(), path.IsLoop())

	got := path.Tile(s.rng())
	require.NotNil(s.T(), got)
	require.Equal(s.T(), got[0], got[len(got)-1], "loop result must close")
	require.Equal(s.T(), path.Points[0], got[0])
	require.Equal(s.T(), len(loop), len(got))
	requireUnitSteps(s.T(), got)
	for _, r := range got {
		require.LessOrEqual(s.T(), nearestOf(loop, r), 0, "MaxDeviation 0 keeps the result on the ring")
	}
}

// TestDeterministicBySeed: identical seeds give identical results.
func (s *TilerSuite) TestDeterministicBySeed() {
	points := cellPts([2]int{10, 10}, [2]int{11, 10}, [2]int{12, 10}, [2]int{13, 10})

	run := func() []grid.CellPos {
		path := tiler.New(s.newMap(), points, 1, "Beach", "Beach", catalog.FromInner(s.cat, "Beach"))

		return path.Tile(rand.New(rand.NewSource(42)))
	}
	require.Equal(s.T(), run(), run())
}

// TestUnitStepsAndBounds checks result invariants on a longer mixed
// path: unit steps and the deviation bound.
func (s *TilerSuite) TestUnitStepsAndBounds() {
	m := s.newMap()
	// straight-H, then the bend, then straight-V: terminal labels
	// chain R -> R -> D -> D.
	points := cellPts(
		[2]int{8, 8}, [2]int{9, 8}, [2]int{10, 8}, [2]int{11, 8},
		[2]int{12, 8}, [2]int{12, 9}, [2]int{12, 10},
		[2]int{12, 11}, [2]int{12, 12}, [2]int{12, 13},
	)
	path := tiler.New(m, points, 0, "Beach", "Beach", catalog.FromInner(s.cat, "Beach"))

	got := path.Tile(s.rng())
	require.NotNil(s.T(), got)
	require.Equal(s.T(), points, got)
	require.Equal(s.T(), points[0], got[0])
	require.Equal(s.T(), points[len(points)-1], got[len(got)-1])
	requireUnitSteps(s.T(), got)
	for _, r := range got {
		require.LessOrEqual(s.T(), nearestOf(points, r), 0)
	}
}

func TestTilerSuite(t *testing.T) {
	suite.Run(t, new(TilerSuite))
}

// --- helpers ---------------------------------------------------------------

func cellPts(pairs ...[2]int) []grid.CellPos {
	out := make([]grid.CellPos, len(pairs))
	for i, p := range pairs {
		out[i] = grid.CellPos{X: p[0], Y: p[1]}
	}

	return out
}

func cellVecs(pairs [][2]int) []grid.CellVec {
	out := make([]grid.CellVec, len(pairs))
	for i, p := range pairs {
		out[i] = grid.CellVec{X: p[0], Y: p[1]}
	}

	return out
}

func requireUnitSteps(t *testing.T, points []grid.CellPos) {
	t.Helper()
	for i := 1; i < len(points); i++ {
		require.True(t, points[i].Sub(points[i-1]).IsUnitStep(),
			"step %d: %v -> %v", i, points[i-1], points[i])
	}
}

func nearestOf(points []grid.CellPos, p grid.CellPos) int {
	best := p.Chebyshev(points[0])
	for _, q := range points[1:] {
		if d := p.Chebyshev(q); d < best {
			best = d
		}
	}

	return best
}
