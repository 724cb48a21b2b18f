package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/pathtile/grid"
)

// Sentinel errors for catalog construction and lookup.
var (
	// ErrBadLabel indicates a terminal label not of the form "<type>.<dir>".
	ErrBadLabel = errors.New("catalog: terminal label must be \"<type>.<dir>\"")

	// ErrBadSegment indicates a segment with fewer than two points or a
	// step that is not a unit 8-neighbor offset.
	ErrBadSegment = errors.New("catalog: malformed template segment")

	// ErrUnknownTemplate indicates a segment that references no
	// cataloged template.
	ErrUnknownTemplate = errors.New("catalog: segment has no template")
)

// EmptyTile marks a template cell that paints nothing.
const EmptyTile = -1

// SegmentType formats a terminal label from a type name and direction.
func SegmentType(typeName string, dir grid.Direction) string {
	return typeName + "." + dir.String()
}

// SplitLabel splits a terminal label into its type name and direction.
// Returns ErrBadLabel when the label has no dot or an unknown
// direction suffix.
func SplitLabel(label string) (string, grid.Direction, error) {
	i := strings.LastIndexByte(label, '.')
	if i <= 0 || i == len(label)-1 {
		return "", grid.DirNone, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}
	dir, err := grid.ParseDirection(label[i+1:])
	if err != nil {
		return "", grid.DirNone, fmt.Errorf("%w: %q", ErrBadLabel, label)
	}

	return label[:i], dir, nil
}

// typeOf returns the "<type>" part of a label, or the label itself
// when it carries no direction suffix.
func typeOf(label string) string {
	if i := strings.LastIndexByte(label, '.'); i > 0 {
		return label[:i]
	}

	return label
}

// TemplateSegment is an authored path fragment. Start and End are
// terminal labels ("Beach.R"); Points is the fragment's cell trace in
// template-local coordinates, each step a unit 8-neighbor offset.
type TemplateSegment struct {
	Start  string
	End    string
	Points []grid.CellVec
}

// NewTemplateSegment validates and builds a segment. A malformed label
// or step count returns an error; duplicate consecutive points are a
// broken catalog and panic.
func NewTemplateSegment(start, end string, points []grid.CellVec) (*TemplateSegment, error) {
	if _, _, err := SplitLabel(start); err != nil {
		return nil, err
	}
	if _, _, err := SplitLabel(end); err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 points, got %d", ErrBadSegment, len(points))
	}
	for i := 1; i < len(points); i++ {
		step := points[i].Sub(points[i-1])
		if step == (grid.CellVec{}) {
			panic(fmt.Sprintf("catalog: segment %s->%s repeats point %d", start, end, i))
		}
		if !step.IsUnitStep() {
			return nil, fmt.Errorf("%w: step %d of %s->%s is not a unit offset", ErrBadSegment, i, start, end)
		}
	}

	return &TemplateSegment{Start: start, End: end, Points: points}, nil
}

// HasStartType reports whether the segment's start terminal is of the
// given type ("Beach" matches "Beach.R").
func (s *TemplateSegment) HasStartType(typeName string) bool {
	return typeOf(s.Start) == typeName
}

// HasEndType reports whether the segment's end terminal is of the
// given type.
func (s *TemplateSegment) HasEndType(typeName string) bool {
	return typeOf(s.End) == typeName
}

// HasInnerType reports whether the segment can sit in the interior of
// a tiling whose permitted inner type is typeName: both terminals must
// be of that type.
func (s *TemplateSegment) HasInnerType(typeName string) bool {
	return typeOf(s.Start) == typeName && typeOf(s.End) == typeName
}

// InnerTypes returns the distinct type names of the segment's
// terminals, the types its interior exposes to neighbors.
func (s *TemplateSegment) InnerTypes() []string {
	st, en := typeOf(s.Start), typeOf(s.End)
	if st == en {
		return []string{st}
	}

	return []string{st, en}
}

// Moves returns the segment's net displacement, last point minus first.
func (s *TemplateSegment) Moves() grid.CellVec {
	return s.Points[len(s.Points)-1].Sub(s.Points[0])
}

// TerrainTemplate is the painted tile block a segment lays down.
// Tiles holds tile indexes with EmptyTile for cells that paint
// nothing. PickAny templates are resolved stochastically by the map
// engine and must never reach direct painting.
type TerrainTemplate struct {
	ID       int64
	Name     string
	PickAny  bool
	Tiles    *grid.Matrix[int]
	Segments []*TemplateSegment
}
