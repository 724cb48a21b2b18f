package grid

import "errors"

// ErrInvalidDimensions indicates that requested matrix dimensions are
// non-positive.
var ErrInvalidDimensions = errors.New("grid: matrix dimensions must be > 0")

// Matrix is a dense row-major 2D array of T. The backing storage is a
// flat slice with the explicit index formula y*Width + x, keeping hot
// search loops cache friendly.
//
// At/Set assume in-bounds coordinates; callers gate with In. This
// mirrors the raw-slice access pattern used throughout the search
// scratch, where every probe is already bounds-filtered.
type Matrix[T any] struct {
	Width, Height int
	data          []T
}

// NewMatrix creates a Width×Height matrix of zero values.
// Returns ErrInvalidDimensions for non-positive dimensions.
// Complexity: O(W×H) time and memory.
func NewMatrix[T any](width, height int) (*Matrix[T], error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Matrix[T]{
		Width:  width,
		Height: height,
		data:   make([]T, width*height),
	}, nil
}

// NewMatrixFilled creates a Width×Height matrix with every cell set
// to fill.
// Complexity: O(W×H).
func NewMatrixFilled[T any](width, height int, fill T) (*Matrix[T], error) {
	m, err := NewMatrix[T](width, height)
	if err != nil {
		return nil, err
	}
	m.Fill(fill)

	return m, nil
}

// In reports whether (x, y) lies within the matrix bounds.
// Complexity: O(1).
func (m *Matrix[T]) In(p CellPos) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// Index maps (x, y) to its row-major flat index: y*Width + x.
// Complexity: O(1).
func (m *Matrix[T]) Index(p CellPos) int {
	return p.Y*m.Width + p.X
}

// Coordinate converts a row-major flat index back to (x, y).
// Complexity: O(1).
func (m *Matrix[T]) Coordinate(idx int) CellPos {
	return CellPos{idx % m.Width, idx / m.Width}
}

// At returns the value stored at p. p must be in bounds.
// Complexity: O(1).
func (m *Matrix[T]) At(p CellPos) T {
	return m.data[p.Y*m.Width+p.X]
}

// Set stores v at p. p must be in bounds.
// Complexity: O(1).
func (m *Matrix[T]) Set(p CellPos, v T) {
	m.data[p.Y*m.Width+p.X] = v
}

// Fill sets every cell to v.
// Complexity: O(W×H).
func (m *Matrix[T]) Fill(v T) {
	for i := range m.data {
		m.data[i] = v
	}
}

// Len returns the number of cells, Width×Height.
func (m *Matrix[T]) Len() int {
	return len(m.data)
}
