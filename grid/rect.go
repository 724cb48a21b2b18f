package grid

// Rect is an axis-aligned integer rectangle. Min is inclusive, Max is
// exclusive, matching the half-open convention of image.Rectangle.
type Rect struct {
	Min, Max CellPos
}

// NewRect builds the rectangle spanning [x, x+w) × [y, y+h).
func NewRect(x, y, w, h int) Rect {
	return Rect{Min: CellPos{x, y}, Max: CellPos{x + w, y + h}}
}

// Dx returns the width of r.
func (r Rect) Dx() int { return r.Max.X - r.Min.X }

// Dy returns the height of r.
func (r Rect) Dy() int { return r.Max.Y - r.Min.Y }

// Contains reports whether p lies inside r.
// Complexity: O(1).
func (r Rect) Contains(p CellPos) bool {
	return p.X >= r.Min.X && p.X < r.Max.X && p.Y >= r.Min.Y && p.Y < r.Max.Y
}

// Expand grows r by n cells on every side. Negative n shrinks it.
func (r Rect) Expand(n int) Rect {
	return Rect{
		Min: CellPos{r.Min.X - n, r.Min.Y - n},
		Max: CellPos{r.Max.X + n, r.Max.Y + n},
	}
}

// Center returns the midpoint of r, rounded toward Min.
func (r Rect) Center() CellPos {
	return CellPos{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Bounding returns the tightest rectangle containing every point in
// points. An empty input yields the zero Rect.
// Complexity: O(n).
func Bounding(points []CellPos) Rect {
	if len(points) == 0 {
		return Rect{}
	}
	r := Rect{Min: points[0], Max: points[0]}
	for _, p := range points[1:] {
		if p.X < r.Min.X {
			r.Min.X = p.X
		}
		if p.Y < r.Min.Y {
			r.Min.Y = p.Y
		}
		if p.X > r.Max.X {
			r.Max.X = p.X
		}
		if p.Y > r.Max.Y {
			r.Max.Y = p.Y
		}
	}
	r.Max.X++
	r.Max.Y++

	return r
}
