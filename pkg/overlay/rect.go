package overlay

// Point is a cell position in viewport coordinates.
type Point struct {
	X, Y int
}

// Size is a width/height pair in cells.
type Size struct {
	W, H int
}

// Rect is a rectangle in viewport coordinates. Width and height are
// exclusive: the rightmost contained column is X+W-1.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) falls inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the first column past the rectangle's right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle's bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// CenterX returns the horizontal center column of the rectangle.
func (r Rect) CenterX() int { return r.X + r.W/2 }

// CenterY returns the vertical center row of the rectangle.
func (r Rect) CenterY() int { return r.Y + r.H/2 }

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
