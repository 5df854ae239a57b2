package layout

import "math"

// MaxCoord is the largest coordinate a Rect edge may reach. Terminals address
// cells with 16-bit positions, so extents are clamped to this range.
const MaxCoord = math.MaxUint16

// Rect represents a rectangle with integer coordinates.
// X and Y are the top-left corner; Width and Height are dimensions.
// Width and Height are never negative when built through NewRect.
type Rect struct {
	X, Y          int
	Width, Height int
}

// NewRect creates a new Rect with the given position and dimensions.
// Negative dimensions are clamped to zero and dimensions that would push an
// edge past MaxCoord are truncated.
func NewRect(x, y, width, height int) Rect {
	width = clampExtent(x, width)
	height = clampExtent(y, height)
	return Rect{X: x, Y: y, Width: width, Height: height}
}

func clampExtent(pos, extent int) int {
	if extent < 0 {
		return 0
	}
	if pos+extent > MaxCoord {
		return max(0, MaxCoord-pos)
	}
	return extent
}

// Right returns the x-coordinate of the right edge (exclusive).
func (r Rect) Right() int {
	return r.X + r.Width
}

// Bottom returns the y-coordinate of the bottom edge (exclusive).
func (r Rect) Bottom() int {
	return r.Y + r.Height
}

// IsEmpty returns true if the rectangle has zero or negative area.
func (r Rect) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the area of the rectangle.
func (r Rect) Area() int {
	if r.Width <= 0 || r.Height <= 0 {
		return 0
	}
	return r.Width * r.Height
}

// Contains returns true if the point (x, y) is inside the rectangle.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsRect returns true if the other rectangle is fully contained within this rectangle.
func (r Rect) ContainsRect(other Rect) bool {
	if other.IsEmpty() {
		return true
	}
	if r.IsEmpty() {
		return false
	}
	return other.X >= r.X && other.Y >= r.Y &&
		other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Inset returns a new Rect inset by the given Edges.
// Insets larger than the rectangle collapse it to zero size; the origin
// never moves past the opposite edge.
func (r Rect) Inset(edges Edges) Rect {
	width := r.Width - edges.Horizontal()
	height := r.Height - edges.Vertical()
	x := r.X + min(edges.Left, r.Width)
	y := r.Y + min(edges.Top, r.Height)
	return Rect{X: x, Y: y, Width: max(0, width), Height: max(0, height)}
}

// InnerMargin returns the area left after applying m symmetrically on
// both horizontal ends and both vertical ends.
func (r Rect) InnerMargin(m Margin) Rect {
	return r.Inset(Edges{Top: m.Vertical, Right: m.Horizontal, Bottom: m.Vertical, Left: m.Horizontal})
}

// Translate returns a new Rect moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	return NewRect(r.X+dx, r.Y+dy, r.Width, r.Height)
}

// Intersect returns the intersection of two rectangles.
// If the rectangles don't overlap, returns an empty Rect.
func (r Rect) Intersect(other Rect) Rect {
	x := max(r.X, other.X)
	y := max(r.Y, other.Y)
	right := min(r.Right(), other.Right())
	bottom := min(r.Bottom(), other.Bottom())

	width := right - x
	height := bottom - y

	if width <= 0 || height <= 0 {
		return Rect{}
	}

	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Union returns the smallest rectangle that contains both rectangles.
// If either rectangle is empty, returns the other rectangle.
func (r Rect) Union(other Rect) Rect {
	if r.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return r
	}

	x := min(r.X, other.X)
	y := min(r.Y, other.Y)
	right := max(r.Right(), other.Right())
	bottom := max(r.Bottom(), other.Bottom())

	return Rect{X: x, Y: y, Width: right - x, Height: bottom - y}
}

// Intersects returns true if the two rectangles overlap.
// Touching edges do not count as overlapping.
func (r Rect) Intersects(other Rect) bool {
	return !r.Intersect(other).IsEmpty()
}

// Clamp constrains a point to be within the rectangle bounds.
// Returns the clamped (x, y) coordinates.
func (r Rect) Clamp(x, y int) (int, int) {
	if r.IsEmpty() {
		return r.X, r.Y
	}

	if x < r.X {
		x = r.X
	} else if x >= r.Right() {
		x = r.Right() - 1
	}

	if y < r.Y {
		y = r.Y
	} else if y >= r.Bottom() {
		y = r.Bottom() - 1
	}

	return x, y
}

// Rows returns one single-row Rect per row of r, top to bottom.
func (r Rect) Rows() []Rect {
	if r.IsEmpty() {
		return nil
	}
	rows := make([]Rect, r.Height)
	for i := range rows {
		rows[i] = Rect{X: r.X, Y: r.Y + i, Width: r.Width, Height: 1}
	}
	return rows
}

// Columns returns one single-column Rect per column of r, left to right.
func (r Rect) Columns() []Rect {
	if r.IsEmpty() {
		return nil
	}
	cols := make([]Rect, r.Width)
	for i := range cols {
		cols[i] = Rect{X: r.X + i, Y: r.Y, Width: 1, Height: r.Height}
	}
	return cols
}

// Positions returns every cell position inside r in row-major order.
func (r Rect) Positions() []Point {
	if r.IsEmpty() {
		return nil
	}
	points := make([]Point, 0, r.Area())
	for y := r.Y; y < r.Bottom(); y++ {
		for x := r.X; x < r.Right(); x++ {
			points = append(points, Point{X: x, Y: y})
		}
	}
	return points
}

// Split partitions r with the given layout. It is shorthand for Solve(r, l).
func (r Rect) Split(l Layout) []Rect {
	return Solve(r, l)
}
