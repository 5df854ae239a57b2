package layout

import "slices"

// Direction specifies the main axis along which a layout splits.
type Direction uint8

const (
	Row    Direction = iota // Segments laid out left-to-right
	Column                  // Segments laid out top-to-bottom
)

// String returns "Row" or "Column".
func (d Direction) String() string {
	if d == Column {
		return "Column"
	}
	return "Row"
}

// Justify specifies where unclaimed main-axis space goes when no
// constraint absorbs it.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start, gap trails
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center segments
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each segment
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Layout describes how to split an area: the axis, one constraint per
// output segment, fixed spacing between segments, and an outer margin.
// The zero value splits horizontally with no constraints.
type Layout struct {
	Direction   Direction
	Constraints []Constraint
	Spacing     int
	Margin      Margin
	Justify     Justify
}

// Horizontal returns a layout that splits left-to-right.
func Horizontal(constraints ...Constraint) Layout {
	return Layout{Direction: Row, Constraints: constraints}
}

// Vertical returns a layout that splits top-to-bottom.
func Vertical(constraints ...Constraint) Layout {
	return Layout{Direction: Column, Constraints: constraints}
}

// WithConstraints returns a copy of l with the given constraints.
func (l Layout) WithConstraints(constraints ...Constraint) Layout {
	l.Constraints = constraints
	return l
}

// WithSpacing returns a copy of l with n cells between adjacent segments.
func (l Layout) WithSpacing(n int) Layout {
	l.Spacing = max(0, n)
	return l
}

// WithMargin returns a copy of l with the given outer margin.
func (l Layout) WithMargin(m Margin) Layout {
	l.Margin = NewMargin(m.Horizontal, m.Vertical)
	return l
}

// WithJustify returns a copy of l with the given justify mode.
func (l Layout) WithJustify(j Justify) Layout {
	l.Justify = j
	return l
}

// Equal reports whether two layouts describe the same split.
func (l Layout) Equal(other Layout) bool {
	return l.Direction == other.Direction &&
		l.Spacing == other.Spacing &&
		l.Margin == other.Margin &&
		l.Justify == other.Justify &&
		slices.Equal(l.Constraints, other.Constraints)
}

// Split partitions area according to l. It is shorthand for Solve(area, l).
func (l Layout) Split(area Rect) []Rect {
	return Solve(area, l)
}

// SplitCached partitions area through cache. A nil cache solves directly.
func (l Layout) SplitCached(area Rect, cache *Cache) []Rect {
	if cache == nil {
		return Solve(area, l)
	}
	return cache.Solve(area, l)
}
