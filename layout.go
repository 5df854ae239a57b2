// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package tui

import "github.com/grindlemire/go-tuicore/internal/layout"

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Edges represents spacing on four sides (top, right, bottom, left).
type Edges = layout.Edges

// Margin is symmetric outer spacing applied before a layout splits an area.
type Margin = layout.Margin

// MaxCoord is the largest coordinate a Rect edge may reach.
const MaxCoord = layout.MaxCoord

// Direction specifies the axis a layout splits along.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Justify specifies where unclaimed space goes.
type Justify = layout.Justify

const (
	JustifyStart        = layout.JustifyStart
	JustifyEnd          = layout.JustifyEnd
	JustifyCenter       = layout.JustifyCenter
	JustifySpaceBetween = layout.JustifySpaceBetween
	JustifySpaceAround  = layout.JustifySpaceAround
	JustifySpaceEvenly  = layout.JustifySpaceEvenly
)

// Constraint is one sizing rule for a layout segment.
type Constraint = layout.Constraint

// ConstraintKind identifies which sizing rule a Constraint applies.
type ConstraintKind = layout.Kind

const (
	KindLength     = layout.KindLength
	KindPercentage = layout.KindPercentage
	KindRatio      = layout.KindRatio
	KindMin        = layout.KindMin
	KindMax        = layout.KindMax
	KindFill       = layout.KindFill
)

// Layout describes how to split an area into segments.
type Layout = layout.Layout

// LayoutCache memoizes solved layouts. See NewLayoutCache.
type LayoutCache = layout.Cache

// LayoutCacheStats reports cache effectiveness counters.
type LayoutCacheStats = layout.CacheStats

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n int) Edges {
	return layout.EdgeAll(n)
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h int) Edges {
	return layout.EdgeSymmetric(v, h)
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l int) Edges {
	return layout.EdgeTRBL(t, r, b, l)
}

// NewMargin creates a Margin; negative values clamp to zero.
func NewMargin(horizontal, vertical int) Margin {
	return layout.NewMargin(horizontal, vertical)
}

// Length fixes a segment to exactly n cells.
func Length(n int) Constraint { return layout.Length(n) }

// Percentage sizes a segment to p percent of the available length.
func Percentage(p int) Constraint { return layout.Percentage(p) }

// Ratio sizes a segment to num/den of the available length.
func Ratio(num, den int) Constraint { return layout.Ratio(num, den) }

// Min sizes a segment to at least n cells.
func Min(n int) Constraint { return layout.Min(n) }

// Max sizes a segment to at most n cells.
func Max(n int) Constraint { return layout.Max(n) }

// Fill absorbs leftover space in proportion to weight.
func Fill(weight int) Constraint { return layout.Fill(weight) }

// FromLengths returns one Length constraint per value.
func FromLengths(ns ...int) []Constraint { return layout.FromLengths(ns...) }

// FromPercentages returns one Percentage constraint per value.
func FromPercentages(ps ...int) []Constraint { return layout.FromPercentages(ps...) }

// FromRatios returns one Ratio constraint per numerator/denominator pair.
func FromRatios(pairs ...[2]int) []Constraint { return layout.FromRatios(pairs...) }

// FromMins returns one Min constraint per value.
func FromMins(ns ...int) []Constraint { return layout.FromMins(ns...) }

// FromMaxes returns one Max constraint per value.
func FromMaxes(ns ...int) []Constraint { return layout.FromMaxes(ns...) }

// FromFills returns one Fill constraint per weight.
func FromFills(weights ...int) []Constraint { return layout.FromFills(weights...) }

// Horizontal returns a layout that splits left-to-right.
func Horizontal(constraints ...Constraint) Layout {
	return layout.Horizontal(constraints...)
}

// Vertical returns a layout that splits top-to-bottom.
func Vertical(constraints ...Constraint) Layout {
	return layout.Vertical(constraints...)
}

// Solve partitions area into one Rect per constraint of l.
func Solve(area Rect, l Layout) []Rect {
	return layout.Solve(area, l)
}

// NewLayoutCache creates a layout cache holding at most capacity entries.
// A non-positive capacity selects the default size.
func NewLayoutCache(capacity int) *LayoutCache {
	return layout.NewCache(capacity)
}

// InsetUniform returns a new Rect inset by n on all edges.
func InsetUniform(r Rect, n int) Rect {
	return r.Inset(layout.EdgeAll(n))
}
