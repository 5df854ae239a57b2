// Package layout implements a constraint-based layout solver for terminal UIs.
//
// A [Layout] splits a [Rect] along one axis into one sub-Rect per
// [Constraint]: fixed lengths, percentages, ratios, min/max bounds, and
// weighted fills. Over-constrained layouts shrink deterministically, in the
// order Fill, Max, Percentage and Ratio, Length, then Min, and
// under-constrained ones leave a trailing gap placed by [Justify].
// Types are re-exported through the root tui package for public consumption.
//
// The main entry point is [Solve]. A [Cache] memoizes solved layouts for
// callers that split the same areas every frame.
package layout
