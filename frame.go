package tui

import "context"

// Frame is the drawing surface handed to a Terminal.Draw callback.
// It is only valid during that callback.
type Frame struct {
	ctx    context.Context
	area   Rect
	buf    *Buffer
	cache  *LayoutCache
	cursor *Point
	count  int
}

// Area returns the full drawable area.
func (f *Frame) Area() Rect {
	return f.area
}

// Buffer returns the buffer being drawn.
func (f *Frame) Buffer() *Buffer {
	return f.buf
}

// Count returns the number of the frame being drawn.
func (f *Frame) Count() int {
	return f.count
}

// Context returns the context passed to Draw.
func (f *Frame) Context() context.Context {
	return f.ctx
}

// RenderWidget renders w into area, clipped to the frame.
func (f *Frame) RenderWidget(w Widget, area Rect) {
	area = area.Intersect(f.buf.Area)
	if area.IsEmpty() {
		return
	}
	w.Render(area, f.buf)
}

// RenderParallel renders non-overlapping placements concurrently.
// See RenderParallel.
func (f *Frame) RenderParallel(placements ...Placement) error {
	return RenderParallel(f.ctx, f.buf, placements)
}

// RenderStatefulWidget renders w into area of f with state, clipped to the
// frame.
func RenderStatefulWidget[S any](f *Frame, w StatefulWidget[S], area Rect, state *S) {
	area = area.Intersect(f.buf.Area)
	if area.IsEmpty() {
		return
	}
	w.RenderStateful(area, f.buf, state)
}

// SetCursor shows the cursor at (x, y) after the frame is drawn. Without a
// call the cursor is hidden.
func (f *Frame) SetCursor(x, y int) {
	f.cursor = &Point{X: x, Y: y}
}

// Split divides area with l, through the terminal's layout cache if one
// is configured.
func (f *Frame) Split(area Rect, l Layout) []Rect {
	return l.SplitCached(area, f.cache)
}
