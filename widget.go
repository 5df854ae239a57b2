package tui

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Widget is anything that can draw itself into a region of a Buffer.
// Implementations must only write inside area.
type Widget interface {
	Render(area Rect, buf *Buffer)
}

// WidgetFunc adapts a function to the Widget interface.
type WidgetFunc func(area Rect, buf *Buffer)

// Render calls f(area, buf).
func (f WidgetFunc) Render(area Rect, buf *Buffer) {
	f(area, buf)
}

// StatefulWidget is a widget that renders from, and may update, state the
// caller keeps between frames (a scroll offset, a selection).
type StatefulWidget[S any] interface {
	RenderStateful(area Rect, buf *Buffer, state *S)
}

// Placement pairs a widget with the area it renders into.
type Placement struct {
	Area   Rect
	Widget Widget
}

// RenderParallel renders every placement into buf concurrently.
//
// Each widget draws into a private copy of its area which is copied back
// once all widgets finish, so widgets never observe each other's writes.
// Areas are clipped to buf and must not overlap; overlapping placements
// panic. If ctx is cancelled before every widget has run, buf is left
// unchanged and the context error is returned.
func RenderParallel(ctx context.Context, buf *Buffer, placements []Placement) error {
	areas := make([]Rect, len(placements))
	for i, p := range placements {
		areas[i] = p.Area.Intersect(buf.Area)
		for j := range i {
			if areas[i].Intersects(areas[j]) {
				panic(fmt.Sprintf("tui: parallel placements %d %+v and %d %+v overlap", j, areas[j], i, areas[i]))
			}
		}
	}

	scratch := make([]*Buffer, len(placements))
	for i, area := range areas {
		scratch[i] = subBuffer(buf, area)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, p := range placements {
		if areas[i].IsEmpty() || p.Widget == nil {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			p.Widget.Render(areas[i], scratch[i])
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, area := range areas {
		if !area.IsEmpty() {
			copyRegion(buf, scratch[i], area)
		}
	}
	return nil
}

// subBuffer copies the cells of area out of buf into a new Buffer.
func subBuffer(buf *Buffer, area Rect) *Buffer {
	sub := NewBuffer(area)
	copyRegion(sub, buf, area)
	return sub
}

// copyRegion copies the cells of area from src into dst. Both buffers must
// contain area.
func copyRegion(dst, src *Buffer, area Rect) {
	for y := area.Y; y < area.Bottom(); y++ {
		d := dst.Index(area.X, y)
		s := src.Index(area.X, y)
		copy(dst.Content[d:d+area.Width], src.Content[s:s+area.Width])
	}
	dst.repairRows(area)
}

// Alignment positions content horizontally inside a wider area.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// offset returns the column offset for content of width inside available.
func (a Alignment) offset(available, width int) int {
	free := max(0, available-width)
	switch a {
	case AlignCenter:
		return free / 2
	case AlignRight:
		return free
	default:
		return 0
	}
}
