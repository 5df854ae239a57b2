package tui

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/grindlemire/go-tuicore/internal/debug"
)

const tracerName = "github.com/grindlemire/go-tuicore"

// Terminal draws frames to a Backend, sending only the cells that changed
// since the previous frame.
//
// It keeps two buffers: the one being drawn and the one last shown. After
// each Draw they swap and the new drawing buffer is cleared, so every frame
// is rendered from scratch and diffed against what is on screen.
//
// A Terminal is not safe for concurrent use.
type Terminal struct {
	backend Backend
	buffers [2]*Buffer
	current int

	viewport Rect
	fixed    bool

	cache  *LayoutCache
	tracer trace.Tracer
	differ Differ

	cursorHidden bool
	frameCount   int

	// screenUnknown is set when a frame failed part way through sending, so
	// the screen no longer matches the previous buffer.
	screenUnknown bool
}

// CompletedFrame describes a frame that has been drawn.
type CompletedFrame struct {
	// Buffer holds what is now on screen. It is owned by the Terminal and
	// only valid until the next Draw.
	Buffer *Buffer
	// Area is the viewport the frame covered.
	Area Rect
	// Count is the frame number, starting at 0.
	Count int
	// Updates is the number of cell updates sent to the backend.
	Updates int
}

// NewTerminal creates a Terminal drawing to backend. Unless WithViewport is
// given, the viewport follows the backend size.
func NewTerminal(backend Backend, opts ...TerminalOption) (*Terminal, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend is required")
	}
	t := &Terminal{
		backend: backend,
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	if !t.fixed {
		size, err := backend.Size()
		if err != nil {
			return nil, fmt.Errorf("query backend size: %w", err)
		}
		t.viewport = size
	}
	t.buffers[0] = NewBuffer(t.viewport)
	t.buffers[1] = NewBuffer(t.viewport)
	return t, nil
}

// Backend returns the backend the terminal draws to.
func (t *Terminal) Backend() Backend {
	return t.backend
}

// Viewport returns the area frames are drawn into.
func (t *Terminal) Viewport() Rect {
	return t.viewport
}

// CurrentBuffer returns the buffer the next frame will be drawn into.
func (t *Terminal) CurrentBuffer() *Buffer {
	return t.buffers[t.current]
}

// previousBuffer returns the buffer holding what is on screen.
func (t *Terminal) previousBuffer() *Buffer {
	return t.buffers[1-t.current]
}

// FrameCount returns how many frames have been drawn.
func (t *Terminal) FrameCount() int {
	return t.frameCount
}

// LayoutCache returns the cache frames use for Split, or nil.
func (t *Terminal) LayoutCache() *LayoutCache {
	return t.cache
}

// Draw renders one frame. render is called with a Frame covering the
// viewport; afterwards the changes are sent to the backend, the cursor is
// placed or hidden, and the backend is flushed.
func (t *Terminal) Draw(ctx context.Context, render func(*Frame)) (CompletedFrame, error) {
	ctx, span := t.tracer.Start(ctx, "tui.draw")
	defer span.End()

	frame := t.frameCount
	completed, err := t.draw(ctx, render)
	span.SetAttributes(
		attribute.Int("tui.frame", frame),
		attribute.Int("tui.updates", completed.Updates),
		attribute.Int("tui.width", t.viewport.Width),
		attribute.Int("tui.height", t.viewport.Height),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return completed, err
}

func (t *Terminal) draw(ctx context.Context, render func(*Frame)) (CompletedFrame, error) {
	if err := ctx.Err(); err != nil {
		return CompletedFrame{}, err
	}
	if err := t.Autoresize(); err != nil {
		return CompletedFrame{}, err
	}
	if t.screenUnknown {
		if err := t.Clear(); err != nil {
			return CompletedFrame{}, err
		}
	}

	frame := &Frame{
		ctx:   ctx,
		area:  t.viewport,
		buf:   t.CurrentBuffer(),
		cache: t.cache,
		count: t.frameCount,
	}
	render(frame)

	updates := t.differ.Diff(t.previousBuffer(), t.CurrentBuffer())
	if err := t.send(updates, frame.cursor); err != nil {
		debug.Log("terminal: frame %d failed: %v", t.frameCount, err)
		t.CurrentBuffer().Reset()
		t.previousBuffer().Reset()
		t.screenUnknown = true
		return CompletedFrame{}, err
	}

	completed := CompletedFrame{
		Buffer:  t.CurrentBuffer(),
		Area:    t.viewport,
		Count:   t.frameCount,
		Updates: len(updates),
	}
	t.current = 1 - t.current
	t.CurrentBuffer().Reset()
	t.frameCount++
	return completed, nil
}

// send writes updates, places the cursor and flushes the backend.
func (t *Terminal) send(updates []CellUpdate, cursor *Point) error {
	if len(updates) > 0 {
		if err := t.backend.Draw(updates); err != nil {
			return fmt.Errorf("draw %d updates: %w", len(updates), err)
		}
	}
	if err := t.placeCursor(cursor); err != nil {
		return err
	}
	if err := t.backend.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}
	return nil
}

func (t *Terminal) placeCursor(cursor *Point) error {
	if cursor == nil {
		if t.cursorHidden {
			return nil
		}
		if err := t.backend.HideCursor(); err != nil {
			return fmt.Errorf("hide cursor: %w", err)
		}
		t.cursorHidden = true
		return nil
	}
	if err := t.backend.SetCursor(cursor.X, cursor.Y); err != nil {
		return fmt.Errorf("set cursor: %w", err)
	}
	if t.cursorHidden {
		if err := t.backend.ShowCursor(); err != nil {
			return fmt.Errorf("show cursor: %w", err)
		}
		t.cursorHidden = false
	}
	return nil
}

// Autoresize resizes the viewport to match the backend when it is not
// fixed. It is called at the start of every Draw.
func (t *Terminal) Autoresize() error {
	if t.fixed {
		return nil
	}
	size, err := t.backend.Size()
	if err != nil {
		return fmt.Errorf("query backend size: %w", err)
	}
	if size != t.viewport {
		return t.Resize(size)
	}
	return nil
}

// Resize changes the viewport to area and clears the screen so the next
// frame is drawn in full.
func (t *Terminal) Resize(area Rect) error {
	debug.Log("terminal: resize %dx%d -> %dx%d", t.viewport.Width, t.viewport.Height, area.Width, area.Height)
	t.viewport = area
	for _, b := range t.buffers {
		b.Resize(area, EmptyCell())
	}
	return t.Clear()
}

// Clear clears the backend screen and forgets what was on it, so the next
// Draw sends every non-blank cell. A Draw that fails while sending clears
// the screen this way at the start of the next Draw.
func (t *Terminal) Clear() error {
	if err := t.backend.Clear(); err != nil {
		return fmt.Errorf("clear: %w", err)
	}
	t.previousBuffer().Reset()
	t.screenUnknown = false
	return nil
}

// HideCursor hides the cursor until a frame sets it.
func (t *Terminal) HideCursor() error {
	if err := t.backend.HideCursor(); err != nil {
		return fmt.Errorf("hide cursor: %w", err)
	}
	t.cursorHidden = true
	return nil
}

// ShowCursor makes the cursor visible.
func (t *Terminal) ShowCursor() error {
	if err := t.backend.ShowCursor(); err != nil {
		return fmt.Errorf("show cursor: %w", err)
	}
	t.cursorHidden = false
	return nil
}
