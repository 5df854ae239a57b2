package tui

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// ANSIBackend implements Backend by writing ANSI escape sequences to an
// io.Writer. Output accumulates in memory and is written on Flush.
type ANSIBackend struct {
	out      io.Writer
	fd       int
	hasFd    bool
	fallback Rect
	profile  ColorProfile
	esc      *escBuilder
	closed   bool

	// Where the terminal cursor is after the buffered output, and the style
	// it is printing with. Unknown after Clear or SetCursor.
	cursorX, cursorY int
	cursorKnown      bool
	lastStyle        Style
	styleKnown       bool
}

// Ensure ANSIBackend implements Backend.
var _ Backend = (*ANSIBackend)(nil)

// ANSIOption configures an ANSIBackend.
type ANSIOption func(*ANSIBackend)

// WithColorProfile overrides the detected color profile.
func WithColorProfile(p ColorProfile) ANSIOption {
	return func(b *ANSIBackend) {
		b.profile = p
	}
}

// WithFallbackSize sets the size reported when out is not a terminal.
// The default is 80x24.
func WithFallbackSize(width, height int) ANSIOption {
	return func(b *ANSIBackend) {
		b.fallback = NewRect(0, 0, width, height)
	}
}

// NewANSIBackend creates a backend writing to out, typically os.Stdout.
// The color profile is detected from the environment.
func NewANSIBackend(out io.Writer, opts ...ANSIOption) *ANSIBackend {
	b := &ANSIBackend{
		out:      out,
		fallback: NewRect(0, 0, 80, 24),
		profile:  DetectColorProfile(),
		esc:      newEscBuilder(4096),
	}
	if f, ok := out.(*os.File); ok {
		b.fd = int(f.Fd())
		b.hasFd = true
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Profile returns the color profile used for output.
func (b *ANSIBackend) Profile() ColorProfile {
	return b.profile
}

// Size returns the terminal dimensions, or the fallback size if out is
// not a terminal.
func (b *ANSIBackend) Size() (Rect, error) {
	if b.closed {
		return Rect{}, ErrBackendClosed
	}
	if !b.hasFd || !term.IsTerminal(b.fd) {
		return b.fallback, nil
	}
	w, h, err := term.GetSize(b.fd)
	if err != nil {
		return Rect{}, err
	}
	return NewRect(0, 0, w, h), nil
}

// Draw buffers the escape sequences for updates. Cursor moves are emitted
// only when an update does not continue where the previous glyph ended,
// and styles only when they change.
func (b *ANSIBackend) Draw(updates []CellUpdate) error {
	if b.closed {
		return ErrBackendClosed
	}
	for _, u := range updates {
		// The glyph owning a continuation cell already covered it.
		if u.Cell.IsContinuation() {
			continue
		}
		if !b.cursorKnown || u.X != b.cursorX || u.Y != b.cursorY {
			b.esc.MoveTo(u.X, u.Y)
		}
		if !b.styleKnown || !u.Cell.Style.Equal(b.lastStyle) {
			b.esc.SetStyle(u.Cell.Style, b.profile)
			b.lastStyle = u.Cell.Style
			b.styleKnown = true
		}
		b.esc.WriteString(u.Cell.display())
		b.cursorX = u.X + max(1, u.Cell.Width())
		b.cursorY = u.Y
		b.cursorKnown = true
	}
	return nil
}

// HideCursor makes the cursor invisible.
func (b *ANSIBackend) HideCursor() error {
	if b.closed {
		return ErrBackendClosed
	}
	b.esc.HideCursor()
	return nil
}

// ShowCursor makes the cursor visible.
func (b *ANSIBackend) ShowCursor() error {
	if b.closed {
		return ErrBackendClosed
	}
	b.esc.ShowCursor()
	return nil
}

// SetCursor moves the cursor to the specified position (0-indexed).
func (b *ANSIBackend) SetCursor(x, y int) error {
	if b.closed {
		return ErrBackendClosed
	}
	b.esc.MoveTo(x, y)
	b.cursorX, b.cursorY = x, y
	b.cursorKnown = true
	return nil
}

// Clear resets attributes and clears the screen.
func (b *ANSIBackend) Clear() error {
	if b.closed {
		return ErrBackendClosed
	}
	b.esc.ResetStyle()
	b.esc.ClearScreen()
	b.esc.MoveTo(0, 0)
	b.cursorX, b.cursorY = 0, 0
	b.cursorKnown = true
	b.styleKnown = false
	return nil
}

// Flush writes the buffered output wrapped in a synchronized update.
func (b *ANSIBackend) Flush() error {
	if b.closed {
		return ErrBackendClosed
	}
	if b.esc.Len() == 0 {
		return nil
	}
	out := newEscBuilder(b.esc.Len() + 32)
	out.BeginSyncUpdate()
	out.buf = append(out.buf, b.esc.Bytes()...)
	out.EndSyncUpdate()
	b.esc.Reset()
	if _, err := b.out.Write(out.Bytes()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	return nil
}

// Close resets the terminal style, shows the cursor and flushes. Later
// calls fail with ErrBackendClosed.
func (b *ANSIBackend) Close() error {
	if b.closed {
		return nil
	}
	b.esc.ResetStyle()
	b.esc.ShowCursor()
	err := b.Flush()
	b.closed = true
	return err
}
