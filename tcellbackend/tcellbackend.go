// Package tcellbackend implements tui.Backend on top of a tcell.Screen,
// letting tcell handle terminfo, input modes and output buffering.
package tcellbackend

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	tui "github.com/grindlemire/go-tuicore"
	"github.com/grindlemire/go-tuicore/internal/debug"
)

// Backend draws cell updates onto a tcell.Screen.
type Backend struct {
	screen tcell.Screen
	closed bool
}

// Ensure Backend implements tui.Backend.
var _ tui.Backend = (*Backend)(nil)

// New wraps an initialized screen. The caller keeps ownership of the
// screen's lifecycle unless Close is used.
func New(screen tcell.Screen) *Backend {
	return &Backend{screen: screen}
}

// Open creates and initializes a screen for the controlling terminal.
func Open() (*Backend, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(screen), nil
}

// Screen returns the wrapped screen, for polling events.
func (b *Backend) Screen() tcell.Screen {
	return b.screen
}

// Size returns the screen dimensions.
func (b *Backend) Size() (tui.Rect, error) {
	if b.closed {
		return tui.Rect{}, tui.ErrBackendClosed
	}
	w, h := b.screen.Size()
	return tui.NewRect(0, 0, w, h), nil
}

// Draw copies updates into the screen's back buffer. Continuation cells
// are skipped; tcell lays out wide glyphs itself.
func (b *Backend) Draw(updates []tui.CellUpdate) error {
	if b.closed {
		return tui.ErrBackendClosed
	}
	for _, u := range updates {
		if u.Cell.IsContinuation() {
			continue
		}
		primary, combining := splitSymbol(u.Cell.Symbol)
		b.screen.SetContent(u.X, u.Y, primary, combining, ConvertStyle(u.Cell.Style))
	}
	return nil
}

// splitSymbol breaks a grapheme into tcell's primary rune and combining runes.
func splitSymbol(symbol string) (rune, []rune) {
	runes := []rune(symbol)
	if len(runes) == 0 {
		return ' ', nil
	}
	if len(runes) == 1 {
		return runes[0], nil
	}
	return runes[0], runes[1:]
}

// HideCursor makes the cursor invisible.
func (b *Backend) HideCursor() error {
	if b.closed {
		return tui.ErrBackendClosed
	}
	b.screen.HideCursor()
	return nil
}

// ShowCursor is a no-op: tcell shows the cursor whenever SetCursor places it.
func (b *Backend) ShowCursor() error {
	if b.closed {
		return tui.ErrBackendClosed
	}
	return nil
}

// SetCursor places the cursor at (x, y) and makes it visible.
func (b *Backend) SetCursor(x, y int) error {
	if b.closed {
		return tui.ErrBackendClosed
	}
	b.screen.ShowCursor(x, y)
	return nil
}

// Clear blanks the screen.
func (b *Backend) Clear() error {
	if b.closed {
		return tui.ErrBackendClosed
	}
	b.screen.Clear()
	return nil
}

// Flush makes the drawn content visible.
func (b *Backend) Flush() error {
	if b.closed {
		return tui.ErrBackendClosed
	}
	b.screen.Show()
	return nil
}

// Close finalizes the screen and restores the terminal.
func (b *Backend) Close() error {
	if b.closed {
		return nil
	}
	b.closed = true
	b.screen.Fini()
	debug.Log("tcellbackend: screen finalized")
	return nil
}

// ConvertColor maps a tui color to its tcell equivalent. Unset colors map
// to tcell.ColorDefault.
func ConvertColor(c tui.Color) tcell.Color {
	switch c.Type() {
	case tui.ColorReset:
		return tcell.ColorReset
	case tui.ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case tui.ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	default:
		return tcell.ColorDefault
	}
}

// ConvertStyle maps a tui style to a tcell style. Hidden text is drawn in
// its background color; both blink speeds map to blink.
func ConvertStyle(s tui.Style) tcell.Style {
	mods := s.Modifiers()
	fg := ConvertColor(s.Fg)
	bg := ConvertColor(s.Bg)
	if mods.Contains(tui.ModHidden) {
		fg = bg
	}

	st := tcell.StyleDefault.Foreground(fg).Background(bg)
	if mods.Contains(tui.ModBold) {
		st = st.Bold(true)
	}
	if mods.Contains(tui.ModDim) {
		st = st.Dim(true)
	}
	if mods.Contains(tui.ModItalic) {
		st = st.Italic(true)
	}
	if mods.Contains(tui.ModUnderlined) {
		st = st.Underline(true)
	}
	if mods&(tui.ModSlowBlink|tui.ModRapidBlink) != 0 {
		st = st.Blink(true)
	}
	if mods.Contains(tui.ModReversed) {
		st = st.Reverse(true)
	}
	if mods.Contains(tui.ModCrossedOut) {
		st = st.StrikeThrough(true)
	}
	return st
}
