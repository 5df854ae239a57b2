package tui

import "strconv"

// escBuilder efficiently builds ANSI escape sequences.
// It uses a pre-allocated buffer to minimize allocations.
type escBuilder struct {
	buf []byte
}

// newEscBuilder creates a new escape sequence builder with the given initial capacity.
func newEscBuilder(capacity int) *escBuilder {
	return &escBuilder{buf: make([]byte, 0, capacity)}
}

// Reset clears the buffer for reuse.
func (e *escBuilder) Reset() {
	e.buf = e.buf[:0]
}

// Bytes returns the built escape sequence.
func (e *escBuilder) Bytes() []byte {
	return e.buf
}

// Len returns the current length of the buffer.
func (e *escBuilder) Len() int {
	return len(e.buf)
}

func (e *escBuilder) writeCSI() {
	e.buf = append(e.buf, '\x1b', '[')
}

func (e *escBuilder) writeInt(n int) {
	e.buf = strconv.AppendInt(e.buf, int64(n), 10)
}

// MoveTo moves the cursor to the specified position.
// x and y are 0-indexed; ANSI sequences use 1-indexed positions.
func (e *escBuilder) MoveTo(x, y int) {
	e.writeCSI()
	e.writeInt(y + 1)
	e.buf = append(e.buf, ';')
	e.writeInt(x + 1)
	e.buf = append(e.buf, 'H')
}

// ClearScreen clears the entire screen.
func (e *escBuilder) ClearScreen() {
	e.writeCSI()
	e.buf = append(e.buf, '2', 'J')
}

// HideCursor makes the cursor invisible.
func (e *escBuilder) HideCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'l')
}

// ShowCursor makes the cursor visible.
func (e *escBuilder) ShowCursor() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '5', 'h')
}

// BeginSyncUpdate starts a synchronized update block. Terminals that
// support it display everything up to EndSyncUpdate at once.
func (e *escBuilder) BeginSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'h')
}

// EndSyncUpdate ends a synchronized update block.
func (e *escBuilder) EndSyncUpdate() {
	e.writeCSI()
	e.buf = append(e.buf, '?', '2', '0', '2', '6', 'l')
}

// ResetStyle resets all text attributes to default.
func (e *escBuilder) ResetStyle() {
	e.writeCSI()
	e.buf = append(e.buf, '0', 'm')
}

// sgrCodes maps each modifier bit, in order, to its SGR parameter.
var sgrCodes = [...]int{1, 2, 3, 4, 5, 6, 7, 8, 9}

// SetStyle emits one SGR sequence selecting s, starting from a full reset.
// Colors are first converted to what profile can display.
func (e *escBuilder) SetStyle(s Style, profile ColorProfile) {
	e.writeCSI()
	e.buf = append(e.buf, '0')

	mods := s.Modifiers()
	for i, code := range sgrCodes {
		if mods&(1<<i) != 0 {
			e.buf = append(e.buf, ';')
			e.writeInt(code)
		}
	}

	e.appendColor(profile.Convert(s.Fg), 30, 90, 38)
	e.appendColor(profile.Convert(s.Bg), 40, 100, 48)
	if mods.Contains(ModUnderlined) {
		e.appendColor(profile.Convert(s.UnderlineColor), -1, -1, 58)
	}

	e.buf = append(e.buf, 'm')
}

// appendColor appends the SGR parameters for c. normal and bright are the
// bases for palette entries 0-7 and 8-15 (negative to always use the
// extended form); extended is 38, 48 or 58.
func (e *escBuilder) appendColor(c Color, normal, bright, extended int) {
	switch c.Type() {
	case ColorANSI:
		idx := int(c.ANSI())
		e.buf = append(e.buf, ';')
		switch {
		case idx < 8 && normal >= 0:
			e.writeInt(normal + idx)
		case idx < 16 && bright >= 0:
			e.writeInt(bright + idx - 8)
		default:
			e.writeInt(extended)
			e.buf = append(e.buf, ';', '5', ';')
			e.writeInt(idx)
		}
	case ColorRGB:
		r, g, b := c.RGB()
		e.buf = append(e.buf, ';')
		e.writeInt(extended)
		e.buf = append(e.buf, ';', '2', ';')
		e.writeInt(int(r))
		e.buf = append(e.buf, ';')
		e.writeInt(int(g))
		e.buf = append(e.buf, ';')
		e.writeInt(int(b))
	}
}

// WriteString appends a string to the buffer.
func (e *escBuilder) WriteString(s string) {
	e.buf = append(e.buf, s...)
}
