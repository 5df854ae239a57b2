package tui

import "fmt"

// TestBackend is an in-memory Backend for tests.
// It applies every update to its own Buffer so tests can inspect what a
// real terminal would show, and counts calls for verification.
type TestBackend struct {
	buf           *Buffer
	cursorX       int
	cursorY       int
	cursorVisible bool
	closed        bool

	drawCalls   int
	flushCount  int
	clearCount  int
	lastUpdates []CellUpdate
	sizeErr     error
}

// Ensure TestBackend implements Backend.
var _ Backend = (*TestBackend)(nil)

// NewTestBackend creates a test backend with the given dimensions.
func NewTestBackend(width, height int) *TestBackend {
	return &TestBackend{
		buf:           NewBuffer(NewRect(0, 0, width, height)),
		cursorVisible: true,
	}
}

// Size returns the backend dimensions.
func (m *TestBackend) Size() (Rect, error) {
	if m.closed {
		return Rect{}, ErrBackendClosed
	}
	if m.sizeErr != nil {
		return Rect{}, m.sizeErr
	}
	return m.buf.Area, nil
}

// Draw applies updates to the backend's buffer. Updates outside the screen
// are reported as an error, since a real terminal would misplace them.
func (m *TestBackend) Draw(updates []CellUpdate) error {
	if m.closed {
		return ErrBackendClosed
	}
	m.drawCalls++
	m.lastUpdates = append(m.lastUpdates[:0], updates...)
	for _, u := range updates {
		if !m.buf.Area.Contains(u.X, u.Y) {
			return fmt.Errorf("draw at (%d, %d) outside screen %+v", u.X, u.Y, m.buf.Area)
		}
		m.buf.Content[m.buf.Index(u.X, u.Y)] = u.Cell
	}
	return nil
}

// HideCursor makes the cursor invisible.
func (m *TestBackend) HideCursor() error {
	if m.closed {
		return ErrBackendClosed
	}
	m.cursorVisible = false
	return nil
}

// ShowCursor makes the cursor visible.
func (m *TestBackend) ShowCursor() error {
	if m.closed {
		return ErrBackendClosed
	}
	m.cursorVisible = true
	return nil
}

// SetCursor moves the cursor to the specified position.
func (m *TestBackend) SetCursor(x, y int) error {
	if m.closed {
		return ErrBackendClosed
	}
	m.cursorX, m.cursorY = x, y
	return nil
}

// Clear resets the screen to blanks.
func (m *TestBackend) Clear() error {
	if m.closed {
		return ErrBackendClosed
	}
	m.clearCount++
	m.buf.Reset()
	return nil
}

// Flush counts the flush.
func (m *TestBackend) Flush() error {
	if m.closed {
		return ErrBackendClosed
	}
	m.flushCount++
	return nil
}

// Close makes every later call fail with ErrBackendClosed.
func (m *TestBackend) Close() error {
	m.closed = true
	return nil
}

// --- Test helper methods ---

// Buffer returns the backend's screen contents.
func (m *TestBackend) Buffer() *Buffer {
	return m.buf
}

// Cursor returns the current cursor position.
func (m *TestBackend) Cursor() (x, y int) {
	return m.cursorX, m.cursorY
}

// IsCursorVisible returns whether the cursor is shown.
func (m *TestBackend) IsCursorVisible() bool {
	return m.cursorVisible
}

// DrawCalls returns how many times Draw was called.
func (m *TestBackend) DrawCalls() int {
	return m.drawCalls
}

// FlushCount returns how many times Flush was called.
func (m *TestBackend) FlushCount() int {
	return m.flushCount
}

// ClearCount returns how many times Clear was called.
func (m *TestBackend) ClearCount() int {
	return m.clearCount
}

// LastUpdates returns the updates passed to the most recent Draw.
func (m *TestBackend) LastUpdates() []CellUpdate {
	return m.lastUpdates
}

// Resize changes the screen dimensions, preserving content where possible.
func (m *TestBackend) Resize(width, height int) {
	m.buf.Resize(NewRect(0, 0, width, height), EmptyCell())
}

// FailSize makes Size return err until called again with nil.
func (m *TestBackend) FailSize(err error) {
	m.sizeErr = err
}

// String renders the screen for snapshot testing.
func (m *TestBackend) String() string {
	return m.buf.String()
}

// StringTrimmed renders the screen with trailing spaces removed from each line.
func (m *TestBackend) StringTrimmed() string {
	return m.buf.StringTrimmed()
}

// AssertLines compares the screen against expected rows and returns a
// descriptive error on the first mismatch.
func (m *TestBackend) AssertLines(expected ...string) error {
	got := m.buf.Lines()
	if len(got) != len(expected) {
		return fmt.Errorf("screen has %d rows, want %d:\n%s", len(got), len(expected), m.String())
	}
	for i := range got {
		if got[i] != expected[i] {
			return fmt.Errorf("row %d = %q, want %q", i, got[i], expected[i])
		}
	}
	return nil
}
