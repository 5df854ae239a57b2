package tui

import "errors"

// ErrBackendClosed is returned by backends used after Close.
var ErrBackendClosed = errors.New("tui: backend closed")

// Backend is the output side of a terminal: it reports the screen size and
// executes cell updates produced by the diff engine.
//
// Draw may buffer output; nothing is guaranteed visible until Flush.
type Backend interface {
	Size() (Rect, error)
	Draw(updates []CellUpdate) error
	HideCursor() error
	ShowCursor() error
	SetCursor(x, y int) error
	Clear() error
	Flush() error
}
