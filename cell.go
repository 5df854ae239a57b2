package tui

// Cell is one character position in a Buffer.
//
// Symbol holds a single grapheme cluster. A glyph wider than one column is
// stored in its leftmost cell and followed by continuation cells, which have
// Skip set and an empty Symbol; backends never draw continuation cells
// because the terminal advances past them when it draws the glyph.
type Cell struct {
	Symbol string
	Style  Style
	Skip   bool
}

// NewCell creates a Cell holding symbol drawn with style.
func NewCell(symbol string, style Style) Cell {
	return Cell{Symbol: symbol, Style: style}
}

// EmptyCell returns a blank cell with an empty style.
func EmptyCell() Cell {
	return Cell{Symbol: " "}
}

// continuation returns the cell that follows a wide glyph drawn with style.
func continuation(style Style) Cell {
	return Cell{Style: style, Skip: true}
}

// Width returns the number of columns the cell's glyph covers.
// Continuation cells have width 0.
func (c Cell) Width() int {
	if c.Skip {
		return 0
	}
	return GraphemeWidth(c.Symbol)
}

// IsContinuation returns true if this cell is covered by a wide glyph to
// its left.
func (c Cell) IsContinuation() bool {
	return c.Skip
}

// Equal returns true if both cells are identical.
func (c Cell) Equal(other Cell) bool {
	return c == other
}

// WithStyle returns a copy of c with style patched over its current style.
func (c Cell) WithStyle(style Style) Cell {
	c.Style = c.Style.Patch(style)
	return c
}

// Reset returns the cell to a blank space with an empty style.
func (c *Cell) Reset() {
	*c = EmptyCell()
}

// display returns the text a renderer should emit for c.
func (c Cell) display() string {
	if c.Skip {
		return ""
	}
	if c.Symbol == "" {
		return " "
	}
	return c.Symbol
}
