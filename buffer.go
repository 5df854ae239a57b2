package tui

import (
	"fmt"
	"slices"
	"strings"
)

// Buffer is a rectangular grid of cells covering Area.
//
// Content is stored row-major: the cell at (x, y) lives at
// Content[(y-Area.Y)*Area.Width + (x-Area.X)]. Coordinates are absolute, so
// a Buffer for a sub-region can be merged back into a larger one.
//
// Reading or writing a position outside Area panics; it always means the
// caller computed a position the layout never handed out.
type Buffer struct {
	Area    Rect
	Content []Cell
}

// NewBuffer creates a Buffer covering area filled with blank cells.
func NewBuffer(area Rect) *Buffer {
	return NewBufferFilled(area, EmptyCell())
}

// NewBufferFilled creates a Buffer covering area with every cell set to c.
func NewBufferFilled(area Rect, c Cell) *Buffer {
	content := make([]Cell, area.Area())
	for i := range content {
		content[i] = c
	}
	return &Buffer{Area: area, Content: content}
}

// NewBufferWithLines creates a Buffer at the origin whose rows hold lines.
// The width is that of the widest line; shorter lines are padded with
// blanks. Mostly useful for building expected output in tests.
func NewBufferWithLines(lines ...string) *Buffer {
	width := 0
	for _, l := range lines {
		width = max(width, StringWidth(l))
	}
	b := NewBuffer(NewRect(0, 0, width, len(lines)))
	for y, l := range lines {
		b.SetString(0, y, l, Style{})
	}
	return b
}

// Index converts (x, y) to an offset into Content.
// Panics if the position is outside the buffer.
func (b *Buffer) Index(x, y int) int {
	if !b.Area.Contains(x, y) {
		panic(fmt.Sprintf("tui: position (%d, %d) outside buffer area %+v", x, y, b.Area))
	}
	return (y-b.Area.Y)*b.Area.Width + (x - b.Area.X)
}

// PosOf converts an offset into Content back to (x, y).
// Panics if i is out of range.
func (b *Buffer) PosOf(i int) (x, y int) {
	if i < 0 || i >= len(b.Content) {
		panic(fmt.Sprintf("tui: index %d outside buffer of %d cells", i, len(b.Content)))
	}
	return b.Area.X + i%b.Area.Width, b.Area.Y + i/b.Area.Width
}

// Cell returns the cell at (x, y). Panics if the position is outside the buffer.
func (b *Buffer) Cell(x, y int) Cell {
	return b.Content[b.Index(x, y)]
}

// Set writes c at (x, y). Panics if the position is outside the buffer.
//
// A glyph wider than one column also claims the cells to its right as
// continuations. If those cells fall outside the buffer the glyph is
// replaced by a single blank cell in c's style. Any wide glyph partially
// covered by the write is blanked so no orphaned half remains.
// Continuation cells are stored as given.
func (b *Buffer) Set(x, y int, c Cell) {
	i := b.Index(x, y)
	if c.Skip {
		b.Content[i] = c
		return
	}

	w := max(1, c.Width())
	if x+w > b.Area.Right() {
		b.clearGlyph(x, y)
		b.Content[i] = Cell{Symbol: " ", Style: c.Style}
		return
	}

	b.clearGlyph(x, y)
	b.clearGlyph(x+w-1, y)
	b.Content[i] = c
	for dx := 1; dx < w; dx++ {
		b.Content[i+dx] = continuation(c.Style)
	}
}

// SetSymbol writes symbol at (x, y) and patches style over the cell's
// current style. Panics if the position is outside the buffer.
func (b *Buffer) SetSymbol(x, y int, symbol string, style Style) {
	b.Set(x, y, NewCell(symbol, b.Content[b.Index(x, y)].Style.Patch(style)))
}

// clearGlyph blanks the whole glyph covering (x, y) if it spans more than
// one cell. Narrow cells are left alone.
func (b *Buffer) clearGlyph(x, y int) {
	row := b.Index(b.Area.X, y)
	start := x
	for start > b.Area.X && b.Content[row+start-b.Area.X].Skip {
		start--
	}
	end := start + 1
	for end < b.Area.Right() && b.Content[row+end-b.Area.X].Skip {
		end++
	}
	if end-start == 1 && !b.Content[row+start-b.Area.X].Skip {
		return
	}
	for cx := start; cx < end; cx++ {
		cell := &b.Content[row+cx-b.Area.X]
		*cell = Cell{Symbol: " ", Style: cell.Style}
	}
}

// SetString writes s starting at (x, y) and returns the number of columns
// written. Styles are patched as in SetSymbol. Text is split into grapheme
// clusters; zero-width clusters are dropped and writing stops at the right
// edge of the buffer. Rows outside the buffer are ignored.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	return b.SetStringN(x, y, s, b.Area.Right()-x, style)
}

// SetStringN is like SetString but writes at most maxWidth columns.
// A wide glyph that would straddle the limit is not written.
func (b *Buffer) SetStringN(x, y int, s string, maxWidth int, style Style) int {
	if y < b.Area.Y || y >= b.Area.Bottom() || maxWidth <= 0 {
		return 0
	}
	limit := min(b.Area.Right(), x+maxWidth)
	cx := x
	for _, g := range Graphemes(s) {
		if g.Width == 0 {
			continue
		}
		if cx+g.Width > limit {
			if cx < limit && cx+g.Width > b.Area.Right() && cx >= b.Area.X {
				// Wide glyph at the buffer edge becomes a blank.
				b.SetSymbol(cx, y, g.Symbol, style)
				cx++
			}
			break
		}
		if cx >= b.Area.X {
			b.SetSymbol(cx, y, g.Symbol, style)
		}
		cx += g.Width
	}
	return max(0, cx-max(x, b.Area.X))
}

// MergeStyle patches style over the style of the cell at (x, y), keeping its
// glyph. Panics if the position is outside the buffer.
func (b *Buffer) MergeStyle(x, y int, style Style) {
	i := b.Index(x, y)
	b.Content[i].Style = b.Content[i].Style.Patch(style)
}

// SetStyle patches style over every cell in area, clipped to the buffer.
func (b *Buffer) SetStyle(area Rect, style Style) {
	area = area.Intersect(b.Area)
	for y := area.Y; y < area.Bottom(); y++ {
		row := b.Index(area.X, y)
		for i := row; i < row+area.Width; i++ {
			b.Content[i].Style = b.Content[i].Style.Patch(style)
		}
	}
}

// Fill writes c into every cell of area, clipped to the buffer. Wide glyphs
// are repeated every Width() columns.
func (b *Buffer) Fill(area Rect, c Cell) {
	area = area.Intersect(b.Area)
	step := max(1, c.Width())
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x += step {
			if x+step > area.Right() {
				b.Set(x, y, Cell{Symbol: " ", Style: c.Style})
				continue
			}
			b.Set(x, y, c)
		}
	}
}

// Reset sets every cell to blank.
func (b *Buffer) Reset() {
	for i := range b.Content {
		b.Content[i].Reset()
	}
}

// Resize changes the buffer to cover area. Cells at positions present in
// both the old and new areas keep their content; new positions get fill.
// Wide glyphs cut by the new edges are blanked.
func (b *Buffer) Resize(area Rect, fill Cell) {
	if area == b.Area {
		return
	}
	next := NewBufferFilled(area, fill)
	overlap := area.Intersect(b.Area)
	for y := overlap.Y; y < overlap.Bottom(); y++ {
		src := b.Index(overlap.X, y)
		dst := next.Index(overlap.X, y)
		copy(next.Content[dst:dst+overlap.Width], b.Content[src:src+overlap.Width])
	}
	b.Area = next.Area
	b.Content = next.Content
	b.repairRows(overlap)
}

// repairRows fixes rows y in region after a bulk copy.
func (b *Buffer) repairRows(region Rect) {
	for y := region.Y; y < region.Bottom(); y++ {
		b.repairRow(y)
	}
}

// repairRow blanks every wide glyph on row y that is missing continuation
// cells and every continuation cell without a glyph.
func (b *Buffer) repairRow(y int) {
	if b.Area.Width == 0 {
		return
	}
	i := b.Index(b.Area.X, y)
	row := b.Content[i : i+b.Area.Width]
	start, pending := -1, 0
	for x := range row {
		c := &row[x]
		if c.Skip {
			if pending > 0 {
				pending--
				continue
			}
			*c = Cell{Symbol: " ", Style: c.Style}
			continue
		}
		if pending > 0 {
			blank(row[start:x])
		}
		start, pending = x, max(0, c.Width()-1)
	}
	if pending > 0 {
		blank(row[start:])
	}
}

func blank(cells []Cell) {
	for i := range cells {
		cells[i] = Cell{Symbol: " ", Style: cells[i].Style}
	}
}

// Merge grows b to cover the union of both areas and copies every cell of
// other into it. New positions not covered by either buffer are blank.
func (b *Buffer) Merge(other *Buffer) {
	if other.Area.IsEmpty() {
		return
	}
	b.Resize(b.Area.Union(other.Area), EmptyCell())
	for y := other.Area.Y; y < other.Area.Bottom(); y++ {
		src := other.Index(other.Area.X, y)
		dst := b.Index(other.Area.X, y)
		copy(b.Content[dst:dst+other.Area.Width], other.Content[src:src+other.Area.Width])
	}
	b.repairRows(other.Area)
}

// Clone returns a deep copy of b.
func (b *Buffer) Clone() *Buffer {
	return &Buffer{Area: b.Area, Content: slices.Clone(b.Content)}
}

// Equal reports whether both buffers cover the same area with identical cells.
func (b *Buffer) Equal(other *Buffer) bool {
	return b.Area == other.Area && slices.Equal(b.Content, other.Content)
}

// String renders the glyphs row by row separated by newlines.
// Continuation cells are skipped so wide glyphs print once.
func (b *Buffer) String() string {
	return b.render(false)
}

// StringTrimmed is like String with trailing spaces removed from each row.
func (b *Buffer) StringTrimmed() string {
	return b.render(true)
}

func (b *Buffer) render(trim bool) string {
	var sb strings.Builder
	var line strings.Builder
	for y := 0; y < b.Area.Height; y++ {
		line.Reset()
		row := b.Content[y*b.Area.Width : (y+1)*b.Area.Width]
		for _, c := range row {
			line.WriteString(c.display())
		}
		if trim {
			sb.WriteString(strings.TrimRight(line.String(), " "))
		} else {
			sb.WriteString(line.String())
		}
		if y < b.Area.Height-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// Lines returns String split into rows.
func (b *Buffer) Lines() []string {
	if b.Area.Height == 0 {
		return nil
	}
	return strings.Split(b.String(), "\n")
}
