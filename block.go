package tui

// Block draws a border with an optional title around an area and reports
// the inner area left for content.
type Block struct {
	Borders     BorderSet
	HideBorders bool
	Title       string
	TitleAlign  Alignment
	Style       Style // patched over the whole area
	BorderStyle Style
	TitleStyle  Style
	Padding     Edges
}

// NewBlock returns a Block with a plain border.
func NewBlock() Block {
	return Block{Borders: BorderPlain}
}

// WithTitle returns a copy of b showing title in its top border.
func (b Block) WithTitle(title string) Block {
	b.Title = title
	return b
}

// WithBorders returns a copy of b drawn with set.
func (b Block) WithBorders(set BorderSet) Block {
	b.Borders = set
	b.HideBorders = false
	return b
}

// WithoutBorders returns a copy of b that draws no border.
func (b Block) WithoutBorders() Block {
	b.HideBorders = true
	return b
}

// WithStyle returns a copy of b with style patched over its whole area.
func (b Block) WithStyle(style Style) Block {
	b.Style = style
	return b
}

// WithBorderStyle returns a copy of b with the border drawn in style.
func (b Block) WithBorderStyle(style Style) Block {
	b.BorderStyle = style
	return b
}

// WithPadding returns a copy of b with extra space inside the border.
func (b Block) WithPadding(p Edges) Block {
	b.Padding = p
	return b
}

// Inner returns the part of area left for content.
func (b Block) Inner(area Rect) Rect {
	if !b.HideBorders {
		area = area.Inset(EdgeAll(1))
	}
	return area.Inset(b.Padding)
}

// Render draws the block into area.
func (b Block) Render(area Rect, buf *Buffer) {
	area = area.Intersect(buf.Area)
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, b.Style)

	borderStyle := b.Style.Patch(b.BorderStyle)
	if !b.HideBorders {
		DrawBox(buf, area, b.Borders, borderStyle)
	}
	drawTitle(buf, area, b.Title, b.TitleAlign, borderStyle.Patch(b.TitleStyle))
}
