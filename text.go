package tui

import "strings"

// Text renders styled text, one line per row. Lines longer than the area
// are truncated; rows beyond the area are dropped.
type Text struct {
	Content   string
	Style     Style
	Alignment Alignment
}

// NewText creates a left-aligned Text.
func NewText(content string, style Style) Text {
	return Text{Content: content, Style: style}
}

// WithAlignment returns a copy of t aligned within its area.
func (t Text) WithAlignment(a Alignment) Text {
	t.Alignment = a
	return t
}

// Width returns the display width of the widest line.
func (t Text) Width() int {
	w := 0
	for _, line := range strings.Split(t.Content, "\n") {
		w = max(w, StringWidth(line))
	}
	return w
}

// Height returns the number of lines.
func (t Text) Height() int {
	return strings.Count(t.Content, "\n") + 1
}

// Render draws the text into area.
func (t Text) Render(area Rect, buf *Buffer) {
	area = area.Intersect(buf.Area)
	if area.IsEmpty() {
		return
	}
	buf.SetStyle(area, t.Style)
	for i, line := range strings.Split(t.Content, "\n") {
		if i >= area.Height {
			break
		}
		w := min(StringWidth(line), area.Width)
		x := area.X + t.Alignment.offset(area.Width, w)
		buf.SetStringN(x, area.Y+i, line, area.Right()-x, t.Style)
	}
}
