package tui

import (
	"sort"
	"strings"
)

// BorderSet holds the symbols used to draw a box border.
type BorderSet struct {
	TopLeft          string
	TopRight         string
	BottomLeft       string
	BottomRight      string
	VerticalLeft     string
	VerticalRight    string
	HorizontalTop    string
	HorizontalBottom string
}

// lineSet builds a BorderSet whose sides share one vertical and one
// horizontal symbol.
func lineSet(tl, tr, bl, br, vertical, horizontal string) BorderSet {
	return BorderSet{
		TopLeft:          tl,
		TopRight:         tr,
		BottomLeft:       bl,
		BottomRight:      br,
		VerticalLeft:     vertical,
		VerticalRight:    vertical,
		HorizontalTop:    horizontal,
		HorizontalBottom: horizontal,
	}
}

// Line-drawing border sets.
var (
	// BorderPlain uses single-line box-drawing characters.
	//
	//	┌───┐
	//	└───┘
	BorderPlain = lineSet("┌", "┐", "└", "┘", "│", "─")
	// BorderRounded uses single lines with rounded corners.
	BorderRounded = lineSet("╭", "╮", "╰", "╯", "│", "─")
	// BorderDouble uses double-line characters.
	BorderDouble = lineSet("╔", "╗", "╚", "╝", "║", "═")
	// BorderThick uses heavy line characters.
	BorderThick = lineSet("┏", "┓", "┗", "┛", "┃", "━")

	BorderLightDoubleDashed    = lineSet("┌", "┐", "└", "┘", "╎", "╌")
	BorderHeavyDoubleDashed    = lineSet("┏", "┓", "┗", "┛", "╏", "╍")
	BorderLightTripleDashed    = lineSet("┌", "┐", "└", "┘", "┆", "┄")
	BorderHeavyTripleDashed    = lineSet("┏", "┓", "┗", "┛", "┇", "┅")
	BorderLightQuadrupleDashed = lineSet("┌", "┐", "└", "┘", "┊", "┈")
	BorderHeavyQuadrupleDashed = lineSet("┏", "┓", "┗", "┛", "┋", "┉")
)

// Block-element border sets.
var (
	// BorderQuadrantOutside draws half a cell outside the content.
	//
	//	▛▀▀▀▜
	//	▌xxx▐
	//	▙▄▄▄▟
	BorderQuadrantOutside = BorderSet{
		TopLeft: "▛", TopRight: "▜", BottomLeft: "▙", BottomRight: "▟",
		VerticalLeft: "▌", VerticalRight: "▐", HorizontalTop: "▀", HorizontalBottom: "▄",
	}
	// BorderQuadrantInside draws half a cell inside the content.
	//
	//	▗▄▄▄▖
	//	▐xxx▌
	//	▝▀▀▀▘
	BorderQuadrantInside = BorderSet{
		TopLeft: "▗", TopRight: "▖", BottomLeft: "▝", BottomRight: "▘",
		VerticalLeft: "▐", VerticalRight: "▌", HorizontalTop: "▄", HorizontalBottom: "▀",
	}
	// BorderOneEighthWide uses one-eighth blocks hugging the content.
	BorderOneEighthWide = BorderSet{
		TopLeft: "▁", TopRight: "▁", BottomLeft: "▔", BottomRight: "▔",
		VerticalLeft: "▏", VerticalRight: "▕", HorizontalTop: "▁", HorizontalBottom: "▔",
	}
	// BorderOneEighthTall uses one-eighth blocks around the content.
	BorderOneEighthTall = BorderSet{
		TopLeft: "▕", TopRight: "▏", BottomLeft: "▕", BottomRight: "▏",
		VerticalLeft: "▕", VerticalRight: "▏", HorizontalTop: "▔", HorizontalBottom: "▁",
	}
	// BorderProportionalWide makes horizontal and vertical sides look equally thick.
	BorderProportionalWide = BorderSet{
		TopLeft: "▄", TopRight: "▄", BottomLeft: "▀", BottomRight: "▀",
		VerticalLeft: "█", VerticalRight: "█", HorizontalTop: "▄", HorizontalBottom: "▀",
	}
	// BorderProportionalTall is the taller variant of BorderProportionalWide.
	BorderProportionalTall = BorderSet{
		TopLeft: "█", TopRight: "█", BottomLeft: "█", BottomRight: "█",
		VerticalLeft: "█", VerticalRight: "█", HorizontalTop: "▀", HorizontalBottom: "▄",
	}
	// BorderFull draws every side with full blocks.
	BorderFull = lineSet("█", "█", "█", "█", "█", "█")
	// BorderEmpty draws blanks, so a border style applies without visible lines.
	BorderEmpty = lineSet(" ", " ", " ", " ", " ", " ")
)

var bordersByName = map[string]BorderSet{
	"plain":                  BorderPlain,
	"rounded":                BorderRounded,
	"double":                 BorderDouble,
	"thick":                  BorderThick,
	"light-double-dashed":    BorderLightDoubleDashed,
	"heavy-double-dashed":    BorderHeavyDoubleDashed,
	"light-triple-dashed":    BorderLightTripleDashed,
	"heavy-triple-dashed":    BorderHeavyTripleDashed,
	"light-quadruple-dashed": BorderLightQuadrupleDashed,
	"heavy-quadruple-dashed": BorderHeavyQuadrupleDashed,
	"quadrant-outside":       BorderQuadrantOutside,
	"quadrant-inside":        BorderQuadrantInside,
	"one-eighth-wide":        BorderOneEighthWide,
	"one-eighth-tall":        BorderOneEighthTall,
	"proportional-wide":      BorderProportionalWide,
	"proportional-tall":      BorderProportionalTall,
	"full":                   BorderFull,
	"empty":                  BorderEmpty,
}

// BorderSetByName looks up a border set by its kebab-case name, for
// example "rounded" or "heavy-triple-dashed". Case is ignored.
func BorderSetByName(name string) (BorderSet, bool) {
	set, ok := bordersByName[strings.ToLower(strings.TrimSpace(name))]
	return set, ok
}

// BorderSetNames returns every name accepted by BorderSetByName, sorted.
func BorderSetNames() []string {
	names := make([]string, 0, len(bordersByName))
	for name := range bordersByName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DrawBox draws a box border on the buffer at the specified rectangle.
// The rectangle is clipped to the buffer; nothing is drawn if it is
// smaller than 2x2 after clipping.
func DrawBox(buf *Buffer, rect Rect, set BorderSet, style Style) {
	rect = rect.Intersect(buf.Area)
	if rect.Width < 2 || rect.Height < 2 {
		return
	}

	left := rect.X
	right := rect.Right() - 1
	top := rect.Y
	bottom := rect.Bottom() - 1

	for x := left + 1; x < right; x++ {
		buf.SetSymbol(x, top, set.HorizontalTop, style)
		buf.SetSymbol(x, bottom, set.HorizontalBottom, style)
	}
	for y := top + 1; y < bottom; y++ {
		buf.SetSymbol(left, y, set.VerticalLeft, style)
		buf.SetSymbol(right, y, set.VerticalRight, style)
	}

	buf.SetSymbol(left, top, set.TopLeft, style)
	buf.SetSymbol(right, top, set.TopRight, style)
	buf.SetSymbol(left, bottom, set.BottomLeft, style)
	buf.SetSymbol(right, bottom, set.BottomRight, style)
}

// DrawBoxWithTitle draws a box border with title centered in the top edge.
// The title is truncated to fit between the corners.
func DrawBoxWithTitle(buf *Buffer, rect Rect, set BorderSet, title string, style Style) {
	DrawBox(buf, rect, set, style)
	drawTitle(buf, rect.Intersect(buf.Area), title, AlignCenter, style)
}

// drawTitle writes title into the top edge of rect, between the corners.
func drawTitle(buf *Buffer, rect Rect, title string, align Alignment, style Style) {
	if title == "" || rect.Width < 3 || rect.Height < 1 {
		return
	}
	available := rect.Width - 2
	width := min(StringWidth(title), available)
	x := rect.X + 1 + align.offset(available, width)
	buf.SetStringN(x, rect.Y, title, width, style)
}
