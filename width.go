package tui

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// narrow measures single runes with East Asian ambiguous characters counted
// as one column regardless of the user's locale.
var narrow = func() *runewidth.Condition {
	c := runewidth.NewCondition()
	c.EastAsianWidth = false
	return c
}()

// GraphemeWidth returns the number of terminal columns a single grapheme
// cluster occupies. Control characters and combining marks are zero width.
//
// Every width in the package comes from here, so a Cell, the column
// advance of SetString and StringWidth always agree.
func GraphemeWidth(g string) int {
	if g == "" {
		return 0
	}
	if r, size := utf8.DecodeRuneInString(g); size == len(g) {
		return narrow.RuneWidth(r)
	}
	return uniseg.StringWidth(g)
}

// StringWidth returns the number of terminal columns s occupies.
func StringWidth(s string) int {
	width := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		width += GraphemeWidth(cluster)
	}
	return width
}

// Graphemes splits s into grapheme clusters paired with their widths.
func Graphemes(s string) []Grapheme {
	var out []Grapheme
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		out = append(out, Grapheme{Symbol: cluster, Width: GraphemeWidth(cluster)})
	}
	return out
}

// Grapheme is one user-perceived character and its display width.
type Grapheme struct {
	Symbol string
	Width  int
}
