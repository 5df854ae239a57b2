package tui

import (
	"slices"
	"testing"
)

func TestGraphemeWidth(t *testing.T) {
	type tc struct {
		in   string
		want int
	}

	tests := map[string]tc{
		"empty":       {in: "", want: 0},
		"ascii":       {in: "a", want: 1},
		"box drawing": {in: "─", want: 1},
		"ambiguous":   {in: "·", want: 1},
		"cjk":         {in: "漢", want: 2},
		"fullwidth":   {in: "Ａ", want: 2},
		"combining":   {in: "e\u0301", want: 1},
		"control":     {in: "\x07", want: 0},
		"flag":        {in: "🇯🇵", want: 2},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := GraphemeWidth(tt.in); got != tt.want {
				t.Errorf("GraphemeWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringWidth(t *testing.T) {
	type tc struct {
		in   string
		want int
	}

	tests := map[string]tc{
		"empty": {in: "", want: 0},
		"ascii": {in: "hello", want: 5},
		"mixed": {in: "hi世界", want: 6},
		"emoji": {in: "ok👍", want: 4},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := StringWidth(tt.in); got != tt.want {
				t.Errorf("StringWidth(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestGraphemes(t *testing.T) {
	got := Graphemes("ae\u0301世")
	want := []Grapheme{
		{Symbol: "a", Width: 1},
		{Symbol: "e\u0301", Width: 1},
		{Symbol: "世", Width: 2},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Graphemes() = %+v, want %+v", got, want)
	}

	if got := Graphemes(""); len(got) != 0 {
		t.Errorf("Graphemes(\"\") = %+v, want empty", got)
	}
}

func TestWidthSourcesAgree(t *testing.T) {
	for r := rune(0); r <= 0x3FFFF; r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		s := string(r)
		want := GraphemeWidth(s)
		if want < 0 || want > 2 {
			t.Errorf("GraphemeWidth(%U) = %d, want 0..2", r, want)
		}
		g := Graphemes(s)
		if len(g) != 1 || g[0].Width != want {
			t.Errorf("Graphemes(%U) = %+v, want one cluster of width %d", r, g, want)
		}
		if got := StringWidth(s); got != want {
			t.Errorf("StringWidth(%U) = %d, want %d", r, got, want)
		}
		if got := NewCell(s, Style{}).Width(); got != want {
			t.Errorf("NewCell(%U).Width() = %d, want %d", r, got, want)
		}
	}
}
