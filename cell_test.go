package tui

import "testing"

func TestCell_Width(t *testing.T) {
	type tc struct {
		cell Cell
		want int
	}

	tests := map[string]tc{
		"ascii":        {cell: NewCell("a", Style{}), want: 1},
		"space":        {cell: EmptyCell(), want: 1},
		"cjk":          {cell: NewCell("世", Style{}), want: 2},
		"emoji":        {cell: NewCell("🎉", Style{}), want: 2},
		"combining":    {cell: NewCell("e\u0301", Style{}), want: 1},
		"continuation": {cell: continuation(Style{}), want: 0},
		"empty symbol": {cell: NewCell("", Style{}), want: 0},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.cell.Width(); got != tt.want {
				t.Errorf("Width() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestCell_Reset(t *testing.T) {
	c := NewCell("x", NewStyle().Foreground(Red).Bold())
	c.Reset()
	if !c.Equal(EmptyCell()) {
		t.Errorf("Reset() = %+v, want %+v", c, EmptyCell())
	}
}

func TestCell_WithStyle(t *testing.T) {
	c := NewCell("x", NewStyle().Foreground(Red).Bold())
	got := c.WithStyle(NewStyle().Background(Blue))

	want := NewStyle().Foreground(Red).Background(Blue).Bold()
	if got.Style != want {
		t.Errorf("WithStyle() style = %+v, want %+v", got.Style, want)
	}
	if got.Symbol != "x" {
		t.Errorf("WithStyle() symbol = %q, want %q", got.Symbol, "x")
	}
}

func TestCell_Display(t *testing.T) {
	type tc struct {
		cell Cell
		want string
	}

	tests := map[string]tc{
		"glyph":        {cell: NewCell("a", Style{}), want: "a"},
		"empty symbol": {cell: Cell{}, want: " "},
		"continuation": {cell: continuation(Style{}), want: ""},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.cell.display(); got != tt.want {
				t.Errorf("display() = %q, want %q", got, tt.want)
			}
		})
	}
}
