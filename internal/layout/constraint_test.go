package layout

import (
	"slices"
	"testing"
)

func TestConstraint_Constructors(t *testing.T) {
	type tc struct {
		got      Constraint
		expected Constraint
		str      string
	}

	tests := map[string]tc{
		"length":            {got: Length(4), expected: Constraint{Kind: KindLength, Value: 4}, str: "Length(4)"},
		"negative length":   {got: Length(-4), expected: Constraint{Kind: KindLength}, str: "Length(0)"},
		"percentage":        {got: Percentage(25), expected: Constraint{Kind: KindPercentage, Value: 25}, str: "Percentage(25)"},
		"ratio":             {got: Ratio(1, 3), expected: Constraint{Kind: KindRatio, Value: 1, Den: 3}, str: "Ratio(1/3)"},
		"negative ratio":    {got: Ratio(-1, -3), expected: Constraint{Kind: KindRatio}, str: "Ratio(0/0)"},
		"min":               {got: Min(2), expected: Constraint{Kind: KindMin, Value: 2}, str: "Min(2)"},
		"max":               {got: Max(9), expected: Constraint{Kind: KindMax, Value: 9}, str: "Max(9)"},
		"fill":              {got: Fill(3), expected: Constraint{Kind: KindFill, Value: 3}, str: "Fill(3)"},
		"negative fill":     {got: Fill(-1), expected: Constraint{Kind: KindFill}, str: "Fill(0)"},
		"zero value length": {got: Constraint{}, expected: Length(0), str: "Length(0)"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if tt.got != tt.expected {
				t.Errorf("constraint = %+v, want %+v", tt.got, tt.expected)
			}
			if s := tt.got.String(); s != tt.str {
				t.Errorf("String() = %q, want %q", s, tt.str)
			}
		})
	}
}

func TestConstraint_FromHelpers(t *testing.T) {
	if got, want := FromLengths(1, 2), []Constraint{Length(1), Length(2)}; !slices.Equal(got, want) {
		t.Errorf("FromLengths() = %v, want %v", got, want)
	}
	if got, want := FromPercentages(10, 90), []Constraint{Percentage(10), Percentage(90)}; !slices.Equal(got, want) {
		t.Errorf("FromPercentages() = %v, want %v", got, want)
	}
	if got, want := FromMins(3), []Constraint{Min(3)}; !slices.Equal(got, want) {
		t.Errorf("FromMins() = %v, want %v", got, want)
	}
	if got, want := FromMaxes(5, 6), []Constraint{Max(5), Max(6)}; !slices.Equal(got, want) {
		t.Errorf("FromMaxes() = %v, want %v", got, want)
	}
	if got, want := FromFills(1, 1), []Constraint{Fill(1), Fill(1)}; !slices.Equal(got, want) {
		t.Errorf("FromFills() = %v, want %v", got, want)
	}
	if got, want := FromRatios([2]int{1, 4}, [2]int{3, 4}), []Constraint{Ratio(1, 4), Ratio(3, 4)}; !slices.Equal(got, want) {
		t.Errorf("FromRatios() = %v, want %v", got, want)
	}
	if got := FromLengths(); len(got) != 0 {
		t.Errorf("FromLengths() = %v, want empty", got)
	}
}

func TestKind_String(t *testing.T) {
	if got := KindPercentage.String(); got != "Percentage" {
		t.Errorf("KindPercentage.String() = %q", got)
	}
	if got := Kind(42).String(); got != "Kind(42)" {
		t.Errorf("Kind(42).String() = %q", got)
	}
	if Row.String() != "Row" || Column.String() != "Column" {
		t.Error("Direction.String() mismatch")
	}
}

func TestLayout_Builders(t *testing.T) {
	l := Vertical(Length(1)).WithSpacing(-2).WithMargin(Margin{Horizontal: -1, Vertical: 3}).WithJustify(JustifyCenter)
	if l.Spacing != 0 {
		t.Errorf("Spacing = %d, want 0", l.Spacing)
	}
	if l.Margin != (Margin{Vertical: 3}) {
		t.Errorf("Margin = %+v, want {0 3}", l.Margin)
	}
	if l.Direction != Column || l.Justify != JustifyCenter {
		t.Errorf("Layout = %+v", l)
	}
	if !l.Equal(l.WithConstraints(Length(1))) {
		t.Error("Equal() = false for identical layouts")
	}
	if l.Equal(l.WithConstraints(Length(2))) {
		t.Error("Equal() = true for different constraints")
	}
}
