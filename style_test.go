package tui

import "testing"

func TestStyle_Patch(t *testing.T) {
	type tc struct {
		base  Style
		patch Style
		want  Style
	}

	tests := map[string]tc{
		"empty patch keeps base": {
			base:  NewStyle().Foreground(Red).Bold(),
			patch: NewStyle(),
			want:  NewStyle().Foreground(Red).Bold(),
		},
		"set colors override": {
			base:  NewStyle().Foreground(Red).Background(Blue),
			patch: NewStyle().Foreground(Green),
			want:  NewStyle().Foreground(Green).Background(Blue),
		},
		"reset color overrides": {
			base:  NewStyle().Foreground(Red),
			patch: NewStyle().Foreground(ResetColor()),
			want:  NewStyle().Foreground(ResetColor()),
		},
		"modifiers accumulate": {
			base:  NewStyle().Bold(),
			patch: NewStyle().Italic(),
			want:  NewStyle().Bold().Italic(),
		},
		"remove turns off": {
			base:  NewStyle().Bold().Italic(),
			patch: NewStyle().RemoveModifier(ModBold),
			want:  Style{Add: ModItalic, Sub: ModBold},
		},
		"add after remove turns on": {
			base:  NewStyle().RemoveModifier(ModBold),
			patch: NewStyle().Bold(),
			want:  NewStyle().Bold(),
		},
		"reset style clears everything": {
			base:  NewStyle().Foreground(Red).Underline(Blue).Bold().Underlined(),
			patch: ResetStyle(),
			want:  ResetStyle(),
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.base.Patch(tt.patch); got != tt.want {
				t.Errorf("Patch() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestStyle_PatchIsAssociative(t *testing.T) {
	styles := []Style{
		NewStyle(),
		NewStyle().Foreground(Red),
		NewStyle().Background(RGBColor(1, 2, 3)).Bold(),
		NewStyle().RemoveModifier(ModBold | ModItalic),
		NewStyle().Foreground(ResetColor()).Italic().Underlined(),
		NewStyle().Underline(Green).RemoveModifier(ModUnderlined),
		ResetStyle(),
		{Add: ModBold | ModDim, Sub: ModDim | ModReversed},
	}

	for _, a := range styles {
		for _, b := range styles {
			for _, c := range styles {
				left := a.Patch(b).Patch(c)
				right := a.Patch(b.Patch(c))
				if left != right {
					t.Fatalf("(%+v ⊕ %+v) ⊕ %+v = %+v, but %+v ⊕ (%+v ⊕ %+v) = %+v",
						a, b, c, left, a, b, c, right)
				}
			}
		}
	}
}

func TestPatch(t *testing.T) {
	got := Patch(
		NewStyle().Foreground(Red).Bold(),
		NewStyle().Background(Blue),
		NewStyle().RemoveModifier(ModBold).Italic(),
	)
	if got.Fg != Red || got.Bg != Blue {
		t.Errorf("Patch() colors = %v/%v, want %v/%v", got.Fg, got.Bg, Red, Blue)
	}
	if got.Modifiers() != ModItalic {
		t.Errorf("Patch() modifiers = %v, want %v", got.Modifiers(), ModItalic)
	}
	if Patch() != (Style{}) {
		t.Errorf("Patch() with no styles = %+v, want zero", Patch())
	}
}

func TestStyle_Builders(t *testing.T) {
	type tc struct {
		style Style
		want  Modifier
	}

	tests := map[string]tc{
		"bold":        {style: NewStyle().Bold(), want: ModBold},
		"dim":         {style: NewStyle().Dim(), want: ModDim},
		"italic":      {style: NewStyle().Italic(), want: ModItalic},
		"underlined":  {style: NewStyle().Underlined(), want: ModUnderlined},
		"blink":       {style: NewStyle().Blink(), want: ModSlowBlink},
		"reversed":    {style: NewStyle().Reversed(), want: ModReversed},
		"hidden":      {style: NewStyle().Hidden(), want: ModHidden},
		"crossed out": {style: NewStyle().CrossedOut(), want: ModCrossedOut},
		"chained":     {style: NewStyle().Bold().Italic(), want: ModBold | ModItalic},
		"removed":     {style: NewStyle().Bold().Italic().RemoveModifier(ModBold), want: ModItalic},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.style.Modifiers(); got != tt.want {
				t.Errorf("Modifiers() = %v, want %v", got, tt.want)
			}
			if !tt.style.Has(tt.want) {
				t.Errorf("Has(%v) = false, want true", tt.want)
			}
		})
	}
}

func TestModifier_String(t *testing.T) {
	type tc struct {
		mod  Modifier
		want string
	}

	tests := map[string]tc{
		"none":     {mod: ModNone, want: "None"},
		"single":   {mod: ModBold, want: "Bold"},
		"multiple": {mod: ModBold | ModItalic | ModCrossedOut, want: "Bold | Italic | CrossedOut"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tt.mod.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestStyle_IsZero(t *testing.T) {
	if !NewStyle().IsZero() {
		t.Error("NewStyle().IsZero() = false, want true")
	}
	if NewStyle().Dim().IsZero() {
		t.Error("NewStyle().Dim().IsZero() = true, want false")
	}
	if ResetStyle().IsZero() {
		t.Error("ResetStyle().IsZero() = true, want false")
	}
}
