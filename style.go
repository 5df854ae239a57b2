package tui

import "strings"

// Modifier is a bitfield of text attributes.
type Modifier uint16

const (
	// ModBold makes text bold/bright.
	ModBold Modifier = 1 << iota
	// ModDim makes text dimmed/faint.
	ModDim
	// ModItalic makes text italic.
	ModItalic
	// ModUnderlined underlines the text.
	ModUnderlined
	// ModSlowBlink makes text blink slowly.
	ModSlowBlink
	// ModRapidBlink makes text blink rapidly (rarely supported).
	ModRapidBlink
	// ModReversed swaps foreground and background colors.
	ModReversed
	// ModHidden hides the text.
	ModHidden
	// ModCrossedOut draws a line through the text.
	ModCrossedOut
)

// ModNone is the empty modifier set.
const ModNone Modifier = 0

// ModAll contains every modifier.
const ModAll = ModBold | ModDim | ModItalic | ModUnderlined | ModSlowBlink |
	ModRapidBlink | ModReversed | ModHidden | ModCrossedOut

var modifierNames = [...]string{
	"Bold", "Dim", "Italic", "Underlined", "SlowBlink",
	"RapidBlink", "Reversed", "Hidden", "CrossedOut",
}

// Contains reports whether every bit of other is set in m.
func (m Modifier) Contains(other Modifier) bool {
	return m&other == other
}

// String lists the set modifiers joined by " | ", or "None".
func (m Modifier) String() string {
	if m == ModNone {
		return "None"
	}
	var parts []string
	for i, name := range modifierNames {
		if m&(1<<i) != 0 {
			parts = append(parts, name)
		}
	}
	return strings.Join(parts, " | ")
}

// Style describes how a cell is drawn.
//
// Every field is optional. Unset colors (ColorNone) and unset modifier bits
// inherit from whatever the style is patched onto. Add holds modifiers the
// style turns on and Sub holds modifiers it turns off, so a style can
// remove bold from text it is layered over. The zero value changes nothing.
type Style struct {
	Fg             Color
	Bg             Color
	UnderlineColor Color
	Add            Modifier
	Sub            Modifier
}

// NewStyle returns an empty Style.
func NewStyle() Style {
	return Style{}
}

// ResetStyle returns a Style that resets colors to the terminal defaults
// and removes every modifier.
func ResetStyle() Style {
	return Style{
		Fg:             ResetColor(),
		Bg:             ResetColor(),
		UnderlineColor: ResetColor(),
		Sub:            ModAll,
	}
}

// Foreground returns a new Style with the given foreground color.
func (s Style) Foreground(c Color) Style {
	s.Fg = c
	return s
}

// Background returns a new Style with the given background color.
func (s Style) Background(c Color) Style {
	s.Bg = c
	return s
}

// Underline returns a new Style with the given underline color.
func (s Style) Underline(c Color) Style {
	s.UnderlineColor = c
	return s
}

// AddModifier returns a new Style with m turned on.
func (s Style) AddModifier(m Modifier) Style {
	s.Sub &^= m
	s.Add |= m
	return s
}

// RemoveModifier returns a new Style with m turned off.
func (s Style) RemoveModifier(m Modifier) Style {
	s.Add &^= m
	s.Sub |= m
	return s
}

// Bold returns a new Style with the bold modifier set.
func (s Style) Bold() Style { return s.AddModifier(ModBold) }

// Dim returns a new Style with the dim modifier set.
func (s Style) Dim() Style { return s.AddModifier(ModDim) }

// Italic returns a new Style with the italic modifier set.
func (s Style) Italic() Style { return s.AddModifier(ModItalic) }

// Underlined returns a new Style with the underline modifier set.
func (s Style) Underlined() Style { return s.AddModifier(ModUnderlined) }

// Blink returns a new Style with the slow blink modifier set.
func (s Style) Blink() Style { return s.AddModifier(ModSlowBlink) }

// Reversed returns a new Style with the reversed modifier set.
func (s Style) Reversed() Style { return s.AddModifier(ModReversed) }

// Hidden returns a new Style with the hidden modifier set.
func (s Style) Hidden() Style { return s.AddModifier(ModHidden) }

// CrossedOut returns a new Style with the crossed-out modifier set.
func (s Style) CrossedOut() Style { return s.AddModifier(ModCrossedOut) }

// Patch layers p over s. Colors set in p replace those in s; unset colors
// keep s's value. Modifiers p adds are turned on and modifiers p removes
// are turned off, overriding whatever s said about them.
//
// Patch is associative but not commutative.
func (s Style) Patch(p Style) Style {
	if p.Fg.IsSet() {
		s.Fg = p.Fg
	}
	if p.Bg.IsSet() {
		s.Bg = p.Bg
	}
	if p.UnderlineColor.IsSet() {
		s.UnderlineColor = p.UnderlineColor
	}
	s.Add = (s.Add &^ p.Sub) | p.Add
	s.Sub = (s.Sub &^ p.Add) | p.Sub
	return s
}

// Patch layers each style over the previous one, left to right.
func Patch(styles ...Style) Style {
	var out Style
	for _, s := range styles {
		out = out.Patch(s)
	}
	return out
}

// Modifiers returns the modifiers that end up turned on.
func (s Style) Modifiers() Modifier {
	return s.Add &^ s.Sub
}

// Has returns true if every modifier in m is turned on.
func (s Style) Has(m Modifier) bool {
	return s.Modifiers().Contains(m)
}

// Equal returns true if both styles are identical.
func (s Style) Equal(other Style) bool {
	return s == other
}

// IsZero returns true if the style changes nothing.
func (s Style) IsZero() bool {
	return s == Style{}
}
