package tui

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColorType distinguishes between color representations.
type ColorType uint8

const (
	// ColorNone means the color is unset and inherits from whatever is below it.
	ColorNone ColorType = iota
	// ColorReset explicitly selects the terminal's default color.
	ColorReset
	// ColorANSI represents an ANSI 256 palette color (0-255).
	ColorANSI
	// ColorRGB represents a true color (24-bit RGB).
	ColorRGB
)

// String returns the color type name.
func (t ColorType) String() string {
	switch t {
	case ColorNone:
		return "None"
	case ColorReset:
		return "Reset"
	case ColorANSI:
		return "ANSI"
	case ColorRGB:
		return "RGB"
	default:
		return fmt.Sprintf("ColorType(%d)", uint8(t))
	}
}

// Color represents a terminal color.
// The zero value is unset (ColorNone), which is distinct from ColorReset:
// patching a style with an unset color keeps the base color, while patching
// with a reset color replaces it with the terminal default.
type Color struct {
	typ ColorType
	// For ANSI: r holds the palette index (0-255)
	// For RGB: r, g, b hold the color components
	r, g, b uint8
}

// NoColor returns an unset Color.
func NoColor() Color {
	return Color{}
}

// ResetColor returns a Color that selects the terminal's default color.
func ResetColor() Color {
	return Color{typ: ColorReset}
}

// ANSIColor returns a Color from the ANSI 256 palette.
func ANSIColor(index uint8) Color {
	return Color{typ: ColorANSI, r: index}
}

// RGBColor returns a true color (24-bit RGB) Color.
func RGBColor(r, g, b uint8) Color {
	return Color{typ: ColorRGB, r: r, g: g, b: b}
}

// HexColor parses a hex color string and returns a Color.
// Supported formats: "#RRGGBB" and "#RGB"; the leading '#' is optional.
func HexColor(hex string) (Color, error) {
	hex = strings.TrimSpace(hex)
	if !strings.HasPrefix(hex, "#") {
		hex = "#" + hex
	}
	if len(hex) != 4 && len(hex) != 7 {
		return Color{}, fmt.Errorf("invalid hex color %q: expected #RGB or #RRGGBB", hex)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return RGBColor(r, g, b), nil
}

// MustHexColor is like HexColor but panics on malformed input.
// Intended for package-level color tables.
func MustHexColor(hex string) Color {
	c, err := HexColor(hex)
	if err != nil {
		panic("tui: " + err.Error())
	}
	return c
}

// Type returns the ColorType of this color.
func (c Color) Type() ColorType {
	return c.typ
}

// IsSet reports whether the color overrides anything when patched.
func (c Color) IsSet() bool {
	return c.typ != ColorNone
}

// IsReset returns true if this color selects the terminal default.
func (c Color) IsReset() bool {
	return c.typ == ColorReset
}

// ANSI returns the ANSI palette index.
// Panics if the color is not an ANSI color.
func (c Color) ANSI() uint8 {
	if c.typ != ColorANSI {
		panic("tui: Color.ANSI() called on non-ANSI color")
	}
	return c.r
}

// RGB returns the red, green, and blue components.
// Panics if the color is not an RGB color.
func (c Color) RGB() (r, g, b uint8) {
	if c.typ != ColorRGB {
		panic("tui: Color.RGB() called on non-RGB color")
	}
	return c.r, c.g, c.b
}

// Equal returns true if both colors are identical.
func (c Color) Equal(other Color) bool {
	return c == other
}

// String returns a readable form such as "RGB(#ff8800)" or "ANSI(4)".
func (c Color) String() string {
	switch c.typ {
	case ColorANSI:
		return fmt.Sprintf("ANSI(%d)", c.r)
	case ColorRGB:
		return fmt.Sprintf("RGB(#%02x%02x%02x)", c.r, c.g, c.b)
	default:
		return c.typ.String()
	}
}

// ToANSI approximates an RGB color to the nearest ANSI 256 palette entry.
// Uses the 6x6x6 color cube (indices 16-231) plus grayscale (232-255).
// Returns the color unchanged if it is not RGB.
func (c Color) ToANSI() Color {
	if c.typ != ColorRGB {
		return c
	}

	r, g, b := c.r, c.g, c.b

	if r == g && g == b {
		if r < 8 {
			return ANSIColor(16)
		}
		if r > 248 {
			return ANSIColor(231)
		}
		return ANSIColor(uint8(232 + (int(r)-8)*24/240))
	}

	ri := int(r) * 5 / 255
	gi := int(g) * 5 / 255
	bi := int(b) * 5 / 255
	return ANSIColor(uint8(16 + 36*ri + 6*gi + bi))
}

// Standard ANSI colors (basic 8 colors).
var (
	Black   = ANSIColor(0)
	Red     = ANSIColor(1)
	Green   = ANSIColor(2)
	Yellow  = ANSIColor(3)
	Blue    = ANSIColor(4)
	Magenta = ANSIColor(5)
	Cyan    = ANSIColor(6)
	White   = ANSIColor(7)
)

// Bright ANSI colors (high-intensity variants).
var (
	BrightBlack   = ANSIColor(8)
	BrightRed     = ANSIColor(9)
	BrightGreen   = ANSIColor(10)
	BrightYellow  = ANSIColor(11)
	BrightBlue    = ANSIColor(12)
	BrightMagenta = ANSIColor(13)
	BrightCyan    = ANSIColor(14)
	BrightWhite   = ANSIColor(15)
)

// ansi16RGB maps ANSI colors 0-15 to typical terminal RGB values.
var ansi16RGB = [16][3]uint8{
	{0, 0, 0},
	{205, 49, 49},
	{13, 188, 121},
	{229, 229, 16},
	{36, 114, 200},
	{188, 63, 188},
	{17, 168, 205},
	{229, 229, 229},
	{102, 102, 102},
	{241, 76, 76},
	{35, 209, 139},
	{245, 245, 67},
	{59, 142, 234},
	{214, 112, 214},
	{41, 184, 219},
	{255, 255, 255},
}

// ToRGBValues returns the red, green, and blue components of any color.
// ANSI colors are approximated; unset and reset colors return black.
func (c Color) ToRGBValues() (r, g, b uint8) {
	switch c.typ {
	case ColorRGB:
		return c.r, c.g, c.b
	case ColorANSI:
		idx := c.r
		switch {
		case idx < 16:
			rgb := ansi16RGB[idx]
			return rgb[0], rgb[1], rgb[2]
		case idx < 232:
			idx -= 16
			return cubeLevel(idx / 36), cubeLevel((idx % 36) / 6), cubeLevel(idx % 6)
		default:
			gray := 8 + (idx-232)*10
			return gray, gray, gray
		}
	}
	return 0, 0, 0
}

// cubeLevel converts a 0-5 color cube coordinate to its RGB channel value.
func cubeLevel(v uint8) uint8 {
	if v == 0 {
		return 0
	}
	return 55 + v*40
}

// colorful converts the color to a go-colorful value.
func (c Color) colorful() colorful.Color {
	r, g, b := c.ToRGBValues()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Luminance returns the relative luminance of the color (0.0-1.0)
// using the W3C formula.
func (c Color) Luminance() float64 {
	if c.typ == ColorNone || c.typ == ColorReset {
		return 0.0
	}
	r, g, b := c.ToRGBValues()

	linearize := func(v uint8) float64 {
		f := float64(v) / 255.0
		if f <= 0.03928 {
			return f / 12.92
		}
		return math.Pow((f+0.055)/1.055, 2.4)
	}

	return 0.2126*linearize(r) + 0.7152*linearize(g) + 0.0722*linearize(b)
}

// IsLight returns true if the color is perceptually light.
func (c Color) IsLight() bool {
	if c.typ == ColorNone || c.typ == ColorReset {
		return false
	}
	return c.Luminance() > 0.2
}

// Blend mixes c toward other by t (0 = c, 1 = other) in CIE L*a*b* space,
// which keeps intermediate shades perceptually even. The result is RGB.
// Unset or reset operands are returned as-is since they have no color.
func (c Color) Blend(other Color, t float64) Color {
	if c.typ == ColorNone || c.typ == ColorReset {
		return c
	}
	if other.typ == ColorNone || other.typ == ColorReset {
		return c
	}
	t = clamp01(t)
	r, g, b := c.colorful().BlendLab(other.colorful(), t).Clamped().RGB255()
	return RGBColor(r, g, b)
}

func clamp01(t float64) float64 {
	if math.IsNaN(t) || t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
