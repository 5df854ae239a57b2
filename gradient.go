package tui

// GradientDirection selects the axis a gradient runs along.
type GradientDirection uint8

const (
	GradientHorizontal   GradientDirection = iota // Left to right
	GradientVertical                              // Top to bottom
	GradientDiagonalDown                          // Top-left to bottom-right
	GradientDiagonalUp                            // Bottom-left to top-right
)

// Gradient interpolates between two colors in RGB space.
type Gradient struct {
	Start     Color
	End       Color
	Direction GradientDirection
}

// NewGradient creates a horizontal gradient from start to end.
func NewGradient(start, end Color) Gradient {
	return Gradient{Start: start, End: end, Direction: GradientHorizontal}
}

// WithDirection returns a copy of g running along d.
func (g Gradient) WithDirection(d GradientDirection) Gradient {
	g.Direction = d
	return g
}

// At returns the color at position t, clamped to [0, 1].
func (g Gradient) At(t float64) Color {
	t = clamp01(t)
	r, gr, b := g.Start.colorful().BlendRgb(g.End.colorful(), t).Clamped().RGB255()
	return RGBColor(r, gr, b)
}

// Steps returns n evenly spaced colors from Start to End inclusive.
func (g Gradient) Steps(n int) []Color {
	if n <= 0 {
		return nil
	}
	out := make([]Color, n)
	if n == 1 {
		out[0] = g.At(0)
		return out
	}
	for i := range out {
		out[i] = g.At(float64(i) / float64(n-1))
	}
	return out
}

// position maps (x, y) inside area to a gradient position in [0, 1].
func (g Gradient) position(area Rect, x, y int) float64 {
	w := float64(max(1, area.Width-1))
	h := float64(max(1, area.Height-1))
	tx := float64(x-area.X) / w
	ty := float64(y-area.Y) / h

	switch g.Direction {
	case GradientVertical:
		return ty
	case GradientDiagonalDown:
		return (tx + ty) / 2
	case GradientDiagonalUp:
		return (tx + 1 - ty) / 2
	default:
		return tx
	}
}

// FillGradient paints g as the background of every cell in area, keeping
// glyphs and other style fields. The area is clipped to the buffer.
func (b *Buffer) FillGradient(area Rect, g Gradient) {
	area = area.Intersect(b.Area)
	for y := area.Y; y < area.Bottom(); y++ {
		for x := area.X; x < area.Right(); x++ {
			i := b.Index(x, y)
			b.Content[i].Style.Bg = g.At(g.position(area, x, y))
		}
	}
}
