package geom

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a straight (non-premultiplied) RGBA color with channels in [0, 1]
type Color struct {
	R, G, B, A float64
}

var (
	White = Color{1, 1, 1, 1}
	Clear = Color{}
)

// WithAlpha returns c with its alpha replaced
func (c Color) WithAlpha(a float64) Color {
	c.A = a
	return c
}

// Lerp interpolates every channel linearly
func (c Color) Lerp(o Color, t float64) Color {
	return Color{
		R: Lerp(c.R, o.R, t),
		G: Lerp(c.G, o.G, t),
		B: Lerp(c.B, o.B, t),
		A: Lerp(c.A, o.A, t),
	}
}

// Colorful returns the RGB part as a go-colorful color
func (c Color) Colorful() colorful.Color {
	return colorful.Color{R: c.R, G: c.G, B: c.B}
}

// FromColorful builds a Color from a go-colorful color and an alpha
func FromColorful(cf colorful.Color, a float64) Color {
	cf = cf.Clamped()
	return Color{R: cf.R, G: cf.G, B: cf.B, A: a}
}

// RGBA converts to a premultiplied image/color value for drawing
func (c Color) RGBA() color.RGBA {
	a := Clamp01(c.A)
	return color.RGBA{
		R: uint8(Clamp01(c.R)*a*255 + 0.5),
		G: uint8(Clamp01(c.G)*a*255 + 0.5),
		B: uint8(Clamp01(c.B)*a*255 + 0.5),
		A: uint8(a*255 + 0.5),
	}
}

// Hex formats c as #rrggbbaa
func (c Color) Hex() string {
	return fmt.Sprintf("%s%02x", c.Colorful().Clamped().Hex(), uint8(Clamp01(c.A)*255+0.5))
}

// ParseColor accepts #rgb, #rrggbb and #rrggbbaa
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	alpha := 1.0
	if len(s) == 9 {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", s, err)
		}
		alpha = float64(a) / 255
		s = s[:7]
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return FromColorful(cf, alpha), nil
}
