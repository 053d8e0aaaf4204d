package nanogui

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color represents an RGBA color with red, green, blue, and alpha
// components. Each component is a float32 nominally in the range [0, 1];
// the type never clamps, so callers may construct out-of-range values
// (e.g. for HDR fills) at their own risk.
//
// The zero value is fully transparent black.
//
// The memory layout is guaranteed: four contiguous float32 values in
// RGBA order with no padding. See (*Color).Bytes.
type Color struct {
	R, G, B, A float32
}

// RGBA creates a color from float components in [0, 1].
func RGBA(r, g, b, a float32) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA8 creates a color from integer components in [0, 255].
func RGBA8(r, g, b, a int) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// RGB creates an opaque color from float components in [0, 1].
func RGB(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// RGB8 creates an opaque color from integer components in [0, 255].
func RGB8(r, g, b int) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: 1,
	}
}

// Gray creates a color with all three color channels set to intensity.
func Gray(intensity, alpha float32) Color {
	return Color{R: intensity, G: intensity, B: intensity, A: alpha}
}

// Gray8 creates a color with all three color channels set to
// intensity/255 and alpha set to alpha/255.
func Gray8(intensity, alpha int) Color {
	v := float32(intensity) / 255
	return Color{R: v, G: v, B: v, A: float32(alpha) / 255}
}

// FromVec4 creates a color from a 4-element vector in RGBA order.
// Together with (Color).Vec4 it lets Color interoperate with generic
// vector math without the color type depending on a vector library.
func FromVec4(v [4]float32) Color {
	return Color{R: v[0], G: v[1], B: v[2], A: v[3]}
}

// Vec4 returns the color as a 4-element vector in RGBA order.
func (c Color) Vec4() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	r, g, b, a := c.RGBA()
	return Color{
		R: float32(r) / 65535,
		G: float32(g) / 65535,
		B: float32(b) / 65535,
		A: float32(a) / 65535,
	}
}

// RGBA returns the alpha-premultiplied 16-bit channels, implementing
// the color.Color interface. Out-of-range channels are clamped here
// (and only here) because the interface contract requires it.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(clamp01(c.R*c.A)*65535 + 0.5)
	g = uint32(clamp01(c.G*c.A)*65535 + 0.5)
	b = uint32(clamp01(c.B*c.A)*65535 + 0.5)
	a = uint32(clamp01(c.A)*65535 + 0.5)
	return
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or
// without a leading '#'. Malformed input yields opaque black and a
// warning on the package logger.
func Hex(hex string) Color {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b, a uint32
	a = 255

	ok := true
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) &&
			parseHex(s[2:3], &b) && parseHex(s[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	case 8: // RRGGBBAA
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) &&
			parseHex(s[4:6], &b) && parseHex(s[6:8], &a)
	default:
		ok = false
	}
	if !ok {
		Logger().Warn("nanogui: malformed hex color", "input", hex)
		return Color{R: 0, G: 0, B: 0, A: 1}
	}

	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// parseHex is a helper for hex parsing.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Named looks up an SVG 1.1 color name (e.g. "steelblue").
// The second return value reports whether the name was found.
func Named(name string) (Color, bool) {
	c, ok := colornames.Map[name]
	if !ok {
		return Color{}, false
	}
	return FromColor(c), true
}

// Luminance weights. The blue weight deviates from the standard
// ITU-R 0.114; widget code has depended on the resulting thresholds
// since the first release, so it stays.
const (
	lumR = 0.299
	lumG = 0.587
	lumB = 0.144
)

// Luminance returns the perceptual luminance of the color,
// a weighted sum of the color channels. Alpha is ignored.
func (c Color) Luminance() float32 {
	return lumR*c.R + lumG*c.G + lumB*c.B
}

// Contrasting returns opaque white for dark colors (luminance below
// 0.5) and opaque black otherwise, regardless of the source alpha.
// It is a cheap way to pick a readable label color against an
// arbitrary background fill.
func (c Color) Contrasting() Color {
	if c.Luminance() < 0.5 {
		return Color{R: 1, G: 1, B: 1, A: 1}
	}
	return Color{R: 0, G: 0, B: 0, A: 1}
}

// Add returns the component-wise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{
		R: c.R + other.R,
		G: c.G + other.G,
		B: c.B + other.B,
		A: c.A + other.A,
	}
}

// Scale returns the color with every component multiplied by s.
func (c Color) Scale(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

// Mul returns the component-wise product of two colors.
func (c Color) Mul(other Color) Color {
	return Color{
		R: c.R * other.R,
		G: c.G * other.G,
		B: c.B * other.B,
		A: c.A * other.A,
	}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Premultiply returns a premultiplied color.
func (c Color) Premultiply() Color {
	return Color{
		R: c.R * c.A,
		G: c.G * c.A,
		B: c.B * c.A,
		A: c.A,
	}
}

// Unpremultiply returns an unpremultiplied color.
func (c Color) Unpremultiply() Color {
	if c.A == 0 {
		return Color{}
	}
	return Color{
		R: c.R / c.A,
		G: c.G / c.A,
		B: c.B / c.A,
		A: c.A,
	}
}

// clamp01 restricts a value to the [0, 1] range.
func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// Common colors.
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Red         = RGB(1, 0, 0)
	Green       = RGB(0, 1, 0)
	Blue        = RGB(0, 0, 1)
	Yellow      = RGB(1, 1, 0)
	Cyan        = RGB(0, 1, 1)
	Magenta     = RGB(1, 0, 1)
	Transparent = RGBA(0, 0, 0, 0)
)
