// Package color implements sRGB color parsing, alpha compositing, and
// WCAG contrast math for token swatches.
package color

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Color is a normalized sRGB color. R, G, and B are on the 0-255 scale
// and A is on the 0-1 scale. rgb() input is deliberately not clamped,
// so channel values outside [0,255] pass through unchanged.
type Color struct {
	R float64
	G float64
	B float64
	A float64
}

// rgbPattern matches rgb(n,n,n) and rgba(n,n,n,a) with optional
// whitespace around each component.
var rgbPattern = regexp.MustCompile(`^rgba?\(\s*([+-]?[0-9.eE+-]+)\s*,\s*([+-]?[0-9.eE+-]+)\s*,\s*([+-]?[0-9.eE+-]+)\s*(?:,\s*([+-]?[0-9.eE+-]+)\s*)?\)$`)

// Parse reads a hex (#rgb or #rrggbb) or rgb()/rgba() color string.
// The second return value reports whether the input was parseable;
// unsupported syntax (keywords, hsl, etc.) yields false rather than a
// zeroed color.
func Parse(s string) (Color, bool) {
	s = strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s[1:])
	case strings.HasPrefix(s, "rgb"):
		return parseRGB(s)
	default:
		return Color{}, false
	}
}

// parseHex accepts exactly 3 or 6 hex digits. The shorthand form
// duplicates each digit. There is no alpha channel in hex form.
func parseHex(digits string) (Color, bool) {
	switch len(digits) {
	case 3:
		var expanded strings.Builder
		for _, r := range digits {
			expanded.WriteRune(r)
			expanded.WriteRune(r)
		}
		digits = expanded.String()
	case 6:
	default:
		return Color{}, false
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return Color{}, false
		}
		ch[i] = float64(v)
	}
	return Color{R: ch[0], G: ch[1], B: ch[2], A: 1}, true
}

// parseRGB accepts rgb(n,n,n) and rgba(n,n,n,a). A missing alpha group
// means fully opaque. Alpha is clamped to [0,1]; r/g/b are passed
// through without clamping.
func parseRGB(s string) (Color, bool) {
	m := rgbPattern.FindStringSubmatch(s)
	if m == nil {
		return Color{}, false
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(m[i+1], 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return Color{}, false
		}
		ch[i] = v
	}

	a := 1.0
	if m[4] != "" {
		v, err := strconv.ParseFloat(m[4], 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return Color{}, false
		}
		a = math.Min(1, math.Max(0, v))
	}

	return Color{R: ch[0], G: ch[1], B: ch[2], A: a}, true
}

// CompositeOver blends overlay on top of base using standard alpha
// compositing. A resulting alpha of zero collapses to fully
// transparent black.
func CompositeOver(base, overlay Color) Color {
	a := overlay.A + base.A*(1-overlay.A)
	if a <= 0 {
		return Color{}
	}
	blend := func(o, b float64) float64 {
		return (o*overlay.A + b*base.A*(1-overlay.A)) / a
	}
	return Color{
		R: blend(overlay.R, base.R),
		G: blend(overlay.G, base.G),
		B: blend(overlay.B, base.B),
		A: a,
	}
}

// RelativeLuminance converts each channel through the sRGB piecewise
// transfer function and returns the WCAG luminance weighting.
func RelativeLuminance(c Color) float64 {
	return 0.2126*linearize(c.R) + 0.7152*linearize(c.G) + 0.0722*linearize(c.B)
}

func linearize(channel float64) float64 {
	v := channel / 255
	if v <= 0.04045 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between two colors.
// The result is order-independent and always at least 1.
func ContrastRatio(fg, bg Color) float64 {
	lf := RelativeLuminance(fg)
	lb := RelativeLuminance(bg)
	hi := math.Max(lf, lb)
	lo := math.Min(lf, lb)
	return (hi + 0.05) / (lo + 0.05)
}
