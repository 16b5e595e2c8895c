package view

import (
	"image/color"
	"math"

	"github.com/iburimskiy/cpowgraph/internal/config"
)

var (
	Background = color.RGBA{R: 16, G: 18, B: 26, A: 255}
	AxisColor  = color.RGBA{R: 150, G: 160, B: 180, A: 255}
	EdgeColor  = color.RGBA{R: 60, G: 66, B: 84, A: 255}
	TextColor  = color.RGBA{R: 230, G: 232, B: 240, A: 255}
)

// CurveColor colours sample i of n along a hue sweep, so the direction of
// increasing x stays readable from any angle.
func CurveColor(i, n int) color.RGBA {
	t := 0.0
	if n > 1 {
		t = float64(i) / float64(n-1)
	}

	r, g, b := hsvToRgb(t*config.ColorSpanDegs, 0.75, 0.95)

	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// hsvToRgb converts HSV to RGB (hue: 0-360, saturation: 0-1, value: 0-1)
func hsvToRgb(h, s, v float64) (uint8, uint8, uint8) {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return uint8(math.Round((r + m) * 255)), uint8(math.Round((g + m) * 255)), uint8(math.Round((b + m) * 255))
}
