package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	trackColor   = color.RGBA{R: 50, G: 56, B: 72, A: 255}
	fillColor    = color.RGBA{R: 90, G: 130, B: 200, A: 255}
	handleColor  = color.RGBA{R: 235, G: 238, B: 245, A: 255}
	borderColor  = color.RGBA{R: 150, G: 170, B: 200, A: 255}
	normalColor  = color.RGBA{R: 100, G: 120, B: 160, A: 255}
	hoverColor   = color.RGBA{R: 80, G: 100, B: 140, A: 255}
	pressedColor = color.RGBA{R: 60, G: 80, B: 120, A: 255}
)

const handleRadius = 8

// pointer is the mouse state for one frame.
type pointer struct {
	X, Y     float64
	Down     bool
	JustDown bool
	JustUp   bool
}

type rect struct {
	X, Y, W, H float64
}

func (r rect) contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Slider picks one value from [Min, Max] in Step increments.
type Slider struct {
	Label string
	rect
	Min, Max, Step float64
	Value          float64

	dragging bool
}

func (s *Slider) valueAt(x float64) float64 {
	t := clamp01((x - s.X) / s.W)

	return snap(s.Min+t*(s.Max-s.Min), s.Min, s.Max, s.Step)
}

func (s *Slider) handleX() float64 {
	return s.X + s.W*(s.Value-s.Min)/(s.Max-s.Min)
}

func (s *Slider) hit(x, y float64) bool {
	grown := rect{X: s.X - handleRadius, Y: s.Y - handleRadius, W: s.W + 2*handleRadius, H: s.H + 2*handleRadius}

	return grown.contains(x, y)
}

// Update reports whether Value changed this frame.
func (s *Slider) Update(p pointer) bool {
	if p.JustDown && s.hit(p.X, p.Y) {
		s.dragging = true
	}
	if p.JustUp || !p.Down {
		defer func() { s.dragging = false }()
	}
	if !s.dragging {
		return false
	}

	v := s.valueAt(p.X)
	if v == s.Value {
		return false
	}
	s.Value = v

	return true
}

func (s *Slider) Dragging() bool {
	return s.dragging
}

func (s *Slider) Draw(screen *ebiten.Image) {
	cy := float32(s.Y + s.H/2)
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), trackColor, false)
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.handleX()-s.X), float32(s.H), fillColor, false)
	vector.DrawFilledCircle(screen, float32(s.handleX()), cy, handleRadius, handleColor, true)

	drawLabel(screen, s.Label, int(s.X)-len(s.Label)*7-16, int(s.Y)-2)
	drawLabel(screen, fmt.Sprintf("%.2f", s.Value), int(s.X+s.W)+16, int(s.Y)-2)
}

// RangeSlider picks an interval [Lo, Hi] inside [Min, Max] with the two ends
// at least MinGap apart.
type RangeSlider struct {
	Label string
	rect
	Min, Max float64
	MinGap   float64
	Lo, Hi   float64

	active int // 0 none, 1 low handle, 2 high handle
}

func (s *RangeSlider) xOf(v float64) float64 {
	return s.X + s.W*(v-s.Min)/(s.Max-s.Min)
}

func (s *RangeSlider) valueAt(x float64) float64 {
	return s.Min + clamp01((x-s.X)/s.W)*(s.Max-s.Min)
}

// Update reports whether Lo or Hi changed this frame.
func (s *RangeSlider) Update(p pointer) bool {
	if p.JustDown {
		grown := rect{X: s.X - handleRadius, Y: s.Y - handleRadius, W: s.W + 2*handleRadius, H: s.H + 2*handleRadius}
		if grown.contains(p.X, p.Y) {
			if math.Abs(p.X-s.xOf(s.Lo)) <= math.Abs(p.X-s.xOf(s.Hi)) {
				s.active = 1
			} else {
				s.active = 2
			}
		}
	}
	if p.JustUp || !p.Down {
		defer func() { s.active = 0 }()
	}
	if s.active == 0 {
		return false
	}

	return s.set(s.active, s.valueAt(p.X))
}

func (s *RangeSlider) set(handle int, v float64) bool {
	lo, hi := s.Lo, s.Hi

	switch handle {
	case 1:
		lo = math.Max(s.Min, math.Min(v, hi-s.MinGap))
	case 2:
		hi = math.Min(s.Max, math.Max(v, lo+s.MinGap))
	}

	if lo == s.Lo && hi == s.Hi {
		return false
	}
	s.Lo, s.Hi = lo, hi

	return true
}

func (s *RangeSlider) Dragging() bool {
	return s.active != 0
}

func (s *RangeSlider) Draw(screen *ebiten.Image) {
	cy := float32(s.Y + s.H/2)
	lx, hx := s.xOf(s.Lo), s.xOf(s.Hi)
	vector.DrawFilledRect(screen, float32(s.X), float32(s.Y), float32(s.W), float32(s.H), trackColor, false)
	vector.DrawFilledRect(screen, float32(lx), float32(s.Y), float32(hx-lx), float32(s.H), fillColor, false)
	vector.DrawFilledCircle(screen, float32(lx), cy, handleRadius, handleColor, true)
	vector.DrawFilledCircle(screen, float32(hx), cy, handleRadius, handleColor, true)

	drawLabel(screen, s.Label, int(s.X)-len(s.Label)*7-16, int(s.Y)-2)
	drawLabel(screen, fmt.Sprintf("(%.2f, %.2f)", s.Lo, s.Hi), int(s.X+s.W)+16, int(s.Y)-2)
}

// Button fires on release when the press started on it.
type Button struct {
	Label string
	rect

	hovered bool
	pressed bool
}

// Update reports whether the button was clicked this frame.
func (b *Button) Update(p pointer) bool {
	b.hovered = b.contains(p.X, p.Y)

	if b.hovered && p.JustDown {
		b.pressed = true
	}
	if p.JustUp {
		clicked := b.pressed && b.hovered
		b.pressed = false

		return clicked
	}

	return false
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bg color.Color
	if b.pressed {
		bg = pressedColor
	} else if b.hovered {
		bg = hoverColor
	} else {
		bg = normalColor
	}

	vector.DrawFilledRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), bg, false)
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 2, borderColor, false)

	textWidth := len(b.Label) * 7
	drawLabel(screen, b.Label, int(b.X)+(int(b.W)-textWidth)/2, int(b.Y)+(int(b.H)+8)/2)
}
