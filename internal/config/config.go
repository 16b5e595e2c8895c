package config

import (
	"fmt"
	"math"
	"time"

	"github.com/sgostarter/i/commerr"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768

	// Plot area, the square the unit cube is projected into
	PlotCenterX = 560
	PlotCenterY = 360
	PlotScale   = 210

	// Sampling
	SampleDensity    = 100 // samples per unit of interval width
	MinIntervalWidth = 0.05
	MinAxisBound     = 1.0
	SampleCacheTTL   = time.Minute

	// Initial state
	DefaultBase = -2.0
	DefaultLo   = -5.0
	DefaultHi   = 5.0

	// Base slider
	BaseMin  = -5.0
	BaseMax  = 5.0
	BaseStep = 0.05

	// Interval range slider
	IntervalMin = -20.0
	IntervalMax = 20.0

	// Slider dimensions
	SliderX      = 300
	SliderWidth  = 512
	SliderHeight = 12
	BaseSliderY  = WindowHeight - 70
	RangeSliderY = WindowHeight - 40

	// Button dimensions
	ButtonWidth  = 180
	ButtonHeight = 36
	ButtonX      = 20
	ButtonY      = 60
	ButtonGap    = 12

	// Camera
	DefaultElev     = 30.0
	DefaultAzim     = -60.0
	DragDegPerPixel = 0.4
	SpringFrequency = 6.0
	SpringDamping   = 1.0

	// Audio
	SampleRate    = 44100
	PlayDuration  = 3 // seconds the whole curve takes to play
	PlaybackGain  = 0.8
	ColorSpanDegs = 300.0
)

// Settings holds the initial state the visualizer opens with.
type Settings struct {
	Base float64
	Lo   float64
	Hi   float64
}

// DefaultSettings returns the compiled-in initial state.
func DefaultSettings() Settings {
	return Settings{
		Base: DefaultBase,
		Lo:   DefaultLo,
		Hi:   DefaultHi,
	}
}

// Validate checks that the settings fit the interactive controls.
func (s Settings) Validate() error {
	for _, v := range []float64{s.Base, s.Lo, s.Hi} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("settings contain non-finite value %v: %w", v, commerr.ErrInvalidArgument)
		}
	}

	if s.Base < BaseMin || s.Base > BaseMax {
		return fmt.Errorf("base %.2f outside [%.0f, %.0f]: %w", s.Base, BaseMin, BaseMax, commerr.ErrOutOfRange)
	}

	if s.Lo < IntervalMin || s.Hi > IntervalMax {
		return fmt.Errorf("interval (%.2f, %.2f) outside [%.0f, %.0f]: %w", s.Lo, s.Hi, IntervalMin, IntervalMax, commerr.ErrOutOfRange)
	}

	if s.Hi-s.Lo < MinIntervalWidth {
		return fmt.Errorf("interval (%.2f, %.2f) narrower than %.2f: %w", s.Lo, s.Hi, MinIntervalWidth, commerr.ErrInvalidArgument)
	}

	return nil
}
