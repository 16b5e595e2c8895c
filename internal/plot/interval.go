// Package plot evaluates y + zi = base^x over an interval of x.
package plot

import (
	"fmt"
	"math"

	"github.com/sgostarter/i/commerr"
)

// Interval is the closed range [Lo, Hi] of x, Lo < Hi.
type Interval struct {
	Lo float64
	Hi float64
}

// NewInterval rejects inverted, zero-width and non-finite ranges.
func NewInterval(lo, hi float64) (Interval, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
		return Interval{}, fmt.Errorf("interval (%v, %v) is not finite: %w", lo, hi, commerr.ErrInvalidArgument)
	}

	if hi <= lo {
		return Interval{}, fmt.Errorf("interval (%v, %v) is empty or inverted: %w", lo, hi, commerr.ErrInvalidArgument)
	}

	return Interval{Lo: lo, Hi: hi}, nil
}

func (iv Interval) Width() float64 {
	return iv.Hi - iv.Lo
}

func (iv Interval) String() string {
	return fmt.Sprintf("[%.2f, %.2f]", iv.Lo, iv.Hi)
}
