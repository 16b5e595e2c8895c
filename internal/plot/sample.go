package plot

import (
	"fmt"

	"github.com/iburimskiy/cpowgraph/internal/config"
	"github.com/sgostarter/i/commerr"
	"gonum.org/v1/gonum/floats"
)

// SampleCount is floor(density * width); it is zero or negative for intervals
// narrower than one sample.
func SampleCount(iv Interval) int {
	return int(config.SampleDensity * iv.Width())
}

// Sample returns x values covering iv, log-spaced so they are dense near Hi
// and sparse near Lo. The first value is exactly Hi, the last is Lo up to
// rounding.
func Sample(iv Interval) ([]float64, error) {
	if !(iv.Hi > iv.Lo) {
		return nil, fmt.Errorf("sample %v: %w", iv, commerr.ErrInvalidArgument)
	}

	n := SampleCount(iv)
	if n < 1 {
		return nil, fmt.Errorf("sample %v: narrower than one sample: %w", iv, commerr.ErrOutOfRange)
	}

	xs := make([]float64, n)
	if n == 1 {
		xs[0] = iv.Hi

		return xs, nil
	}

	// p in [1, width+1], then x = hi + 1 - p
	floats.LogSpan(xs, 1, iv.Width()+1)
	floats.Scale(-1, xs)
	floats.AddConst(iv.Hi+1, xs)
	xs[0] = iv.Hi

	return xs, nil
}
