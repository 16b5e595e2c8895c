package plot

import "math"

// Bound returns the largest absolute value across ys and zs, used as the
// symmetric half-range of both secondary axes. NaN and infinite values are
// skipped. With nothing finite to bound it returns 0.
func Bound(ys, zs []float64) float64 {
	var r float64

	for _, vs := range [][]float64{ys, zs} {
		for _, v := range vs {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				continue
			}
			if a := math.Abs(v); a > r {
				r = a
			}
		}
	}

	return r
}
