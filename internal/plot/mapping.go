package plot

import "math/cmplx"

// Map evaluates (base + 0i)^x for every x on the principal branch and splits
// the result into real (ys) and imaginary (zs) parts.
//
// A zero base follows math/cmplx.Pow: 0^0 = 1, 0^x = 0 for x > 0 and
// +Inf for x < 0.
func Map(base float64, xs []float64) (ys, zs []float64) {
	ys = make([]float64, len(xs))
	zs = make([]float64, len(xs))

	b := complex(base, 0)
	for i, x := range xs {
		v := cmplx.Pow(b, complex(x, 0))
		ys[i] = real(v)
		zs[i] = imag(v)
	}

	return ys, zs
}
