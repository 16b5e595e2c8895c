package plot

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/sgostarter/i/commerr"
	"github.com/stretchr/testify/assert"
)

const epsilon = 1e-9

func TestNewInterval(t *testing.T) {
	_, err := NewInterval(1, 1)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = NewInterval(2, -2)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = NewInterval(math.Inf(-1), 0)
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	iv, err := NewInterval(-5, 5)
	assert.Nil(t, err)
	assert.EqualValues(t, 10, iv.Width())
	assert.Equal(t, "[-5.00, 5.00]", iv.String())
}

func TestSampleCount(t *testing.T) {
	assert.Equal(t, 1000, SampleCount(mustInterval(t, -5, 5)))
	assert.Equal(t, 4000, SampleCount(mustInterval(t, -20, 20)))
	assert.Equal(t, 50, SampleCount(mustInterval(t, 0, 0.5)))

	xs, err := Sample(mustInterval(t, -5, 5))
	assert.Nil(t, err)
	assert.Len(t, xs, 1000)

	xs, err = Sample(mustInterval(t, -20, 20))
	assert.Nil(t, err)
	assert.Len(t, xs, 4000)
}

func TestSampleBounds(t *testing.T) {
	for _, iv := range []Interval{{-5, 5}, {-20, 20}, {0.25, 3}, {-1, -0.5}, {7, 19.5}, {-1, 0.1}, {-3.3, 2.7}} {
		xs, err := Sample(iv)
		assert.Nil(t, err)

		assert.Equal(t, iv.Hi, xs[0], "first sample is hi")
		assert.Less(t, xs[0], iv.Hi+1)
		diff(t, iv.Lo, xs[len(xs)-1], cmpopts.EquateApprox(0, epsilon))

		for i, x := range xs {
			assert.GreaterOrEqual(t, x, iv.Lo-epsilon)
			assert.LessOrEqual(t, x, iv.Hi+epsilon)
			if i > 0 {
				assert.Less(t, x, xs[i-1], "samples descend from hi to lo")
			}
		}
	}
}

func TestSampleDenseNearHi(t *testing.T) {
	xs, err := Sample(mustInterval(t, -5, 5))
	assert.Nil(t, err)

	first := xs[0] - xs[1]
	last := xs[len(xs)-2] - xs[len(xs)-1]
	assert.Less(t, first, last)
}

func TestSampleDegenerate(t *testing.T) {
	_, err := Sample(Interval{Lo: 1, Hi: 1})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = Sample(Interval{Lo: 1, Hi: -1})
	assert.True(t, errors.Is(err, commerr.ErrInvalidArgument))

	_, err = Sample(mustInterval(t, 0, 0.005))
	assert.True(t, errors.Is(err, commerr.ErrOutOfRange))

	xs, err := Sample(mustInterval(t, 0, 0.015))
	assert.Nil(t, err)
	assert.Equal(t, []float64{0.015}, xs)
}

func TestMapRealBase(t *testing.T) {
	ys, zs := Map(2, []float64{0, 1, 2, 3})
	diff(t, []float64{1, 2, 4, 8}, ys, cmpopts.EquateApprox(0, epsilon))
	diff(t, []float64{0, 0, 0, 0}, zs, cmpopts.EquateApprox(0, epsilon))
}

func TestMapNegativeBase(t *testing.T) {
	ys, zs := Map(-1, []float64{0.5})
	diff(t, []float64{0}, ys, cmpopts.EquateApprox(0, epsilon))
	diff(t, []float64{1}, zs, cmpopts.EquateApprox(0, epsilon))

	// (-2)^1.5 = 2^1.5 * (cos 1.5pi + i sin 1.5pi) = -2.828i
	ys, zs = Map(-2, []float64{1.5})
	diff(t, 0.0, ys[0], cmpopts.EquateApprox(0, epsilon))
	diff(t, -2*math.Sqrt2, zs[0], cmpopts.EquateApprox(0, epsilon))
}

func TestMapZeroBase(t *testing.T) {
	ys, zs := Map(0, []float64{0, 2, -1})
	assert.EqualValues(t, 1, ys[0])
	assert.EqualValues(t, 0, ys[1])
	assert.True(t, math.IsInf(ys[2], 1))
	assert.EqualValues(t, 0, zs[0])
	assert.EqualValues(t, 0, zs[1])
}

func TestMapDeterministic(t *testing.T) {
	xs, err := Sample(mustInterval(t, -3, 4))
	assert.Nil(t, err)

	y1, z1 := Map(-2.35, xs)
	y2, z2 := Map(-2.35, xs)
	assert.Equal(t, y1, y2)
	assert.Equal(t, z1, z2)
	assert.Len(t, y1, len(xs))

	ys, zs := Map(3, nil)
	assert.Empty(t, ys)
	assert.Empty(t, zs)
}

func TestBound(t *testing.T) {
	assert.EqualValues(t, 5, Bound([]float64{3, -5, 1}, []float64{2, 2, 2}))
	assert.EqualValues(t, 7, Bound([]float64{1}, []float64{-7, 0}))
	assert.EqualValues(t, 0, Bound(nil, nil))
	assert.EqualValues(t, 0, Bound([]float64{}, []float64{}))
	assert.EqualValues(t, 3, Bound([]float64{math.Inf(1), -3}, []float64{math.NaN()}))
	assert.EqualValues(t, 0, Bound([]float64{math.NaN()}, nil))
}

func TestEvaluatorReusesSamples(t *testing.T) {
	e := NewEvaluator(nil)
	iv := mustInterval(t, -5, 5)

	c1, err := e.Evaluate(-2, iv)
	assert.Nil(t, err)
	assert.Equal(t, 1, e.cachedIntervals())
	assert.Equal(t, "y + zi = (-2.00)^x", c1.Title())

	c2, err := e.Evaluate(3, iv)
	assert.Nil(t, err)
	assert.Equal(t, 1, e.cachedIntervals())
	assert.Equal(t, c1.Xs, c2.Xs)
	assert.Equal(t, 1000, c2.Len())

	wantYs, wantZs := Map(3, c2.Xs)
	assert.Equal(t, wantYs, c2.Ys)
	assert.Equal(t, wantZs, c2.Zs)
	assert.Equal(t, Bound(wantYs, wantZs), c2.Bound)

	// callers own the returned slice
	c2.Xs[0] = 1000
	c3, err := e.Evaluate(3, iv)
	assert.Nil(t, err)
	assert.EqualValues(t, 5, c3.Xs[0])

	_, err = e.Evaluate(3, mustInterval(t, 0, 2))
	assert.Nil(t, err)
	assert.Equal(t, 1, e.cachedIntervals())
}

func TestEvaluatorKeepsOnlyLatestInterval(t *testing.T) {
	e := NewEvaluator(nil)

	// one evaluation per frame of a range slider drag
	var last Interval
	for i := 0; i < 3000; i++ {
		last = Interval{Lo: -5, Hi: 5 + float64(i)*0.003}
		_, err := e.Evaluate(-2, last)
		assert.Nil(t, err)
	}
	assert.Equal(t, 1, e.cachedIntervals())

	c, err := e.Evaluate(1.5, last)
	assert.Nil(t, err)
	assert.Equal(t, 1, e.cachedIntervals())
	assert.Equal(t, last.Hi, c.Xs[0])
}

func TestEvaluatorRejectsNarrowInterval(t *testing.T) {
	e := NewEvaluator(nil)

	_, err := e.Evaluate(2, mustInterval(t, 1, 1.001))
	assert.True(t, errors.Is(err, commerr.ErrOutOfRange))
	assert.Equal(t, 0, e.cachedIntervals())
}
