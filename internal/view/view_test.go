package view

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/iburimskiy/cpowgraph/internal/plot"
	"github.com/stretchr/testify/assert"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

func project(c Camera, p Vec3) [2]float64 {
	x, y := c.Project(p)
	return [2]float64{x, y}
}

func TestPlaneViews(t *testing.T) {
	p := Vec3{X: 0.3, Y: -0.5, Z: 0.7}

	// xy: x right, y up, z toward the viewer
	diff(t, [2]float64{0.3, -0.5}, project(PlaneXY.Camera(), p), approx)
	// xz: x right, z up
	diff(t, [2]float64{0.3, 0.7}, project(PlaneXZ.Camera(), p), approx)
	// yz: y right, z up
	diff(t, [2]float64{-0.5, 0.7}, project(PlaneYZ.Camera(), p), approx)
}

func TestParsePlane(t *testing.T) {
	for _, p := range []Plane{PlaneFree, PlaneXY, PlaneXZ, PlaneYZ} {
		got, ok := ParsePlane(p.String())
		assert.True(t, ok)
		assert.Equal(t, p, got)
	}

	_, ok := ParsePlane("zx")
	assert.False(t, ok)
	assert.Equal(t, DefaultCamera(), PlaneFree.Camera())
}

func TestOrbit(t *testing.T) {
	c := Camera{Elev: 80, Azim: 170}.Orbit(20, 20)
	assert.EqualValues(t, 90, c.Elev)
	diff(t, -170.0, c.Azim, approx)

	c = Camera{Elev: -80, Azim: -175}.Orbit(-30, -10)
	assert.EqualValues(t, -90, c.Elev)
	diff(t, 175.0, c.Azim, approx)

	diff(t, 180.0, wrapDegrees(-180), approx)
}

func TestBoxFor(t *testing.T) {
	c := &plot.Curve{Interval: plot.Interval{Lo: -5, Hi: 5}, Bound: 4}
	b := BoxFor(c)
	diff(t, Vec3{X: -1, Y: 0.5, Z: -1}, b.Normalize(-5, 2, -4), approx)
	diff(t, Vec3{X: 1, Y: 0, Z: 0}, b.Normalize(5, 0, 0), approx)

	c.Bound = 0
	assert.EqualValues(t, 1, BoxFor(c).Bound)
}

func TestProjectCurveGaps(t *testing.T) {
	c := &plot.Curve{
		Interval: plot.Interval{Lo: 0, Hi: 2},
		Xs:       []float64{2, 1, 0},
		Ys:       []float64{1, math.Inf(1), 0},
		Zs:       []float64{0, 0, math.NaN()},
		Bound:    1,
	}
	vp := Viewport{CenterX: 100, CenterY: 100, Scale: 50}

	pts := ProjectCurve(c, PlaneXZ.Camera(), vp)
	assert.Len(t, pts, 3)
	assert.True(t, pts[0].OK)
	assert.False(t, pts[1].OK)
	assert.False(t, pts[2].OK)
	diff(t, Point{X: 150, Y: 100, OK: true}, pts[0], approx)
}

func TestCubeEdges(t *testing.T) {
	segs := CubeEdges(DefaultCamera(), Viewport{Scale: 1})
	assert.Len(t, segs, 12)

	axes, labels := Axes(PlaneXZ.Camera(), Viewport{CenterX: 10, CenterY: 10, Scale: 10})
	diff(t, Segment{X0: 0, Y0: 10, X1: 20, Y1: 10}, axes[0], approx)
	diff(t, [2]float64{10, -1.2}, labels[2], approx)
}
