package view

import (
	"math"

	"github.com/iburimskiy/cpowgraph/internal/config"
	"github.com/iburimskiy/cpowgraph/internal/plot"
)

// Box maps data coordinates into the cube [-1, 1]^3: x by the interval, y and
// z by the symmetric bound.
type Box struct {
	XLo, XHi float64
	Bound    float64
}

// BoxFor uses the curve's interval and bound, falling back to
// config.MinAxisBound when the bound is zero.
func BoxFor(c *plot.Curve) Box {
	b := c.Bound
	if b <= 0 {
		b = config.MinAxisBound
	}

	return Box{XLo: c.Interval.Lo, XHi: c.Interval.Hi, Bound: b}
}

func (b Box) Normalize(x, y, z float64) Vec3 {
	return Vec3{
		X: 2*(x-b.XLo)/(b.XHi-b.XLo) - 1,
		Y: y / b.Bound,
		Z: z / b.Bound,
	}
}

// Point is a projected curve point. OK is false when the data value was not
// finite; renderers leave a gap there.
type Point struct {
	X, Y float64
	OK   bool
}

// Viewport places projected unit-cube coordinates on an image with its
// origin at the top left.
type Viewport struct {
	CenterX, CenterY float64
	Scale            float64
}

func (v Viewport) ToScreen(sx, sy float64) (float64, float64) {
	return v.CenterX + sx*v.Scale, v.CenterY - sy*v.Scale
}

// ProjectCurve projects every sample of c.
func ProjectCurve(c *plot.Curve, cam Camera, vp Viewport) []Point {
	box := BoxFor(c)
	pts := make([]Point, c.Len())

	for i := range pts {
		x, y, z := c.Xs[i], c.Ys[i], c.Zs[i]
		if !finite(y) || !finite(z) {
			continue
		}

		sx, sy := cam.Project(box.Normalize(x, y, z))
		px, py := vp.ToScreen(sx, sy)
		pts[i] = Point{X: px, Y: py, OK: true}
	}

	return pts
}

// Segment is one axis edge of the cube in screen space.
type Segment struct {
	X0, Y0, X1, Y1 float64
}

// Axes returns the three axes through the origin of the cube and the screen
// positions of their positive ends, for labels.
func Axes(cam Camera, vp Viewport) (segs [3]Segment, labels [3][2]float64) {
	ends := [3]Vec3{{X: 1}, {Y: 1}, {Z: 1}}

	for i, e := range ends {
		neg := Vec3{X: -e.X, Y: -e.Y, Z: -e.Z}
		x0, y0 := vp.ToScreen(cam.Project(neg))
		x1, y1 := vp.ToScreen(cam.Project(e))
		segs[i] = Segment{X0: x0, Y0: y0, X1: x1, Y1: y1}

		lx, ly := vp.ToScreen(cam.Project(Vec3{X: e.X * 1.12, Y: e.Y * 1.12, Z: e.Z * 1.12}))
		labels[i] = [2]float64{lx, ly}
	}

	return segs, labels
}

// CubeEdges returns the twelve edges of the bounding cube.
func CubeEdges(cam Camera, vp Viewport) []Segment {
	segs := make([]Segment, 0, 12)

	for i := 0; i < 8; i++ {
		a := corner(i)
		for bit := 0; bit < 3; bit++ {
			j := i | 1<<bit
			if j == i {
				continue
			}
			x0, y0 := vp.ToScreen(cam.Project(a))
			x1, y1 := vp.ToScreen(cam.Project(corner(j)))
			segs = append(segs, Segment{X0: x0, Y0: y0, X1: x1, Y1: y1})
		}
	}

	return segs
}

func corner(i int) Vec3 {
	sign := func(bit int) float64 {
		if i&(1<<bit) != 0 {
			return 1
		}
		return -1
	}

	return Vec3{X: sign(0), Y: sign(1), Z: sign(2)}
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
