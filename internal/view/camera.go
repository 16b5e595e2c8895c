// Package view projects curve points the way matplotlib's orthographic 3D
// axes do: a unit cube seen from an elevation and azimuth.
package view

import (
	"math"

	"github.com/iburimskiy/cpowgraph/internal/config"
)

type Plane int

const (
	PlaneFree Plane = iota
	PlaneXY
	PlaneXZ
	PlaneYZ
)

func (p Plane) String() string {
	switch p {
	case PlaneXY:
		return "xy"
	case PlaneXZ:
		return "xz"
	case PlaneYZ:
		return "yz"
	default:
		return "free"
	}
}

// ParsePlane accepts "xy", "xz", "yz" and "free".
func ParsePlane(s string) (Plane, bool) {
	for _, p := range []Plane{PlaneFree, PlaneXY, PlaneXZ, PlaneYZ} {
		if p.String() == s {
			return p, true
		}
	}

	return PlaneFree, false
}

// Camera returns the view angles for the plane. Free maps to the default view.
func (p Plane) Camera() Camera {
	switch p {
	case PlaneXY:
		return Camera{Elev: 90, Azim: -90}
	case PlaneXZ:
		return Camera{Elev: 0, Azim: -90}
	case PlaneYZ:
		return Camera{Elev: 0, Azim: 0}
	default:
		return DefaultCamera()
	}
}

type Vec3 struct {
	X, Y, Z float64
}

// Camera angles are in degrees.
type Camera struct {
	Elev float64
	Azim float64
}

func DefaultCamera() Camera {
	return Camera{Elev: config.DefaultElev, Azim: config.DefaultAzim}
}

// Project returns screen coordinates of p with +x right and +y up.
func (c Camera) Project(p Vec3) (sx, sy float64) {
	se, ce := math.Sincos(c.Elev * math.Pi / 180)
	sa, ca := math.Sincos(c.Azim * math.Pi / 180)

	sx = -sa*p.X + ca*p.Y
	sy = -se*ca*p.X - se*sa*p.Y + ce*p.Z

	return sx, sy
}

// Orbit turns the camera by the given degrees.
func (c Camera) Orbit(dElev, dAzim float64) Camera {
	c.Elev = clamp(c.Elev+dElev, -90, 90)
	c.Azim = wrapDegrees(c.Azim + dAzim)

	return c
}

// wrapDegrees maps a into (-180, 180].
func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}

	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
