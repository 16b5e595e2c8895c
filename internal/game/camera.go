package game

import (
	"math"

	"github.com/charmbracelet/harmonica"
	"github.com/iburimskiy/cpowgraph/internal/config"
	"github.com/iburimskiy/cpowgraph/internal/view"
)

const settleEpsilon = 0.01

// cameraTween moves the camera toward a target view on a damped spring.
type cameraTween struct {
	spring harmonica.Spring

	target  view.Camera
	elevVel float64
	azimVel float64
	active  bool
}

func newCameraTween() cameraTween {
	return cameraTween{
		spring: harmonica.NewSpring(harmonica.FPS(60), config.SpringFrequency, config.SpringDamping),
	}
}

// retarget aims at to, taking the short way round in azimuth.
func (t *cameraTween) retarget(from, to view.Camera) {
	d := math.Mod(to.Azim-from.Azim, 360)
	if d > 180 {
		d -= 360
	} else if d < -180 {
		d += 360
	}

	t.target = view.Camera{Elev: to.Elev, Azim: from.Azim + d}
	t.active = true
}

func (t *cameraTween) stop() {
	t.active = false
	t.elevVel, t.azimVel = 0, 0
}

// step advances one frame and returns the new camera.
func (t *cameraTween) step(c view.Camera) view.Camera {
	if !t.active {
		return c
	}

	c.Elev, t.elevVel = t.spring.Update(c.Elev, t.elevVel, t.target.Elev)
	c.Azim, t.azimVel = t.spring.Update(c.Azim, t.azimVel, t.target.Azim)

	if math.Abs(c.Elev-t.target.Elev) < settleEpsilon && math.Abs(c.Azim-t.target.Azim) < settleEpsilon &&
		math.Abs(t.elevVel) < settleEpsilon && math.Abs(t.azimVel) < settleEpsilon {
		c = t.target.Orbit(0, 0)
		t.stop()
	}

	return c
}
