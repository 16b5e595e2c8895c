package game

import (
	"github.com/iburimskiy/cpowgraph/internal/plot"
	"github.com/iburimskiy/cpowgraph/internal/view"
)

// State is everything the picture depends on. Widgets build the next state
// and hand it to recompute.
type State struct {
	Base     float64
	Interval plot.Interval
	Plane    view.Plane
	Camera   view.Camera
}

// recompute evaluates the curve for next and makes it current. On error the
// previous state and curve stay on screen and the error goes to the status
// line.
func (g *Game) recompute(next State) {
	c, err := g.eval.Evaluate(next.Base, next.Interval)
	if err != nil {
		g.lastErr = err

		return
	}

	g.state = next
	g.curve = c
	g.lastErr = nil
	g.player.Stop()
}

func (g *Game) setBase(base float64) {
	if base == g.state.Base {
		return
	}

	next := g.state
	next.Base = base
	g.recompute(next)
}

func (g *Game) setInterval(lo, hi float64) {
	iv, err := plot.NewInterval(lo, hi)
	if err != nil {
		g.lastErr = err

		return
	}
	if iv == g.state.Interval {
		return
	}

	next := g.state
	next.Interval = iv
	g.recompute(next)
}

// setPlane starts a camera transition toward the plane's view.
func (g *Game) setPlane(p view.Plane) {
	g.state.Plane = p
	g.cam.retarget(g.state.Camera, p.Camera())
}

// orbit turns the camera directly, leaving any named plane.
func (g *Game) orbit(dElev, dAzim float64) {
	g.state.Plane = view.PlaneFree
	g.state.Camera = g.state.Camera.Orbit(dElev, dAzim)
	g.cam.stop()
}
