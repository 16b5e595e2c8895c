// Package game is the interactive window: the curve, its axes and the
// controls for base, x interval and camera.
package game

import (
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/cpowgraph/internal/config"
	"github.com/iburimskiy/cpowgraph/internal/plot"
	"github.com/iburimskiy/cpowgraph/internal/render"
	"github.com/iburimskiy/cpowgraph/internal/sonify"
	"github.com/iburimskiy/cpowgraph/internal/view"
	"github.com/ncruces/zenity"
	"github.com/sgostarter/i/l"
)

type action int

const (
	actionViewXY action = iota
	actionViewXZ
	actionViewYZ
	actionExport
	actionPlay
)

type Game struct {
	logger l.Wrapper
	eval   *plot.Evaluator
	player *sonify.Player

	state State
	curve *plot.Curve
	cam   cameraTween

	// widgets
	baseSlider  *Slider
	rangeSlider *RangeSlider
	buttons     []*Button
	actions     []action

	// camera drag
	orbiting     bool
	lastX, lastY float64

	// input edge detection
	prevKey map[ebiten.Key]bool

	title   string
	status  string
	lastErr error
}

// New builds the window state for the given initial settings and evaluates
// the first curve. It does not open the window; see Run.
func New(settings config.Settings, eval *plot.Evaluator, logger l.Wrapper) (*Game, error) {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}
	logger = logger.WithFields(l.StringField(l.ClsKey, "Game"))

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	iv, err := plot.NewInterval(settings.Lo, settings.Hi)
	if err != nil {
		return nil, err
	}

	if eval == nil {
		eval = plot.NewEvaluator(logger)
	}

	g := &Game{
		logger:  logger,
		eval:    eval,
		player:  sonify.NewPlayer(logger),
		cam:     newCameraTween(),
		prevKey: map[ebiten.Key]bool{},
	}

	g.baseSlider = &Slider{
		Label: "base",
		rect:  rect{X: config.SliderX, Y: config.BaseSliderY, W: config.SliderWidth, H: config.SliderHeight},
		Min:   config.BaseMin,
		Max:   config.BaseMax,
		Step:  config.BaseStep,
		Value: settings.Base,
	}
	g.rangeSlider = &RangeSlider{
		Label:  "x interval",
		rect:   rect{X: config.SliderX, Y: config.RangeSliderY, W: config.SliderWidth, H: config.SliderHeight},
		Min:    config.IntervalMin,
		Max:    config.IntervalMax,
		MinGap: config.MinIntervalWidth,
		Lo:     iv.Lo,
		Hi:     iv.Hi,
	}

	labels := map[action]string{
		actionViewXY: "xy plane view",
		actionViewXZ: "xz plane view",
		actionViewYZ: "yz plane view",
		actionExport: "export png",
		actionPlay:   "play curve",
	}
	for i, a := range []action{actionViewXY, actionViewXZ, actionViewYZ, actionExport, actionPlay} {
		g.buttons = append(g.buttons, &Button{
			Label: labels[a],
			rect: rect{
				X: config.ButtonX,
				Y: float64(config.ButtonY + i*(config.ButtonHeight+config.ButtonGap)),
				W: config.ButtonWidth,
				H: config.ButtonHeight,
			},
		})
		g.actions = append(g.actions, a)
	}

	g.recompute(State{
		Base:     settings.Base,
		Interval: iv,
		Plane:    view.PlaneFree,
		Camera:   view.DefaultCamera(),
	})
	if g.curve == nil {
		return nil, g.lastErr
	}

	return g, nil
}

// Run opens the window and blocks until it is closed.
func (g *Game) Run() error {
	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(g.curve.Title())
	g.title = g.curve.Title()

	g.logger.WithFields(l.StringField("title", g.title)).Info("window opened")

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}

	g.player.Stop()

	return nil
}

func (g *Game) Update() error {
	mouseX, mouseY := ebiten.CursorPosition()
	p := pointer{
		X:        float64(mouseX),
		Y:        float64(mouseY),
		Down:     ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		JustDown: inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		JustUp:   inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft),
	}
	g.handlePointer(p)

	if err := g.handleKeys(ebiten.IsKeyPressed); err != nil {
		return err
	}

	g.state.Camera = g.cam.step(g.state.Camera)

	if t := g.curve.Title(); t != g.title {
		ebiten.SetWindowTitle(t)
		g.title = t
	}

	return nil
}

// handleKeys runs the keyboard shortcuts that went down this frame.
func (g *Game) handleKeys(isPressed func(ebiten.Key) bool) error {
	justPressed := func(k ebiten.Key) bool {
		pressed := isPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	// read every key before acting so each one updates prevKey this frame
	xyKey := justPressed(ebiten.Key1)
	xzKey := justPressed(ebiten.Key2)
	yzKey := justPressed(ebiten.Key3)
	freeKey := justPressed(ebiten.Key0)
	playKey := justPressed(ebiten.KeyP)
	exportKey := justPressed(ebiten.KeyE)
	escKey := justPressed(ebiten.KeyEscape)
	quitKey := justPressed(ebiten.KeyQ)

	if xyKey {
		g.perform(actionViewXY)
	}
	if xzKey {
		g.perform(actionViewXZ)
	}
	if yzKey {
		g.perform(actionViewYZ)
	}
	if freeKey {
		g.setPlane(view.PlaneFree)
	}
	if playKey {
		g.perform(actionPlay)
	}
	if exportKey {
		g.perform(actionExport)
	}
	if escKey || quitKey {
		return ebiten.Termination
	}

	return nil
}

// handlePointer routes one frame of mouse input to the widgets, then to the
// camera when the press started on empty plot space.
func (g *Game) handlePointer(p pointer) {
	if g.baseSlider.Update(p) {
		g.setBase(g.baseSlider.Value)
	}
	if g.rangeSlider.Update(p) {
		g.setInterval(g.rangeSlider.Lo, g.rangeSlider.Hi)
	}

	overButton := false
	for i, b := range g.buttons {
		if b.Update(p) {
			g.perform(g.actions[i])
		}
		overButton = overButton || b.hovered
	}

	if p.JustDown && !overButton && !g.baseSlider.Dragging() && !g.rangeSlider.Dragging() && inPlotArea(p.X, p.Y) {
		g.orbiting = true
	} else if g.orbiting && p.Down {
		g.orbit((p.Y-g.lastY)*config.DragDegPerPixel, -(p.X-g.lastX)*config.DragDegPerPixel)
	}
	if p.JustUp || !p.Down {
		g.orbiting = false
	}
	g.lastX, g.lastY = p.X, p.Y
}

func inPlotArea(x, y float64) bool {
	return x > config.ButtonX+config.ButtonWidth+config.ButtonGap && y < config.BaseSliderY-2*config.SliderHeight
}

func (g *Game) perform(a action) {
	switch a {
	case actionViewXY:
		g.setPlane(view.PlaneXY)
	case actionViewXZ:
		g.setPlane(view.PlaneXZ)
	case actionViewYZ:
		g.setPlane(view.PlaneYZ)
	case actionPlay:
		if err := g.player.Play(g.curve); err != nil {
			g.lastErr = err
		}
	case actionExport:
		if err := g.exportDialog(); err != nil {
			g.lastErr = err
		}
	}
}

func (g *Game) exportDialog() error {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Export PNG"),
		zenity.Filename("graph.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	return g.export(filename)
}

func (g *Game) export(path string) error {
	if err := render.SavePNG(path, g.curve, g.state.Camera, render.DefaultSize); err != nil {
		g.logger.WithFields(l.ErrorField(err), l.StringField("path", path)).Error("export failed")

		return err
	}

	g.status = fmt.Sprintf("exported %s", path)
	g.logger.WithFields(l.StringField("path", path)).Info("exported")

	return nil
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
