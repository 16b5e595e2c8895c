package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/cpowgraph/internal/config"
	"github.com/iburimskiy/cpowgraph/internal/view"
	"golang.org/x/image/font/basicfont"
)

var (
	markerColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	viewport    = view.Viewport{CenterX: config.PlotCenterX, CenterY: config.PlotCenterY, Scale: config.PlotScale}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(view.Background)

	g.drawFrame(screen)
	g.drawCurve(screen)
	g.drawPlayback(screen)

	g.baseSlider.Draw(screen)
	g.rangeSlider.Draw(screen)
	for _, b := range g.buttons {
		b.Draw(screen)
	}

	title := g.curve.Title()
	drawLabel(screen, title, config.PlotCenterX-len(title)*7/2, 46)

	ebitenutil.DebugPrintAt(screen, g.statusLine(), 12, 12)
}

// drawFrame draws the bounding cube, the axes through the origin and their
// labels with the current limits.
func (g *Game) drawFrame(screen *ebiten.Image) {
	cam := g.state.Camera

	for _, s := range view.CubeEdges(cam, viewport) {
		strokeSegment(screen, s, 1, view.EdgeColor)
	}

	axes, labels := view.Axes(cam, viewport)
	for _, s := range axes {
		strokeSegment(screen, s, 1, view.AxisColor)
	}

	box := view.BoxFor(g.curve)
	names := [3]string{
		fmt.Sprintf("x [%.2f, %.2f]", box.XLo, box.XHi),
		fmt.Sprintf("y ±%.3g", box.Bound),
		fmt.Sprintf("z ±%.3g", box.Bound),
	}
	for i, name := range names {
		drawLabel(screen, name, int(labels[i][0])-3, int(labels[i][1])+4)
	}
}

func (g *Game) drawCurve(screen *ebiten.Image) {
	pts := view.ProjectCurve(g.curve, g.state.Camera, viewport)

	for i := 1; i < len(pts); i++ {
		if !pts[i-1].OK || !pts[i].OK {
			continue
		}
		clr := view.CurveColor(len(pts)-1-i, len(pts))
		vector.StrokeLine(screen, float32(pts[i-1].X), float32(pts[i-1].Y), float32(pts[i].X), float32(pts[i].Y), 2, clr, true)
	}
}

// drawPlayback marks the point of the curve currently being played.
func (g *Game) drawPlayback(screen *ebiten.Image) {
	f, playing := g.player.Progress()
	if !playing {
		return
	}

	pts := view.ProjectCurve(g.curve, g.state.Camera, viewport)
	if len(pts) == 0 {
		return
	}

	// playback runs from low x, the end of the sample slice
	idx := len(pts) - 1 - int(f*float64(len(pts)-1))
	if !pts[idx].OK {
		return
	}

	vector.DrawFilledCircle(screen, float32(pts[idx].X), float32(pts[idx].Y), 6, markerColor, true)
	vector.StrokeCircle(screen, float32(pts[idx].X), float32(pts[idx].Y), 6, 2, view.EdgeColor, true)
}

func (g *Game) statusLine() string {
	status := fmt.Sprintf("base %.2f | x in %s | %d samples | view %s | drag to rotate, 1/2/3 planes, P play, E export, Esc quit",
		g.state.Base, g.state.Interval, g.curve.Len(), g.state.Plane)

	if f, playing := g.player.Progress(); playing {
		total := g.player.Duration()
		status += fmt.Sprintf(" | playing %s / %s", formatDuration(time.Duration(f*float64(total))), formatDuration(total))
	}
	if g.status != "" {
		status += " | " + g.status
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}

	return status
}

func strokeSegment(screen *ebiten.Image, s view.Segment, width float32, clr color.Color) {
	vector.StrokeLine(screen, float32(s.X0), float32(s.Y0), float32(s.X1), float32(s.Y1), width, clr, true)
}

func drawLabel(screen *ebiten.Image, s string, x, y int) {
	text.Draw(screen, s, basicfont.Face7x13, x, y, view.TextColor)
}
