// Package render draws a curve into an image without opening a window.
package render

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/iburimskiy/cpowgraph/internal/plot"
	"github.com/iburimskiy/cpowgraph/internal/view"
	"github.com/llgcode/draw2d/draw2dimg"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

const (
	MinSize     = 128
	DefaultSize = 800
)

// Image renders c seen through cam onto a size x size image.
func Image(c *plot.Curve, cam view.Camera, size int) (*image.RGBA, error) {
	if size < MinSize {
		return nil, fmt.Errorf("image size %d below %d", size, MinSize)
	}

	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(view.Background), image.Point{}, draw.Src)

	vp := view.Viewport{
		CenterX: float64(size) / 2,
		CenterY: float64(size)/2 + 10,
		Scale:   float64(size) * 0.28,
	}

	gc := draw2dimg.NewGraphicContext(img)

	gc.SetLineWidth(1)
	gc.SetStrokeColor(view.EdgeColor)
	for _, s := range view.CubeEdges(cam, vp) {
		strokeSegment(gc, s)
	}

	axes, labels := view.Axes(cam, vp)
	gc.SetStrokeColor(view.AxisColor)
	for _, s := range axes {
		strokeSegment(gc, s)
	}

	gc.SetLineWidth(2)
	pts := view.ProjectCurve(c, cam, vp)
	for i := 1; i < len(pts); i++ {
		if !pts[i-1].OK || !pts[i].OK {
			continue
		}
		gc.SetStrokeColor(view.CurveColor(len(pts)-1-i, len(pts)))
		gc.BeginPath()
		gc.MoveTo(pts[i-1].X, pts[i-1].Y)
		gc.LineTo(pts[i].X, pts[i].Y)
		gc.Stroke()
	}

	for i, name := range []string{"x", "y", "z"} {
		drawText(img, name, int(labels[i][0])-3, int(labels[i][1])+4)
	}
	drawText(img, c.Title(), 12, 20)
	drawText(img, fmt.Sprintf("x in %s   |y|,|z| <= %.3g", c.Interval, c.Bound), 12, 38)

	return img, nil
}

// SavePNG renders c and writes it to path.
func SavePNG(path string, c *plot.Curve, cam view.Camera, size int) error {
	img, err := Image(c, cam, size)
	if err != nil {
		return err
	}

	if err = draw2dimg.SaveToPngFile(path, img); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	return nil
}

func strokeSegment(gc *draw2dimg.GraphicContext, s view.Segment) {
	gc.BeginPath()
	gc.MoveTo(s.X0, s.Y0)
	gc.LineTo(s.X1, s.Y1)
	gc.Stroke()
}

func drawText(img draw.Image, s string, x, y int) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(view.TextColor),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
