// Package preview plots a curve's real and imaginary parts in the terminal.
package preview

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
	"github.com/iburimskiy/cpowgraph/internal/plot"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Width(14)
	graphStyle  = lipgloss.NewStyle().Padding(1, 0)
)

type Options struct {
	Width  int
	Height int
}

func DefaultOptions() Options {
	return Options{Width: 72, Height: 12}
}

// Render returns y(x) and z(x) as two ASCII charts, x increasing to the right.
// Non-finite values are drawn as 0 and counted in the summary.
func Render(c *plot.Curve, opts Options) string {
	ys, gapsY := ascending(c.Ys)
	zs, gapsZ := ascending(c.Zs)

	var s strings.Builder

	s.WriteString(headerStyle.Render(c.Title()) + "\n")
	s.WriteString(labelStyle.Render("x interval") + c.Interval.String() + "\n")
	s.WriteString(labelStyle.Render("samples") + fmt.Sprint(c.Len()) + "\n")
	s.WriteString(labelStyle.Render("axis bound") + fmt.Sprintf("%.4g", c.Bound) + "\n")
	if gapsY+gapsZ > 0 {
		s.WriteString(labelStyle.Render("gaps") + fmt.Sprint(gapsY+gapsZ) + "\n")
	}

	if len(ys) == 0 {
		return s.String()
	}

	for _, part := range []struct {
		caption string
		vs      []float64
	}{
		{"y = Re(base^x)", ys},
		{"z = Im(base^x)", zs},
	} {
		chart := asciigraph.Plot(part.vs,
			asciigraph.Width(opts.Width),
			asciigraph.Height(opts.Height),
			asciigraph.Caption(part.caption))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	return s.String()
}

// ascending reverses samples into increasing x and zeroes non-finite values.
func ascending(vs []float64) ([]float64, int) {
	out := make([]float64, len(vs))
	gaps := 0

	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			v = 0
			gaps++
		}
		out[len(vs)-1-i] = v
	}

	return out, gaps
}
