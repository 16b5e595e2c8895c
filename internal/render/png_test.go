package render

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/iburimskiy/cpowgraph/internal/plot"
	"github.com/iburimskiy/cpowgraph/internal/view"
	"github.com/stretchr/testify/assert"
)

func testCurve(t *testing.T) *plot.Curve {
	t.Helper()
	c, err := plot.NewEvaluator(nil).Evaluate(-2, plot.Interval{Lo: -5, Hi: 5})
	if err != nil {
		t.Fatal(err)
	}
	return c
}

func TestImageDrawsCurve(t *testing.T) {
	img, err := Image(testCurve(t), view.DefaultCamera(), 256)
	assert.Nil(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())

	// something other than the background was painted
	painted := 0
	for y := 0; y < 256; y++ {
		for x := 0; x < 256; x++ {
			if img.RGBAAt(x, y) != view.Background {
				painted++
			}
		}
	}
	assert.Greater(t, painted, 500)
}

func TestImageRejectsTinySize(t *testing.T) {
	_, err := Image(testCurve(t), view.DefaultCamera(), 16)
	assert.NotNil(t, err)
}

func TestSavePNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "graph.png")
	assert.Nil(t, SavePNG(path, testCurve(t), view.PlaneXZ.Camera(), MinSize))

	f, err := os.Open(path)
	assert.Nil(t, err)
	defer f.Close()

	cfg, err := png.DecodeConfig(f)
	assert.Nil(t, err)
	assert.Equal(t, MinSize, cfg.Width)
	assert.Equal(t, MinSize, cfg.Height)
}
