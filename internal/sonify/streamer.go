// Package sonify plays a curve as sound: the real part drives the pitch of the
// left channel and the imaginary part the pitch of the right channel.
package sonify

import (
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/iburimskiy/cpowgraph/internal/config"
	"github.com/iburimskiy/cpowgraph/internal/plot"
)

// Hz at value 0, one octave up at +bound and one down at -bound
const baseFrequency = 220.0

// curveStreamer walks the curve from low x to high x over a fixed number of
// samples.
type curveStreamer struct {
	ys, zs []float64
	bound  float64
	sr     beep.SampleRate

	pos    int
	total  int
	phaseL float64
	phaseR float64
}

// NewCurveStreamer renders c as a d long stereo tone sequence.
func NewCurveStreamer(c *plot.Curve, sr beep.SampleRate, d time.Duration) beep.StreamSeeker {
	bound := c.Bound
	if bound <= 0 {
		bound = config.MinAxisBound
	}

	// samples run from hi down to lo; play them in increasing x
	n := c.Len()
	ys := make([]float64, n)
	zs := make([]float64, n)
	for i := 0; i < n; i++ {
		ys[i] = c.Ys[n-1-i]
		zs[i] = c.Zs[n-1-i]
	}

	return &curveStreamer{
		ys:    ys,
		zs:    zs,
		bound: bound,
		sr:    sr,
		total: sr.N(d),
	}
}

func (s *curveStreamer) Stream(samples [][2]float64) (int, bool) {
	if s.pos >= s.total || len(s.ys) == 0 {
		return 0, false
	}

	n := 0
	for n < len(samples) && s.pos < s.total {
		idx := s.pos * len(s.ys) / s.total

		samples[n][0] = s.tone(&s.phaseL, s.ys[idx])
		samples[n][1] = s.tone(&s.phaseR, s.zs[idx])

		s.pos++
		n++
	}

	return n, true
}

func (s *curveStreamer) tone(phase *float64, v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	freq := baseFrequency * math.Pow(2, clampUnit(v/s.bound))
	*phase += 2 * math.Pi * freq / float64(s.sr)
	if *phase > 2*math.Pi {
		*phase -= 2 * math.Pi
	}

	return config.PlaybackGain * math.Sin(*phase)
}

func (s *curveStreamer) Err() error { return nil }

func (s *curveStreamer) Len() int { return s.total }

func (s *curveStreamer) Position() int { return s.pos }

func (s *curveStreamer) Seek(p int) error {
	if p < 0 {
		p = 0
	}
	if p > s.total {
		p = s.total
	}
	s.pos = p

	return nil
}

func clampUnit(v float64) float64 {
	if v < -1 {
		return -1
	}
	if v > 1 {
		return 1
	}
	return v
}
