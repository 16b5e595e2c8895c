package sonify

import (
	"sync"

	"github.com/faiface/beep"
)

// playbackTap wraps a beep.StreamSeeker and records how far the speaker has
// pulled it, so the renderer can follow playback along the curve.
type playbackTap struct {
	Source beep.StreamSeeker

	mu       sync.RWMutex
	streamed int
	done     bool
}

func newPlaybackTap(src beep.StreamSeeker) *playbackTap {
	return &playbackTap{Source: src}
}

func (t *playbackTap) Stream(samples [][2]float64) (int, bool) {
	n, ok := t.Source.Stream(samples)

	t.mu.Lock()
	t.streamed += n
	if !ok {
		t.done = true
	}
	t.mu.Unlock()

	return n, ok
}

func (t *playbackTap) Err() error { return t.Source.Err() }

func (t *playbackTap) finish() {
	t.mu.Lock()
	t.done = true
	t.mu.Unlock()
}

// progress returns the fraction already streamed and whether more is left.
func (t *playbackTap) progress() (float64, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	total := t.Source.Len()
	if total <= 0 {
		return 1, false
	}

	f := float64(t.streamed) / float64(total)
	if f > 1 {
		f = 1
	}

	return f, !t.done
}
