package sonify

import (
	"errors"
	"fmt"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/speaker"
	"github.com/iburimskiy/cpowgraph/internal/config"
	"github.com/iburimskiy/cpowgraph/internal/plot"
	"github.com/sgostarter/i/l"
)

var errAudioUnavailable = errors.New("audio output unavailable")

// Player owns the speaker. The speaker is initialized on first use; if that
// fails the player stays disabled for the rest of the session.
type Player struct {
	logger l.Wrapper

	format   beep.Format
	duration time.Duration
	initDone bool
	disabled bool
	tap      *playbackTap
}

func NewPlayer(logger l.Wrapper) *Player {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	return &Player{
		logger: logger.WithFields(l.StringField(l.ClsKey, "Player")),
		format: beep.Format{
			SampleRate:  beep.SampleRate(config.SampleRate),
			NumChannels: 2,
			Precision:   2,
		},
		duration: config.PlayDuration * time.Second,
	}
}

// Play stops whatever is playing and starts c from its low end.
func (p *Player) Play(c *plot.Curve) error {
	if p.disabled {
		return errAudioUnavailable
	}

	if !p.initDone {
		if err := speaker.Init(p.format.SampleRate, p.format.SampleRate.N(time.Second/20)); err != nil {
			p.disabled = true
			p.logger.WithFields(l.ErrorField(err)).Error("speaker init failed, playback disabled")

			return fmt.Errorf("init speaker: %w", err)
		}
		p.initDone = true
	}

	tap := newPlaybackTap(NewCurveStreamer(c, p.format.SampleRate, p.duration))

	speaker.Lock()
	speaker.Clear()
	p.tap = tap
	speaker.Unlock()

	speaker.Play(beep.Seq(tap, beep.Callback(tap.finish)))

	p.logger.WithFields(l.StringField("title", c.Title())).Debug("playing curve")

	return nil
}

// Stop silences the speaker.
func (p *Player) Stop() {
	if !p.initDone {
		return
	}

	speaker.Lock()
	speaker.Clear()
	if p.tap != nil {
		p.tap.finish()
	}
	speaker.Unlock()
}

// Progress reports how far playback is, and whether it is still running.
func (p *Player) Progress() (float64, bool) {
	if p.tap == nil {
		return 0, false
	}

	return p.tap.progress()
}

func (p *Player) Duration() time.Duration {
	return p.duration
}
