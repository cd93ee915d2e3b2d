package audio

import (
	"time"

	"github.com/golangdaddy/laneracer/models"
)

// fade is one cue going quiet
type fade struct {
	start    time.Time // Zero until the first Update after the request
	duration time.Duration
}

// fader tracks linear fade-outs and reports the volume each cue should have
type fader struct {
	fades map[models.Cue]*fade
}

func newFader() fader {
	return fader{fades: make(map[models.Cue]*fade)}
}

// begin schedules a fade; the clock starts at the next step
func (f *fader) begin(c models.Cue, d time.Duration) {
	f.fades[c] = &fade{duration: d}
}

// cancel drops any fade on the cue
func (f *fader) cancel(c models.Cue) {
	delete(f.fades, c)
}

// step calls apply with the current volume of every fading cue.
// done is true on the last call for a cue, when it should be stopped.
func (f *fader) step(now time.Time, apply func(c models.Cue, volume float64, done bool)) {
	for c, fd := range f.fades {
		if fd.start.IsZero() {
			fd.start = now
		}
		elapsed := now.Sub(fd.start)
		if fd.duration <= 0 || elapsed >= fd.duration {
			delete(f.fades, c)
			apply(c, 0, true)
			continue
		}
		apply(c, 1-float64(elapsed)/float64(fd.duration), false)
	}
}
