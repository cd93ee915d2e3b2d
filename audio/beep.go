package audio

import (
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/gopxl/beep/vorbis"
	"github.com/gopxl/beep/wav"

	"github.com/golangdaddy/laneracer/models"
)

const beepRate = beep.SampleRate(SampleRate)

// BeepPlayer plays cues through the beep speaker
type BeepPlayer struct {
	mu      sync.Mutex
	buffers map[models.Cue]*beep.Buffer
	playing map[models.Cue]*beepVoice
	fader
}

// beepVoice is one running instance of a cue
type beepVoice struct {
	ctrl   *beep.Ctrl
	volume *effects.Volume
}

// NewBeepPlayer opens the speaker and buffers every cue from dir.
// Missing or broken files are logged and stay silent.
func NewBeepPlayer(dir string) (*BeepPlayer, error) {
	if err := speaker.Init(beepRate, beepRate.N(time.Millisecond*100)); err != nil {
		return nil, fmt.Errorf("failed to open speaker: %w", err)
	}

	p := &BeepPlayer{
		buffers: make(map[models.Cue]*beep.Buffer),
		playing: make(map[models.Cue]*beepVoice),
		fader:   newFader(),
	}
	for cue, name := range Files {
		buf, err := loadBuffer(filepath.Join(dir, name))
		if err != nil {
			log.Printf("Warning: sound %s disabled: %v", cue, err)
			continue
		}
		p.buffers[cue] = buf
	}
	return p, nil
}

// loadBuffer decodes a sound file into memory at the speaker's rate
func loadBuffer(path string) (*beep.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}

	var streamer beep.StreamSeekCloser
	var format beep.Format
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		streamer, format, err = wav.Decode(f)
	case ".ogg":
		streamer, format, err = vorbis.Decode(f)
	default:
		f.Close()
		return nil, fmt.Errorf("unsupported sound format %q", filepath.Ext(path))
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(beep.Format{SampleRate: beepRate, NumChannels: 2, Precision: 2})
	buf.Append(beep.Resample(4, format.SampleRate, beepRate, streamer))
	return buf, nil
}

// Play starts a fresh instance of the cue, stopping the previous one
func (p *BeepPlayer) Play(c models.Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf, ok := p.buffers[c]
	if !ok {
		return
	}
	p.cancel(c)

	var s beep.Streamer = buf.Streamer(0, buf.Len())
	if c.Loops() {
		s = beep.Loop(-1, buf.Streamer(0, buf.Len()))
	}
	voice := &beepVoice{ctrl: &beep.Ctrl{Streamer: s}}
	voice.volume = &effects.Volume{Streamer: voice.ctrl, Base: 2}

	speaker.Lock()
	if prev, ok := p.playing[c]; ok {
		prev.ctrl.Paused = true
	}
	speaker.Unlock()

	p.playing[c] = voice
	speaker.Play(voice.volume)
}

// FadeOut lowers the cue to silence over d, then stops it
func (p *BeepPlayer) FadeOut(c models.Cue, d time.Duration) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.playing[c]; ok {
		p.begin(c, d)
	}
}

// Update advances running fades
func (p *BeepPlayer) Update(now time.Time) {
	p.mu.Lock()
	defer p.mu.Unlock()

	speaker.Lock()
	defer speaker.Unlock()
	p.step(now, func(c models.Cue, volume float64, done bool) {
		voice, ok := p.playing[c]
		if !ok {
			return
		}
		if done {
			voice.ctrl.Paused = true
			delete(p.playing, c)
			return
		}
		voice.volume.Volume = math.Log2(volume)
	})
}
