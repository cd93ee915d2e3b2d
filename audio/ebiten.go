package audio

import (
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"

	"github.com/golangdaddy/laneracer/models"
)

// EbitenPlayer plays cues through ebiten's audio context
type EbitenPlayer struct {
	ctx     *audio.Context
	players map[models.Cue]*audio.Player
	fader
}

// NewEbitenPlayer loads every cue from dir. Missing or broken files are logged and stay silent.
func NewEbitenPlayer(dir string) *EbitenPlayer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(SampleRate)
	}

	p := &EbitenPlayer{
		ctx:     ctx,
		players: make(map[models.Cue]*audio.Player),
		fader:   newFader(),
	}
	for cue, name := range Files {
		player, err := p.load(cue, filepath.Join(dir, name))
		if err != nil {
			log.Printf("Warning: sound %s disabled: %v", cue, err)
			continue
		}
		p.players[cue] = player
	}
	return p
}

func (p *EbitenPlayer) load(cue models.Cue, path string) (*audio.Player, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound file: %w", err)
	}

	var stream io.ReadSeeker
	var length int64
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		s, err := wav.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		stream, length = s, s.Length()
	case ".ogg":
		s, err := vorbis.DecodeWithSampleRate(SampleRate, bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", path, err)
		}
		stream, length = s, s.Length()
	default:
		return nil, fmt.Errorf("unsupported sound format %q", filepath.Ext(path))
	}

	if cue.Loops() {
		return p.ctx.NewPlayer(audio.NewInfiniteLoop(stream, length))
	}
	return p.ctx.NewPlayer(stream)
}

// Play starts the cue from the beginning at full volume
func (p *EbitenPlayer) Play(c models.Cue) {
	player, ok := p.players[c]
	if !ok {
		return
	}
	p.cancel(c)
	if err := player.SetPosition(0); err != nil {
		log.Printf("Warning: failed to rewind sound %s: %v", c, err)
	}
	player.SetVolume(1)
	player.Play()
}

// FadeOut lowers the cue to silence over d, then pauses it
func (p *EbitenPlayer) FadeOut(c models.Cue, d time.Duration) {
	if _, ok := p.players[c]; ok {
		p.begin(c, d)
	}
}

// Update advances running fades
func (p *EbitenPlayer) Update(now time.Time) {
	p.step(now, func(c models.Cue, volume float64, done bool) {
		player := p.players[c]
		if done {
			player.Pause()
			return
		}
		player.SetVolume(volume)
	})
}
