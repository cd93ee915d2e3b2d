package audio

import (
	"fmt"
	"time"

	"github.com/golangdaddy/laneracer/models"
)

// SampleRate is the output rate shared by every backend
const SampleRate = 44100

// Files maps each cue to its sound file in the asset directory
var Files = map[models.Cue]string{
	models.CueEngine:    "engine.ogg",
	models.CueExplosion: "explode.wav",
	models.CueSkid:      "tireskid.ogg",
}

// Backend plays cues. Update must be called once per frame so fades progress.
type Backend interface {
	Play(c models.Cue)
	FadeOut(c models.Cue, d time.Duration)
	Update(now time.Time)
}

// New creates the backend with the given name: "ebiten", "beep" or "none".
// Sound files that cannot be loaded leave their cue silent.
func New(name, dir string) (Backend, error) {
	switch name {
	case "ebiten":
		return NewEbitenPlayer(dir), nil
	case "beep":
		return NewBeepPlayer(dir)
	case "none", "":
		return Nop{}, nil
	}
	return nil, fmt.Errorf("unknown audio backend %q", name)
}

// Nop is a backend that plays nothing
type Nop struct{}

// Play does nothing
func (Nop) Play(models.Cue) {}

// FadeOut does nothing
func (Nop) FadeOut(models.Cue, time.Duration) {}

// Update does nothing
func (Nop) Update(time.Time) {}
