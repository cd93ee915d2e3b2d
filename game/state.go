package game

import (
	"fmt"
	"time"

	"github.com/golangdaddy/laneracer/models"
)

// State is the phase a race is in
type State int

const (
	StateWaiting   State = iota // Idle, waiting for the start key
	StateCountdown              // "3", "2", "1" before the start
	StatePlaying                // Simulation running
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateWaiting:
		return "waiting"
	case StateCountdown:
		return "countdown"
	case StatePlaying:
		return "playing"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Input is the set of logical controls held down this frame
type Input struct {
	Left    bool
	Right   bool
	Confirm bool // Start a race
	Quit    bool // Abort the race, or leave the game while waiting
}

// FrameContext is everything the race needs from the host for one frame
type FrameContext struct {
	Now   time.Time
	Input Input
}

// Presenter draws what the race hands it. It never gets pixels, only positions and identities.
type Presenter interface {
	Present(v models.Visual)
	PresentHUD(h models.HUD)
}

// CuePlayer plays sound effects. Calls are fire and forget.
type CuePlayer interface {
	Play(c models.Cue)
	FadeOut(c models.Cue, d time.Duration)
}
