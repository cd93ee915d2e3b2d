package models

// Cue identifies a sound effect
type Cue string

const (
	CueEngine    Cue = "engine"    // Player engine, loops for the whole race
	CueExplosion Cue = "explosion" // Traffic wreck
	CueSkid      Cue = "skid"      // Traffic swerving into another lane
)

// Loops reports whether the cue repeats until faded out
func (c Cue) Loops() bool {
	return c == CueEngine
}

// Visual is what the renderer gets for one object: identity, kind and where to draw it
type Visual struct {
	ID    int
	Kind  Kind
	Name  string
	X, Y  float64 // Screen position of the top-left corner
	W, H  float64
	Frame int // Animation frame, explosions only
}

// HUD is the text overlay for one frame
type HUD struct {
	Countdown  string  // "3", "2", "1", "Go!!" or empty
	Elapsed    string  // Race clock, empty before the first start
	Placement  string  // "1st", "2nd", ...
	Score      float64 // Running total
	LastScore  float64 // Last checkpoint increment
	Speed      float64 // Player speed in world units per frame
	Waiting    bool    // No race running, waiting for the start key
	RaceNumber int
	Leader     string  // Name of the opponent in front, empty when the player leads
	Wins       int     // Races won this session
	Completed  int     // Races finished this session
	WinRate    float64 // Percentage of finished races won
	BestTime   string  // Fastest finish this session, empty before the first
}
