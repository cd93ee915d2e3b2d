package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/golangdaddy/laneracer/models/car"
	"github.com/golangdaddy/laneracer/pacing"
	"github.com/golangdaddy/laneracer/scoring"
)

// ErrInvalid is returned when a configuration value cannot drive a race
var ErrInvalid = errors.New("invalid configuration")

// Duration is a time.Duration read from JSON as a string like "500ms"
type Duration time.Duration

// UnmarshalJSON parses a duration string
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(v)
	return nil
}

// MarshalJSON writes the duration as a string
func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// Std returns the standard library duration
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Window represents the game window
type Window struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Title  string `json:"title"`
	FPS    int    `json:"fps"` // Simulation ticks per second
}

// Road represents the course layout
type Road struct {
	Width      float64 `json:"width"`
	Length     float64 `json:"length"`
	Lanes      int     `json:"lanes"`
	Racers     int     `json:"racers"`      // Cars on the grid, player included
	PlayerLane int     `json:"player_lane"` // Grid lane of the player
}

// Layout represents where background traffic is placed and when it swerves
type Layout struct {
	StartOffset          float64 `json:"start_offset"`
	Spacing              float64 `json:"spacing"`
	TurnTriggerDistance  float64 `json:"turn_trigger_distance"`  // Player distance at which traffic swerves into its turn lane
	ChallengeMinDistance float64 `json:"challenge_min_distance"` // Closest traffic the difficulty rule may make swerve
}

// Collision represents the slow-down after a hit
type Collision struct {
	Friction float64  `json:"friction"` // Multiplies Y velocity every frame while slowed
	Delay    Duration `json:"delay"`    // How long a hit slows a car
}

// Explosion represents the wreck animation
type Explosion struct {
	Size      float64  `json:"size"`
	Frames    int      `json:"frames"`
	FrameTime Duration `json:"frame_time"`
}

// Race represents countdown, checkpoints and sound timing
type Race struct {
	Countdown          Duration `json:"countdown"`
	GoLabel            Duration `json:"go_label"` // How long "Go!!" stays up
	CheckpointInterval float64  `json:"checkpoint_interval"`
	ExplosionFade      Duration `json:"explosion_fade"`
	SkidFade           Duration `json:"skid_fade"`
}

// Config is the full game configuration
type Config struct {
	Window    Window         `json:"window"`
	Road      Road           `json:"road"`
	Player    car.Spec       `json:"player"`
	Opponent  car.Spec       `json:"opponent"`
	Traffic   car.Spec       `json:"traffic"`
	Layout    Layout         `json:"layout"`
	Collision Collision      `json:"collision"`
	Explosion Explosion      `json:"explosion"`
	Race      Race           `json:"race"`
	Pacing    pacing.Config  `json:"pacing"`
	Scoring   scoring.Config `json:"scoring"`
	Assets    string         `json:"assets"` // Directory holding textures and sounds
	Audio     string         `json:"audio"`  // Sound backend: "ebiten", "beep" or "none"
}

// Default returns the configuration the game ships with
func Default() *Config {
	return &Config{
		Window: Window{Width: 600, Height: 700, Title: "Lane Racer", FPS: 60},
		Road: Road{
			Width:      360,
			Length:     100000,
			Lanes:      5,
			Racers:     5,
			PlayerLane: 2,
		},
		Player:   car.NewPlayerSpec(),
		Opponent: car.NewOpponentSpec(),
		Traffic:  car.NewTrafficSpec(),
		Layout: Layout{
			StartOffset:          -1000,
			Spacing:              50,
			TurnTriggerDistance:  400,
			ChallengeMinDistance: 150,
		},
		Collision: Collision{Friction: 0.8, Delay: Duration(500 * time.Millisecond)},
		Explosion: Explosion{Size: 300, Frames: 30, FrameTime: Duration(100 * time.Millisecond)},
		Race: Race{
			Countdown:          Duration(3 * time.Second),
			GoLabel:            Duration(time.Second),
			CheckpointInterval: 1000,
			ExplosionFade:      Duration(1500 * time.Millisecond),
			SkidFade:           Duration(500 * time.Millisecond),
		},
		Pacing:  pacing.DefaultConfig(),
		Scoring: scoring.DefaultConfig(),
		Assets:  "data",
		Audio:   "ebiten",
	}
}

// Load reads a JSON file over the defaults.
// The file must have a .json extension and be under 1MB. Fields it omits keep their default.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024 // 1MB
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", fileInfo.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration can drive a race
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window must be positive, got %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive, got %d", ErrInvalid, c.Window.FPS)
	case c.Road.Width <= 0 || c.Road.Length <= 0:
		return fmt.Errorf("%w: road must be positive, got %vx%v", ErrInvalid, c.Road.Width, c.Road.Length)
	case c.Road.Lanes < 1:
		return fmt.Errorf("%w: road needs at least one lane, got %d", ErrInvalid, c.Road.Lanes)
	case c.Road.Racers < 1 || c.Road.Racers > c.Road.Lanes:
		return fmt.Errorf("%w: racers must be between 1 and the lane count, got %d", ErrInvalid, c.Road.Racers)
	case c.Road.PlayerLane < 0 || c.Road.PlayerLane >= c.Road.Racers:
		return fmt.Errorf("%w: player_lane must be a grid lane, got %d", ErrInvalid, c.Road.PlayerLane)
	}

	specs := []struct {
		name string
		spec car.Spec
	}{
		{"player", c.Player},
		{"opponent", c.Opponent},
		{"traffic", c.Traffic},
	}
	for _, s := range specs {
		if !s.spec.Valid() {
			return fmt.Errorf("%w: %s car needs positive size and speeds", ErrInvalid, s.name)
		}
	}

	switch {
	case c.Layout.Spacing < 0:
		return fmt.Errorf("%w: traffic spacing must not be negative, got %v", ErrInvalid, c.Layout.Spacing)
	case c.Collision.Friction < 0 || c.Collision.Friction > 1:
		return fmt.Errorf("%w: friction must be between 0 and 1, got %v", ErrInvalid, c.Collision.Friction)
	case c.Explosion.Frames < 1 || c.Explosion.FrameTime <= 0:
		return fmt.Errorf("%w: explosion needs frames and a frame time", ErrInvalid)
	case c.Race.CheckpointInterval <= 0:
		return fmt.Errorf("%w: checkpoint_interval must be positive, got %v", ErrInvalid, c.Race.CheckpointInterval)
	case c.Scoring.Window < 1 || c.Scoring.MaxScore <= 0:
		return fmt.Errorf("%w: scoring needs a window and a positive max score", ErrInvalid)
	case c.Pacing.Nudge <= 0:
		return fmt.Errorf("%w: pacing nudge must be positive, got %v", ErrInvalid, c.Pacing.Nudge)
	}

	switch c.Audio {
	case "ebiten", "beep", "none":
	default:
		return fmt.Errorf("%w: unknown audio backend %q", ErrInvalid, c.Audio)
	}
	return nil
}
