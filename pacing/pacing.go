package pacing

import (
	"math"
	"math/rand"

	"github.com/golangdaddy/laneracer/models"
)

// Config tunes the rubber band between the player and the opponents
type Config struct {
	Nudge         float64 `json:"nudge"`          // Largest change of an opponent's speed cap per frame
	Penalty       float64 `json:"penalty"`        // How far below the player's base speed a penalised opponent is capped
	LaunchFactor  float64 `json:"launch_factor"`  // Opponent i launches at base speed * i * LaunchFactor
	TargetSpacing float64 `json:"target_spacing"` // Opponent i targets (i+1) * TargetSpacing of the course
	PreReleaseCap float64 `json:"pre_release_cap"`
}

// DefaultConfig returns the tuning the game ships with
func DefaultConfig() Config {
	return Config{
		Nudge:         1,
		Penalty:       3,
		LaunchFactor:  0.1,
		TargetSpacing: 0.2,
		PreReleaseCap: 1e7,
	}
}

// Opponent is the pacing state of one AI car
type Opponent struct {
	ID       int     // Entity ID in the World
	Target   float64 // World Y the car should reach when the player does
	Released bool    // The car has left the window once and got its cruising speed
}

// Controller keeps every opponent on course to reach its target at the moment the player does
type Controller struct {
	Opponents []*Opponent
	BaseSpeed float64 // The player's base top speed
	cfg       Config
}

// New shuffles the opponents and gives each a staggered launch speed and a target position.
// Targets are spaced along the course so the finishing order is fixed.
func New(rng *rand.Rand, opponents []*models.Entity, courseLength, baseSpeed float64, cfg Config) *Controller {
	cars := make([]*models.Entity, len(opponents))
	copy(cars, opponents)
	rng.Shuffle(len(cars), func(i, j int) {
		cars[i], cars[j] = cars[j], cars[i]
	})

	c := &Controller{
		Opponents: make([]*Opponent, len(cars)),
		BaseSpeed: baseSpeed,
		cfg:       cfg,
	}
	for i, car := range cars {
		car.YV = -baseSpeed * float64(i) * cfg.LaunchFactor
		car.MaxSpeed = cfg.PreReleaseCap
		c.Opponents[i] = &Opponent{
			ID:     car.ID,
			Target: float64(i+1) * cfg.TargetSpacing * -courseLength,
		}
	}
	return c
}

// IdealSpeed returns the constant speed a car at carY needs to reach target in the time
// the player, driving at playerMax from playerY, needs to get there.
// ok is false when the player is already at or past the target.
func IdealSpeed(target, playerY, playerMax, carY float64) (v float64, ok bool) {
	if playerMax <= 0 {
		return 0, false
	}
	t := (playerY - target) / playerMax
	if t <= 0 {
		return 0, false
	}
	return (carY - target) / t, true
}

// Update runs one frame of pacing: first the one-off release of cars that left the window, then the correction of released cars
func (c *Controller) Update(w *models.World, player *models.Entity, cam models.Camera) {
	for _, o := range c.Opponents {
		car := w.Get(o.ID)
		if car == nil || car.Dead {
			continue
		}
		if !o.Released && car.Y+car.H < cam.Top() {
			c.release(o, car, player)
		}
		if o.Released {
			c.correct(o, car, player)
		}
	}
}

// release pins the car's speed to the ideal speed the first time it leaves the window
func (c *Controller) release(o *Opponent, car, player *models.Entity) {
	o.Released = true
	v, ok := IdealSpeed(o.Target, player.Y, player.MaxSpeed, car.Y)
	if !ok || v <= 0 {
		return
	}
	car.YV = -v
	car.SetMaxSpeed(v)
}

// correct nudges the speed cap toward the ideal speed, or penalises a car that is early or has been overtaken
func (c *Controller) correct(o *Opponent, car, player *models.Entity) {
	if car.Y <= o.Target || car.Y > player.Y {
		car.SetMaxSpeed(c.BaseSpeed - c.cfg.Penalty)
		return
	}

	speed := car.MaxSpeed + c.cfg.Nudge
	if v, ok := IdealSpeed(o.Target, player.Y, player.MaxSpeed, car.Y); ok {
		dv := math.Max(-c.cfg.Nudge, math.Min(c.cfg.Nudge, v-car.MaxSpeed))
		speed = car.MaxSpeed + dv
	}
	car.SetMaxSpeed(math.Max(c.BaseSpeed, speed))
}
