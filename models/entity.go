package models

import (
	"fmt"
	"math"
	"time"

	"github.com/golangdaddy/laneracer/collision"
	"github.com/golangdaddy/laneracer/models/car"
)

// Kind tags the variant an Entity belongs to
type Kind int

const (
	KindRoad       Kind = iota // The corridor itself, an inverted box
	KindPlayer                 // The player's car
	KindAIOpponent             // A racing opponent
	KindTraffic                // Background traffic
	KindCheckpoint             // Pacing sensor line
	KindExplosion              // Short-lived wreck animation
	KindMarker                 // Start and finish banners
)

// String returns the kind name
func (k Kind) String() string {
	switch k {
	case KindRoad:
		return "road"
	case KindPlayer:
		return "player"
	case KindAIOpponent:
		return "opponent"
	case KindTraffic:
		return "traffic"
	case KindCheckpoint:
		return "checkpoint"
	case KindExplosion:
		return "explosion"
	case KindMarker:
		return "marker"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// IsVehicle reports whether the kind drives on the road
func (k Kind) IsVehicle() bool {
	return k == KindPlayer || k == KindAIOpponent || k == KindTraffic
}

// NoTurnLane marks traffic that never changes lane
const NoTurnLane = -1

// Entity is every object taking part in a race.
// Behaviour differs per Kind; the fields are shared.
type Entity struct {
	ID   int  // Assigned by the World
	Kind Kind // Variant tag
	Name string

	X, Y   float64 // World position of the top-left corner
	W, H   float64 // Footprint
	XV, YV float64 // Velocity in world units per frame, negative YV is forward

	Shape        collision.Shape
	Acceleration float64 // Added to YV every frame
	MaxSpeed     float64 // Bound on |YV|
	TurnSpeed    float64 // Lateral speed for lane changes
	Dead         bool    // Removed at the end of the frame

	Moving   bool    // A lane change is in progress
	TargetX  float64 // X to snap to when the lane change ends
	TurnLane int     // Traffic only: lane index to swerve into, NoTurnLane if none

	LastHit time.Time // Last collision that slows the car down
	Spawned time.Time // When an explosion started
	Frame   int       // Current animation frame
}

// NewVehicle creates a car of the given kind at a world position
func NewVehicle(kind Kind, spec car.Spec, x, y float64) *Entity {
	return &Entity{
		Kind:         kind,
		Name:         kind.String(),
		X:            x,
		Y:            y,
		W:            spec.Width,
		H:            spec.Length,
		Shape:        collision.Box,
		Acceleration: spec.Acceleration,
		MaxSpeed:     spec.Speed,
		TurnSpeed:    spec.TurnSpeed,
		TurnLane:     NoTurnLane,
	}
}

// NewExplosion creates a square explosion centred on (cx, cy)
func NewExplosion(cx, cy, size float64, now time.Time) *Entity {
	return &Entity{
		Kind:     KindExplosion,
		Name:     KindExplosion.String(),
		X:        cx - size/2,
		Y:        cy - size/2,
		W:        size,
		H:        size,
		Shape:    collision.Box,
		TurnLane: NoTurnLane,
		Spawned:  now,
	}
}

// NewMarker creates a non-solid banner such as the start or finish line
func NewMarker(name string, r collision.Rect) *Entity {
	return &Entity{
		Kind:     KindMarker,
		Name:     name,
		X:        r.X,
		Y:        r.Y,
		W:        r.W,
		H:        r.H,
		Shape:    collision.None,
		TurnLane: NoTurnLane,
	}
}

// NewRoadEntity wraps the road corridor as an inverted box
func NewRoadEntity(r collision.Rect) *Entity {
	return &Entity{
		Kind:     KindRoad,
		Name:     KindRoad.String(),
		X:        r.X,
		Y:        r.Y,
		W:        r.W,
		H:        r.H,
		Shape:    collision.InvertedBox,
		TurnLane: NoTurnLane,
	}
}

// Bounds returns the entity footprint
func (e *Entity) Bounds() collision.Rect {
	return collision.Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// CollisionShape returns the entity's collision shape
func (e *Entity) CollisionShape() collision.Shape {
	if e.Dead {
		return collision.None
	}
	return e.Shape
}

// CenterX returns the horizontal middle of the entity
func (e *Entity) CenterX() float64 {
	return e.X + e.W/2
}

// CenterY returns the vertical middle of the entity
func (e *Entity) CenterY() float64 {
	return e.Y + e.H/2
}

// SetMaxSpeed changes the speed cap and pulls YV back inside it
func (e *Entity) SetMaxSpeed(v float64) {
	e.MaxSpeed = v
	e.clampSpeed()
}

// Accelerate applies one frame of acceleration, respecting MaxSpeed
func (e *Entity) Accelerate() {
	e.YV += e.Acceleration
	e.clampSpeed()
}

func (e *Entity) clampSpeed() {
	if e.YV > e.MaxSpeed {
		e.YV = e.MaxSpeed
	} else if e.YV < -e.MaxSpeed {
		e.YV = -e.MaxSpeed
	}
}

// Hit records a collision that slows the entity for a while
func (e *Entity) Hit(now time.Time) {
	e.LastHit = now
}

// Slowed reports whether a recent collision still drags the entity
func (e *Entity) Slowed(now time.Time, delay time.Duration) bool {
	return now.Before(e.LastHit.Add(delay))
}

// SteerTo starts a lane change toward targetX at the entity's turn speed
func (e *Entity) SteerTo(targetX float64) {
	e.Moving = true
	e.TargetX = targetX
	e.XV = math.Copysign(e.TurnSpeed, targetX-e.X)
}

// Step integrates one frame: acceleration, movement, collision drag, lane snap.
// It returns true when a lane change finished during this step.
func (e *Entity) Step(now time.Time, friction float64, delay time.Duration) bool {
	e.Accelerate()
	e.X += e.XV
	e.Y += e.YV
	if e.Slowed(now, delay) {
		e.YV *= friction
	}
	return e.arrive()
}

// arrive snaps a lane change once the target X is reached or passed
func (e *Entity) arrive() bool {
	if !e.Moving {
		return false
	}
	if (e.XV >= 0 && e.X >= e.TargetX) || (e.XV < 0 && e.X <= e.TargetX) {
		e.X = e.TargetX
		e.XV = 0
		e.Moving = false
		return true
	}
	return false
}
