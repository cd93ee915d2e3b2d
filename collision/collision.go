package collision

import (
	"errors"
	"fmt"
	"math"
)

// Shape is the kind of collision volume an object uses
type Shape int

const (
	None        Shape = iota // Never collides
	Box                      // Solid axis-aligned rectangle
	InvertedBox              // Container: collides when a box leaves it
)

// String returns the shape name
func (s Shape) String() string {
	switch s {
	case None:
		return "none"
	case Box:
		return "box"
	case InvertedBox:
		return "inverted-box"
	}
	return fmt.Sprintf("shape(%d)", int(s))
}

// ErrInvalidShapes is returned when two shapes have no collision test.
// It always points at a setup bug, never at a runtime condition.
var ErrInvalidShapes = errors.New("collision: invalid shape pairing")

// Rect is an axis-aligned rectangle with its position at the top-left corner
type Rect struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// Body is anything that can take part in a collision test
type Body interface {
	Bounds() Rect
	CollisionShape() Shape
}

// Check tests two bodies against each other.
// Non-solid bodies never collide. An unsupported pairing returns ErrInvalidShapes.
func Check(a, b Body) (bool, error) {
	sa, sb := a.CollisionShape(), b.CollisionShape()
	if sa == None || sb == None {
		return false, nil
	}

	switch {
	case sa == Box && sb == Box:
		return BoxBox(a.Bounds(), b.Bounds()), nil
	case sa == Box && sb == InvertedBox:
		return BoxInvertedBox(a.Bounds(), b.Bounds()), nil
	case sa == InvertedBox && sb == Box:
		return Check(b, a)
	}

	return false, fmt.Errorf("%w: %s x %s", ErrInvalidShapes, sa, sb)
}

// BoxBox reports whether two boxes overlap
func BoxBox(a, b Rect) bool {
	return math.Abs(a.X-b.X)*2 < a.W+b.W && math.Abs(a.Y-b.Y)*2 < a.H+b.H
}

// BoxInvertedBox reports whether box has left the container on either axis
func BoxInvertedBox(box, container Rect) bool {
	if box.X < container.X || box.X+box.W > container.X+container.W {
		return true
	}
	if box.Y < container.Y || box.Y+box.H > container.Y+container.H {
		return true
	}
	return false
}
