package road

import (
	"github.com/golangdaddy/laneracer/collision"
)

// Lane is a fixed-width longitudinal strip of the road
type Lane struct {
	Index int     // Position of the lane, 0 is the leftmost
	Left  float64 // World X where the lane starts (inclusive)
	Right float64 // World X where the lane ends (exclusive)
}

// Center returns the world X coordinate of the middle of the lane
func (l Lane) Center() float64 {
	return l.Left + (l.Right-l.Left)/2
}

// Width returns the lane width
func (l Lane) Width() float64 {
	return l.Right - l.Left
}

// Contains reports whether x lies in [Left, Right)
func (l Lane) Contains(x float64) bool {
	return x >= l.Left && x < l.Right
}

// IsObjectIn reports whether the rectangle overlaps the lane on the x axis.
// Both edges are inclusive, so an object straddling a divider is in both lanes.
func (l Lane) IsObjectIn(r collision.Rect) bool {
	return r.X+r.W >= l.Left && r.X <= l.Right
}

// Backdrop is one of the two full-screen background tiles
type Backdrop struct {
	X, Y float64 // World position of the top-left corner
	W, H float64 // Always the screen size
}

// Road is the race corridor: a strip of lanes running from Y=0 up to Y=-Length
type Road struct {
	X      float64 // World X of the left edge
	Width  float64 // Total width of all lanes
	Length float64 // Course length, the road spans [-Length, 0)
	Lanes  []Lane

	// lower is the backdrop currently nearest the bottom of the screen
	lower, upper Backdrop
}

// New creates a road of numLanes equal lanes.
// screenW and screenH size the scrolling background tiles.
func New(x, width, length float64, numLanes int, screenW, screenH float64) *Road {
	if numLanes < 1 {
		numLanes = 1
	}

	r := &Road{
		X:      x,
		Width:  width,
		Length: length,
		Lanes:  make([]Lane, numLanes),
		lower:  Backdrop{X: 0, Y: 0, W: screenW, H: screenH},
		upper:  Backdrop{X: 0, Y: -screenH, W: screenW, H: screenH},
	}

	for i := range r.Lanes {
		r.Lanes[i] = Lane{
			Index: i,
			Left:  r.boundary(i, numLanes),
			Right: r.boundary(i+1, numLanes),
		}
	}

	return r
}

// boundary computes divider i so that neighbouring lanes share the exact same edge
func (r *Road) boundary(i, n int) float64 {
	if i == n {
		return r.X + r.Width
	}
	return r.X + r.Width*float64(i)/float64(n)
}

// Bounds returns the corridor rectangle
func (r *Road) Bounds() collision.Rect {
	return collision.Rect{X: r.X, Y: -r.Length, W: r.Width, H: r.Length}
}

// Lane returns the lane with the given index
func (r *Road) Lane(index int) (Lane, bool) {
	if index < 0 || index >= len(r.Lanes) {
		return Lane{}, false
	}
	return r.Lanes[index], true
}

// AdjacentLanes returns the lanes bordering the given one, lower index first
func (r *Road) AdjacentLanes(lane Lane) []Lane {
	adjacent := make([]Lane, 0, 2)
	if lane.Index > 0 {
		adjacent = append(adjacent, r.Lanes[lane.Index-1])
	}
	if lane.Index < len(r.Lanes)-1 {
		adjacent = append(adjacent, r.Lanes[lane.Index+1])
	}
	return adjacent
}

// LaneObjectIsIn returns the first lane, in index order, that the rectangle overlaps
func (r *Road) LaneObjectIsIn(rect collision.Rect) (Lane, bool) {
	for _, lane := range r.Lanes {
		if lane.IsObjectIn(rect) {
			return lane, true
		}
	}
	return Lane{}, false
}

// Scroll keeps the two background tiles covering the window.
// yOffset is the camera offset added to world Y to get screen Y.
// Once the lower tile is entirely below the window it is moved above the other one.
func (r *Road) Scroll(yOffset float64) {
	if r.lower.H <= 0 {
		return
	}
	for r.lower.Y+yOffset >= r.lower.H {
		r.lower.Y = r.upper.Y - r.upper.H
		r.lower, r.upper = r.upper, r.lower
	}
}

// Backdrops returns both background tiles, lower first
func (r *Road) Backdrops() [2]Backdrop {
	return [2]Backdrop{r.lower, r.upper}
}
