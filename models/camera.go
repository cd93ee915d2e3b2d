package models

import "github.com/golangdaddy/laneracer/collision"

// Camera maps world coordinates to the window.
// It stays fixed on the x axis and keeps the followed car at the bottom of the window.
type Camera struct {
	W, H    float64 // Window size
	XOffset float64 // Added to world X to get screen X
	YOffset float64 // Added to world Y to get screen Y
}

// NewCamera creates a camera for a window of the given size
func NewCamera(w, h float64) Camera {
	return Camera{W: w, H: h}
}

// Follow moves the camera so the target sits at the bottom edge of the window
func (c *Camera) Follow(target *Entity) {
	c.YOffset = -target.Y + c.H - target.H
}

// Top returns the world Y of the upper window edge
func (c Camera) Top() float64 {
	return -c.YOffset
}

// Bottom returns the world Y of the lower window edge
func (c Camera) Bottom() float64 {
	return -c.YOffset + c.H
}

// CanSee reports whether any part of the rectangle is vertically inside the window
func (c Camera) CanSee(r collision.Rect) bool {
	top := c.Top()
	return r.Y < top+c.H && r.Y+r.H > top
}

// Apply converts a world position to a screen position
func (c Camera) Apply(x, y float64) (float64, float64) {
	return x + c.XOffset, y + c.YOffset
}
