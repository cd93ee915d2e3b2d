package car

// Spec holds the driving characteristics shared by every car of one kind
type Spec struct {
	Width        float64 `json:"width"`        // Footprint width in world units
	Length       float64 `json:"length"`       // Footprint length in world units
	Speed        float64 `json:"speed"`        // Top speed in world units per frame
	TurnSpeed    float64 `json:"turn_speed"`   // Lateral speed while changing lanes
	Acceleration float64 `json:"acceleration"` // Added to Y velocity every frame, negative is forward
}

// NewPlayerSpec returns the player's car
func NewPlayerSpec() Spec {
	return Spec{
		Width:        50,
		Length:       100,
		Speed:        15,
		TurnSpeed:    5,
		Acceleration: -0.1,
	}
}

// NewOpponentSpec returns the AI opponents' car
func NewOpponentSpec() Spec {
	return Spec{
		Width:        50,
		Length:       100,
		Speed:        25,
		TurnSpeed:    10,
		Acceleration: -0.3,
	}
}

// NewTrafficSpec returns the background traffic car.
// Its acceleration is larger than its top speed so traffic is at cruising speed from the first frame.
func NewTrafficSpec() Spec {
	return Spec{
		Width:        50,
		Length:       100,
		Speed:        10,
		TurnSpeed:    8,
		Acceleration: -10,
	}
}

// Valid reports whether the spec can drive
func (s Spec) Valid() bool {
	return s.Width > 0 && s.Length > 0 && s.Speed > 0 && s.TurnSpeed > 0
}
