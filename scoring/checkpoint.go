package scoring

// Checkpoint is a sensor line across the road at a fixed world Y
type Checkpoint struct {
	Y float64
}

// Passed reports whether a car at y has moved beyond the line
func (c Checkpoint) Passed(y float64) bool {
	return y < c.Y
}

// Queue holds the checkpoints still ahead of the player, nearest first.
// A checkpoint leaves the queue when it is passed and never comes back.
type Queue struct {
	checkpoints []Checkpoint
}

// NewQueue places a checkpoint every interval units until the course length is covered
func NewQueue(length, interval float64) *Queue {
	q := &Queue{}
	if interval <= 0 {
		return q
	}
	for y := interval; y-interval < length; y += interval {
		q.checkpoints = append(q.checkpoints, Checkpoint{Y: -y})
	}
	return q
}

// Len returns how many checkpoints are left
func (q *Queue) Len() int {
	return len(q.checkpoints)
}

// Next returns the nearest checkpoint still ahead
func (q *Queue) Next() (Checkpoint, bool) {
	if len(q.checkpoints) == 0 {
		return Checkpoint{}, false
	}
	return q.checkpoints[0], true
}

// Pass consumes the nearest checkpoint if a car at y has passed it.
// Only one checkpoint is consumed per call.
func (q *Queue) Pass(y float64) (Checkpoint, bool) {
	next, ok := q.Next()
	if !ok || !next.Passed(y) {
		return Checkpoint{}, false
	}
	q.checkpoints = q.checkpoints[1:]
	return next, true
}

// Remaining returns a copy of the checkpoints still ahead
func (q *Queue) Remaining() []Checkpoint {
	out := make([]Checkpoint, len(q.checkpoints))
	copy(out, q.checkpoints)
	return out
}
