package scoring

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewQueue(t *testing.T) {
	q := NewQueue(2500, 1000)
	want := []Checkpoint{{Y: -1000}, {Y: -2000}, {Y: -3000}}
	if diff := cmp.Diff(want, q.Remaining()); diff != "" {
		t.Errorf("checkpoints mismatch (-want +got):\n%s", diff)
	}

	assert.Equal(t, 100, NewQueue(100000, 1000).Len())
	assert.Zero(t, NewQueue(1000, 0).Len())
}

func TestQueueIsMonotonic(t *testing.T) {
	q := NewQueue(5000, 1000)

	_, ok := q.Pass(-999)
	assert.False(t, ok)
	_, ok = q.Pass(-1000)
	assert.False(t, ok, "sitting on the line is not passing it")

	cp, ok := q.Pass(-3500)
	require.True(t, ok)
	assert.Equal(t, -1000.0, cp.Y, "nearest checkpoint first")

	cp, ok = q.Pass(-3500)
	require.True(t, ok)
	assert.Equal(t, -2000.0, cp.Y)
	cp, ok = q.Pass(-3500)
	require.True(t, ok)
	assert.Equal(t, -3000.0, cp.Y)
	_, ok = q.Pass(-3500)
	assert.False(t, ok)

	// going backwards never brings a checkpoint back
	_, ok = q.Pass(0)
	assert.False(t, ok)
	next, ok := q.Next()
	require.True(t, ok)
	assert.Equal(t, -4000.0, next.Y)

	for _, y := range []float64{-4001, -5001} {
		_, ok = q.Pass(y)
		assert.True(t, ok)
	}
	_, ok = q.Next()
	assert.False(t, ok)
	_, ok = q.Pass(-1e9)
	assert.False(t, ok, "an empty queue is a no-op")
}

func TestIdealInterval(t *testing.T) {
	d := IdealInterval(100000, 15, 60, 100)
	assert.InDelta(t, 1.1111, d.Seconds(), 1e-4)
	assert.Zero(t, IdealInterval(100000, 0, 60, 100))
	assert.Zero(t, IdealInterval(100000, 15, 60, 0))
}

func TestIdealPaceScoresMaximum(t *testing.T) {
	ideal := IdealInterval(100000, 15, 60, 100)
	s := NewScorer(DefaultConfig(), ideal)
	now := time.Unix(1000, 0)

	_, scored := s.Cross(now)
	assert.False(t, scored, "the first checkpoint starts the clock")

	for i := 0; i < 5; i++ {
		now = now.Add(ideal)
		score, scored := s.Cross(now)
		require.True(t, scored)
		assert.Equal(t, 5.0, score)
	}

	assert.True(t, s.Full())
	assert.Equal(t, []float64{5, 5, 5, 5, 5}, s.recent)
	assert.Equal(t, 5.0, s.Average())
	assert.Equal(t, 25.0, s.Total())
}

func TestScoreIsCappedAndRounded(t *testing.T) {
	s := NewScorer(DefaultConfig(), time.Second)
	now := time.Unix(0, 0)
	s.Cross(now)

	score, _ := s.Cross(now.Add(500 * time.Millisecond))
	assert.Equal(t, 5.0, score, "faster than ideal is capped")

	score, _ = s.Cross(now.Add(500*time.Millisecond + 3*time.Second))
	assert.Equal(t, 1.667, score)
	assert.Equal(t, 1.667, s.LastScore())

	score, _ = s.Cross(now.Add(500*time.Millisecond + 3*time.Second))
	assert.Equal(t, 5.0, score, "no time elapsed")
}

func TestWindowSlides(t *testing.T) {
	s := NewScorer(DefaultConfig(), time.Second)
	now := time.Unix(0, 0)
	s.Cross(now)

	intervals := []time.Duration{1, 2, 4, 5, 10, 1}
	for _, d := range intervals {
		now = now.Add(d * time.Second)
		s.Cross(now)
	}
	assert.Equal(t, []float64{2.5, 1.25, 1, 0.5, 5}, s.recent)
	assert.InDelta(t, 2.05, s.Average(), 1e-9)
}

func TestAdjust(t *testing.T) {
	s := NewScorer(DefaultConfig(), time.Second)
	now := time.Unix(0, 0)
	s.Cross(now)

	speed, challenge := s.Adjust(15)
	assert.Equal(t, 15.0, speed)
	assert.False(t, challenge, "not enough scores yet")

	for i := 0; i < 5; i++ {
		now = now.Add(time.Second)
		s.Cross(now)
	}
	speed, challenge = s.Adjust(15)
	assert.Equal(t, 20.0, speed)
	assert.True(t, challenge)

	for i := 0; i < 5; i++ {
		now = now.Add(2 * time.Second)
		s.Cross(now)
	}
	speed, challenge = s.Adjust(15)
	assert.Equal(t, 15.0, speed)
	assert.False(t, challenge)
}

func TestPlacement(t *testing.T) {
	assert.Equal(t, 1, Placement(-500, nil))
	assert.Equal(t, 1, Placement(-500, []float64{-400, 0, -500}))
	assert.Equal(t, 3, Placement(-500, []float64{-501, -400, -900, 0}))
}

func TestOrdinal(t *testing.T) {
	tests := map[int]string{
		1: "1st", 2: "2nd", 3: "3rd", 4: "4th", 5: "5th",
		11: "11th", 12: "12th", 13: "13th", 21: "21st", 102: "102nd",
	}
	for n, want := range tests {
		assert.Equal(t, want, Ordinal(n))
	}
}

func TestFormatElapsed(t *testing.T) {
	assert.Equal(t, "0:00:00.000", FormatElapsed(0))
	assert.Equal(t, "0:01:05.250", FormatElapsed(65*time.Second+250*time.Millisecond))
	assert.Equal(t, "2:03:04.005", FormatElapsed(2*time.Hour+3*time.Minute+4*time.Second+5*time.Millisecond))
	assert.Equal(t, "0:00:00.000", FormatElapsed(-time.Second))
}
