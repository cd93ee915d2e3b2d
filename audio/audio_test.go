package audio

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/laneracer/models"
)

type fadeStep struct {
	volume float64
	done   bool
}

func TestFaderIsLinear(t *testing.T) {
	f := newFader()
	f.begin(models.CueSkid, 500*time.Millisecond)

	t0 := time.Unix(100, 0)
	var got []fadeStep
	for _, offset := range []time.Duration{0, 250 * time.Millisecond, 500 * time.Millisecond, time.Second} {
		f.step(t0.Add(offset), func(c models.Cue, volume float64, done bool) {
			assert.Equal(t, models.CueSkid, c)
			got = append(got, fadeStep{volume, done})
		})
	}

	require.Len(t, got, 3)
	assert.Equal(t, fadeStep{1, false}, got[0])
	assert.InDelta(t, 0.5, got[1].volume, 1e-9)
	assert.False(t, got[1].done)
	assert.Equal(t, fadeStep{0, true}, got[2])
}

func TestFaderZeroDurationStopsAtOnce(t *testing.T) {
	f := newFader()
	f.begin(models.CueExplosion, 0)

	calls := 0
	f.step(time.Unix(0, 0), func(_ models.Cue, volume float64, done bool) {
		calls++
		assert.True(t, done)
		assert.Zero(t, volume)
	})
	assert.Equal(t, 1, calls)
}

func TestFaderCancel(t *testing.T) {
	f := newFader()
	f.begin(models.CueEngine, time.Second)
	f.cancel(models.CueEngine)

	f.step(time.Unix(0, 0), func(models.Cue, float64, bool) {
		t.Fatal("cancelled fade still stepped")
	})
}

func TestNew(t *testing.T) {
	b, err := New("none", "data")
	require.NoError(t, err)
	assert.Equal(t, Nop{}, b)

	b, err = New("", "data")
	require.NoError(t, err)
	assert.Equal(t, Nop{}, b)

	_, err = New("bogus", "data")
	assert.ErrorContains(t, err, "bogus")
}

func TestFilesCoverEveryCue(t *testing.T) {
	for _, c := range []models.Cue{models.CueEngine, models.CueExplosion, models.CueSkid} {
		assert.Contains(t, Files, c)
	}
}
