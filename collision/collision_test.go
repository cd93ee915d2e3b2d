package collision

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	r     Rect
	shape Shape
}

func (b body) Bounds() Rect          { return b.r }
func (b body) CollisionShape() Shape { return b.shape }

func box(x, y, w, h float64) body {
	return body{r: Rect{X: x, Y: y, W: w, H: h}, shape: Box}
}

func container(x, y, w, h float64) body {
	return body{r: Rect{X: x, Y: y, W: w, H: h}, shape: InvertedBox}
}

func TestBoxBoxSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 2000; i++ {
		a := box(rng.Float64()*400-200, rng.Float64()*400-200, 1+rng.Float64()*120, 1+rng.Float64()*120)
		b := box(rng.Float64()*400-200, rng.Float64()*400-200, 1+rng.Float64()*120, 1+rng.Float64()*120)

		ab, err := Check(a, b)
		require.NoError(t, err)
		ba, err := Check(b, a)
		require.NoError(t, err)
		assert.Equal(t, ab, ba, "a=%+v b=%+v", a.r, b.r)
	}
}

func TestBoxBox(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"same spot", Rect{0, 0, 50, 100}, Rect{0, 0, 50, 100}, true},
		{"side by side touching", Rect{0, 0, 50, 100}, Rect{50, 0, 50, 100}, false},
		{"overlapping lanes", Rect{0, 0, 50, 100}, Rect{40, 0, 50, 100}, true},
		{"bumper to bumper", Rect{0, 0, 50, 100}, Rect{0, 100, 50, 100}, false},
		{"nose into tail", Rect{0, 0, 50, 100}, Rect{0, 99, 50, 100}, true},
		{"far apart", Rect{0, 0, 50, 100}, Rect{500, -900, 50, 100}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BoxBox(tt.a, tt.b))
		})
	}
}

func TestBoxInvertedBoxContainment(t *testing.T) {
	road := container(120, -100000, 360, 100000)

	t.Run("fully inside never collides", func(t *testing.T) {
		rng := rand.New(rand.NewSource(3))
		for i := 0; i < 1000; i++ {
			x := 120 + rng.Float64()*(360-50)
			y := -100000 + rng.Float64()*(100000-100)
			hit, err := Check(box(x, y, 50, 100), road)
			require.NoError(t, err)
			assert.False(t, hit)
		}
	})

	t.Run("any part outside always collides", func(t *testing.T) {
		outside := []body{
			box(119, -500, 50, 100),    // left edge
			box(431, -500, 50, 100),    // right edge
			box(200, -100001, 50, 100), // past the far end
			box(200, -99, 50, 100),     // behind the start
			box(-1000, 5000, 50, 100),  // nowhere near
		}
		for _, b := range outside {
			hit, err := Check(b, road)
			require.NoError(t, err)
			assert.True(t, hit, "%+v", b.r)

			hit, err = Check(road, b)
			require.NoError(t, err)
			assert.True(t, hit, "swapped %+v", b.r)
		}
	})

	t.Run("touching the edge from inside is contained", func(t *testing.T) {
		hit, err := Check(box(120, -100, 50, 100), road)
		require.NoError(t, err)
		assert.False(t, hit)
		hit, err = Check(box(430, -100000, 50, 100), road)
		require.NoError(t, err)
		assert.False(t, hit)
	})
}

func TestCheckNonSolid(t *testing.T) {
	ghost := body{r: Rect{0, 0, 50, 100}, shape: None}
	for _, other := range []body{box(0, 0, 50, 100), container(0, 0, 10, 10), ghost} {
		hit, err := Check(ghost, other)
		require.NoError(t, err)
		assert.False(t, hit)
		hit, err = Check(other, ghost)
		require.NoError(t, err)
		assert.False(t, hit)
	}
}

func TestCheckInvalidPairing(t *testing.T) {
	_, err := Check(container(0, 0, 10, 10), container(0, 0, 10, 10))
	require.ErrorIs(t, err, ErrInvalidShapes)
	assert.Contains(t, err.Error(), "inverted-box x inverted-box")

	_, err = Check(body{shape: Shape(9)}, box(0, 0, 1, 1))
	require.ErrorIs(t, err, ErrInvalidShapes)
}
