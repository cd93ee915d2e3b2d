package road

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/laneracer/collision"
)

func TestNewFiveLanes(t *testing.T) {
	r := New(0, 360, 100000, 5, 600, 700)

	want := []Lane{
		{Index: 0, Left: 0, Right: 72},
		{Index: 1, Left: 72, Right: 144},
		{Index: 2, Left: 144, Right: 216},
		{Index: 3, Left: 216, Right: 288},
		{Index: 4, Left: 288, Right: 360},
	}
	if diff := cmp.Diff(want, r.Lanes); diff != "" {
		t.Errorf("lanes mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 36.0, r.Lanes[0].Center())
	assert.Equal(t, 72.0, r.Lanes[3].Width())
}

func TestIsObjectInStraddlingDivider(t *testing.T) {
	r := New(0, 360, 100000, 5, 600, 700)
	obj := collision.Rect{X: 70, Y: -500, W: 10, H: 100}

	assert.True(t, r.Lanes[0].IsObjectIn(obj))
	assert.True(t, r.Lanes[1].IsObjectIn(obj))
	assert.False(t, r.Lanes[2].IsObjectIn(obj))

	lane, ok := r.LaneObjectIsIn(obj)
	require.True(t, ok)
	assert.Equal(t, 0, lane.Index)
}

func TestIsObjectInInclusiveEdges(t *testing.T) {
	lane := Lane{Index: 1, Left: 72, Right: 144}
	assert.True(t, lane.IsObjectIn(collision.Rect{X: 22, W: 50}))  // right edge touches Left
	assert.True(t, lane.IsObjectIn(collision.Rect{X: 144, W: 50})) // left edge touches Right
	assert.False(t, lane.IsObjectIn(collision.Rect{X: 21, W: 50}))
	assert.False(t, lane.IsObjectIn(collision.Rect{X: 145, W: 50}))
}

func TestLanesTileTheRoad(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 200; i++ {
		width := 1 + rng.Float64()*2000
		n := 1 + rng.Intn(12)
		r := New(0, width, 1000, n, 600, 700)

		require.Len(t, r.Lanes, n)
		assert.Equal(t, 0.0, r.Lanes[0].Left)
		assert.Equal(t, width, r.Lanes[n-1].Right)
		for j := 1; j < n; j++ {
			assert.Equal(t, r.Lanes[j-1].Right, r.Lanes[j].Left, "gap or overlap between %d and %d", j-1, j)
		}

		for k := 0; k < 50; k++ {
			x := rng.Float64() * width
			owners := 0
			for _, lane := range r.Lanes {
				if lane.Contains(x) {
					owners++
				}
			}
			assert.Equal(t, 1, owners, "x=%v width=%v lanes=%d", x, width, n)
		}
	}
}

func TestBoundaryTieGoesToLowerLane(t *testing.T) {
	r := New(0, 360, 1000, 5, 600, 700)
	for i, x := range []float64{72, 144, 216, 288} {
		lane, ok := r.LaneObjectIsIn(collision.Rect{X: x, W: 0})
		require.True(t, ok)
		assert.Equal(t, i, lane.Index, "x=%v", x)
		assert.True(t, r.Lanes[i+1].Contains(x), "half-open lane for x=%v", x)
	}

	_, ok := r.LaneObjectIsIn(collision.Rect{X: 400, W: 50})
	assert.False(t, ok)
}

func TestAdjacentLanes(t *testing.T) {
	r := New(120, 360, 1000, 5, 600, 700)

	indexes := func(lanes []Lane) []int {
		out := []int{}
		for _, l := range lanes {
			out = append(out, l.Index)
		}
		return out
	}

	assert.Equal(t, []int{1}, indexes(r.AdjacentLanes(r.Lanes[0])))
	assert.Equal(t, []int{1, 3}, indexes(r.AdjacentLanes(r.Lanes[2])))
	assert.Equal(t, []int{3}, indexes(r.AdjacentLanes(r.Lanes[4])))

	single := New(0, 100, 1000, 1, 600, 700)
	assert.Empty(t, single.AdjacentLanes(single.Lanes[0]))
}

func TestBounds(t *testing.T) {
	r := New(120, 360, 100000, 5, 600, 700)
	assert.Equal(t, collision.Rect{X: 120, Y: -100000, W: 360, H: 100000}, r.Bounds())
}

func TestScrollKeepsTwoTilesCoveringWindow(t *testing.T) {
	const screenH = 700.0
	r := New(120, 360, 100000, 5, 600, screenH)

	for offset := 0.0; offset < 20*screenH; offset += 15 {
		r.Scroll(offset)
		tiles := r.Backdrops()

		lowerTop := tiles[0].Y + offset
		upperTop := tiles[1].Y + offset
		assert.Less(t, lowerTop, screenH, "lower tile scrolled off at offset %v", offset)
		assert.Equal(t, tiles[0].Y-screenH, tiles[1].Y, "tiles not stacked at offset %v", offset)
		assert.LessOrEqual(t, upperTop, 0.0, "gap above upper tile at offset %v", offset)
	}
}

func TestScrollSwapsOnce(t *testing.T) {
	r := New(0, 360, 1000, 5, 600, 700)
	before := r.Backdrops()

	r.Scroll(699)
	assert.Equal(t, before, r.Backdrops())

	r.Scroll(700)
	after := r.Backdrops()
	assert.Equal(t, before[1], after[0])
	assert.Equal(t, -1400.0, after[1].Y)
}
