package background

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateIsDeterministic(t *testing.T) {
	g := NewGenerator(600, 160, 120, 360, 5)

	a := g.Generate(7)
	b := g.Generate(7)
	c := g.Generate(8)

	assert.Equal(t, a.Pix, b.Pix)
	assert.NotEqual(t, a.Pix, c.Pix)
}

func TestRoadIsPaintedOverTheVerge(t *testing.T) {
	g := NewGenerator(600, 160, 120, 360, 5)
	img := g.Generate(1)
	require.Equal(t, 600, img.Bounds().Dx())
	require.Equal(t, 160, img.Bounds().Dy())

	// Middle of lane 0, away from kerb and dashes
	assert.Equal(t, asphaltColor, img.RGBAAt(160, 20))
	assert.Equal(t, kerbColor, img.RGBAAt(121, 50))
	assert.Equal(t, kerbColor, img.RGBAAt(478, 50))

	// Lane line between lanes 0 and 1: dash then gap
	assert.Equal(t, dashColor, img.RGBAAt(192, 10))
	assert.Equal(t, asphaltColor, img.RGBAAt(192, 50))
}

func TestSingleLaneHasNoDashes(t *testing.T) {
	g := NewGenerator(200, 80, 50, 100, 1)
	img := g.Generate(3)

	for y := 0; y < 80; y++ {
		assert.NotEqual(t, dashColor, img.RGBAAt(100, y))
	}
}

func TestOnRoad(t *testing.T) {
	g := NewGenerator(600, 80, 120, 360, 5)
	assert.False(t, g.OnRoad(119))
	assert.True(t, g.OnRoad(120))
	assert.True(t, g.OnRoad(479))
	assert.False(t, g.OnRoad(480))
}

func TestVergeIsGreen(t *testing.T) {
	g := NewGenerator(600, 80, 120, 360, 5)
	img := g.Generate(5)

	for _, x := range []int{5, 60, 119, 480, 599} {
		px := img.RGBAAt(x, 40)
		assert.NotEqual(t, asphaltColor, px)
		assert.NotEqual(t, color.RGBA{}, px)
	}
}
