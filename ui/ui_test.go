package ui

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/golangdaddy/laneracer/game"
	"github.com/golangdaddy/laneracer/models"
)

var _ game.Presenter = (*Screen)(nil)

func TestScreenKeepsOneFrame(t *testing.T) {
	s := NewScreen(nil, 600, 700)

	s.Begin()
	s.Present(models.Visual{ID: 1, Kind: models.KindPlayer, Name: "player"})
	s.Present(models.Visual{ID: 2, Kind: models.KindTraffic, Name: "traffic"})
	s.PresentHUD(models.HUD{Placement: "2nd"})
	require.Len(t, s.visuals, 2)
	assert.Equal(t, 1, s.visuals[0].ID)
	assert.Equal(t, "2nd", s.hud.Placement)

	s.Begin()
	s.Present(models.Visual{ID: 3, Kind: models.KindExplosion, Name: "explosion"})
	require.Len(t, s.visuals, 1)
	assert.Equal(t, 3, s.visuals[0].ID)
	assert.Equal(t, "2nd", s.hud.Placement)
}

func TestFilesCoverEveryPresentedName(t *testing.T) {
	for _, name := range []string{"background", "player", "opponent", "traffic", "checkpoint", "start", "finish"} {
		assert.Contains(t, Files, name)
	}
	for _, k := range []models.Kind{models.KindPlayer, models.KindAIOpponent, models.KindTraffic} {
		assert.Contains(t, Files, k.String())
	}
}

func TestExplosionFrame(t *testing.T) {
	assert.Equal(t, filepath.Join("explode-alpha", "explode-alpha-0.png"), ExplosionFrame(0))
	assert.Equal(t, filepath.Join("explode-alpha", "explode-alpha-29.png"), ExplosionFrame(29))
}

func TestChequer(t *testing.T) {
	img := Chequer(4, 2, 10)
	require.Equal(t, 40, img.Bounds().Dx())
	require.Equal(t, 20, img.Bounds().Dy())

	white := color.RGBA{255, 255, 255, 255}
	black := color.RGBA{0, 0, 0, 255}
	assert.Equal(t, white, img.RGBAAt(0, 0))
	assert.Equal(t, black, img.RGBAAt(10, 0))
	assert.Equal(t, black, img.RGBAAt(0, 10))
	assert.Equal(t, white, img.RGBAAt(15, 15))
}

func TestExplosionGrowsAndFades(t *testing.T) {
	first := ExplosionImage(64, 0, 30)
	last := ExplosionImage(64, 29, 30)

	// Corner stays clear, the fireball reaches further out by the last frame
	assert.Zero(t, first.RGBAAt(0, 0).A)
	assert.Zero(t, first.RGBAAt(32, 8).A)
	assert.NotZero(t, last.RGBAAt(32, 8).A)

	assert.Greater(t, first.RGBAAt(32, 32).A, last.RGBAAt(32, 32).A)
}

func TestExplosionWithoutFrames(t *testing.T) {
	img := ExplosionImage(8, 0, 0)
	assert.Zero(t, img.RGBAAt(4, 4).A)
}
