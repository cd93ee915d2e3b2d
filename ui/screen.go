package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/laneracer/models"
)

// Screen collects what the race presents during Update and draws it in Draw
type Screen struct {
	textures *Textures
	visuals  []models.Visual
	hud      models.HUD
	Width    int
	Height   int
}

// NewScreen creates a screen drawing with the given textures
func NewScreen(textures *Textures, width, height int) *Screen {
	return &Screen{
		textures: textures,
		Width:    width,
		Height:   height,
	}
}

// Begin drops the previous frame; call it before advancing the race
func (s *Screen) Begin() {
	s.visuals = s.visuals[:0]
}

// Present queues one object, drawn in the order presented
func (s *Screen) Present(v models.Visual) {
	s.visuals = append(s.visuals, v)
}

// PresentHUD replaces the text overlay
func (s *Screen) PresentHUD(h models.HUD) {
	s.hud = h
}

// Draw renders the queued objects, then the HUD
func (s *Screen) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})

	for _, v := range s.visuals {
		img := s.textures.Get(v)
		if img == nil {
			continue
		}
		screen.DrawImage(img, fitTo(img, v))
	}

	drawHUD(screen, s.hud)
}

// fitTo scales the image onto the visual's screen rectangle
func fitTo(img *ebiten.Image, v models.Visual) *ebiten.DrawImageOptions {
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(v.W/float64(b.Dx()), v.H/float64(b.Dy()))
	op.GeoM.Translate(v.X, v.Y)
	op.Filter = ebiten.FilterLinear
	return op
}
