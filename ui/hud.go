package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/bitmapfont/v3"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/golangdaddy/laneracer/game"
	"github.com/golangdaddy/laneracer/models"
)

// MPHPerUnitPerFrame converts world units per frame to the speed shown on the HUD
const MPHPerUnitPerFrame = 12.5

const hudMargin = 16.0

var (
	hudText     = color.RGBA{240, 240, 240, 255}
	hudDim      = color.RGBA{200, 200, 200, 255}
	hudPanel    = color.RGBA{20, 20, 30, 200}
	hudBorder   = color.RGBA{100, 100, 120, 255}
	hudGo       = color.RGBA{100, 255, 100, 255}
	hudCount    = color.RGBA{255, 255, 100, 255}
	hudSlow     = color.RGBA{100, 255, 100, 255}
	hudFast     = color.RGBA{255, 255, 100, 255}
	hudVeryFast = color.RGBA{255, 100, 100, 255}
)

var face = text.NewGoXFace(bitmapfont.Face)

// drawHUD lays out the overlay: clock top-left, score top-right,
// placement and speed along the bottom, countdown in the middle.
func drawHUD(screen *ebiten.Image, h models.HUD) {
	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	if h.Elapsed != "" {
		drawTextAt(screen, h.Elapsed, hudMargin, hudMargin, 2, hudText)
	}

	score := fmt.Sprintf("SCORE %.1f", h.Score)
	drawTextAt(screen, score, width-hudMargin-textWidth(score, 2), hudMargin, 2, hudText)
	if h.LastScore > 0 {
		last := fmt.Sprintf("+%.3f", h.LastScore)
		drawTextAt(screen, last, width-hudMargin-textWidth(last, 1.5), hudMargin+36, 1.5, hudDim)
	}

	if h.Placement != "" {
		drawTextAt(screen, h.Placement, width-hudMargin-textWidth(h.Placement, 4), height-hudMargin-64, 4, hudText)
	}
	if h.Leader != "" {
		leader := "LEADER " + h.Leader
		drawTextAt(screen, leader, width-hudMargin-textWidth(leader, 1.5), height-hudMargin-90, 1.5, hudDim)
	}
	drawSpeedometer(screen, hudMargin, height-hudMargin-70, h.Speed*MPHPerUnitPerFrame)

	switch {
	case h.Countdown != "":
		clr := hudCount
		if h.Countdown == game.GoLabel {
			clr = hudGo
		}
		drawCentred(screen, h.Countdown, height/2-48, 6, clr)
	case h.Waiting:
		drawCentred(screen, "PRESS SPACE TO RACE", height/2-16, 2, hudText)
		drawCentred(screen, "ESC TO QUIT", height/2+24, 1.5, hudDim)
		if h.RaceNumber > 1 || h.Elapsed != "" {
			drawCentred(screen, fmt.Sprintf("RACE %d", h.RaceNumber), height/2-64, 2, hudDim)
		}
		if h.Completed > 0 {
			record := fmt.Sprintf("WON %d OF %d (%.0f%%)  BEST %s", h.Wins, h.Completed, h.WinRate, h.BestTime)
			drawCentred(screen, record, height/2+56, 1.5, hudDim)
		}
	}
}

// drawSpeedometer draws a small panel with the speed in MPH
func drawSpeedometer(screen *ebiten.Image, x, y, speedMPH float64) {
	const width, height = 140.0, 70.0

	vector.DrawFilledRect(screen, float32(x), float32(y), width, height, hudPanel, false)
	vector.StrokeRect(screen, float32(x), float32(y), width, height, 2, hudBorder, false)

	// Green for normal, yellow for fast, red for very fast
	clr := hudSlow
	if speedMPH >= 250 {
		clr = hudVeryFast
	} else if speedMPH >= 190 {
		clr = hudFast
	}
	speed := fmt.Sprintf("%.0f", speedMPH)
	drawTextAt(screen, speed, x+width/2-textWidth(speed, 3)/2, y+8, 3, clr)
	drawTextAt(screen, "MPH", x+width/2-textWidth("MPH", 1.5)/2, y+height-26, 1.5, hudDim)
}

func drawCentred(screen *ebiten.Image, str string, y, size float64, clr color.Color) {
	x := float64(screen.Bounds().Dx())/2 - textWidth(str, size)/2
	drawTextAt(screen, str, x, y, size, clr)
}

func textWidth(str string, size float64) float64 {
	return text.Advance(str, face) * size
}

func drawTextAt(screen *ebiten.Image, str string, x, y, size float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(size, size)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, str, face, op)
}
