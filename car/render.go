package car

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Colours used when no car artwork is available
var (
	PlayerColor   = color.RGBA{200, 30, 30, 255}
	OpponentColor = color.RGBA{240, 180, 20, 255}
	TrafficColor  = color.RGBA{60, 110, 200, 255}
)

// RenderCar draws a top-down car, bonnet up, filling a width x length image
func RenderCar(width, length int, body color.Color) *ebiten.Image {
	carWidth := float64(width)
	carHeight := float64(length)

	carImg := ebiten.NewImage(width, length)
	carImg.Fill(body)

	// Outline
	outlineColor := color.RGBA{20, 20, 20, 255}
	outlineWidth := 2.0
	fillRect(carImg, 0, 0, carWidth, outlineWidth, outlineColor)
	fillRect(carImg, 0, carHeight-outlineWidth, carWidth, outlineWidth, outlineColor)
	fillRect(carImg, 0, 0, outlineWidth, carHeight, outlineColor)
	fillRect(carImg, carWidth-outlineWidth, 0, outlineWidth, carHeight, outlineColor)

	// Windshield at the front, rear window behind the roof
	glass := color.RGBA{150, 200, 255, 200}
	fillRect(carImg, carWidth*0.2, carHeight*0.18, carWidth*0.6, carHeight*0.18, glass)
	fillRect(carImg, carWidth*0.25, carHeight*0.72, carWidth*0.5, carHeight*0.1, glass)

	// Wheels stick out of the body by half their width
	wheelColor := color.RGBA{30, 30, 30, 255}
	wheelWidth := carWidth * 0.15
	wheelHeight := carHeight * 0.16
	for _, wy := range []float64{carHeight * 0.1, carHeight - wheelHeight - carHeight*0.1} {
		fillRect(carImg, 0, wy, wheelWidth, wheelHeight, wheelColor)
		fillRect(carImg, carWidth-wheelWidth, wy, wheelWidth, wheelHeight, wheelColor)
	}

	return carImg
}

func fillRect(dst *ebiten.Image, x, y, w, h float64, c color.Color) {
	if w < 1 || h < 1 {
		return
	}
	part := ebiten.NewImage(int(w), int(h))
	part.Fill(c)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	dst.DrawImage(part, op)
}
