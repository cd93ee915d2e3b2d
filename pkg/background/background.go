package background

import (
	"image"
	"image/color"
	"math"
	"math/rand"
)

// Generator paints the scrolling backdrop used when no background artwork is available.
// The road is painted in so the tile lines up with the road corridor.
type Generator struct {
	Width  int
	Height int

	RoadX     int // Left edge of the road in screen pixels
	RoadWidth int
	Lanes     int
}

var (
	grassColor   = color.RGBA{30, 100, 30, 255}
	asphaltColor = color.RGBA{60, 60, 65, 255}
	kerbColor    = color.RGBA{230, 230, 230, 255}
	dashColor    = color.RGBA{240, 220, 120, 255}
)

const (
	kerbWidth  = 4
	dashWidth  = 4
	dashLength = 40
)

// NewGenerator creates a new background generator
func NewGenerator(width, height, roadX, roadWidth, lanes int) *Generator {
	return &Generator{
		Width:     width,
		Height:    height,
		RoadX:     roadX,
		RoadWidth: roadWidth,
		Lanes:     lanes,
	}
}

// Generate creates a forest verge either side of a marked road.
// The height should be a multiple of twice the dash length so stacked tiles keep the dashes in step.
func (g *Generator) Generate(seed int64) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	rng := rand.New(rand.NewSource(seed))

	g.fill(img, 0, 0, g.Width, g.Height, grassColor)

	// Noise in the grass
	for i := 0; i < g.Width*g.Height/10; i++ {
		x := rng.Intn(g.Width)
		y := rng.Intn(g.Height)
		shade := uint8(80 + rng.Intn(60))
		g.set(img, x, y, color.RGBA{30, shade, 30, 255})
	}

	// Vegetation, top to bottom for correct layering
	for y := 0; y < g.Height; y += 10 {
		density := 0.5 + 0.3*math.Sin(float64(y)*0.01)

		for x := 0; x < g.Width; x += 5 + rng.Intn(15) {
			if rng.Float64() > density {
				continue
			}

			drawX := x + rng.Intn(10) - 5
			drawY := y + rng.Intn(10) - 5
			if g.OnRoad(drawX) {
				continue
			}

			if rng.Float64() < 0.3 {
				g.drawTree(img, drawX, drawY, rng)
			} else {
				g.drawBush(img, drawX, drawY, rng)
			}
		}
	}

	g.drawRoad(img)
	return img
}

// OnRoad reports whether the screen column x lies on the road
func (g *Generator) OnRoad(x int) bool {
	return x >= g.RoadX && x < g.RoadX+g.RoadWidth
}

// drawRoad paints the asphalt over the verge, with kerbs and dashed lane lines
func (g *Generator) drawRoad(img *image.RGBA) {
	g.fill(img, g.RoadX, 0, g.RoadWidth, g.Height, asphaltColor)
	g.fill(img, g.RoadX, 0, kerbWidth, g.Height, kerbColor)
	g.fill(img, g.RoadX+g.RoadWidth-kerbWidth, 0, kerbWidth, g.Height, kerbColor)

	if g.Lanes < 2 {
		return
	}
	laneWidth := g.RoadWidth / g.Lanes
	for lane := 1; lane < g.Lanes; lane++ {
		x := g.RoadX + lane*laneWidth - dashWidth/2
		for y := 0; y < g.Height; y += 2 * dashLength {
			g.fill(img, x, y, dashWidth, dashLength, dashColor)
		}
	}
}

// drawTree draws a simple pine seen from above and slightly south
func (g *Generator) drawTree(img *image.RGBA, x, y int, rng *rand.Rand) {
	height := 40 + rng.Intn(30)
	width := 20 + rng.Intn(15)

	trunkColor := color.RGBA{60, 40, 20, 255}
	trunkW := 4 + rng.Intn(4)
	for ty := 0; ty < height/3; ty++ {
		for tx := -trunkW / 2; tx < trunkW/2; tx++ {
			g.set(img, x+tx, y-ty, trunkColor)
		}
	}

	leavesColor := color.RGBA{
		uint8(20 + rng.Intn(30)),
		uint8(80 + rng.Intn(60)),
		uint8(20 + rng.Intn(30)),
		255,
	}

	for l := 0; l < 3; l++ {
		layerY := y - (height / 3) - (l * height / 4)
		layerW := max(width-(l*5), 5)

		for ly := 0; ly < height/3; ly++ {
			rowW := layerW * (height/3 - ly) / (height / 3)
			for lx := -rowW / 2; lx < rowW/2; lx++ {
				g.set(img, x+lx, layerY-ly, leavesColor)
			}
		}
	}
}

// drawBush draws a round bush
func (g *Generator) drawBush(img *image.RGBA, x, y int, rng *rand.Rand) {
	radius := 5 + rng.Intn(10)
	c := color.RGBA{
		uint8(40 + rng.Intn(40)),
		uint8(100 + rng.Intn(50)),
		uint8(40 + rng.Intn(40)),
		255,
	}

	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy <= radius*radius {
				g.set(img, x+dx, y+dy, c)
			}
		}
	}
}

func (g *Generator) fill(img *image.RGBA, x, y, w, h int, c color.RGBA) {
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			g.set(img, px, py, c)
		}
	}
}

// set clips to the tile
func (g *Generator) set(img *image.RGBA, x, y int, c color.RGBA) {
	if x >= 0 && x < g.Width && y >= 0 && y < g.Height {
		img.SetRGBA(x, y, c)
	}
}
