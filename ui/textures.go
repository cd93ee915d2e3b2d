package ui

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"math"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/golangdaddy/laneracer/car"
	"github.com/golangdaddy/laneracer/config"
	"github.com/golangdaddy/laneracer/models"
	"github.com/golangdaddy/laneracer/pkg/background"
)

// Files maps visual names to artwork in the asset directory
var Files = map[string]string{
	"background": "background4.png",
	"player":     "player-car.png",
	"opponent":   "ai-0.png",
	"traffic":    "car-0.png",
	"checkpoint": "sensor.png",
	"start":      "start.png",
	"finish":     "finish.png",
}

// ExplosionFrame returns the file of one explosion animation frame
func ExplosionFrame(i int) string {
	return filepath.Join("explode-alpha", fmt.Sprintf("explode-alpha-%d.png", i))
}

// IconFile is the window icon
const IconFile = "racing-game-icon.png"

// Textures holds one image per visual name plus the explosion frames
type Textures struct {
	images    map[string]*ebiten.Image
	explosion []*ebiten.Image
}

// LoadTextures reads every texture from the asset directory.
// Anything missing is replaced with a generated image and a warning is logged.
func LoadTextures(cfg *config.Config, seed int64) *Textures {
	t := &Textures{images: make(map[string]*ebiten.Image)}
	dir := cfg.Assets

	for name, file := range Files {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, file))
		if err != nil {
			log.Printf("Warning: texture %s: %v, using generated image", name, err)
			img = fallback(cfg, name, seed)
		}
		t.images[name] = img
	}

	frames := make([]*ebiten.Image, cfg.Explosion.Frames)
	for i := range frames {
		img, _, err := ebitenutil.NewImageFromFile(filepath.Join(dir, ExplosionFrame(i)))
		if err != nil {
			if i == 0 {
				log.Printf("Warning: explosion frames: %v, using generated frames", err)
			}
			img = ebiten.NewImageFromImage(ExplosionImage(64, i, len(frames)))
		}
		frames[i] = img
	}
	t.explosion = frames

	return t
}

// Get returns the texture for a visual, nil when there is none
func (t *Textures) Get(v models.Visual) *ebiten.Image {
	if v.Kind == models.KindExplosion {
		if len(t.explosion) == 0 {
			return nil
		}
		frame := min(max(v.Frame, 0), len(t.explosion)-1)
		return t.explosion[frame]
	}
	return t.images[v.Name]
}

func fallback(cfg *config.Config, name string, seed int64) *ebiten.Image {
	switch name {
	case "background":
		roadX := int(float64(cfg.Window.Width)/2 - cfg.Road.Width/2)
		g := background.NewGenerator(cfg.Window.Width, cfg.Window.Height, roadX, int(cfg.Road.Width), cfg.Road.Lanes)
		return ebiten.NewImageFromImage(g.Generate(seed))
	case "player":
		return car.RenderCar(int(cfg.Player.Width), int(cfg.Player.Length), car.PlayerColor)
	case "opponent":
		return car.RenderCar(int(cfg.Opponent.Width), int(cfg.Opponent.Length), car.OpponentColor)
	case "traffic":
		return car.RenderCar(int(cfg.Traffic.Width), int(cfg.Traffic.Length), car.TrafficColor)
	case "checkpoint":
		img := ebiten.NewImage(1, 1)
		img.Fill(color.RGBA{80, 200, 255, 120})
		return img
	}
	return ebiten.NewImageFromImage(Chequer(8, 2, 16))
}

// Chequer draws a black and white flag pattern of cols x rows squares
func Chequer(cols, rows, size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols*size, rows*size))
	for y := 0; y < rows*size; y++ {
		for x := 0; x < cols*size; x++ {
			c := color.RGBA{255, 255, 255, 255}
			if (x/size+y/size)%2 == 1 {
				c = color.RGBA{0, 0, 0, 255}
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// ExplosionImage draws frame i of n: a fireball that grows and fades out
func ExplosionImage(size, i, n int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	if n <= 0 {
		return img
	}
	progress := float64(i+1) / float64(n)
	radius := float64(size) / 2 * math.Sqrt(progress)
	alpha := 1 - progress*0.8
	centre := float64(size) / 2

	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-centre, float64(y)+0.5-centre)
			if d > radius {
				continue
			}
			// Yellow core, red rim
			heat := 1 - d/radius
			a := alpha * 255
			img.SetRGBA(x, y, color.RGBA{
				R: uint8(a),
				G: uint8(a * (0.3 + 0.6*heat)),
				B: uint8(a * 0.1 * heat),
				A: uint8(a),
			})
		}
	}
	return img
}
