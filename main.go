package main

import (
	"flag"
	"image"
	"log"
	"math/rand"
	"path/filepath"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"

	"github.com/golangdaddy/laneracer/audio"
	"github.com/golangdaddy/laneracer/config"
	"github.com/golangdaddy/laneracer/game"
	"github.com/golangdaddy/laneracer/input"
	"github.com/golangdaddy/laneracer/ui"
)

// Game implements ebiten.Game interface.
type Game struct {
	race     *game.Race
	screen   *ui.Screen
	keyboard *input.Keyboard
	sound    audio.Backend
	width    int
	height   int
}

// Update proceeds the game state.
// Update is called every tick (1/60 [s] by default).
func (g *Game) Update() error {
	now := time.Now()
	g.screen.Begin()
	if err := g.race.Advance(game.FrameContext{Now: now, Input: g.keyboard.Read()}); err != nil {
		return err
	}
	g.sound.Update(now)
	if g.race.IsFinished() {
		return ebiten.Termination
	}
	return nil
}

// Draw draws the game screen.
func (g *Game) Draw(screen *ebiten.Image) {
	g.screen.Draw(screen)
}

// Layout returns the configured window size whatever the outside size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.width, g.height
}

func main() {
	configPath := flag.String("config", "", "JSON file overriding the default tuning")
	seed := flag.Int64("seed", 0, "traffic seed, 0 picks one from the clock")
	audioName := flag.String("audio", "", "sound backend: ebiten, beep or none (overrides the config)")
	assets := flag.String("assets", "", "directory holding textures and sounds (overrides the config)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatal(err)
		}
	}
	if *audioName != "" {
		cfg.Audio = *audioName
	}
	if *assets != "" {
		cfg.Assets = *assets
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}
	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	log.Printf("Seed %d, assets %s, audio %s", *seed, cfg.Assets, cfg.Audio)

	sound, err := audio.New(cfg.Audio, cfg.Assets)
	if err != nil {
		log.Fatal(err)
	}

	screen := ui.NewScreen(ui.LoadTextures(cfg, *seed), cfg.Window.Width, cfg.Window.Height)
	g := &Game{
		race:     game.New(cfg, screen, sound, rand.New(rand.NewSource(*seed))),
		screen:   screen,
		keyboard: input.NewKeyboard(input.DefaultBindings()),
		sound:    sound,
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
	}

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.FPS)
	if _, icon, err := ebitenutil.NewImageFromFile(filepath.Join(cfg.Assets, ui.IconFile)); err == nil {
		ebiten.SetWindowIcon([]image.Image{icon})
	}

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}

	stats := g.race.Career().Stats
	log.Printf("Session over: won %d of %d races (%.0f%%), %d aborted, %d crashes",
		stats.RacesWon, stats.RacesCompleted, stats.WinRate, stats.RacesAborted, stats.Crashes)
}
