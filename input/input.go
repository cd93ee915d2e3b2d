package input

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/golangdaddy/laneracer/game"
)

// Bindings maps each control to the keys that drive it
type Bindings struct {
	Left    []ebiten.Key
	Right   []ebiten.Key
	Confirm []ebiten.Key
	Quit    []ebiten.Key
}

// DefaultBindings returns arrows to steer, space or enter to start and escape to quit
func DefaultBindings() Bindings {
	return Bindings{
		Left:    []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA},
		Right:   []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD},
		Confirm: []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter},
		Quit:    []ebiten.Key{ebiten.KeyEscape},
	}
}

// Keyboard reads the held state of the bound keys.
// Presses are edge detected by the race, so held keys are reported as they are.
type Keyboard struct {
	Bindings Bindings
	pressed  func(ebiten.Key) bool
}

// NewKeyboard polls ebiten's keyboard
func NewKeyboard(b Bindings) *Keyboard {
	return &Keyboard{Bindings: b, pressed: ebiten.IsKeyPressed}
}

// Read returns the controls held this frame
func (k *Keyboard) Read() game.Input {
	return game.Input{
		Left:    k.any(k.Bindings.Left),
		Right:   k.any(k.Bindings.Right),
		Confirm: k.any(k.Bindings.Confirm),
		Quit:    k.any(k.Bindings.Quit),
	}
}

func (k *Keyboard) any(keys []ebiten.Key) bool {
	for _, key := range keys {
		if k.pressed(key) {
			return true
		}
	}
	return false
}
