package input

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"

	"github.com/golangdaddy/laneracer/game"
)

func held(keys ...ebiten.Key) func(ebiten.Key) bool {
	return func(k ebiten.Key) bool {
		for _, h := range keys {
			if h == k {
				return true
			}
		}
		return false
	}
}

func TestRead(t *testing.T) {
	tests := []struct {
		name string
		keys []ebiten.Key
		want game.Input
	}{
		{"nothing", nil, game.Input{}},
		{"left arrow", []ebiten.Key{ebiten.KeyArrowLeft}, game.Input{Left: true}},
		{"right letter", []ebiten.Key{ebiten.KeyD}, game.Input{Right: true}},
		{"start with enter", []ebiten.Key{ebiten.KeyEnter}, game.Input{Confirm: true}},
		{"quit", []ebiten.Key{ebiten.KeyEscape}, game.Input{Quit: true}},
		{"both ways", []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyArrowRight}, game.Input{Left: true, Right: true}},
		{"unbound", []ebiten.Key{ebiten.KeyQ}, game.Input{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			k := &Keyboard{Bindings: DefaultBindings(), pressed: held(tt.keys...)}
			assert.Equal(t, tt.want, k.Read())
		})
	}
}
