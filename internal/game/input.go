package game

import (
	"survivors-lab/internal/shared/input"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var bindings = map[input.Key][]ebiten.Key{
	input.KeyUp:    {ebiten.KeyW, ebiten.KeyArrowUp},
	input.KeyDown:  {ebiten.KeyS, ebiten.KeyArrowDown},
	input.KeyLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.KeyRight: {ebiten.KeyD, ebiten.KeyArrowRight},
}

// Keyboard is the window's input.Source.
type Keyboard struct{}

func (Keyboard) IsKeyDown(k input.Key) bool {
	for _, ek := range bindings[k] {
		if ebiten.IsKeyPressed(ek) {
			return true
		}
	}
	return false
}

func ReadRestart() bool {
	return inpututil.IsKeyJustPressed(ebiten.KeyR)
}
