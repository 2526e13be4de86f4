// Package keyboard polls ebiten's keyboard into an input.State.
package keyboard

import (
	"github.com/automoto/tiledmapgame/input"
	"github.com/hajimehoshi/ebiten/v2"
)

// Bindings maps each action to the keys that trigger it.
var Bindings = map[input.Action][]ebiten.Key{
	input.ActionMoveLeft:  {ebiten.KeyA, ebiten.KeyArrowLeft},
	input.ActionMoveRight: {ebiten.KeyD, ebiten.KeyArrowRight},
	input.ActionJump:      {ebiten.KeyW, ebiten.KeySpace, ebiten.KeyArrowUp},
}

// Poll samples the bound keys and steps state. Call it once per tick before
// the player system runs.
func Poll(state *input.State) {
	var pressed [input.ActionCount]bool
	for action, keys := range Bindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				pressed[action] = true
				break
			}
		}
	}
	state.Step(pressed)
}
