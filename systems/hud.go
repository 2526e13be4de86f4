package systems

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/tiledmapgame/components"
	"github.com/automoto/tiledmapgame/render"
	"github.com/automoto/tiledmapgame/tags"
	"github.com/yohamta/donburi"
)

const (
	hudMargin     = 10
	hudLineHeight = 16
)

// DrawHUD prints the player's position, cell and velocity in the top-left
// corner of the screen.
func DrawHUD(w donburi.World, s render.Surface, clr color.Color) {
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	obj := components.Object.Get(playerEntry)
	player := components.Player.Get(playerEntry)

	lines := []string{
		fmt.Sprintf("pos %.1f, %.1f", obj.X, obj.Y),
		fmt.Sprintf("vel %.1f, %.1f", player.Velocity.X, player.Velocity.Y),
	}
	if layer := player.Collision; layer != nil {
		cx := int(math.Floor(obj.X / float64(layer.TileWidth)))
		cy := int(math.Floor(obj.Y / float64(layer.TileHeight)))
		lines = append(lines, fmt.Sprintf("cell %d, %d", cx, cy))
	}
	if player.CanJump {
		lines = append(lines, "grounded")
	}

	for i, line := range lines {
		s.DrawText(line, hudMargin, hudMargin+(i+1)*hudLineHeight, clr)
	}
}
