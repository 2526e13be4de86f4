package systems

import (
	"github.com/automoto/tiledmapgame/components"
	cfg "github.com/automoto/tiledmapgame/config"
	"github.com/automoto/tiledmapgame/tags"
	"github.com/yohamta/donburi"
)

// UpdateCamera centers the camera on the middle of the player's box.
func UpdateCamera(w donburi.World) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	playerEntry, ok := tags.Player.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Position = components.Object.Get(playerEntry).Center()
}

// ResizeCamera sets the viewport to the window size scaled down by the
// configured divisor.
func ResizeCamera(w donburi.World, width, height int) {
	cameraEntry, ok := components.Camera.First(w)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)
	camera.Width = float64(width) / cfg.Scene.ViewportDivisor
	camera.Height = float64(height) / cfg.Scene.ViewportDivisor
}
