package factory

import (
	"github.com/automoto/tiledmapgame/archetypes"
	"github.com/automoto/tiledmapgame/components"
	"github.com/yohamta/donburi"
)

func CreateCamera(w donburi.World) *donburi.Entry {
	camera := archetypes.Camera.Spawn(w)
	components.Camera.Set(camera, &components.CameraData{})
	return camera
}
