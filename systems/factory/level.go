package factory

import (
	"github.com/automoto/tiledmapgame/archetypes"
	"github.com/automoto/tiledmapgame/components"
	cfg "github.com/automoto/tiledmapgame/config"
	"github.com/automoto/tiledmapgame/tilemap"
	"github.com/yohamta/donburi"
)

// CreateLevel resolves the scene's named layers on m. A missing layer is a
// lookup error.
func CreateLevel(w donburi.World, m *tilemap.Map) (*donburi.Entry, error) {
	background, err := m.TileLayer(cfg.Scene.BackgroundLayer)
	if err != nil {
		return nil, err
	}
	foreground, err := m.TileLayer(cfg.Scene.ForegroundLayer)
	if err != nil {
		return nil, err
	}
	objects, err := m.ObjectLayer(cfg.Scene.ObjectsLayer)
	if err != nil {
		return nil, err
	}

	level := archetypes.Level.Spawn(w)
	components.Level.SetValue(level, components.LevelData{
		Map:        m,
		Background: background,
		Foreground: foreground,
		Objects:    objects,
	})
	return level, nil
}
