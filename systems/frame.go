package systems

import (
	"github.com/automoto/tiledmapgame/components"
	cfg "github.com/automoto/tiledmapgame/config"
	"github.com/automoto/tiledmapgame/render"
	"github.com/automoto/tiledmapgame/render/tilerender"
	"github.com/yohamta/donburi/ecs"
)

const (
	// LayerWorld holds the map, player and object renderers.
	LayerWorld ecs.LayerID = iota
	// LayerDebug holds the collision boxes and HUD text.
	LayerDebug
)

// Frame is the renderer argument for one Draw. It is passed by value: the
// ecs package dispatches renderers on the argument's concrete type.
type Frame struct {
	Surface render.Surface
	View    render.View
	Tiles   *tilerender.Renderer
	Shapes  *render.ShapeRenderer
}

func level(ecs *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	return components.Level.Get(entry), true
}

// UpdateTiles advances the tile animation clock by the tick's delta.
func UpdateTiles(ecs *ecs.ECS) {
	lvl, ok := level(ecs)
	if !ok || lvl.Map == nil {
		return
	}
	lvl.Map.Tiles.Advance(lvl.Delta)
}

// UpdatePlayers runs UpdatePlayer for the tick's delta.
func UpdatePlayers(ecs *ecs.ECS) {
	lvl, ok := level(ecs)
	if !ok {
		return
	}
	UpdatePlayer(ecs.World, lvl.Delta)
}

func DrawBackground(ecs *ecs.ECS, f Frame) {
	if lvl, ok := level(ecs); ok {
		f.Tiles.RenderLayer(f.Surface, f.View, lvl.Background)
	}
}

func DrawPlayers(ecs *ecs.ECS, f Frame) {
	DrawPlayer(ecs.World, f.Surface, f.Tiles)
}

func DrawForeground(ecs *ecs.ECS, f Frame) {
	if lvl, ok := level(ecs); ok {
		f.Tiles.RenderLayer(f.Surface, f.View, lvl.Foreground)
	}
}

func DrawObjectLayer(ecs *ecs.ECS, f Frame) {
	if lvl, ok := level(ecs); ok {
		DrawObjects(f.Surface, f.Tiles, f.Shapes, lvl.Objects)
	}
}

// DrawDebug outlines the collision space and prints the HUD.
func DrawDebug(ecs *ecs.ECS, f Frame) {
	if entry, ok := components.Space.First(ecs.World); ok {
		DrawCollisionBoxes(f.Surface, components.Space.Get(entry), f.View)
	}
	DrawHUD(ecs.World, f.Surface, cfg.Debug.HUDColor)
}
