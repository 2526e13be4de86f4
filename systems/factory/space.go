package factory

import (
	"github.com/automoto/tiledmapgame/archetypes"
	"github.com/automoto/tiledmapgame/components"
	"github.com/automoto/tiledmapgame/tags"
	"github.com/automoto/tiledmapgame/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreateSpace builds the collision space for layer. Every cell whose tile
// carries blockedKey becomes a solid box.
func CreateSpace(w donburi.World, m *tilemap.Map, layer *tilemap.TileLayer, blockedKey string) *donburi.Entry {
	entry := archetypes.Space.Spawn(w)
	space := resolv.NewSpace(layer.Width*layer.TileWidth, layer.Height*layer.TileHeight, layer.TileWidth, layer.TileHeight)
	components.Space.Set(entry, space)

	tw, th := float64(layer.TileWidth), float64(layer.TileHeight)
	for y := 0; y < layer.Height; y++ {
		for x := 0; x < layer.Width; x++ {
			id, _ := layer.Cell(x, y)
			tile, ok := m.Tiles.Tile(id)
			if !ok {
				continue
			}
			if _, blocked := tile.Properties.Get(blockedKey); blocked {
				CreateSolid(w, space, float64(x)*tw, float64(y)*th, tw, th)
			}
		}
	}

	return entry
}

func CreateSolid(w donburi.World, space *resolv.Space, x, y, width, height float64) *donburi.Entry {
	solid := archetypes.Solid.Spawn(w)

	obj := resolv.NewObject(x, y, width, height, tags.ResolvSolid)
	obj.SetShape(resolv.NewRectangle(0, 0, width, height))
	obj.Data = solid

	components.Object.SetValue(solid, components.ObjectData{Object: obj})
	space.Add(obj)

	return solid
}
