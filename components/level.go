package components

import (
	"github.com/automoto/tiledmapgame/tilemap"
	"github.com/yohamta/donburi"
)

// LevelData points at the loaded map and the layers the scene draws.
type LevelData struct {
	Map        *tilemap.Map
	Background *tilemap.TileLayer
	Foreground *tilemap.TileLayer
	Objects    *tilemap.ObjectLayer

	// Delta is the simulated time of the current tick in seconds.
	Delta float64
}

var Level = donburi.NewComponentType[LevelData]()
