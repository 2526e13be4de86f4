package components

import (
	"github.com/automoto/tiledmapgame/input"
	"github.com/automoto/tiledmapgame/tilemap"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PlayerData struct {
	Velocity  math.Vec2 // pixels per second
	CanJump   bool
	StateTime float64 // seconds since the last direction change

	Input input.Source
	// Collision is the layer the player walks on. The map owns it.
	Collision *tilemap.TileLayer
}

var Player = donburi.NewComponentType[PlayerData]()
