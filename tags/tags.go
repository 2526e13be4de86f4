package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Camera = donburi.NewTag().SetName("Camera")
	Solid  = donburi.NewTag().SetName("Solid")
)

// Resolv tags for physics collision
const (
	ResolvSolid  = "solid"
	ResolvPlayer = "Player"
)
