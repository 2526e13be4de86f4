package components

import (
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// ObjectData is an entity's collision box. Its X/Y is the entity position.
type ObjectData struct {
	*resolv.Object
}

// Position returns the box's top-left corner.
func (o *ObjectData) Position() math.Vec2 {
	return math.NewVec2(o.X, o.Y)
}

// Center returns the middle of the box.
func (o *ObjectData) Center() math.Vec2 {
	return math.NewVec2(o.X+o.W/2, o.Y+o.H/2)
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
