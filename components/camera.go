package components

import (
	"github.com/automoto/tiledmapgame/render"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// CameraData is a world-space viewport centered on Position.
type CameraData struct {
	Position      math.Vec2
	Width, Height float64
}

func (c *CameraData) View() render.View {
	return render.View{Center: c.Position, Width: c.Width, Height: c.Height}
}

var Camera = donburi.NewComponentType[CameraData]()
