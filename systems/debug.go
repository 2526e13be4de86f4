package systems

import (
	"image/color"

	"github.com/automoto/tiledmapgame/render"
	"github.com/automoto/tiledmapgame/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/features/math"
)

var (
	debugSolidColor  = color.RGBA{100, 100, 100, 255}
	debugPlayerColor = color.RGBA{0, 0, 255, 255}
)

// DrawCollisionBoxes outlines every collision object inside view.
func DrawCollisionBoxes(s render.Surface, space *resolv.Space, view render.View) {
	if space == nil {
		return
	}
	minX, minY, maxX, maxY := view.Bounds()

	for _, obj := range space.Objects() {
		if obj.X+obj.W < minX || obj.X > maxX || obj.Y+obj.H < minY || obj.Y > maxY {
			continue
		}

		c := debugSolidColor
		if obj.HasTags(tags.ResolvPlayer) {
			c = debugPlayerColor
		}
		s.StrokePolygon([]math.Vec2{
			math.NewVec2(obj.X, obj.Y),
			math.NewVec2(obj.X+obj.W, obj.Y),
			math.NewVec2(obj.X+obj.W, obj.Y+obj.H),
			math.NewVec2(obj.X, obj.Y+obj.H),
		}, 1, c)
	}
}
