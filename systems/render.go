package systems

import (
	"github.com/automoto/tiledmapgame/components"
	cfg "github.com/automoto/tiledmapgame/config"
	"github.com/automoto/tiledmapgame/render"
	"github.com/automoto/tiledmapgame/render/tilerender"
	"github.com/automoto/tiledmapgame/tags"
	"github.com/automoto/tiledmapgame/tilemap"
	"github.com/yohamta/donburi"
)

// DrawPlayer draws each player's current key frame at its position.
func DrawPlayer(w donburi.World, s render.Surface, r *tilerender.Renderer) {
	inset := cfg.Player.CollisionInset
	tags.Player.Each(w, func(e *donburi.Entry) {
		obj := components.Object.Get(e)
		player := components.Player.Get(e)
		frame, ok := components.Animation.Get(e).KeyFrame(player.StateTime)
		if !ok {
			return
		}
		r.DrawRegion(s, frame, obj.X-inset, obj.Y-inset)
	})
}

// DrawObjects draws the objects of layer in file order. Image objects draw
// their tile. Other shapes go through shapes. Points and unresolvable tiles
// draw nothing.
func DrawObjects(s render.Surface, r *tilerender.Renderer, shapes *render.ShapeRenderer, layer *tilemap.ObjectLayer) {
	if layer == nil {
		return
	}
	for _, o := range layer.Objects {
		switch sh := o.Shape.(type) {
		case tilemap.Rectangle:
			if sh.GID != 0 {
				if t, ok := r.Map.Tiles.ByGID(sh.GID); ok {
					if region, ok := r.Map.Tiles.Region(t.ID); ok {
						r.DrawRegion(s, region, sh.X, sh.Y)
					}
				}
				continue
			}
			shapes.Rect(s, sh.X, sh.Y, sh.Width, sh.Height)
		case tilemap.Circle:
			shapes.Circle(s, sh.X, sh.Y, sh.Radius)
		case tilemap.Ellipse:
			shapes.Ellipse(s, sh.X, sh.Y, sh.Width, sh.Height)
		case tilemap.Polyline:
			shapes.Polyline(s, sh.Vertices)
		case tilemap.Polygon:
			shapes.Polygon(s, sh.Vertices)
		}
	}
}
