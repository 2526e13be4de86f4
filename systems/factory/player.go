package factory

import (
	"fmt"

	"github.com/automoto/tiledmapgame/archetypes"
	"github.com/automoto/tiledmapgame/assets"
	"github.com/automoto/tiledmapgame/assets/animations"
	"github.com/automoto/tiledmapgame/components"
	cfg "github.com/automoto/tiledmapgame/config"
	"github.com/automoto/tiledmapgame/input"
	"github.com/automoto/tiledmapgame/render"
	"github.com/automoto/tiledmapgame/tags"
	"github.com/automoto/tiledmapgame/tilemap"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// CreatePlayer spawns the player with its feet on the top edge of the start
// cell row. The collision box is the size of the first still frame.
func CreatePlayer(
	w donburi.World,
	space *resolv.Space,
	clips map[components.ClipID]*animations.Clip,
	layer *tilemap.TileLayer,
	src input.Source,
) (*donburi.Entry, error) {
	still, ok := clips[components.ClipStill]
	if !ok || len(still.Frames) == 0 {
		return nil, fmt.Errorf("%w: player clip %q has no frames", assets.ErrResourceLookup, components.ClipStill)
	}
	width, height := still.Frames[0].Size()

	x := float64(cfg.Player.StartCellX * layer.TileWidth)
	y := float64(cfg.Player.StartCellY*layer.TileHeight) - height

	player := archetypes.Player.Spawn(w)

	inset := cfg.Player.CollisionInset
	obj := resolv.NewObject(x+inset, y+inset, width-2*inset, height-2*inset, tags.ResolvPlayer)
	obj.SetShape(resolv.NewRectangle(0, 0, width-2*inset, height-2*inset))
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	space.Add(obj)

	components.Player.SetValue(player, components.PlayerData{
		Input:     src,
		Collision: layer,
	})
	components.Animation.SetValue(player, components.AnimationData{
		Clips:   clips,
		Current: components.ClipStill,
	})

	return player, nil
}

// PlayerClips builds the looping still/left/right clips from atlas regions.
func PlayerClips(find func(name string) ([]render.Region, error)) (map[components.ClipID]*animations.Clip, error) {
	specs := []struct {
		id       components.ClipID
		region   string
		interval float64
	}{
		{components.ClipStill, cfg.Player.StillRegion, cfg.Player.StillInterval},
		{components.ClipLeft, cfg.Player.LeftRegion, cfg.Player.MoveInterval},
		{components.ClipRight, cfg.Player.RightRegion, cfg.Player.MoveInterval},
	}

	clips := make(map[components.ClipID]*animations.Clip, len(specs))
	for _, s := range specs {
		frames, err := find(s.region)
		if err != nil {
			return nil, err
		}
		clips[s.id] = animations.NewClip(s.interval, frames, animations.PlayLoop)
	}
	return clips, nil
}
