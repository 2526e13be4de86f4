package tilemap

import (
	"fmt"
	"sort"

	"github.com/automoto/tiledmapgame/assets"
	"github.com/automoto/tiledmapgame/assets/animations"
)

// AnimationBinding selects the tiles of one tileset tagged Key=Value and the
// layer whose matching cells should cycle through them.
type AnimationBinding struct {
	Tileset  string
	Layer    string
	Key      string
	Value    string
	Interval float64 // seconds per frame
}

// BindResult reports the shared animated tile and how much the bind touched.
type BindResult struct {
	Tile   TileID // Empty when no cell matched
	Frames int
	Cells  int
}

// BindAnimation builds one looping animated tile from the tagged tiles of a
// tileset and points every tagged cell of the layer at it. All rewritten
// cells share the same handle, so they stay in phase.
func BindAnimation(m *Map, b AnimationBinding) (BindResult, error) {
	set, ok := m.Tiles.TileSet(b.Tileset)
	if !ok {
		return BindResult{}, fmt.Errorf("%w: tileset %q", assets.ErrResourceLookup, b.Tileset)
	}
	layer, err := m.TileLayer(b.Layer)
	if err != nil {
		return BindResult{}, err
	}

	var frames []*Tile
	for _, id := range set.Tiles {
		t, ok := m.Tiles.Tile(id)
		if !ok || t.Animated() || !t.Properties.Matches(b.Key, b.Value) {
			continue
		}
		frames = append(frames, t)
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].GID < frames[j].GID })

	result := BindResult{Frames: len(frames)}
	if len(frames) == 0 {
		return result, nil
	}

	ids := make([]TileID, len(frames))
	for i, t := range frames {
		ids[i] = t.ID
	}

	for y := 0; y < layer.Height; y++ {
		for x := 0; x < layer.Width; x++ {
			id, _ := layer.Cell(x, y)
			t, ok := m.Tiles.Tile(id)
			if !ok || !t.Properties.Matches(b.Key, b.Value) {
				continue
			}
			if result.Tile == Empty {
				result.Tile = m.Tiles.AddTile(nil, Tile{
					Animation: &TileAnimation{
						Frames: ids,
						Timing: animations.NewAnimation(len(ids), b.Interval, animations.PlayLoop),
					},
				})
			}
			layer.SetTile(x, y, result.Tile)
			result.Cells++
		}
	}

	return result, nil
}
