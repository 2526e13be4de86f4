// Package tilemap holds the loaded map as pure data: a tile registry, tile
// layers whose cells are handles into it, and object layers. It has no
// dependency on ebiten.
package tilemap

import (
	"sort"

	"github.com/automoto/tiledmapgame/assets/animations"
	"github.com/automoto/tiledmapgame/render"
)

// TileID is a handle into a Registry. Cells store handles, so many cells can
// share one tile and re-pointing a cell never touches the others.
type TileID int

// Empty is the handle of an unset cell.
const Empty TileID = 0

// Properties is a tile or object's custom property map.
type Properties map[string]string

func (p Properties) Get(key string) (string, bool) {
	v, ok := p[key]
	return v, ok
}

// Matches reports whether key is present with exactly value.
func (p Properties) Matches(key, value string) bool {
	v, ok := p[key]
	return ok && v == value
}

// TileAnimation cycles through frame tiles forever.
type TileAnimation struct {
	Frames []TileID
	Timing *animations.Animation
}

// Tile is either static (Animation == nil) or animated.
type Tile struct {
	ID         TileID
	GID        uint32 // 0 for tiles created at runtime
	Tileset    string
	Region     render.Region
	Properties Properties
	Animation  *TileAnimation
}

func (t *Tile) Animated() bool {
	return t.Animation != nil
}

// TileSet is a named group of tiles from one Tiled tileset.
type TileSet struct {
	Name     string
	FirstGID uint32
	Tiles    []TileID
}

// Registry owns every tile of a map, including animated tiles created after
// load, and the clock that drives them.
type Registry struct {
	tiles   []*Tile
	byGID   map[uint32]TileID
	sets    []*TileSet
	elapsed float64
}

func NewRegistry() *Registry {
	return &Registry{
		tiles: []*Tile{nil}, // index 0 is Empty
		byGID: make(map[uint32]TileID),
	}
}

func (r *Registry) AddTileSet(name string, firstGID uint32) *TileSet {
	set := &TileSet{Name: name, FirstGID: firstGID}
	r.sets = append(r.sets, set)
	return set
}

// AddTile registers t and returns its handle. set may be nil for runtime tiles.
func (r *Registry) AddTile(set *TileSet, t Tile) TileID {
	id := TileID(len(r.tiles))
	t.ID = id
	if t.Properties == nil {
		t.Properties = Properties{}
	}
	if set != nil {
		t.Tileset = set.Name
		set.Tiles = append(set.Tiles, id)
	}
	r.tiles = append(r.tiles, &t)
	if t.GID != 0 {
		r.byGID[t.GID] = id
	}
	return id
}

func (r *Registry) Tile(id TileID) (*Tile, bool) {
	if id <= Empty || int(id) >= len(r.tiles) {
		return nil, false
	}
	return r.tiles[id], true
}

func (r *Registry) ByGID(gid uint32) (*Tile, bool) {
	id, ok := r.byGID[gid]
	if !ok {
		return nil, false
	}
	return r.tiles[id], true
}

func (r *Registry) TileSet(name string) (*TileSet, bool) {
	for _, s := range r.sets {
		if s.Name == name {
			return s, true
		}
	}
	return nil, false
}

func (r *Registry) TileSets() []*TileSet {
	return r.sets
}

// Len is the number of registered tiles.
func (r *Registry) Len() int {
	return len(r.tiles) - 1
}

// Advance moves the shared animation clock forward by dt seconds.
func (r *Registry) Advance(dt float64) {
	r.elapsed += dt
}

func (r *Registry) Elapsed() float64 {
	return r.elapsed
}

// Region resolves the region to draw for id right now. Animated tiles
// resolve to the own region of their current frame tile.
func (r *Registry) Region(id TileID) (render.Region, bool) {
	t, ok := r.Tile(id)
	if !ok {
		return render.Region{}, false
	}
	if !t.Animated() {
		return t.Region, true
	}
	i := t.Animation.Timing.FrameIndex(r.elapsed)
	if i < 0 {
		return render.Region{}, false
	}
	frame, ok := r.Tile(t.Animation.Frames[i])
	if !ok || frame.Region.Sheet == "" {
		return render.Region{}, false
	}
	return frame.Region, true
}

// Sheets lists the distinct sheet images referenced by static tiles, sorted.
func (r *Registry) Sheets() []string {
	seen := make(map[string]bool)
	var sheets []string
	for _, t := range r.tiles[1:] {
		if t.Region.Sheet == "" || seen[t.Region.Sheet] {
			continue
		}
		seen[t.Region.Sheet] = true
		sheets = append(sheets, t.Region.Sheet)
	}
	sort.Strings(sheets)
	return sheets
}

func (r *Registry) clear() {
	r.tiles = []*Tile{nil}
	r.byGID = make(map[uint32]TileID)
	r.sets = nil
	r.elapsed = 0
}
