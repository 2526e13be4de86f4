package tilemap

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/automoto/tiledmapgame/assets"
	"github.com/automoto/tiledmapgame/config"
	"github.com/automoto/tiledmapgame/render"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" tiledversion="1.10.2" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="0" nextlayerid="4" nextobjectid="8">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="8" columns="4">
  <image source="tiles.png" width="64" height="32"/>
  <tile id="1">
   <properties>
    <property name="blocked" value="true"/>
   </properties>
  </tile>
  <tile id="3">
   <properties>
    <property name="animation" value="flower"/>
   </properties>
  </tile>
  <tile id="2">
   <properties>
    <property name="animation" value="flower"/>
   </properties>
  </tile>
  <tile id="5">
   <animation>
    <frame tileid="5" duration="100"/>
    <frame tileid="6" duration="200"/>
   </animation>
  </tile>
 </tileset>
 <layer id="1" name="background" width="4" height="3">
  <data encoding="csv">
1,1,3,1,
1,4,1,3,
2,2,2,2
</data>
 </layer>
 <layer id="2" name="foreground" width="4" height="3">
  <data encoding="csv">
0,0,0,0,
0,0,0,0,
0,6,0,0
</data>
 </layer>
 <objectgroup id="3" name="objects">
  <object id="1" x="10" y="20" width="30" height="40"/>
  <object id="2" x="4" y="6" width="8" height="8">
   <ellipse/>
  </object>
  <object id="3" x="5" y="5" width="8" height="4">
   <ellipse/>
  </object>
  <object id="4" x="100" y="50">
   <polyline points="0,0 10,0 10,10"/>
  </object>
  <object id="5" x="0" y="0" rotation="90">
   <polygon points="0,0 10,0 0,10"/>
  </object>
  <object id="6" gid="5" x="32" y="48" width="16" height="16"/>
  <object id="7" x="3" y="4">
   <point/>
  </object>
 </objectgroup>
</map>
`

const infiniteTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="3" tilewidth="16" tileheight="16" infinite="1">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="8" columns="4">
  <image source="tiles.png" width="64" height="32"/>
 </tileset>
 <layer id="1" name="background" width="4" height="3">
  <data encoding="csv">
   <chunk x="-16" y="0" width="16" height="16">
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,
0,0,0,0,0,0,0,0,0,0,0,0,0,0,0,0
</chunk>
  </data>
 </layer>
</map>
`

// flippedTMX sets the horizontal flag on (0,0) and the vertical and
// diagonal flags on (1,0).
const flippedTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="2" height="1" tilewidth="16" tileheight="16" infinite="0">
 <tileset firstgid="1" name="tiles" tilewidth="16" tileheight="16" tilecount="8" columns="4">
  <image source="tiles.png" width="64" height="32"/>
 </tileset>
 <layer id="1" name="background" width="2" height="1">
  <data encoding="csv">
2147483650,1610612737
</data>
 </layer>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"maps/map.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}
}

func loadTestMap(t *testing.T) *Map {
	t.Helper()
	m, err := Load(testFS(), "maps/map.tmx")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return m
}

func flowerBinding() AnimationBinding {
	return AnimationBinding{
		Tileset:  "tiles",
		Layer:    "background",
		Key:      "animation",
		Value:    "flower",
		Interval: 1.0 / 3.0,
	}
}

func TestLoadGrid(t *testing.T) {
	m := loadTestMap(t)

	if m.Width != 4 || m.Height != 3 || m.TileWidth != 16 || m.TileHeight != 16 {
		t.Fatalf("map size = %dx%d (%dx%d), want 4x3 (16x16)", m.Width, m.Height, m.TileWidth, m.TileHeight)
	}
	if len(m.TileLayers) != 2 || len(m.ObjectLayers) != 1 {
		t.Fatalf("layers = %d tile / %d object, want 2 / 1", len(m.TileLayers), len(m.ObjectLayers))
	}
	if m.Tiles.Len() != 8 {
		t.Errorf("registry has %d tiles, want 8", m.Tiles.Len())
	}

	bg, err := m.TileLayer("background")
	if err != nil {
		t.Fatalf("TileLayer(background) error = %v", err)
	}
	id, ok := bg.Cell(1, 1)
	if !ok {
		t.Fatal("Cell(1, 1) out of range")
	}
	tile, ok := m.Tiles.Tile(id)
	if !ok {
		t.Fatal("cell (1, 1) is empty")
	}
	if tile.GID != 4 {
		t.Errorf("cell (1, 1) gid = %d, want 4", tile.GID)
	}
	if got := tile.Region.Bounds.Min; got.X != 48 || got.Y != 0 {
		t.Errorf("gid 4 region origin = %v, want (48,0)", got)
	}
	if tile.Region.Sheet != "maps/tiles.png" {
		t.Errorf("sheet = %q, want maps/tiles.png", tile.Region.Sheet)
	}

	blocked, _ := m.Tiles.ByGID(2)
	if _, ok := blocked.Properties.Get("blocked"); !ok {
		t.Error("gid 2 should carry the blocked property")
	}

	fg, _ := m.TileLayer("foreground")
	if id, _ := fg.Cell(0, 0); id != Empty {
		t.Errorf("foreground (0,0) = %d, want empty", id)
	}
	if _, ok := fg.Cell(4, 0); ok {
		t.Error("Cell(4, 0) should be out of range")
	}
}

func TestLoadObjects(t *testing.T) {
	m := loadTestMap(t)
	layer, err := m.ObjectLayer("objects")
	if err != nil {
		t.Fatalf("ObjectLayer() error = %v", err)
	}
	if len(layer.Objects) != 7 {
		t.Fatalf("objects = %d, want 7", len(layer.Objects))
	}

	if r, ok := layer.Objects[0].Shape.(Rectangle); !ok || r != (Rectangle{X: 10, Y: 20, Width: 30, Height: 40}) {
		t.Errorf("object 1 = %#v, want plain rectangle", layer.Objects[0].Shape)
	}
	if c, ok := layer.Objects[1].Shape.(Circle); !ok || c != (Circle{X: 8, Y: 10, Radius: 4}) {
		t.Errorf("object 2 = %#v, want circle at (8,10) r=4", layer.Objects[1].Shape)
	}
	if _, ok := layer.Objects[2].Shape.(Ellipse); !ok {
		t.Errorf("object 3 = %#v, want ellipse", layer.Objects[2].Shape)
	}

	pl, ok := layer.Objects[3].Shape.(Polyline)
	if !ok || len(pl.Vertices) != 3 {
		t.Fatalf("object 4 = %#v, want 3-point polyline", layer.Objects[3].Shape)
	}
	if v := pl.Vertices[2]; v.X != 110 || v.Y != 60 {
		t.Errorf("polyline end = (%v,%v), want (110,60)", v.X, v.Y)
	}

	pg, ok := layer.Objects[4].Shape.(Polygon)
	if !ok || len(pg.Vertices) != 3 {
		t.Fatalf("object 5 = %#v, want 3-point polygon", layer.Objects[4].Shape)
	}
	// (10,0) rotated 90 degrees clockwise in y-down space lands on (0,10).
	if v := pg.Vertices[1]; !near(v.X, 0) || !near(v.Y, 10) {
		t.Errorf("rotated vertex = (%v,%v), want (0,10)", v.X, v.Y)
	}

	img, ok := layer.Objects[5].Shape.(Rectangle)
	if !ok || img.GID != 5 {
		t.Fatalf("object 6 = %#v, want image rectangle", layer.Objects[5].Shape)
	}
	if img.X != 32 || img.Y != 32 {
		t.Errorf("image object top-left = (%v,%v), want (32,32)", img.X, img.Y)
	}

	if _, ok := layer.Objects[6].Shape.(Point); !ok {
		t.Errorf("object 7 = %#v, want point", layer.Objects[6].Shape)
	}
}

func TestLoadNativeAnimation(t *testing.T) {
	m := loadTestMap(t)
	fg, _ := m.TileLayer("foreground")
	id, _ := fg.Cell(1, 2)

	first, _ := m.Tiles.ByGID(6)
	second, _ := m.Tiles.ByGID(7)

	r, ok := m.Tiles.Region(id)
	if !ok || r != first.Region {
		t.Fatalf("frame at t=0 = %v, want %v", r, first.Region)
	}
	m.Tiles.Advance(0.15)
	if r, _ := m.Tiles.Region(id); r != second.Region {
		t.Errorf("frame at t=0.15 = %v, want %v", r, second.Region)
	}
	m.Tiles.Advance(0.2)
	if r, _ := m.Tiles.Region(id); r != first.Region {
		t.Errorf("frame at t=0.35 = %v, want %v", r, first.Region)
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load(testFS(), "maps/missing.tmx"); !errors.Is(err, assets.ErrResourceLoad) {
		t.Errorf("missing map error = %v, want ErrResourceLoad", err)
	}

	broken := fstest.MapFS{"maps/map.tmx": &fstest.MapFile{Data: []byte("<map")}}
	if _, err := Load(broken, "maps/map.tmx"); !errors.Is(err, assets.ErrResourceLoad) {
		t.Errorf("corrupt map error = %v, want ErrResourceLoad", err)
	}

	endless := fstest.MapFS{"maps/map.tmx": &fstest.MapFile{Data: []byte(infiniteTMX)}}
	if _, err := Load(endless, "maps/map.tmx"); !errors.Is(err, assets.ErrResourceLoad) {
		t.Errorf("infinite map error = %v, want ErrResourceLoad", err)
	}

	m := loadTestMap(t)
	if _, err := m.TileLayer("nope"); !errors.Is(err, assets.ErrResourceLookup) {
		t.Errorf("TileLayer(nope) error = %v, want ErrResourceLookup", err)
	}
	if _, err := m.TileLayerAt(5); !errors.Is(err, assets.ErrResourceLookup) {
		t.Errorf("TileLayerAt(5) error = %v, want ErrResourceLookup", err)
	}
	if _, err := m.ObjectLayer("nope"); !errors.Is(err, assets.ErrResourceLookup) {
		t.Errorf("ObjectLayer(nope) error = %v, want ErrResourceLookup", err)
	}
}

func TestLoadFlippedCells(t *testing.T) {
	fsys := fstest.MapFS{"maps/map.tmx": &fstest.MapFile{Data: []byte(flippedTMX)}}
	m, err := Load(fsys, "maps/map.tmx")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	bg, err := m.TileLayer("background")
	if err != nil {
		t.Fatalf("TileLayer(background) error = %v", err)
	}

	tests := []struct {
		x    int
		gid  uint32
		flip render.Flip
	}{
		{0, 2, render.FlipHorizontal},
		{1, 1, render.FlipVertical | render.FlipDiagonal},
	}
	for _, tt := range tests {
		id, _ := bg.Cell(tt.x, 0)
		tile, ok := m.Tiles.Tile(id)
		if !ok {
			t.Fatalf("cell (%d,0) is empty", tt.x)
		}
		if tile.GID != tt.gid {
			t.Errorf("cell (%d,0) gid = %d, want %d", tt.x, tile.GID, tt.gid)
		}
		if got := bg.Flip(tt.x, 0); got != tt.flip {
			t.Errorf("cell (%d,0) flip = %b, want %b", tt.x, got, tt.flip)
		}
	}

	bg.SetTile(0, 0, Empty)
	if got := bg.Flip(0, 0); got != render.FlipHorizontal {
		t.Errorf("SetTile cleared flip flags: %b", got)
	}
	if got := bg.Flip(5, 0); got != 0 {
		t.Errorf("Flip outside the grid = %b, want 0", got)
	}
}

func TestBindAnimationAliasesCells(t *testing.T) {
	m := loadTestMap(t)
	before := m.Tiles.Len()

	res, err := BindAnimation(m, flowerBinding())
	if err != nil {
		t.Fatalf("BindAnimation() error = %v", err)
	}
	if res.Frames != 2 || res.Cells != 3 {
		t.Fatalf("result = %+v, want 2 frames / 3 cells", res)
	}
	if m.Tiles.Len() != before+1 {
		t.Errorf("registry grew by %d, want 1", m.Tiles.Len()-before)
	}

	bg, _ := m.TileLayer("background")
	for _, c := range [][2]int{{2, 0}, {1, 1}, {3, 1}} {
		if id, _ := bg.Cell(c[0], c[1]); id != res.Tile {
			t.Errorf("cell %v = %d, want shared handle %d", c, id, res.Tile)
		}
	}
	if id, _ := bg.Cell(0, 0); id == res.Tile {
		t.Error("untagged cell (0,0) was rewritten")
	}

	animated, _ := m.Tiles.Tile(res.Tile)
	gid3, _ := m.Tiles.ByGID(3)
	gid4, _ := m.Tiles.ByGID(4)
	if len(animated.Animation.Frames) != 2 ||
		animated.Animation.Frames[0] != gid3.ID || animated.Animation.Frames[1] != gid4.ID {
		t.Errorf("frames = %v, want [%d %d] in tile id order", animated.Animation.Frames, gid3.ID, gid4.ID)
	}

	if r, _ := m.Tiles.Region(res.Tile); r != gid3.Region {
		t.Errorf("frame at t=0 = %v, want gid 3", r)
	}
	m.Tiles.Advance(0.4)
	if r, _ := m.Tiles.Region(res.Tile); r != gid4.Region {
		t.Errorf("frame at t=0.4 = %v, want gid 4", r)
	}
	m.Tiles.Advance(0.3)
	if r, _ := m.Tiles.Region(res.Tile); r != gid3.Region {
		t.Errorf("frame at t=0.7 = %v, want gid 3 again", r)
	}
}

func TestBindAnimationTwice(t *testing.T) {
	m := loadTestMap(t)
	first, err := BindAnimation(m, flowerBinding())
	if err != nil {
		t.Fatalf("first bind error = %v", err)
	}
	size := m.Tiles.Len()

	second, err := BindAnimation(m, flowerBinding())
	if err != nil {
		t.Fatalf("second bind error = %v", err)
	}
	if second.Cells != 0 || second.Tile != Empty {
		t.Errorf("second bind = %+v, want no rewritten cells", second)
	}
	if m.Tiles.Len() != size {
		t.Errorf("registry size changed from %d to %d", size, m.Tiles.Len())
	}
	bg, _ := m.TileLayer("background")
	if id, _ := bg.Cell(2, 0); id != first.Tile {
		t.Errorf("cell (2,0) = %d, want %d", id, first.Tile)
	}
}

func TestBindAnimationNoFrames(t *testing.T) {
	m := loadTestMap(t)
	b := flowerBinding()
	b.Value = "tulip"

	res, err := BindAnimation(m, b)
	if err != nil {
		t.Fatalf("BindAnimation() error = %v", err)
	}
	if res.Frames != 0 || res.Cells != 0 || res.Tile != Empty {
		t.Errorf("result = %+v, want empty", res)
	}
}

func TestBindAnimationLookupErrors(t *testing.T) {
	m := loadTestMap(t)

	b := flowerBinding()
	b.Tileset = "props"
	if _, err := BindAnimation(m, b); !errors.Is(err, assets.ErrResourceLookup) {
		t.Errorf("missing tileset error = %v, want ErrResourceLookup", err)
	}

	b = flowerBinding()
	b.Layer = "water"
	if _, err := BindAnimation(m, b); !errors.Is(err, assets.ErrResourceLookup) {
		t.Errorf("missing layer error = %v, want ErrResourceLookup", err)
	}
}

func TestMapDispose(t *testing.T) {
	m := loadTestMap(t)
	m.Dispose()
	m.Dispose()

	if !m.Disposed() {
		t.Error("Disposed() = false after Dispose")
	}
	if m.Tiles.Len() != 0 || len(m.TileLayers) != 0 || len(m.ObjectLayers) != 0 {
		t.Error("Dispose left map contents behind")
	}
}

func TestLoadEmbeddedMap(t *testing.T) {
	m, err := Load(assets.FS(), config.Scene.MapPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	for _, name := range []string{config.Scene.BackgroundLayer, config.Scene.ForegroundLayer} {
		if _, err := m.TileLayer(name); err != nil {
			t.Errorf("TileLayer(%s) error = %v", name, err)
		}
	}
	if _, err := m.ObjectLayer(config.Scene.ObjectsLayer); err != nil {
		t.Errorf("ObjectLayer() error = %v", err)
	}

	res, err := BindAnimation(m, AnimationBinding{
		Tileset:  config.Scene.AnimationTileset,
		Layer:    config.Scene.AnimationLayer,
		Key:      config.Scene.AnimationKey,
		Value:    config.Scene.AnimationGroup,
		Interval: config.Scene.AnimationInterval,
	})
	if err != nil {
		t.Fatalf("BindAnimation() error = %v", err)
	}
	if res.Frames != 2 || res.Cells == 0 {
		t.Errorf("bind result = %+v, want 2 frames and some cells", res)
	}
}

func near(a, b float64) bool {
	d := a - b
	return d < 1e-9 && d > -1e-9
}
