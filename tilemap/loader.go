package tilemap

import (
	"fmt"
	"image"
	"io/fs"
	stdmath "math"
	"path"

	"github.com/automoto/tiledmapgame/assets"
	"github.com/automoto/tiledmapgame/assets/animations"
	"github.com/automoto/tiledmapgame/render"
	"github.com/lafriks/go-tiled"
	"github.com/yohamta/donburi/features/math"
)

// gidMask strips Tiled's flip and rotation flags from a global tile id.
const gidMask = 0x1FFFFFFF

// Load parses a TMX file from fsys. Sheet paths in the resulting regions are
// relative to fsys, so they can be handed straight to a render.Images.
func Load(fsys fs.FS, tmxPath string) (*Map, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("%w: map %s: %w", assets.ErrResourceLoad, tmxPath, err)
	}

	m := NewMap(levelMap.Width, levelMap.Height, levelMap.TileWidth, levelMap.TileHeight)
	baseDir := path.Dir(tmxPath)

	for _, ts := range levelMap.Tilesets {
		if err := loadTileset(m.Tiles, ts, baseDir); err != nil {
			return nil, fmt.Errorf("%w: map %s: %w", assets.ErrResourceLoad, tmxPath, err)
		}
	}

	for _, layer := range levelMap.Layers {
		// Infinite maps keep their cells in chunks, which never add up to a
		// full grid.
		if len(layer.Tiles) != m.Width*m.Height {
			return nil, fmt.Errorf("%w: map %s: layer %q has %d cells, want %d",
				assets.ErrResourceLoad, tmxPath, layer.Name, len(layer.Tiles), m.Width*m.Height)
		}
		tl := m.AddTileLayer(layer.Name)
		tl.Properties = convertProperties(layer.Properties)
		for i, tile := range layer.Tiles {
			if tile.IsNil() || tile.Tileset == nil {
				continue
			}
			id, ok := m.Tiles.byGID[tile.Tileset.FirstGID+tile.ID]
			if !ok {
				return nil, fmt.Errorf("%w: map %s: layer %q references unknown tile %d",
					assets.ErrResourceLookup, tmxPath, layer.Name, tile.Tileset.FirstGID+tile.ID)
			}
			tl.cells[i] = id
			tl.flips[i] = cellFlip(tile)
		}
	}

	for _, og := range levelMap.ObjectGroups {
		ol := m.AddObjectLayer(og.Name)
		ol.Properties = convertProperties(og.Properties)
		for _, o := range og.Objects {
			ol.Objects = append(ol.Objects, convertObject(m.Tiles, o))
		}
	}

	return m, nil
}

func loadTileset(reg *Registry, ts *tiled.Tileset, baseDir string) error {
	dir := baseDir
	if ts.Source != "" {
		dir = path.Join(baseDir, path.Dir(ts.Source))
	}

	defs := make(map[uint32]*tiled.TilesetTile, len(ts.Tiles))
	for _, t := range ts.Tiles {
		defs[t.ID] = t
	}

	set := reg.AddTileSet(ts.Name, ts.FirstGID)
	local := make(map[uint32]TileID)

	if ts.Image == nil {
		// Image collection: every tile brings its own picture.
		for _, def := range ts.Tiles {
			if def.Image == nil {
				continue
			}
			local[def.ID] = reg.AddTile(set, Tile{
				GID: ts.FirstGID + def.ID,
				Region: render.Region{
					Sheet:  path.Join(dir, def.Image.Source),
					Bounds: image.Rect(0, 0, def.Image.Width, def.Image.Height),
				},
				Properties: convertProperties(def.Properties),
			})
		}
	} else {
		columns := ts.Columns
		if columns <= 0 && ts.TileWidth > 0 {
			columns = (ts.Image.Width - 2*ts.Margin + ts.Spacing) / (ts.TileWidth + ts.Spacing)
		}
		if columns <= 0 {
			return fmt.Errorf("tileset %q has no columns", ts.Name)
		}
		sheet := path.Join(dir, ts.Image.Source)
		for i := 0; i < ts.TileCount; i++ {
			id := uint32(i)
			x := ts.Margin + (i%columns)*(ts.TileWidth+ts.Spacing)
			y := ts.Margin + (i/columns)*(ts.TileHeight+ts.Spacing)
			tile := Tile{
				GID: ts.FirstGID + id,
				Region: render.Region{
					Sheet:  sheet,
					Bounds: image.Rect(x, y, x+ts.TileWidth, y+ts.TileHeight),
				},
			}
			if def, ok := defs[id]; ok {
				tile.Properties = convertProperties(def.Properties)
			}
			local[id] = reg.AddTile(set, tile)
		}
	}

	// Animations authored in Tiled point at sibling tiles by local id.
	for _, def := range ts.Tiles {
		if len(def.Animation) == 0 {
			continue
		}
		owner, ok := local[def.ID]
		if !ok {
			continue
		}
		frames := make([]TileID, 0, len(def.Animation))
		durations := make([]float64, 0, len(def.Animation))
		for _, f := range def.Animation {
			frame, ok := local[f.TileID]
			if !ok {
				return fmt.Errorf("tileset %q: animation of tile %d references missing tile %d", ts.Name, def.ID, f.TileID)
			}
			frames = append(frames, frame)
			durations = append(durations, float64(f.Duration)/1000)
		}
		t := reg.tiles[owner]
		t.Animation = &TileAnimation{
			Frames: frames,
			Timing: animations.NewVaryingAnimation(durations, animations.PlayLoop),
		}
	}

	return nil
}

func cellFlip(t *tiled.LayerTile) render.Flip {
	var f render.Flip
	if t.HorizontalFlip {
		f |= render.FlipHorizontal
	}
	if t.VerticalFlip {
		f |= render.FlipVertical
	}
	if t.DiagonalFlip {
		f |= render.FlipDiagonal
	}
	return f
}

func convertProperties(props tiled.Properties) Properties {
	out := make(Properties, len(props))
	for _, p := range props {
		out[p.Name] = p.Value
	}
	return out
}

func convertObject(reg *Registry, o *tiled.Object) *Object {
	class := o.Class
	if class == "" {
		class = o.Type //nolint:staticcheck // TMX files written before Tiled 1.9 use type=
	}
	obj := &Object{
		ID:         o.ID,
		Name:       o.Name,
		Class:      class,
		Properties: convertProperties(o.Properties),
	}

	switch {
	case o.GID != 0:
		gid := o.GID & gidMask
		w, h := o.Width, o.Height
		if t, ok := reg.ByGID(gid); ok && (w == 0 || h == 0) {
			w, h = t.Region.Size()
		}
		// Tiled anchors tile objects at their bottom-left corner.
		obj.Shape = Rectangle{X: o.X, Y: o.Y - h, Width: w, Height: h, GID: gid}
	case len(o.Ellipses) > 0:
		if o.Width == o.Height {
			r := o.Width / 2
			obj.Shape = Circle{X: o.X + r, Y: o.Y + r, Radius: r}
		} else {
			obj.Shape = Ellipse{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
		}
	case len(o.PolyLines) > 0:
		var vs []math.Vec2
		if pl := o.PolyLines[0]; pl.Points != nil {
			for _, p := range *pl.Points {
				vs = append(vs, math.NewVec2(p.X, p.Y))
			}
		}
		obj.Shape = Polyline{Vertices: transformVertices(vs, o.X, o.Y, o.Rotation)}
	case len(o.Polygons) > 0:
		var vs []math.Vec2
		if pg := o.Polygons[0]; pg.Points != nil {
			for _, p := range *pg.Points {
				vs = append(vs, math.NewVec2(p.X, p.Y))
			}
		}
		obj.Shape = Polygon{Vertices: transformVertices(vs, o.X, o.Y, o.Rotation)}
	case o.Width == 0 && o.Height == 0:
		obj.Shape = Point{X: o.X, Y: o.Y}
	default:
		obj.Shape = Rectangle{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
	}

	return obj
}

// transformVertices rotates local vertices clockwise by degrees around the
// object origin and moves them to world space.
func transformVertices(local []math.Vec2, originX, originY, degrees float64) []math.Vec2 {
	rad := degrees * stdmath.Pi / 180
	sin, cos := stdmath.Sincos(rad)
	out := make([]math.Vec2, len(local))
	for i, v := range local {
		out[i] = math.NewVec2(
			originX+v.X*cos-v.Y*sin,
			originY+v.X*sin+v.Y*cos,
		)
	}
	return out
}
