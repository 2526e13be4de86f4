package tilemap

import (
	"fmt"

	"github.com/automoto/tiledmapgame/assets"
)

// Map is a loaded tile map.
type Map struct {
	Width, Height         int // in tiles
	TileWidth, TileHeight int

	Tiles        *Registry
	TileLayers   []*TileLayer
	ObjectLayers []*ObjectLayer

	disposed bool
}

func NewMap(width, height, tileWidth, tileHeight int) *Map {
	return &Map{
		Width:      width,
		Height:     height,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Tiles:      NewRegistry(),
	}
}

// AddTileLayer appends a new empty layer sized to the map.
func (m *Map) AddTileLayer(name string) *TileLayer {
	l := NewTileLayer(name, m.Width, m.Height, m.TileWidth, m.TileHeight)
	m.TileLayers = append(m.TileLayers, l)
	return l
}

func (m *Map) AddObjectLayer(name string) *ObjectLayer {
	l := &ObjectLayer{Name: name, Properties: Properties{}}
	m.ObjectLayers = append(m.ObjectLayers, l)
	return l
}

func (m *Map) TileLayer(name string) (*TileLayer, error) {
	for _, l := range m.TileLayers {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: tile layer %q", assets.ErrResourceLookup, name)
}

func (m *Map) TileLayerAt(i int) (*TileLayer, error) {
	if i < 0 || i >= len(m.TileLayers) {
		return nil, fmt.Errorf("%w: tile layer #%d", assets.ErrResourceLookup, i)
	}
	return m.TileLayers[i], nil
}

func (m *Map) ObjectLayer(name string) (*ObjectLayer, error) {
	for _, l := range m.ObjectLayers {
		if l.Name == name {
			return l, nil
		}
	}
	return nil, fmt.Errorf("%w: object layer %q", assets.ErrResourceLookup, name)
}

// PixelSize returns the map's size in world pixels.
func (m *Map) PixelSize() (float64, float64) {
	return float64(m.Width * m.TileWidth), float64(m.Height * m.TileHeight)
}

// Dispose drops the map's contents. Calling it again is a no-op.
func (m *Map) Dispose() {
	if m.disposed {
		return
	}
	m.disposed = true
	m.Tiles.clear()
	m.TileLayers = nil
	m.ObjectLayers = nil
}

func (m *Map) Disposed() bool {
	return m.disposed
}
