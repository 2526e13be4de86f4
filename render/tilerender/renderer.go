// Package tilerender draws tilemap layers onto a render.Surface.
package tilerender

import (
	"fmt"
	stdmath "math"

	"github.com/automoto/tiledmapgame/render"
	"github.com/automoto/tiledmapgame/tilemap"
)

// Renderer draws the tile layers of one map. It holds the map's sheet images
// from New until Dispose.
type Renderer struct {
	Map *tilemap.Map

	images   render.Images
	sheets   []string
	disposed bool
}

// New acquires every sheet the map's tiles reference.
func New(m *tilemap.Map, images render.Images) (*Renderer, error) {
	r := &Renderer{Map: m, images: images}
	for _, sheet := range m.Tiles.Sheets() {
		if err := images.Acquire(sheet); err != nil {
			r.Dispose()
			return nil, fmt.Errorf("tile sheet %s: %w", sheet, err)
		}
		r.sheets = append(r.sheets, sheet)
	}
	return r, nil
}

// RenderLayer draws the cells of layer that intersect view. Tiles taller than
// a cell grow upward from the cell's bottom edge.
func (r *Renderer) RenderLayer(s render.Surface, view render.View, layer *tilemap.TileLayer) {
	if r.disposed || layer == nil {
		return
	}

	tw, th := float64(layer.TileWidth), float64(layer.TileHeight)
	minX, minY, maxX, maxY := view.Bounds()

	col0 := clamp(int(stdmath.Floor(minX/tw)), 0, layer.Width)
	col1 := clamp(int(stdmath.Ceil(maxX/tw)), 0, layer.Width)
	// Oversized tiles reach one row above their cell.
	row0 := clamp(int(stdmath.Floor(minY/th)), 0, layer.Height)
	row1 := clamp(int(stdmath.Ceil(maxY/th))+1, 0, layer.Height)

	for y := row0; y < row1; y++ {
		for x := col0; x < col1; x++ {
			id, _ := layer.Cell(x, y)
			if id == tilemap.Empty {
				continue
			}
			region, ok := r.Map.Tiles.Region(id)
			if !ok {
				continue
			}
			flip := layer.Flip(x, y)
			if flip == 0 {
				_, h := region.Size()
				s.DrawRegion(region, float64(x)*tw, float64(y+1)*th-h)
				continue
			}
			_, h := flip.Size(region.Size())
			s.DrawFlipped(region, float64(x)*tw, float64(y+1)*th-h, flip)
		}
	}
}

// DrawRegion draws a single region with its top-left corner at (x, y).
func (r *Renderer) DrawRegion(s render.Surface, region render.Region, x, y float64) {
	if r.disposed {
		return
	}
	s.DrawRegion(region, x, y)
}

// Dispose releases the acquired sheets. Calling it again is a no-op.
func (r *Renderer) Dispose() {
	if r.disposed {
		return
	}
	r.disposed = true
	for _, sheet := range r.sheets {
		r.images.Release(sheet)
	}
	r.sheets = nil
}

func (r *Renderer) Disposed() bool {
	return r.disposed
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
