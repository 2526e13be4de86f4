// Package render defines the backend-neutral drawing surface used by the
// scene. Game logic draws through these interfaces so the ebiten backend can
// be swapped for a recorder in tests.
package render

import (
	"image"
	"image/color"

	"github.com/yohamta/donburi/features/math"
)

// Region is a rectangle of a sheet image. Sheet is a path in the asset FS.
type Region struct {
	Sheet  string
	Bounds image.Rectangle
}

// Size returns the region's width and height in pixels.
func (r Region) Size() (float64, float64) {
	return float64(r.Bounds.Dx()), float64(r.Bounds.Dy())
}

// Flip is a set of tile orientation flags. Diagonal applies first and swaps
// the region's axes, then horizontal, then vertical.
type Flip uint8

const (
	FlipHorizontal Flip = 1 << iota
	FlipVertical
	FlipDiagonal
)

// Size returns the on-screen width and height of a w by h region drawn with f.
func (f Flip) Size(w, h float64) (float64, float64) {
	if f&FlipDiagonal != 0 {
		return h, w
	}
	return w, h
}

// View is the world-space rectangle the camera shows, centered on Center.
type View struct {
	Center        math.Vec2
	Width, Height float64
}

// Bounds returns the top-left and bottom-right world corners of the view.
func (v View) Bounds() (minX, minY, maxX, maxY float64) {
	return v.Center.X - v.Width/2, v.Center.Y - v.Height/2,
		v.Center.X + v.Width/2, v.Center.Y + v.Height/2
}

// Surface is a per-frame draw target. World-space calls go through the
// current view; DrawText and Overlay are in screen space.
type Surface interface {
	Clear(clr color.Color)
	SetView(v View)

	DrawRegion(r Region, x, y float64)
	DrawFlipped(r Region, x, y float64, flip Flip)

	FillRect(x, y, w, h float64, clr color.Color)
	FillCircle(cx, cy, radius float64, clr color.Color)
	FillEllipse(x, y, w, h float64, clr color.Color)
	StrokePolyline(points []math.Vec2, width float64, clr color.Color)
	StrokePolygon(points []math.Vec2, width float64, clr color.Color)

	DrawText(str string, x, y int, clr color.Color)
	Overlay(clr color.Color)
}

// Images owns the GPU-side sheet images. Acquire and Release are reference
// counted per sheet path.
type Images interface {
	Acquire(sheet string) error
	Release(sheet string)
}
