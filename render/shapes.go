package render

import (
	"image/color"

	"github.com/yohamta/donburi/features/math"
)

// ShapeRenderer draws debug shapes in a single color and line width.
type ShapeRenderer struct {
	Color     color.Color
	LineWidth float64

	disposed bool
}

func NewShapeRenderer(clr color.Color, lineWidth float64) *ShapeRenderer {
	return &ShapeRenderer{Color: clr, LineWidth: lineWidth}
}

func (r *ShapeRenderer) Rect(s Surface, x, y, w, h float64) {
	if r.disposed {
		return
	}
	s.FillRect(x, y, w, h, r.Color)
}

func (r *ShapeRenderer) Circle(s Surface, cx, cy, radius float64) {
	if r.disposed {
		return
	}
	s.FillCircle(cx, cy, radius, r.Color)
}

func (r *ShapeRenderer) Ellipse(s Surface, x, y, w, h float64) {
	if r.disposed {
		return
	}
	s.FillEllipse(x, y, w, h, r.Color)
}

func (r *ShapeRenderer) Polyline(s Surface, points []math.Vec2) {
	if r.disposed || len(points) < 2 {
		return
	}
	s.StrokePolyline(points, r.LineWidth, r.Color)
}

func (r *ShapeRenderer) Polygon(s Surface, points []math.Vec2) {
	if r.disposed || len(points) < 2 {
		return
	}
	s.StrokePolygon(points, r.LineWidth, r.Color)
}

// Dispose stops the renderer from issuing further draws. Safe to call twice.
func (r *ShapeRenderer) Dispose() {
	r.disposed = true
}

func (r *ShapeRenderer) Disposed() bool {
	return r.disposed
}
