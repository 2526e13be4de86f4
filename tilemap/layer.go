package tilemap

import (
	"github.com/automoto/tiledmapgame/render"
	"github.com/yohamta/donburi/features/math"
)

// TileLayer is a fixed-size grid of tile handles stored row-major.
type TileLayer struct {
	Name       string
	Width      int
	Height     int
	TileWidth  int
	TileHeight int
	Properties Properties

	cells []TileID
	flips []render.Flip
}

func NewTileLayer(name string, width, height, tileWidth, tileHeight int) *TileLayer {
	return &TileLayer{
		Name:       name,
		Width:      width,
		Height:     height,
		TileWidth:  tileWidth,
		TileHeight: tileHeight,
		Properties: Properties{},
		cells:      make([]TileID, width*height),
		flips:      make([]render.Flip, width*height),
	}
}

// Cell returns the handle at (x, y); ok is false outside the grid.
func (l *TileLayer) Cell(x, y int) (TileID, bool) {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return Empty, false
	}
	return l.cells[y*l.Width+x], true
}

// SetTile points the cell at (x, y) to id. It returns false outside the grid.
func (l *TileLayer) SetTile(x, y int, id TileID) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return false
	}
	l.cells[y*l.Width+x] = id
	return true
}

// Flip returns the orientation flags of the cell at (x, y).
func (l *TileLayer) Flip(x, y int) render.Flip {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return 0
	}
	return l.flips[y*l.Width+x]
}

// SetFlip sets the orientation flags of the cell at (x, y). SetTile keeps
// them, so a rewritten cell stays oriented the same way.
func (l *TileLayer) SetFlip(x, y int, f render.Flip) bool {
	if x < 0 || x >= l.Width || y < 0 || y >= l.Height {
		return false
	}
	l.flips[y*l.Width+x] = f
	return true
}

// ObjectLayer holds map objects in file order.
type ObjectLayer struct {
	Name       string
	Properties Properties
	Objects    []*Object
}

// Object is a free-form annotation placed in world space.
type Object struct {
	ID         uint32
	Name       string
	Class      string
	Properties Properties
	Shape      Shape
}

// Shape is the geometry of an Object. The set of implementations is closed;
// renderers switch on the concrete type and ignore anything they don't know.
type Shape interface {
	shape()
}

// Rectangle is an axis-aligned box. A non-zero GID makes it an image object
// whose tile is drawn with its top-left corner at (X, Y).
type Rectangle struct {
	X, Y, Width, Height float64
	GID                 uint32
}

// Circle is centered on (X, Y).
type Circle struct {
	X, Y, Radius float64
}

// Ellipse is described by its bounding box.
type Ellipse struct {
	X, Y, Width, Height float64
}

// Polyline is an open strip through world-space vertices.
type Polyline struct {
	Vertices []math.Vec2
}

// Polygon is a closed loop through world-space vertices.
type Polygon struct {
	Vertices []math.Vec2
}

// Point marks a single location. It has no debug rendering.
type Point struct {
	X, Y float64
}

func (Rectangle) shape() {}
func (Circle) shape()    {}
func (Ellipse) shape()   {}
func (Polyline) shape()  {}
func (Polygon) shape()   {}
func (Point) shape()     {}
