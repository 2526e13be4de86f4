package ebitenrender

import (
	"image/color"
	stdmath "math"

	"github.com/automoto/tiledmapgame/render"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/features/math"
	"golang.org/x/image/font"
)

// Surface draws onto an ebiten screen image. World coordinates are mapped
// through the view set by SetView, stretched to fill the screen.
type Surface struct {
	images *Images
	face   font.Face

	screen *ebiten.Image
	view   ebiten.GeoM
	scaleX float64
	scaleY float64
	op     ebiten.DrawImageOptions
}

var _ render.Surface = (*Surface)(nil)

func NewSurface(images *Images, face font.Face) *Surface {
	return &Surface{images: images, face: face, scaleX: 1, scaleY: 1}
}

// Begin targets screen for the next frame and resets the view to identity.
func (s *Surface) Begin(screen *ebiten.Image) {
	s.screen = screen
	s.view.Reset()
	s.scaleX, s.scaleY = 1, 1
}

func (s *Surface) Clear(clr color.Color) {
	s.screen.Fill(clr)
}

func (s *Surface) SetView(v render.View) {
	s.view.Reset()
	if v.Width <= 0 || v.Height <= 0 {
		return
	}
	minX, minY, _, _ := v.Bounds()
	b := s.screen.Bounds()
	s.scaleX = float64(b.Dx()) / v.Width
	s.scaleY = float64(b.Dy()) / v.Height
	s.view.Translate(-minX, -minY)
	s.view.Scale(s.scaleX, s.scaleY)
}

func (s *Surface) DrawRegion(r render.Region, x, y float64) {
	img, ok := s.images.Image(r.Sheet)
	if !ok {
		return
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Translate(x, y)
	s.op.GeoM.Concat(s.view)
	s.screen.DrawImage(img.SubImage(r.Bounds).(*ebiten.Image), &s.op)
}

func (s *Surface) DrawFlipped(r render.Region, x, y float64, flip render.Flip) {
	img, ok := s.images.Image(r.Sheet)
	if !ok {
		return
	}
	w, h := r.Size()
	s.op.GeoM.Reset()
	if flip&render.FlipDiagonal != 0 {
		// Rotating a quarter turn and mirroring on x transposes the region.
		s.op.GeoM.Rotate(stdmath.Pi / 2)
		s.op.GeoM.Scale(-1, 1)
		w, h = h, w
	}
	if flip&render.FlipHorizontal != 0 {
		s.op.GeoM.Scale(-1, 1)
		s.op.GeoM.Translate(w, 0)
	}
	if flip&render.FlipVertical != 0 {
		s.op.GeoM.Scale(1, -1)
		s.op.GeoM.Translate(0, h)
	}
	s.op.GeoM.Translate(x, y)
	s.op.GeoM.Concat(s.view)
	s.screen.DrawImage(img.SubImage(r.Bounds).(*ebiten.Image), &s.op)
}

func (s *Surface) FillRect(x, y, w, h float64, clr color.Color) {
	x0, y0 := s.view.Apply(x, y)
	x1, y1 := s.view.Apply(x+w, y+h)
	vector.FillRect(s.screen, float32(x0), float32(y0), float32(x1-x0), float32(y1-y0), clr, true)
}

func (s *Surface) FillCircle(cx, cy, radius float64, clr color.Color) {
	if s.scaleX != s.scaleY {
		s.FillEllipse(cx-radius, cy-radius, radius*2, radius*2, clr)
		return
	}
	x, y := s.view.Apply(cx, cy)
	vector.FillCircle(s.screen, float32(x), float32(y), float32(radius*s.scaleX), clr, true)
}

// FillEllipse fills the ellipse inscribed in the box one screen row at a time.
func (s *Surface) FillEllipse(x, y, w, h float64, clr color.Color) {
	x0, y0 := s.view.Apply(x, y)
	x1, y1 := s.view.Apply(x+w, y+h)
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	if rx <= 0 || ry <= 0 {
		return
	}

	for row := stdmath.Floor(y0); row < y1; row++ {
		t := (row + 0.5 - cy) / ry
		if t < -1 || t > 1 {
			continue
		}
		half := rx * stdmath.Sqrt(1-t*t)
		vector.FillRect(s.screen, float32(cx-half), float32(row), float32(half*2), 1, clr, false)
	}
}

func (s *Surface) StrokePolyline(points []math.Vec2, width float64, clr color.Color) {
	for i := 1; i < len(points); i++ {
		s.strokeSegment(points[i-1], points[i], width, clr)
	}
}

func (s *Surface) StrokePolygon(points []math.Vec2, width float64, clr color.Color) {
	s.StrokePolyline(points, width, clr)
	if len(points) > 2 {
		s.strokeSegment(points[len(points)-1], points[0], width, clr)
	}
}

func (s *Surface) strokeSegment(a, b math.Vec2, width float64, clr color.Color) {
	ax, ay := s.view.Apply(a.X, a.Y)
	bx, by := s.view.Apply(b.X, b.Y)
	vector.StrokeLine(s.screen, float32(ax), float32(ay), float32(bx), float32(by), float32(width), clr, true)
}

func (s *Surface) DrawText(str string, x, y int, clr color.Color) {
	if s.face == nil {
		return
	}
	text.Draw(s.screen, str, s.face, x, y, clr)
}

func (s *Surface) Overlay(clr color.Color) {
	b := s.screen.Bounds()
	vector.FillRect(s.screen, 0, 0, float32(b.Dx()), float32(b.Dy()), clr, false)
}
