// Package rendertest provides in-memory render.Surface and render.Images
// implementations for tests.
package rendertest

import (
	"fmt"
	"image/color"
	"sort"

	"github.com/automoto/tiledmapgame/render"
	"github.com/yohamta/donburi/features/math"
)

// Op names a recorded Surface call.
type Op string

const (
	OpClear          Op = "clear"
	OpSetView        Op = "view"
	OpDrawRegion     Op = "region"
	OpFillRect       Op = "rect"
	OpFillCircle     Op = "circle"
	OpFillEllipse    Op = "ellipse"
	OpStrokePolyline Op = "polyline"
	OpStrokePolygon  Op = "polygon"
	OpDrawText       Op = "text"
	OpOverlay        Op = "overlay"
)

// Call is one recorded draw call. Only the fields relevant to Op are set.
type Call struct {
	Op     Op
	Region render.Region
	Flip   render.Flip
	View   render.View
	X, Y   float64
	W, H   float64
	Points []math.Vec2
	Text   string
	Color  color.Color
}

// Recorder is a render.Surface that remembers every call in order.
type Recorder struct {
	Calls []Call
}

var _ render.Surface = (*Recorder)(nil)

func (r *Recorder) Clear(clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: clr})
}

func (r *Recorder) SetView(v render.View) {
	r.Calls = append(r.Calls, Call{Op: OpSetView, View: v})
}

func (r *Recorder) DrawRegion(reg render.Region, x, y float64) {
	w, h := reg.Size()
	r.Calls = append(r.Calls, Call{Op: OpDrawRegion, Region: reg, X: x, Y: y, W: w, H: h})
}

// DrawFlipped records a region draw like DrawRegion, with W and H being the
// flipped size.
func (r *Recorder) DrawFlipped(reg render.Region, x, y float64, flip render.Flip) {
	w, h := flip.Size(reg.Size())
	r.Calls = append(r.Calls, Call{Op: OpDrawRegion, Region: reg, Flip: flip, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillRect(x, y, w, h float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillRect, X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillCircle, X: cx, Y: cy, W: radius * 2, H: radius * 2, Color: clr})
}

func (r *Recorder) FillEllipse(x, y, w, h float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpFillEllipse, X: x, Y: y, W: w, H: h, Color: clr})
}

func (r *Recorder) StrokePolyline(points []math.Vec2, width float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokePolyline, Points: points, W: width, Color: clr})
}

func (r *Recorder) StrokePolygon(points []math.Vec2, width float64, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpStrokePolygon, Points: points, W: width, Color: clr})
}

func (r *Recorder) DrawText(str string, x, y int, clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpDrawText, Text: str, X: float64(x), Y: float64(y), Color: clr})
}

func (r *Recorder) Overlay(clr color.Color) {
	r.Calls = append(r.Calls, Call{Op: OpOverlay, Color: clr})
}

// Count returns how many calls used one of ops.
func (r *Recorder) Count(ops ...Op) int {
	n := 0
	for _, c := range r.Calls {
		for _, op := range ops {
			if c.Op == op {
				n++
				break
			}
		}
	}
	return n
}

// ShapeCalls counts the debug shape calls.
func (r *Recorder) ShapeCalls() int {
	return r.Count(OpFillRect, OpFillCircle, OpFillEllipse, OpStrokePolyline, OpStrokePolygon)
}

// Filter returns the calls with the given op, in order.
func (r *Recorder) Filter(op Op) []Call {
	var out []Call
	for _, c := range r.Calls {
		if c.Op == op {
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Reset() {
	r.Calls = nil
}

// Images is a counting render.Images. Sheets listed in Missing fail to load.
type Images struct {
	Missing map[string]bool

	acquired map[string]int
	released map[string]int
	live     map[string]int
}

var _ render.Images = (*Images)(nil)

func NewImages() *Images {
	return &Images{
		Missing:  make(map[string]bool),
		acquired: make(map[string]int),
		released: make(map[string]int),
		live:     make(map[string]int),
	}
}

func (i *Images) Acquire(sheet string) error {
	if i.Missing[sheet] {
		return fmt.Errorf("open %s: file does not exist", sheet)
	}
	i.acquired[sheet]++
	i.live[sheet]++
	return nil
}

// Release panics on a release without a matching acquire so tests catch
// double frees.
func (i *Images) Release(sheet string) {
	if i.live[sheet] == 0 {
		panic(fmt.Sprintf("rendertest: release of %s without acquire", sheet))
	}
	i.released[sheet]++
	i.live[sheet]--
}

func (i *Images) Acquired(sheet string) int { return i.acquired[sheet] }
func (i *Images) Released(sheet string) int { return i.released[sheet] }

// Live lists sheets that are still held, sorted.
func (i *Images) Live() []string {
	var out []string
	for sheet, n := range i.live {
		if n > 0 {
			out = append(out, sheet)
		}
	}
	sort.Strings(out)
	return out
}

// Balanced reports whether every acquire has been released.
func (i *Images) Balanced() bool {
	return len(i.Live()) == 0
}
