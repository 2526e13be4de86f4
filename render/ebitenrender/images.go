// Package ebitenrender implements the render interfaces on ebiten.
package ebitenrender

import (
	"fmt"
	"io/fs"

	"github.com/automoto/tiledmapgame/assets"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type sheet struct {
	img  *ebiten.Image
	refs int
}

// Images decodes sheet files from an fs.FS into GPU images and keeps each
// alive while at least one holder has acquired it.
type Images struct {
	fsys   fs.FS
	sheets map[string]*sheet
}

func NewImages(fsys fs.FS) *Images {
	return &Images{
		fsys:   fsys,
		sheets: make(map[string]*sheet),
	}
}

func (i *Images) Acquire(path string) error {
	if s, ok := i.sheets[path]; ok {
		s.refs++
		return nil
	}

	f, err := i.fsys.Open(path)
	if err != nil {
		return fmt.Errorf("%w: image %s: %w", assets.ErrResourceLoad, path, err)
	}
	defer f.Close()

	img, _, err := ebitenutil.NewImageFromReader(f)
	if err != nil {
		return fmt.Errorf("%w: decode image %s: %w", assets.ErrResourceLoad, path, err)
	}
	i.sheets[path] = &sheet{img: img, refs: 1}
	return nil
}

// Release drops one reference and frees the GPU image with the last one.
func (i *Images) Release(path string) {
	s, ok := i.sheets[path]
	if !ok {
		return
	}
	s.refs--
	if s.refs > 0 {
		return
	}
	s.img.Deallocate()
	delete(i.sheets, path)
}

// Image returns the loaded sheet for path.
func (i *Images) Image(path string) (*ebiten.Image, bool) {
	s, ok := i.sheets[path]
	if !ok {
		return nil, false
	}
	return s.img, true
}

// Loaded is the number of sheets currently held.
func (i *Images) Loaded() int {
	return len(i.sheets)
}
