// Package atlas loads packed sprite sheets described by a JSON region list.
package atlas

import (
	"encoding/json"
	"fmt"
	"image"
	"io/fs"
	"path"
	"sort"

	"github.com/automoto/tiledmapgame/assets"
	"github.com/automoto/tiledmapgame/render"
)

// RegionDefinition is one named frame of the sheet. Frames of the same
// animation share a name and are ordered by Index.
type RegionDefinition struct {
	Name   string `json:"name"`
	Index  int    `json:"index"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// Config is the JSON layout of an atlas file.
type Config struct {
	Name      string             `json:"name"`
	ImagePath string             `json:"image_path"` // relative to the JSON file
	Regions   []RegionDefinition `json:"regions"`
}

// Atlas is a loaded sprite sheet. The sheet image is held in images until
// Dispose.
type Atlas struct {
	Config *Config
	Sheet  string

	images   render.Images
	byName   map[string][]render.Region
	disposed bool
}

// Load reads the atlas description at configPath and acquires its sheet.
func Load(fsys fs.FS, configPath string, images render.Images) (*Atlas, error) {
	data, err := fs.ReadFile(fsys, configPath)
	if err != nil {
		return nil, fmt.Errorf("%w: atlas %s: %w", assets.ErrResourceLoad, configPath, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: atlas %s: %w", assets.ErrResourceLoad, configPath, err)
	}
	if cfg.ImagePath == "" {
		return nil, fmt.Errorf("%w: atlas %s: image_path is required", assets.ErrResourceLoad, configPath)
	}

	sheet := path.Join(path.Dir(configPath), cfg.ImagePath)
	byName := make(map[string][]RegionDefinition)
	for _, r := range cfg.Regions {
		if r.Width <= 0 || r.Height <= 0 {
			return nil, fmt.Errorf("%w: atlas %s: region %s#%d has size %dx%d",
				assets.ErrResourceLoad, configPath, r.Name, r.Index, r.Width, r.Height)
		}
		byName[r.Name] = append(byName[r.Name], r)
	}

	if err := images.Acquire(sheet); err != nil {
		return nil, fmt.Errorf("%w: atlas %s: %w", assets.ErrResourceLoad, configPath, err)
	}

	a := &Atlas{
		Config: &cfg,
		Sheet:  sheet,
		images: images,
		byName: make(map[string][]render.Region, len(byName)),
	}
	for name, defs := range byName {
		sort.SliceStable(defs, func(i, j int) bool { return defs[i].Index < defs[j].Index })
		regions := make([]render.Region, len(defs))
		for i, d := range defs {
			regions[i] = render.Region{
				Sheet:  sheet,
				Bounds: image.Rect(d.X, d.Y, d.X+d.Width, d.Y+d.Height),
			}
		}
		a.byName[name] = regions
	}

	return a, nil
}

// FindRegions returns every frame named name in index order.
func (a *Atlas) FindRegions(name string) ([]render.Region, error) {
	regions, ok := a.byName[name]
	if !ok || len(regions) == 0 {
		return nil, fmt.Errorf("%w: atlas region %q", assets.ErrResourceLookup, name)
	}
	return regions, nil
}

// Dispose releases the sheet. Calling it again is a no-op.
func (a *Atlas) Dispose() {
	if a.disposed {
		return
	}
	a.disposed = true
	a.images.Release(a.Sheet)
	a.byName = nil
}

func (a *Atlas) Disposed() bool {
	return a.disposed
}
