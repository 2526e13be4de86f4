package assets

import (
	"embed"
	"errors"
	"io/fs"
)

var (
	//go:embed all:maps all:img
	assetFS embed.FS
)

// Error kinds surfaced while a scene acquires its resources.
var (
	// ErrResourceLoad means a map or atlas file is missing or corrupt.
	ErrResourceLoad = errors.New("resource load failed")
	// ErrResourceLookup means a named layer, tile set or tile id does not exist.
	ErrResourceLookup = errors.New("resource not found")
)

// FS returns the embedded asset root. Scene paths such as "maps/map.tmx" are
// relative to it.
func FS() fs.FS {
	return assetFS
}
