package scenes

import "github.com/automoto/tiledmapgame/render"

// Screen is a scene driven by the host's lifecycle callbacks.
type Screen interface {
	// Show acquires the scene's resources. A failed Show holds nothing.
	Show() error
	// Hide leaves the screen and releases its resources.
	Hide()
	Pause()
	Resume()
	// Update advances the simulation by delta seconds.
	Update(delta float64)
	Draw(s render.Surface)
	Resize(width, height int)
	// Dispose releases the resources acquired by the last Show. Calling it
	// again is a no-op.
	Dispose()
}
