package animations

import "github.com/automoto/tiledmapgame/render"

// PlayMode controls what happens after the last frame.
type PlayMode int

const (
	// PlayNormal stops on the last frame.
	PlayNormal PlayMode = iota
	// PlayLoop wraps back to the first frame.
	PlayLoop
)

// Animation maps an elapsed state time (seconds) to a frame index.
type Animation struct {
	Durations []float64 // seconds per frame
	Mode      PlayMode
	total     float64
}

// NewAnimation creates an animation of frameCount frames that each last frameDuration.
func NewAnimation(frameCount int, frameDuration float64, mode PlayMode) *Animation {
	durations := make([]float64, frameCount)
	for i := range durations {
		durations[i] = frameDuration
	}
	return NewVaryingAnimation(durations, mode)
}

// NewVaryingAnimation creates an animation with a duration per frame.
func NewVaryingAnimation(durations []float64, mode PlayMode) *Animation {
	a := &Animation{
		Durations: durations,
		Mode:      mode,
	}
	for _, d := range durations {
		a.total += d
	}
	return a
}

func (a *Animation) FrameCount() int {
	return len(a.Durations)
}

// Duration is the length of one pass through all frames.
func (a *Animation) Duration() float64 {
	return a.total
}

// FrameIndex returns the frame shown at stateTime, or -1 when there are no frames.
func (a *Animation) FrameIndex(stateTime float64) int {
	n := len(a.Durations)
	if n == 0 {
		return -1
	}
	if n == 1 || a.total <= 0 || stateTime <= 0 {
		return 0
	}

	t := stateTime
	if a.Mode == PlayLoop {
		cycles := int(t / a.total)
		t -= float64(cycles) * a.total
	} else if t >= a.total {
		return n - 1
	}

	for i, d := range a.Durations {
		if t < d {
			return i
		}
		t -= d
	}
	return n - 1
}

// Finished reports whether a non-looping animation has passed its last frame.
func (a *Animation) Finished(stateTime float64) bool {
	return a.Mode != PlayLoop && stateTime >= a.total
}

// Clip pairs an Animation with the texture regions it steps through.
type Clip struct {
	Frames []render.Region
	*Animation
}

func NewClip(frameDuration float64, frames []render.Region, mode PlayMode) *Clip {
	return &Clip{
		Frames:    frames,
		Animation: NewAnimation(len(frames), frameDuration, mode),
	}
}

// KeyFrame returns the region shown at stateTime.
func (c *Clip) KeyFrame(stateTime float64) (render.Region, bool) {
	i := c.FrameIndex(stateTime)
	if i < 0 {
		return render.Region{}, false
	}
	return c.Frames[i], true
}
