package components

import (
	"github.com/automoto/tiledmapgame/assets/animations"
	"github.com/automoto/tiledmapgame/render"
	"github.com/yohamta/donburi"
)

// ClipID names one of an entity's animation clips.
type ClipID string

const (
	ClipStill ClipID = "still"
	ClipLeft  ClipID = "left"
	ClipRight ClipID = "right"
)

type AnimationData struct {
	Clips   map[ClipID]*animations.Clip
	Current ClipID
}

// SetClip switches to id if the entity has such a clip.
func (a *AnimationData) SetClip(id ClipID) {
	if _, ok := a.Clips[id]; ok {
		a.Current = id
	}
}

// KeyFrame returns the current clip's frame at stateTime.
func (a *AnimationData) KeyFrame(stateTime float64) (render.Region, bool) {
	clip, ok := a.Clips[a.Current]
	if !ok {
		return render.Region{}, false
	}
	return clip.KeyFrame(stateTime)
}

var Animation = donburi.NewComponentType[AnimationData]()
