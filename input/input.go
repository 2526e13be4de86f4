// Package input tracks per-action button state across ticks. Devices feed
// it; the player system reads edges from it.
package input

// Action is a logical player action.
type Action int

const (
	ActionMoveLeft Action = iota
	ActionMoveRight
	ActionJump
	ActionCount
)

func (a Action) String() string {
	switch a {
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionJump:
		return "Jump"
	}
	return "Unknown"
}

// Source reports action input for the current tick. Movement is driven by
// the edges; the held state lets a resumed scene catch up on edges it
// missed.
type Source interface {
	Pressed(a Action) bool
	JustPressed(a Action) bool
	JustReleased(a Action) bool
}

// State stores the current and previous tick's pressed state for all
// actions. JustPressed/JustReleased are computed by comparing ticks.
type State struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

var _ Source = (*State)(nil)

// Step makes the current tick the previous one and records pressed as the
// new current state.
func (s *State) Step(pressed [ActionCount]bool) {
	s.Previous = s.Current
	s.Current = pressed
}

func (s *State) Pressed(a Action) bool {
	return valid(a) && s.Current[a]
}

func (s *State) JustPressed(a Action) bool {
	return valid(a) && s.Current[a] && !s.Previous[a]
}

func (s *State) JustReleased(a Action) bool {
	return valid(a) && !s.Current[a] && s.Previous[a]
}

func valid(a Action) bool {
	return a >= 0 && a < ActionCount
}
