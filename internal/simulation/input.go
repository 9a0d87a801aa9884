package simulation

import "chosenoffset.com/spritemask/internal/render"

// Action is a logical control bound to one or more keys.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionUp
	ActionDown
	ActionX
	ActionY

	NumActions
)

// bindings maps each action to the keys that trigger it.
var bindings = [NumActions][]render.Key{
	ActionLeft:  {render.KeyA, render.KeyLeft},
	ActionRight: {render.KeyD, render.KeyRight},
	ActionUp:    {render.KeyW, render.KeyUp},
	ActionDown:  {render.KeyS, render.KeyDown},
	ActionX:     {render.KeyX},
	ActionY:     {render.KeyZ},
}

// InputState is the input seen by one simulation tick.
type InputState struct {
	MouseX, MouseY   int // cursor position this tick
	MouseDX, MouseDY int // motion since the previous tick
	LeftButton       bool
	RightButton      bool
	Actions          [NumActions]bool
}

// Sample refreshes the state from the backend. The cursor delta is taken
// against the position from the previous call, so motion reported between
// ticks is accumulated rather than lost.
func (in *InputState) Sample(mgr render.InputManager) {
	x, y := mgr.GetCursorPosition()
	in.MouseDX = x - in.MouseX
	in.MouseDY = y - in.MouseY
	in.MouseX = x
	in.MouseY = y

	in.LeftButton = mgr.IsMouseButtonPressed(render.MouseButtonLeft)
	in.RightButton = mgr.IsMouseButtonPressed(render.MouseButtonRight)

	for a, keys := range bindings {
		in.Actions[a] = false
		for _, k := range keys {
			if mgr.IsKeyPressed(k) {
				in.Actions[a] = true
				break
			}
		}
	}
}

// Held reports whether an action is active this tick.
func (in *InputState) Held(a Action) bool {
	return in.Actions[a]
}
