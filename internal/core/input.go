package core

// Action represents a semantic game action, abstracted from physical key
// presses. This allows games to work with high-level intents rather than
// raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move claw left (held)
	ActionRight          // D, Right arrow - move claw right (held)
	ActionRaise          // W, Up arrow - manual rope raise (held)
	ActionLower          // S, Down arrow - lower/drop trigger (edge) and manual rope lower (held)
	ActionBoard          // N - seat the next passenger (coaster)
	ActionConfirm        // Enter - start the ride / confirm in menus
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRaise:
		return "Raise"
	case ActionLower:
		return "Lower"
	case ActionBoard:
		return "Board"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Click is a latched pointer press in world (NDC) coordinates.
// The platform queues one Click per physical press and drains the queue
// into exactly one InputFrame, so no click is ever lost or duplicated
// regardless of tick duration.
type Click struct {
	Pos Vec2
}

// InputFrame represents the sampled input state for a single simulation
// tick: edge-triggered actions that fired since the previous tick, the
// level state of held keys, the current pointer position, and the queue
// of pointer clicks.
type InputFrame struct {
	// Pressed holds actions that transitioned from up to down since the
	// previous tick. Each physical press fires exactly once.
	Pressed map[Action]bool

	// Held holds actions whose key is currently considered down.
	Held map[Action]bool

	// Pointer is the current pointer position in NDC.
	Pointer Vec2

	// Clicks are the pointer presses latched since the previous tick,
	// in arrival order.
	Clicks []Click
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Pressed: make(map[Action]bool),
		Held:    make(map[Action]bool),
	}
}

// Press marks an action as edge-triggered for this frame.
func (f *InputFrame) Press(a Action) {
	if f.Pressed == nil {
		f.Pressed = make(map[Action]bool)
	}
	f.Pressed[a] = true
}

// WasPressed returns true if the action fired an up-to-down edge this frame.
func (f InputFrame) WasPressed(a Action) bool {
	if f.Pressed == nil {
		return false
	}
	return f.Pressed[a]
}

// Hold marks an action's key as currently down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the action's key is currently down.
func (f InputFrame) IsHeld(a Action) bool {
	if f.Held == nil {
		return false
	}
	return f.Held[a]
}

// AddClick appends a latched pointer press.
func (f *InputFrame) AddClick(pos Vec2) {
	f.Clicks = append(f.Clicks, Click{Pos: pos})
}

// Clear resets edge actions and drains the click queue for the next frame.
// Held state is rebuilt by the platform each tick and is cleared too.
func (f *InputFrame) Clear() {
	for k := range f.Pressed {
		delete(f.Pressed, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Clicks = f.Clicks[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Pressed {
		clone.Pressed[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Pointer = f.Pointer
	clone.Clicks = append(clone.Clicks, f.Clicks...)
	return clone
}
