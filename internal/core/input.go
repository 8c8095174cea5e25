package core

// Action represents a semantic game intent, abstracted from physical key presses.
// The simulation consumes these instead of raw input so the platform can remap
// keys freely and tests can script input.
type Action int

const (
	ActionNone      Action = iota
	ActionMoveLeft         // Left arrow, A, H - set leftward velocity
	ActionMoveRight        // Right arrow, D, L - set rightward velocity
	ActionStop             // Down arrow, S - zero the velocity intent
	ActionFire             // Space - launch the bullet if it is ready
	ActionReset            // R - start a new round, only honored after game over
	ActionQuit             // Q, Ctrl+C - exit, handled by the platform
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionMoveLeft:
		return "MoveLeft"
	case ActionMoveRight:
		return "MoveRight"
	case ActionStop:
		return "Stop"
	case ActionFire:
		return "Fire"
	case ActionReset:
		return "Reset"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
