package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space - rising edge only, never a held level
	ActionStart          // Space, Enter - leave the title screen
	ActionRestart        // R key or restart button - new round after game over
	ActionMute           // M key - toggle audio cues
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionStart:
		return "Start"
	case ActionRestart:
		return "Restart"
	case ActionMute:
		return "Mute"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame is the input snapshot consumed by one simulation tick.
// Left and Right are level state (held or not held); Actions are one-shot
// edges that fired since the previous tick.
type InputFrame struct {
	Left  bool
	Right bool

	// Actions maps action types to whether they were triggered this frame.
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

// Direction resolves the held directions to -1, 0 or +1.
// Holding both directions counts as holding neither.
func (f InputFrame) Direction() int {
	switch {
	case f.Left && !f.Right:
		return -1
	case f.Right && !f.Left:
		return 1
	default:
		return 0
	}
}

// Clear resets the one-shot actions for the next frame. Held directions are
// owned by the input producer and left untouched.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	clone.Left = f.Left
	clone.Right = f.Right
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
