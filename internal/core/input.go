package core

// Action represents a semantic game action, abstracted from physical input.
// This allows the game to work with high-level intents rather than raw keys
// or mouse events.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // Left arrow, A - nudge the pointer left
	ActionRight          // Right arrow, D - nudge the pointer right
	ActionClick          // Mouse click, Space - launch the ball
	ActionConfirm        // Enter - dismiss a dialog
	ActionPause          // P, Escape - pause/unpause game
	ActionQuit           // Q, Ctrl+C - exit the game
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
	case ActionClick:
		return "Click"
	case ActionConfirm:
		return "Confirm"
	case ActionPause:
		return "Pause"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state collected between two simulation ticks.
// It contains all triggered actions and the last known pointer column.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// PointerX is the last pointer column reported this frame.
	// Only meaningful when PointerMoved is true.
	PointerX     int
	PointerMoved bool
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

// MovePointer records a pointer position. Later calls overwrite earlier ones.
func (f *InputFrame) MovePointer(x int) {
	f.PointerX = x
	f.PointerMoved = true
}

// Clear resets all actions and the pointer for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.PointerX = 0
	f.PointerMoved = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.PointerX = f.PointerX
	clone.PointerMoved = f.PointerMoved
	return clone
}
