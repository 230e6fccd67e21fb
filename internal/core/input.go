package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W, K, Up arrow - move cursor up / swap north
	ActionDown             // S, J, Down arrow - move cursor down / swap south
	ActionLeft             // A, H, Left arrow - move cursor left / swap west
	ActionRight            // D, L, Right arrow - move cursor right / swap east
	ActionUpLeft           // Y - diagonal north-west
	ActionUpRight          // U - diagonal north-east
	ActionDownLeft         // B - diagonal south-west
	ActionDownRight        // N - diagonal south-east
	ActionSelect           // Space, Enter - grab / release the tile under the cursor
	ActionBack             // Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionUpLeft:
		return "UpLeft"
	case ActionUpRight:
		return "UpRight"
	case ActionDownLeft:
		return "DownLeft"
	case ActionDownRight:
		return "DownRight"
	case ActionSelect:
		return "Select"
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

// PointerKind distinguishes pointer events.
type PointerKind int

const (
	PointerPress PointerKind = iota
	PointerRelease
	PointerMotion
)

// PointerEvent is a mouse event in screen cell coordinates.
type PointerEvent struct {
	Kind PointerKind
	X    int
	Y    int
}

// InputFrame represents the input state during one simulation tick.
// It contains all actions and pointer events that arrived during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Pointer holds mouse events in arrival order.
	Pointer []PointerEvent
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

// AddPointer appends a pointer event to the frame.
func (f *InputFrame) AddPointer(ev PointerEvent) {
	f.Pointer = append(f.Pointer, ev)
}

// Clear resets all actions and pointer events for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Pointer = f.Pointer[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if len(f.Pointer) > 0 {
		clone.Pointer = append([]PointerEvent(nil), f.Pointer...)
	}
	return clone
}
