package core

// Action represents a semantic input action, abstracted from physical key presses.
// This allows the hub and minigames to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionUp                // W, Up arrow
	ActionDown              // S, Down arrow
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionConfirm           // Enter - confirm title, zone intro, cake steps
	ActionBack              // Backspace - cancel zone intro or leave a minigame
	ActionPause             // Escape - pause/resume
	ActionRestart           // R - reset puzzle, restart runner after game over
	ActionFullscreen        // F11
	ActionDebug             // F2 - layout editor overlay
	ActionQuit              // Q, Ctrl+C - exit the program
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionFullscreen:
		return "Fullscreen"
	case ActionDebug:
		return "Debug"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the mouse state for one frame, in screen cells.
type Pointer struct {
	X, Y     int
	Pressed  bool // button went down this frame
	Down     bool // button is held
	Released bool // button went up this frame
}

// InputFrame is the polled input snapshot for one frame.
// Actions holds edge events ("just pressed"), Held holds level events.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Held maps action types to whether the key is currently down.
	Held    map[Action]bool
	Pointer Pointer
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		Held:    make(map[Action]bool),
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

// Hold marks an action as held down.
func (f *InputFrame) Hold(a Action) {
	if f.Held == nil {
		f.Held = make(map[Action]bool)
	}
	f.Held[a] = true
}

// IsHeld returns true if the action is held or was triggered this frame.
func (f InputFrame) IsHeld(a Action) bool {
	return f.Held[a] || f.Has(a)
}

// Axis returns -1, 0 or 1 for a pair of opposing held actions.
func (f InputFrame) Axis(neg, pos Action) float64 {
	v := 0.0
	if f.IsHeld(neg) {
		v--
	}
	if f.IsHeld(pos) {
		v++
	}
	return v
}

// Clear resets all actions and pointer edges for the next frame.
// The pointer position and held button survive.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.Held {
		delete(f.Held, k)
	}
	f.Pointer.Pressed = false
	f.Pointer.Released = false
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.Held {
		clone.Held[k] = v
	}
	clone.Pointer = f.Pointer
	return clone
}
