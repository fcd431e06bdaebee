package core

// Action represents a semantic game action, abstracted from physical key
// presses and mouse buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionPress          // Left mouse button down
	ActionRelease        // Left mouse button up
	ActionEscape         // Esc - leave the board
	ActionUndo           // U, Ctrl+Z
	ActionRedo           // Y, Ctrl+Y
	ActionRotate         // R - rotate board 90° clockwise
	ActionFlipH          // H - mirror left/right
	ActionFlipV          // V - mirror top/bottom
	ActionReset          // X - return all pieces to inventory
	ActionTrash          // T - swap the map for another option
	ActionNext           // N, Enter - next level once solved
	ActionQuit           // Q, Ctrl+C - exit session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPress:
		return "Press"
	case ActionRelease:
		return "Release"
	case ActionEscape:
		return "Escape"
	case ActionUndo:
		return "Undo"
	case ActionRedo:
		return "Redo"
	case ActionRotate:
		return "Rotate"
	case ActionFlipH:
		return "FlipH"
	case ActionFlipV:
		return "FlipV"
	case ActionReset:
		return "Reset"
	case ActionTrash:
		return "Trash"
	case ActionNext:
		return "Next"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Pointer is the last known mouse position in screen cells.
type Pointer struct {
	X, Y  int
	Valid bool // False until the terminal reports a mouse position
}

// InputFrame represents the input state for a single simulation tick.
// Actions are edge-triggered and cleared every frame; Pointer persists.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
	Pointer Pointer
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

// MoveTo records a new pointer position.
func (f *InputFrame) MoveTo(x, y int) {
	f.Pointer = Pointer{X: x, Y: y, Valid: true}
}

// Clear resets all actions for the next frame. The pointer is kept.
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
	clone.Pointer = f.Pointer
	return clone
}
