package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionUp               // W - move up
	ActionDown             // S - move down
	ActionLeft             // A - move left
	ActionRight            // D - move right
	ActionFireUp           // Up arrow - shoot up
	ActionFireDown         // Down arrow - shoot down
	ActionFireLeft         // Left arrow - shoot left
	ActionFireRight        // Right arrow - shoot right
	ActionFire             // Space, mouse button - shoot toward pointer
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
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
	case ActionFireUp:
		return "FireUp"
	case ActionFireDown:
		return "FireDown"
	case ActionFireLeft:
		return "FireLeft"
	case ActionFireRight:
		return "FireRight"
	case ActionFire:
		return "Fire"
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

// PointerSpace tells which coordinate system a pointer position uses.
type PointerSpace int

const (
	// PointerCells is a terminal cell position on the game screen.
	PointerCells PointerSpace = iota
	// PointerWorld is a position in playfield world units.
	PointerWorld
)

// Pointer is the last known mouse position.
type Pointer struct {
	X, Y  float64
	Space PointerSpace
	Valid bool
}

// InputFrame represents the input state for a single player during one simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool
	// Pointer is the aim position, if the frontend tracks one.
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

// Any reports whether at least one action was triggered.
func (f InputFrame) Any() bool {
	for _, v := range f.Actions {
		if v {
			return true
		}
	}
	return false
}

// Move returns the movement direction from the Up/Down/Left/Right actions.
// The result is not normalized.
func (f InputFrame) Move() Vec2 {
	var d Vec2
	if f.Has(ActionUp) {
		d.Y--
	}
	if f.Has(ActionDown) {
		d.Y++
	}
	if f.Has(ActionLeft) {
		d.X--
	}
	if f.Has(ActionRight) {
		d.X++
	}
	return d
}

// FireDir returns the shooting direction from the arrow fire actions.
func (f InputFrame) FireDir() Vec2 {
	var d Vec2
	if f.Has(ActionFireUp) {
		d.Y--
	}
	if f.Has(ActionFireDown) {
		d.Y++
	}
	if f.Has(ActionFireLeft) {
		d.X--
	}
	if f.Has(ActionFireRight) {
		d.X++
	}
	return d
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
