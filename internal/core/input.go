package core

// Action is a semantic game action, decoupled from physical keys and buttons.
type Action int

const (
	ActionNone    Action = iota
	ActionUp             // W, Up arrow - move menu cursor up
	ActionDown           // S, Down arrow - move menu cursor down
	ActionJump           // Space - flap
	ActionDuck           // reserved for a dive
	ActionConfirm        // Enter - activate the selected button
	ActionBack           // B, Escape - back to the menu
	ActionRestart        // R - restart after game over
	ActionQuit           // Q, Ctrl+C - leave the program
	ActionPause          // P - pause/unpause
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
	case ActionJump:
		return "Jump"
	case ActionDuck:
		return "Duck"
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

// InputFrame is the input collected for one simulation tick.
type InputFrame struct {
	// Actions holds every action triggered this tick.
	Actions map[Action]bool
	// Click is the last pointer click in cell coordinates, if any.
	Click *Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered this tick.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has reports whether the action was triggered this tick.
func (f InputFrame) Has(a Action) bool {
	return f.Actions[a]
}

// SetClick records a pointer click at cell (x, y).
func (f *InputFrame) SetClick(x, y int) {
	f.Click = &Point{X: x, Y: y}
}

// Empty reports whether nothing happened this tick.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && f.Click == nil
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Click = nil
}

// Clone returns a deep copy of the frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	if f.Click != nil {
		p := *f.Click
		clone.Click = &p
	}
	return clone
}
