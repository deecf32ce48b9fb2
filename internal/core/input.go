package core

// Action represents a semantic demo action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P - suspend/resume movement
	ActionRestart        // R - start a new run with fresh obstacles
	ActionTrace          // T - toggle the remaining-path trace
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionTrace:
		return "Trace"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Click is a primary-button press at a screen position, in characters.
type Click struct {
	X, Y int
}

// InputFrame holds everything the player did during one frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicks are kept in arrival order.
	Clicks []Click
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

// AddClick records a click at (x, y).
func (f *InputFrame) AddClick(x, y int) {
	f.Clicks = append(f.Clicks, Click{X: x, Y: y})
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}

// Empty returns true if nothing happened this frame.
func (f InputFrame) Empty() bool {
	return len(f.Clicks) == 0 && len(f.Actions) == 0
}
