package core

// Action represents a semantic platform action, abstracted from physical key presses.
type Action int

const (
	ActionNone  Action = iota
	ActionLeft         // Left arrow, A, H - move collector left
	ActionRight        // Right arrow, D, L - move collector right
	ActionStart        // Enter, Space, R - start or restart a round
	ActionHelp         // ? - toggle full help
	ActionQuit         // Q, Ctrl+C - exit
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
	case ActionStart:
		return "Start"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Direction is the enum view of an Intent.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirBoth // Left and right held together; movement cancels out
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirNone:
		return "none"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	case DirBoth:
		return "both"
	default:
		return "unknown"
	}
}

// Intent is the movement request for a single simulation tick.
// Both flags may be set; the collector then does not move.
type Intent struct {
	Left  bool
	Right bool
}

// IntentNone requests no movement.
var IntentNone = Intent{}

// IntentLeft requests movement to the left.
var IntentLeft = Intent{Left: true}

// IntentRight requests movement to the right.
var IntentRight = Intent{Right: true}

// Direction returns the enum form of the intent.
func (i Intent) Direction() Direction {
	switch {
	case i.Left && i.Right:
		return DirBoth
	case i.Left:
		return DirLeft
	case i.Right:
		return DirRight
	default:
		return DirNone
	}
}

// InputFrame represents the actions triggered during one simulation tick.
type InputFrame struct {
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

// Intent extracts the movement intent from the frame.
func (f InputFrame) Intent() Intent {
	return Intent{Left: f.Has(ActionLeft), Right: f.Has(ActionRight)}
}
