package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionRestart            // R - reshuffle a fresh level
	ActionToggleMusic        // M - background music on/off
	ActionToggleSound        // S - sound effects on/off
	ActionQuit               // Q, Esc, Ctrl+C - exit (handled by the platform)
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRestart:
		return "Restart"
	case ActionToggleMusic:
		return "ToggleMusic"
	case ActionToggleSound:
		return "ToggleSound"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input collected during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool

	// Clicks are primary-button pointer presses in world coordinates,
	// in the order they arrived.
	Clicks []Point

	// Picks are direct container selections by index (digit keys),
	// in the order they arrived.
	Picks []int
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

// Click records a pointer press at p.
func (f *InputFrame) Click(p Point) {
	f.Clicks = append(f.Clicks, p)
}

// Pick records a direct selection of the container at index i.
func (f *InputFrame) Pick(i int) {
	f.Picks = append(f.Picks, i)
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Actions) == 0 && len(f.Clicks) == 0 && len(f.Picks) == 0
}

// Clear resets all input for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
	f.Picks = f.Picks[:0]
}
