package core

// Side identifies one of the two paddles. The left paddle always
// belongs to the human player; the right paddle is driven by the AI
// controller or, in two-player mode, by a second human.
type Side int

const (
	SideNone  Side = iota // No side (e.g. nobody has hit the ball yet)
	SideLeft              // Left paddle (player 1)
	SideRight             // Right paddle (AI or player 2)
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideRight:
		return "right"
	default:
		return "none"
	}
}

// Opponent returns the other side. SideNone is its own opponent.
func (s Side) Opponent() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return SideNone
	}
}

// Action represents a semantic game action, abstracted from physical
// key presses. Paddle movement is not an action: paddles are driven by
// absolute position commands (see InputFrame.SetPaddleY).
type Action int

const (
	ActionNone    Action = iota
	ActionPause          // P, Esc - pause/unpause the match
	ActionRestart        // R - restart after game over
	ActionConfirm        // Enter - confirm selection in menus
	ActionBack           // B, Esc - go back in menus
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
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It carries triggered actions plus optional absolute paddle position
// commands. Position commands are last-write-wins: a later SetPaddleY
// for the same side replaces the earlier one, and the engine reads the
// final value at the start of the next tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	paddleY map[Side]float64
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
		paddleY: make(map[Side]float64),
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

// SetPaddleY commands a paddle to the given vertical offset from the
// court center. The value is unconstrained here; the engine clamps it
// to the legal travel range before use.
func (f *InputFrame) SetPaddleY(side Side, y float64) {
	if f.paddleY == nil {
		f.paddleY = make(map[Side]float64)
	}
	f.paddleY[side] = y
}

// PaddleY returns the commanded offset for a side and whether one was
// issued this frame.
func (f InputFrame) PaddleY(side Side) (float64, bool) {
	if f.paddleY == nil {
		return 0, false
	}
	y, ok := f.paddleY[side]
	return y, ok
}

// Clear resets all actions and position commands for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	for k := range f.paddleY {
		delete(f.paddleY, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	for k, v := range f.paddleY {
		clone.paddleY[k] = v
	}
	return clone
}
