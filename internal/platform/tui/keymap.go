package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-pong/internal/core"
)

// paddleStep is how far one key press moves a paddle, in court units.
// Terminals deliver held keys as repeated presses, so holding a key
// produces continuous movement.
const paddleStep = 25.0

// KeyMapper translates Bubble Tea key messages to game actions and
// paddle movement. This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "enter":
		return core.ActionConfirm, false
	case "b":
		return core.ActionBack, false
	case "p", "esc":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapPaddleKey translates a key message to a paddle movement: the side
// it controls and the vertical delta in court units (positive is up).
// Returns SideNone for keys that do not move a paddle.
//
// In vs-AI mode both W/S and the arrow keys drive the left paddle; in
// two-player mode the arrows belong to player 2 on the right.
func (km *KeyMapper) MapPaddleKey(msg tea.KeyMsg, twoPlayer bool) (core.Side, float64) {
	switch msg.String() {
	case "w":
		return core.SideLeft, paddleStep
	case "s":
		return core.SideLeft, -paddleStep
	case "up":
		if twoPlayer {
			return core.SideRight, paddleStep
		}
		return core.SideLeft, paddleStep
	case "down":
		if twoPlayer {
			return core.SideRight, -paddleStep
		}
		return core.SideLeft, -paddleStep
	}
	return core.SideNone, 0
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	}

	return MenuActionNone
}
