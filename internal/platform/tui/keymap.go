package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-bee/internal/core"
)

// Scene names as reported in core.GameState.
const (
	sceneMenu = "menu"
	sceneGame = "game"
)

// KeyMapper translates Bubble Tea key and mouse messages to game actions.
// Bindings depend on the scene: arrows move the menu cursor but flap in the
// game.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action for the given scene.
// It reports whether the key is a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg, scene string) (action core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	if scene == sceneGame {
		switch key {
		case " ", "up", "w", "k":
			return core.ActionJump, false
		}
	}

	switch key {
	case "w", "up", "k":
		return core.ActionUp, false
	case "s", "down", "j":
		return core.ActionDown, false
	case " ":
		return core.ActionJump, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, scene string, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg, scene)
	if action != core.ActionNone {
		frame.Set(action)
	}
	return isQuit
}

// MapMouseToFrame records a left-button press. In the game it flaps; in the
// menu it becomes a click at the cell under the pointer.
func (km *KeyMapper) MapMouseToFrame(msg tea.MouseMsg, scene string, frame *core.InputFrame) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return
	}
	if scene == sceneGame {
		frame.Set(core.ActionJump)
		return
	}
	frame.SetClick(msg.X, msg.Y)
}
