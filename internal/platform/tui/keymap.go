package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

// KeyMapper translates Bubble Tea input messages to game events.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an event.
// ok is false for keys that have no binding.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (ev core.Event, ok bool) {
	switch msg.String() {
	case "ctrl+c", "q", "esc":
		return core.EventQuit, true
	case " ", "space", "up", "w", "k", "enter":
		return core.EventPrimary, true
	}
	return 0, false
}

// MapMouse translates a mouse message. A left-button press is the
// primary action, like a tap.
func (km *KeyMapper) MapMouse(msg tea.MouseMsg) (ev core.Event, ok bool) {
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft {
		return core.EventPrimary, true
	}
	return 0, false
}
