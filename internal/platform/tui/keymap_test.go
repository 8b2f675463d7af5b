package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-flappy/internal/core"
)

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		want   core.Event
		wantOK bool
	}{
		{"space", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{' '}}, core.EventPrimary, true},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.EventPrimary, true},
		{"w", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'w'}}, core.EventPrimary, true},
		{"k", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}, core.EventPrimary, true},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, core.EventPrimary, true},
		{"q", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, core.EventQuit, true},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.EventQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.EventQuit, true},
		{"unbound letter", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}}, 0, false},
		{"down arrow", tea.KeyMsg{Type: tea.KeyDown}, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := km.MapKey(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("MapKey(%q) ok = %v, want %v", tt.msg.String(), ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("MapKey(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestMapMouse(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.MouseMsg
		wantOK bool
	}{
		{"left press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{"left release", tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{"right press", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, false},
		{"motion", tea.MouseMsg{Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := km.MapMouse(tt.msg)
			if ok != tt.wantOK {
				t.Fatalf("MapMouse ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && ev != core.EventPrimary {
				t.Errorf("MapMouse = %v, want %v", ev, core.EventPrimary)
			}
		})
	}
}
