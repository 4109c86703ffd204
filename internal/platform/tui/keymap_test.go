package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := NewKeyMapper()

	tests := []struct {
		name   string
		msg    tea.KeyMsg
		action core.Action
		quit   bool
	}{
		{"left arrow", tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft, false},
		{"a", runeKey('a'), core.ActionLeft, false},
		{"right arrow", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight, false},
		{"d", runeKey('d'), core.ActionRight, false},
		{"space", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, core.ActionLaunch, false},
		{"f", runeKey('f'), core.ActionFire, false},
		{"m", runeKey('m'), core.ActionMute, false},
		{"p", runeKey('p'), core.ActionPause, false},
		{"esc", tea.KeyMsg{Type: tea.KeyEscape}, core.ActionPause, false},
		{"q", runeKey('q'), core.ActionQuit, true},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit, true},
		{"unbound", runeKey('z'), core.ActionNone, false},
		{"up arrow", tea.KeyMsg{Type: tea.KeyUp}, core.ActionNone, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			action, quit := km.MapKey(tc.msg)
			if action != tc.action {
				t.Errorf("MapKey(%q) action = %v, expected %v", tc.msg.String(), action, tc.action)
			}
			if quit != tc.quit {
				t.Errorf("MapKey(%q) quit = %v, expected %v", tc.msg.String(), quit, tc.quit)
			}
		})
	}
}

func TestHeldWindow(t *testing.T) {
	h := NewHeld(3)
	h.Press(core.ActionLeft)

	for tick := range 3 {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionLeft) {
			t.Fatalf("tick %d: left should still be held", tick)
		}
	}

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) {
		t.Error("left should be released after the window")
	}
}

func TestHeldRepeatExtends(t *testing.T) {
	h := NewHeld(2)
	h.Press(core.ActionRight)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	h.Press(core.ActionRight) // auto-repeat

	for tick := range 2 {
		frame := core.NewInputFrame()
		h.Apply(&frame)
		if !frame.Has(core.ActionRight) {
			t.Fatalf("tick %d: repeat should extend the hold", tick)
		}
	}
}

func TestHeldOppositeCancels(t *testing.T) {
	h := NewHeld(5)
	h.Press(core.ActionLeft)
	h.Press(core.ActionRight)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionLeft) || !frame.Has(core.ActionRight) {
		t.Errorf("only right should be held, got %v", frame.Actions)
	}

	h.Release()
	frame = core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionRight) {
		t.Error("Release should drop all holds")
	}
}

func TestHeldIgnoresOtherActions(t *testing.T) {
	h := NewHeld(5)
	h.Press(core.ActionFire)

	frame := core.NewInputFrame()
	h.Apply(&frame)
	if frame.Has(core.ActionFire) {
		t.Error("only movement actions can be held")
	}
}
