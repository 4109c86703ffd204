package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// KeyMap defines the key bindings for play.
type KeyMap struct {
	Left       key.Binding
	Right      key.Binding
	Launch     key.Binding
	Fire       key.Binding
	Mute       key.Binding
	Pause      key.Binding
	Screenshot key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Launch, k.Fire, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Launch, k.Fire},
		{k.Mute, k.Pause, k.Screenshot},
		{k.Help, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left: key.NewBinding(
			key.WithKeys("left", "a"),
			key.WithHelp("←/a", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "d"),
			key.WithHelp("→/d", "right"),
		),
		Launch: key.NewBinding(
			key.WithKeys(" ", "space"),
			key.WithHelp("space", "start/launch"),
		),
		Fire: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fire"),
		),
		Mute: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "mute"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p", "esc"),
			key.WithHelp("p/esc", "pause"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings used by the mapper.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// MapKey translates a key message to a game action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	k := km.keys

	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit, true
	case key.Matches(msg, k.Left):
		return core.ActionLeft, false
	case key.Matches(msg, k.Right):
		return core.ActionRight, false
	case key.Matches(msg, k.Launch):
		return core.ActionLaunch, false
	case key.Matches(msg, k.Fire):
		return core.ActionFire, false
	case key.Matches(msg, k.Mute):
		return core.ActionMute, false
	case key.Matches(msg, k.Pause):
		return core.ActionPause, false
	}

	return core.ActionNone, false
}

// Held tracks movement keys between presses.
//
// Terminals report key presses and auto-repeats but never releases, so a
// movement key counts as held for a short window after each press. A press
// of the opposite direction ends the hold at once.
type Held struct {
	window int
	ticks  map[core.Action]int
}

// NewHeld creates a tracker that keeps keys held for window ticks.
func NewHeld(window int) *Held {
	return &Held{
		window: max(window, 1),
		ticks:  make(map[core.Action]int),
	}
}

// Press records a press of a movement action.
func (h *Held) Press(a core.Action) {
	switch a {
	case core.ActionLeft:
		delete(h.ticks, core.ActionRight)
	case core.ActionRight:
		delete(h.ticks, core.ActionLeft)
	default:
		return
	}
	h.ticks[a] = h.window
}

// Apply sets held actions on the frame and ages the holds by one tick.
func (h *Held) Apply(frame *core.InputFrame) {
	for a, n := range h.ticks {
		frame.Set(a)
		if n <= 1 {
			delete(h.ticks, a)
			continue
		}
		h.ticks[a] = n - 1
	}
}

// Release drops all holds.
func (h *Held) Release() {
	clear(h.ticks)
}
