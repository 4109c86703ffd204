package tui

import (
	"bytes"
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// fakeGame records what the model asks of it.
type fakeGame struct {
	resets  int
	resizes [][2]int
	frames  []core.InputFrame
	state   core.GameState
	cues    []core.Cue
}

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Phase: "title_screen", Lives: 3, Level: 1}
}

func (g *fakeGame) Resize(w, h int) { g.resizes = append(g.resizes, [2]int{w, h}) }

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	frame := core.NewInputFrame()
	for a, on := range in.Actions {
		if on {
			frame.Set(a)
		}
	}
	g.frames = append(g.frames, frame)
	if in.Has(core.ActionLaunch) {
		g.state.Phase = "playing"
	}
	if in.Has(core.ActionPause) {
		g.state.Paused = !g.state.Paused
	}
	return core.StepResult{State: g.state, Cues: g.cues}
}

func (g *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE")
}

func (g *fakeGame) State() core.GameState { return g.state }

type recordedSounds struct {
	played []core.Cue
}

func (s *recordedSounds) Play(cue core.Cue) { s.played = append(s.played, cue) }

func newTestModel(t *testing.T, game *fakeGame, sounds Sounds, logs *bytes.Buffer) Model {
	t.Helper()
	opts := Options{HoldTicks: 2, RunID: "test-run", ScreenshotDir: t.TempDir()}
	if logs != nil {
		opts.Logger = log.New(logs)
	}
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	return NewModel(game, sounds, cfg, opts)
}

func send(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestNewModelResetsGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil, nil)

	if game.resets != 1 {
		t.Errorf("Reset called %d times, expected 1", game.resets)
	}
	if m.State().Phase != "title_screen" {
		t.Errorf("initial phase = %q", m.State().Phase)
	}
	if h := m.screen.Height(); h >= 24 || h < 20 {
		t.Errorf("screen height %d should leave room for the help footer", h)
	}
}

func TestKeysReachGameOnTick(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	m = send(t, m, runeKey('f'))
	m = send(t, m, TickMsg{})

	last := game.frames[len(game.frames)-1]
	if !last.Has(core.ActionLaunch) || !last.Has(core.ActionFire) {
		t.Errorf("tick frame = %v, expected launch and fire", last.Actions)
	}
	if m.State().Phase != "playing" {
		t.Errorf("phase = %q, expected playing", m.State().Phase)
	}

	// Input is cleared after each tick
	send(t, m, TickMsg{})
	if game.frames[len(game.frames)-1].Has(core.ActionLaunch) {
		t.Error("launch should not repeat on the next tick")
	}
}

func TestMovementIsHeldBetweenPresses(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil, nil)

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	for range 3 {
		m = send(t, m, TickMsg{})
	}

	if len(game.frames) != 3 {
		t.Fatalf("got %d frames", len(game.frames))
	}
	if !game.frames[0].Has(core.ActionLeft) || !game.frames[1].Has(core.ActionLeft) {
		t.Error("left should be held for the hold window")
	}
	if game.frames[2].Has(core.ActionLeft) {
		t.Error("left should be released after the hold window")
	}
}

func TestHeldMovementEndsOnPhaseChangeOrPause(t *testing.T) {
	tests := []struct {
		name string
		key  tea.KeyMsg
	}{
		{"phase change", tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}},
		{"pause", tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			game := &fakeGame{}
			m := newTestModel(t, game, nil, nil)

			m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
			m = send(t, m, tc.key)
			m = send(t, m, TickMsg{})
			send(t, m, TickMsg{})

			if !game.frames[0].Has(core.ActionLeft) {
				t.Error("left should reach the game on the first tick")
			}
			if game.frames[1].Has(core.ActionLeft) {
				t.Error("left should be released after the state change")
			}
		})
	}
}

func TestCuesArePlayed(t *testing.T) {
	game := &fakeGame{cues: []core.Cue{core.CueBounce, core.CueLaser}}
	sounds := &recordedSounds{}
	m := newTestModel(t, game, sounds, nil)

	send(t, m, TickMsg{})

	if len(sounds.played) != 2 || sounds.played[0] != core.CueBounce || sounds.played[1] != core.CueLaser {
		t.Errorf("played %v, expected [bounce laser]", sounds.played)
	}
}

func TestNilSoundsIsAllowed(t *testing.T) {
	game := &fakeGame{cues: []core.Cue{core.CueGameOver}}
	m := newTestModel(t, game, nil, nil)
	send(t, m, TickMsg{})
}

func TestResizeKeepsRun(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil, nil)

	m = send(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if game.resets != 1 {
		t.Errorf("resize should not reset the game, Reset called %d times", game.resets)
	}
	if len(game.resizes) == 0 {
		t.Fatal("game was not resized")
	}
	got := game.resizes[len(game.resizes)-1]
	if got[0] != 120 || got[1] >= 40 {
		t.Errorf("game resized to %v, expected width 120 and height below 40", got)
	}
	if m.screen.Width() != 120 || m.screen.Height() != got[1] {
		t.Errorf("screen %dx%d does not match game size %v", m.screen.Width(), m.screen.Height(), got)
	}
}

func TestHelpToggleResizesGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil, nil)
	short := m.screen.Height()

	m = send(t, m, runeKey('?'))

	if !m.help.ShowAll {
		t.Fatal("? should show the full help")
	}
	if m.screen.Height() >= short {
		t.Errorf("full help should take more rows: %d -> %d", short, m.screen.Height())
	}
}

func TestQuit(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil, nil)

	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if next.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestViewIncludesGameAndHelp(t *testing.T) {
	m := newTestModel(t, &fakeGame{}, nil, nil)

	view := m.View()
	if !strings.Contains(view, "FAKE") {
		t.Error("view should contain the rendered game")
	}
	if !strings.Contains(view, "quit") {
		t.Error("view should contain the help footer")
	}
}

func TestPhaseChangesAreLogged(t *testing.T) {
	var logs bytes.Buffer
	game := &fakeGame{}
	m := newTestModel(t, game, nil, &logs)

	m = send(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	send(t, m, TickMsg{})

	out := logs.String()
	if !strings.Contains(out, "phase changed") || !strings.Contains(out, "playing") {
		t.Errorf("expected a phase change log, got %q", out)
	}
	if !strings.Contains(out, "test-run") {
		t.Errorf("log lines should carry the run id, got %q", out)
	}
}

func TestScreenshot(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(t, game, nil, nil)

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "FAKE") {
		t.Errorf("screenshot should contain the screen, got %q", data)
	}
}
