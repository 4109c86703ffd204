package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Game is the simulation driven by the model.
type Game interface {
	Reset(cfg core.RuntimeConfig)
	Resize(w, h int)
	Step(in core.InputFrame) core.StepResult
	Render(dst *core.Screen)
	State() core.GameState
}

// Sounds plays cues raised by the game.
type Sounds interface {
	Play(cue core.Cue)
}

// DefaultHoldTicks is how long a movement key counts as held after a press.
const DefaultHoldTicks = 8

// Options configures the terminal front end.
type Options struct {
	Logger        *log.Logger // Optional; nil discards
	RunID         string      // Tag for log lines of this run
	HoldTicks     int         // 0 uses DefaultHoldTicks
	ScreenshotDir string      // Empty uses ~/.arkanoid/screenshots
}

// Model is the Bubble Tea model for running the game.
type Model struct {
	game       Game
	sounds     Sounds
	screen     *core.Screen
	keys       *KeyMapper
	held       *Held
	help       help.Model
	config     core.RuntimeConfig
	opts       Options
	logger     *log.Logger
	inputFrame core.InputFrame
	gameState  core.GameState
	width      int
	height     int
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
// sounds may be nil.
func NewModel(game Game, sounds Sounds, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.HoldTicks <= 0 {
		opts.HoldTicks = DefaultHoldTicks
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if opts.RunID != "" {
		logger = logger.With("run", opts.RunID)
	}

	h := help.New()
	h.ShowAll = false

	m := Model{
		game:       game,
		sounds:     sounds,
		keys:       NewKeyMapper(),
		held:       NewHeld(opts.HoldTicks),
		help:       h,
		config:     cfg,
		opts:       opts,
		logger:     logger,
		inputFrame: core.NewInputFrame(),
		width:      cfg.ScreenW,
		height:     cfg.ScreenH,
	}
	m.screen = core.NewScreen(cfg.ScreenW, m.playHeight())
	m.config.ScreenH = m.playHeight()

	// Initialize the game
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.logger.Info("game started", "seed", cfg.Seed, "size", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keys := m.keys.Keys()

	switch {
	case key.Matches(msg, keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	case key.Matches(msg, keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.layout()
		return m, nil
	}

	action, isQuit := m.keys.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.logger.Info("quit", "phase", m.gameState.Phase, "score", m.gameState.Score)
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
	case core.ActionLeft, core.ActionRight:
		m.held.Press(action)
	default:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events.
// The playfield is scaled to the new size; the run is kept.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.height = msg.Height
	m.layout()
	m.logger.Debug("resized", "w", msg.Width, "h", msg.Height)
	return m, nil
}

// layout fits the screen between the top edge and the help footer.
func (m *Model) layout() {
	h := m.playHeight()
	m.config.ScreenW = m.width
	m.config.ScreenH = h
	m.screen.Resize(m.width, h)
	m.game.Resize(m.width, h)
}

// playHeight returns the rows left for the game after the help footer.
func (m *Model) playHeight() int {
	footer := lipgloss.Height(m.helpView())
	return max(m.height-footer, 1)
}

func (m *Model) helpView() string {
	m.help.Width = m.width
	return m.help.View(m.keys.Keys())
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.held.Apply(&m.inputFrame)

	prev := m.gameState
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.logTransition(prev, m.gameState)

	// Keys held across a phase change or into a pause would move the
	// paddle on the next screen
	if prev.Phase != m.gameState.Phase || (m.gameState.Paused && !prev.Paused) {
		m.held.Release()
	}

	if m.sounds != nil {
		for _, cue := range result.Cues {
			m.sounds.Play(cue)
		}
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// logTransition records phase and level changes.
func (m *Model) logTransition(prev, cur core.GameState) {
	if prev.Phase != cur.Phase {
		m.logger.Info("phase changed", "from", prev.Phase, "to", cur.Phase,
			"score", cur.Score, "level", cur.Level, "lives", cur.Lives)
	}
	if prev.Level != cur.Level && cur.Phase == prev.Phase {
		m.logger.Info("level changed", "level", cur.Level, "score", cur.Score)
	}
	if cur.Lives < prev.Lives {
		m.logger.Debug("life lost", "lives", cur.Lives)
	}
	if prev.Muted != cur.Muted {
		m.logger.Debug("mute toggled", "muted", cur.Muted)
	}
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	// Render current state
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		dir = filepath.Join(os.Getenv("HOME"), ".arkanoid", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return "", fmt.Errorf("create screenshot dir: %w", err)
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("arkanoid_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	return lipgloss.JoinVertical(lipgloss.Left, RenderScreen(m.screen), m.helpView())
}

// State returns the game state seen on the last tick.
func (m Model) State() core.GameState {
	return m.gameState
}

// Run starts the Bubble Tea program with the given game.
func Run(game Game, sounds Sounds, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, sounds, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
