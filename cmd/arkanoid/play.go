package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/audio"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
)

var (
	flagFPS       int
	flagSeed      int64
	flagSounds    string
	flagMute      bool
	flagHoldTicks int
	flagLogFile   string
	flagLogLevel  string
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the game",
		Long: `Start a game at the title screen.

Controls:
  Left/A, Right/D  - Move the paddle
  Space            - Start, launch a glued ball, return to title
  F                - Fire lasers (after the laser power-up)
  M                - Mute/unmute
  P/Esc            - Pause
  ?                - More keys
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - More lives, wider paddle, slower ball
  normal - Ball speeds up as the score grows
  hard   - Fewer lives, narrow paddle, fast ball
  fixed  - No speed-up, config values only

Examples:
  arkanoid play
  arkanoid play --difficulty easy
  arkanoid play --seed 42 --mute
  arkanoid play --sounds ./sounds --log-level debug`,
		Args: cobra.NoArgs,
		RunE: runPlay,
	}

	cmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	cmd.Flags().StringVar(&flagSounds, "sounds", "", "Directory with sound effect WAV files (overrides config)")
	cmd.Flags().BoolVar(&flagMute, "mute", false, "Disable audio output")
	cmd.Flags().IntVar(&flagHoldTicks, "hold", tui.DefaultHoldTicks, "Ticks a movement key stays held after a press")
	cmd.Flags().StringVar(&flagLogFile, "log-file", "~/.arkanoid/arkanoid.log", "Log file path (empty disables logging)")
	cmd.Flags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	return cmd
}

func runPlay(cmd *cobra.Command, args []string) error {
	if flagFPS < 1 || flagFPS > 240 {
		return fmt.Errorf("--fps must be within [1, 240], got %d", flagFPS)
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := openLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return err
	}
	defer closeLog()

	runID := uuid.NewString()
	logger = logger.With("run", runID)

	// Get terminal size; the model picks up resizes later
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	soundsDir := cfg.Audio.SoundsDir
	if flagSounds != "" {
		soundsDir = flagSounds
	}
	if soundsDir, err = config.ExpandHome(soundsDir); err != nil {
		return err
	}

	player := audio.New(audio.Options{
		Dir:     soundsDir,
		Enabled: cfg.Audio.Enabled && !flagMute,
		Volume:  cfg.Audio.Volume,
		Logger:  logger,
	})
	//nolint:errcheck // Audio is optional, the player logs and stays silent
	player.Start()
	defer player.Close()

	game := arkanoid.New(cfg)
	runErr := tui.Run(game, player, runtime, tui.Options{
		Logger:    logger,
		HoldTicks: flagHoldTicks,
	})
	if runErr != nil {
		logger.Error("run failed", "error", runErr)
		return fmt.Errorf("error running game: %w", runErr)
	}

	state := game.State()
	logger.Info("session ended", "score", state.Score, "level", state.Level)
	return nil
}

// openLogger builds the file logger. The terminal belongs to the game, so
// an empty or unusable path discards all output.
func openLogger(path, level string) (*log.Logger, func(), error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	var w io.Writer = io.Discard
	closeFn := func() {}

	if path != "" {
		f, err := openLogFile(path)
		if err != nil {
			// Continue without logging - game still works
			fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		} else {
			w = f
			closeFn = func() { _ = f.Close() }
		}
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "arkanoid",
		Level:           lvl,
	})
	return logger, closeFn, nil
}

func openLogFile(path string) (*os.File, error) {
	path, err := config.ExpandHome(path)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600) //#nosec G304 -- path comes from --log-file
}
