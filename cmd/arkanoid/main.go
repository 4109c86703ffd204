// arkanoid is a brick breaker for the terminal.
//
// Usage:
//
//	arkanoid                 - Play (same as "arkanoid play")
//	arkanoid play            - Play the game
//	arkanoid levels          - Show the brick walls
//	arkanoid config          - Print the effective configuration
//
// Global flags:
//
//	--config <path>      - YAML or TOML config file
//	--difficulty <name>  - Difficulty preset: easy, normal, hard, fixed
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var (
	// Global flags
	flagConfig     string
	flagDifficulty string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "arkanoid",
		Short: "Arkanoid - break bricks in your terminal",
		Long: `Arkanoid is a terminal brick breaker: bounce the ball off your paddle,
clear three walls of bricks and catch power-ups on the way down.

Available commands:
  play     - Play the game (default)
  levels   - Show the brick walls
  config   - Print the effective configuration

Examples:
  arkanoid
  arkanoid play --difficulty hard
  arkanoid play --config ./my-arkanoid.toml --seed 42
  arkanoid config --format toml > ~/.arkanoid/arkanoid.toml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a YAML or TOML config file")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")

	playCmd := newPlayCmd()
	rootCmd.Flags().AddFlagSet(playCmd.Flags())
	rootCmd.RunE = playCmd.RunE

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(newLevelsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadConfig reads the config named by --config and applies --difficulty.
func loadConfig() (config.Config, error) {
	path, err := config.ExpandHome(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return cfg, err
	}
	config.ApplyPreset(&cfg, preset)
	return cfg, cfg.Validate()
}
