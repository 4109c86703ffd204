package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
)

var flagFormat string

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective configuration",
		Long: `Prints the configuration the game would run with: defaults, then the
config file, then the difficulty preset. Redirect it to a file to start a
custom config.

Examples:
  arkanoid config
  arkanoid config --difficulty hard
  arkanoid config --format toml > ~/.arkanoid/arkanoid.toml`,
		Args: cobra.NoArgs,
		RunE: runConfig,
	}
	cmd.Flags().StringVar(&flagFormat, "format", "yaml", "Output format: yaml or toml")
	return cmd
}

func runConfig(cmd *cobra.Command, args []string) error {
	format, err := config.ParseFormat(flagFormat)
	if err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Encode(cfg, format)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
