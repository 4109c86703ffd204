package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
)

func newLevelsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "levels",
		Short: "Show the brick walls",
		Long:  `Prints every brick wall in play order. '#' is a brick, '.' is a gap.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			printLevels(cmd.OutOrStdout())
		},
	}
}

func printLevels(w io.Writer) {
	for _, l := range arkanoid.Layouts() {
		fmt.Fprintf(w, "Level %d: %s (%d bricks)\n", l.Number, l.Name, l.Count())
		for _, row := range l.Rows {
			fmt.Fprintf(w, "  %s\n", strings.ReplaceAll(row, "#", "█"))
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "Run 'arkanoid play' to play.")
}
