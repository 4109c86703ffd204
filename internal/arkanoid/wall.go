// Package arkanoid implements a single-screen brick breaker: paddle, ball,
// three brick walls, falling power-ups, lasers and particle effects.
//
// The simulation runs in a continuous logical playfield (800x600 units by
// default) and draws itself into a terminal-sized core.Screen.
package arkanoid

import (
	"strings"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// LevelCount is the number of brick walls in a run.
const LevelCount = 3

// Layout is an ASCII description of one brick wall.
// '#' is a brick, '.' is empty space.
type Layout struct {
	Number int
	Name   string
	Rows   []string
}

var layouts = []Layout{
	{
		Number: 1,
		Name:   "Checkerboard",
		Rows: []string{
			"#.#.#.#.#.",
			".#.#.#.#.#",
			"#.#.#.#.#.",
			".#.#.#.#.#",
		},
	},
	{
		Number: 2,
		Name:   "Pillars",
		Rows: []string{
			".##.##.##.",
			".##.##.##.",
			".##.##.##.",
			".##.##.##.",
		},
	},
	{
		Number: 3,
		Name:   "Split Wall",
		Rows: []string{
			"##########",
			"##########",
			"..........",
			"##########",
		},
	},
}

// Layouts returns all brick walls in play order.
func Layouts() []Layout {
	return layouts
}

// GetLayout returns the layout for a 1-based level number.
// Out of range numbers clamp to the first or last wall.
func GetLayout(level int) Layout {
	idx := core.Clamp(level-1, 0, len(layouts)-1)
	return layouts[idx]
}

// Count returns the number of bricks in the layout.
func (l Layout) Count() int {
	n := 0
	for _, row := range l.Rows {
		n += strings.Count(row, "#")
	}
	return n
}

// String returns the layout as a multi-line ASCII map.
func (l Layout) String() string {
	return strings.Join(l.Rows, "\n")
}

// BuildWall creates the bricks for a 1-based level number.
// Brick (row, col) sits at x = col*(w+pad)+pad, y = row*(h+pad)+top,
// and takes its color from the palette by row.
func BuildWall(level int, cfg config.BrickConfig) []*Brick {
	layout := GetLayout(level)

	palette := make([]core.Color, 0, len(cfg.Colors))
	for _, name := range cfg.Colors {
		c, ok := core.ParseColor(name)
		if !ok {
			c = core.ColorWhite
		}
		palette = append(palette, c)
	}
	if len(palette) == 0 {
		palette = append(palette, core.ColorWhite)
	}

	bricks := make([]*Brick, 0, layout.Count())
	for row, line := range layout.Rows {
		for col := range len(line) {
			if line[col] != '#' {
				continue
			}
			x := float64(col)*(cfg.Width+cfg.Padding) + cfg.Padding
			y := float64(row)*(cfg.Height+cfg.Padding) + cfg.Top
			bricks = append(bricks, &Brick{
				Rect:   core.NewRectF(x, y, cfg.Width, cfg.Height),
				Color:  palette[row%len(palette)],
				Row:    row,
				Col:    col,
				Points: cfg.Points,
			})
		}
	}
	return bricks
}
