package arkanoid

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar      = '▀'
	LaserPaddleChar = '▲'
	BallChar        = '●'
	BrickChar       = '█'
	LaserChar       = '|'
)

// viewport maps playfield units to screen cells. Row 0 is the HUD and the
// playfield fills the rows below it.
type viewport struct {
	sx, sy float64
	top    int
}

func (g *Game) viewport(dst *core.Screen) viewport {
	rows := dst.Height() - 1
	return viewport{
		sx:  float64(dst.Width()) / g.cfg.Playfield.Width,
		sy:  float64(rows) / g.cfg.Playfield.Height,
		top: 1,
	}
}

func (v viewport) col(x float64) int { return int(math.Round(x * v.sx)) }
func (v viewport) row(y float64) int { return v.top + int(math.Round(y*v.sy)) }

// cells returns the screen rectangle covered by r, at least one cell in size.
func (v viewport) cells(r core.RectF) core.Rect {
	x0, x1 := v.col(r.X), v.col(r.Right())
	y0, y1 := v.row(r.Y), v.row(r.Bottom())
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// point returns the cell under a playfield point.
func (v viewport) point(p core.Vec2) (int, int) {
	return int(p.X * v.sx), v.top + int(p.Y*v.sy)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	v := g.viewport(dst)

	switch g.phase {
	case PhaseTitle:
		g.renderTitle(dst)
	case PhasePlaying:
		g.renderHUD(dst)
		g.renderBricks(dst, v)
		g.renderPowerUps(dst, v)
		g.renderLasers(dst, v)
		g.renderPaddle(dst, v)
		g.renderBall(dst, v)
	case PhaseWin:
		g.renderFireworks(dst, v)
	}

	g.renderParticles(dst, v, g.particles)

	if g.messageTimer > 0 && g.message != "" {
		dst.DrawTextCenteredColored(v.row(g.cfg.Playfield.Height*5/6), g.message, core.ColorBrightWhite)
	}

	g.renderOverlay(dst)
}

// renderOverlay draws pause and end-of-run boxes on top of the playfield.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.phase {
	case PhasePlaying:
		if g.paused {
			drawCenteredBox(dst, "PAUSED", "Press P to resume")
		}
	case PhaseGameOver:
		drawCenteredBox(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press SPACE to return to Title", g.score))
	case PhaseWin:
		drawCenteredBox(dst, "YOU WIN!", fmt.Sprintf("Final Score: %d  |  Press SPACE to return to Title", g.score))
	}
}

// renderTitle draws the start screen.
func (g *Game) renderTitle(dst *core.Screen) {
	mid := dst.Height() / 2
	dst.DrawTextCenteredColored(mid-3, "A R K A N O I D", core.ColorBrightCyan)
	dst.DrawTextCentered(mid-1, "Press SPACE to Start")
	dst.DrawTextCenteredColored(mid+2, "←/→ move   F fire   M mute   P pause", core.ColorGray)
	if g.muted {
		dst.DrawTextCenteredColored(mid+3, "sound muted", core.ColorGray)
	}
}

// renderHUD draws the score, level, and lives.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score))

	levelText := fmt.Sprintf("Level: %d/%d", g.level, LevelCount)
	if g.muted {
		levelText += "  [muted]"
	}
	dst.DrawTextCentered(0, levelText)

	livesText := fmt.Sprintf("Lives: %d", g.lives)
	dst.DrawText(dst.Width()-len(livesText)-1, 0, livesText)
}

func (g *Game) renderBricks(dst *core.Screen, v viewport) {
	for _, b := range g.bricks {
		dst.DrawRect(v.cells(b.Rect), BrickChar, b.Color)
	}
}

func (g *Game) renderPowerUps(dst *core.Screen, v viewport) {
	for _, p := range g.powerUps {
		x, y := v.point(p.Rect.Center())
		dst.SetColored(x-1, y, '[', p.Kind.Color())
		dst.SetColored(x, y, p.Kind.Glyph(), p.Kind.Color())
		dst.SetColored(x+1, y, ']', p.Kind.Color())
	}
}

func (g *Game) renderLasers(dst *core.Screen, v viewport) {
	for _, l := range g.lasers {
		x, y := v.point(l.Rect.Center())
		dst.SetColored(x, y, LaserChar, core.ColorBrightRed)
	}
}

func (g *Game) renderPaddle(dst *core.Screen, v viewport) {
	r := v.cells(g.paddle.Rect)
	color := core.ColorBrightBlue
	if g.paddle.HasGlue {
		color = core.ColorBrightMagenta
	}
	for x := r.X; x < r.Right(); x++ {
		dst.SetColored(x, r.Y, PaddleChar, color)
	}
	if g.paddle.HasLaser {
		dst.SetColored(r.X, r.Y, LaserPaddleChar, core.ColorBrightRed)
		dst.SetColored(r.Right()-1, r.Y, LaserPaddleChar, core.ColorBrightRed)
	}
}

func (g *Game) renderBall(dst *core.Screen, v viewport) {
	x, y := v.point(g.ball.Rect.Center())
	dst.SetColored(x, y, BallChar, core.ColorBrightWhite)
}

func (g *Game) renderFireworks(dst *core.Screen, v viewport) {
	for _, f := range g.fireworks {
		g.renderParticles(dst, v, f.Particles)
	}
}

// renderParticles draws sparks, bigger ones with heavier glyphs.
// Cells that already hold something other than a blank are left alone.
func (g *Game) renderParticles(dst *core.Screen, v viewport, ps []*Particle) {
	for _, p := range ps {
		x, y := v.point(p.Pos)
		if y < v.top || dst.Get(x, y) != ' ' {
			continue
		}
		glyph := '·'
		switch {
		case p.Size >= 3:
			glyph = '*'
		case p.Size >= 1.5:
			glyph = '+'
		}
		dst.SetColored(x, y, glyph, p.Color)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := min(core.Max(titleLen, subtitleLen)+4, w)
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	dst.DrawTextColored(boxX+(boxW-titleLen)/2, boxY+1, title, core.ColorBrightYellow)
	dst.DrawText(boxX+max((boxW-subtitleLen)/2, 1), boxY+3, subtitle)
}
