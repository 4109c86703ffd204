package arkanoid

import "github.com/vovakirdan/tui-arkanoid/internal/core"

// PowerUpKind represents the different falling power-ups.
type PowerUpKind int

const (
	PowerUpGrow      PowerUpKind = iota // Wider paddle
	PowerUpLaser                        // Paddle fires lasers
	PowerUpGlue                         // Ball sticks to paddle
	PowerUpSlow                         // Slower ball
	PowerUpExtraLife                    // One more life
	PowerUpShrink                       // Narrower paddle and smaller ball
	PowerUpCount                        // Sentinel for counting kinds
)

// powerUpProps holds the display properties of a kind.
type powerUpProps struct {
	name    string
	message string
	color   core.Color
	glyph   rune
}

var powerUpTable = [PowerUpCount]powerUpProps{
	PowerUpGrow:      {"grow", "Paddle Grow!", core.ColorBrightGreen, '+'},
	PowerUpLaser:     {"laser", "Lasers Activated! Press F", core.ColorBrightRed, 'L'},
	PowerUpGlue:      {"glue", "Sticky Paddle!", core.ColorBrightMagenta, 'G'},
	PowerUpSlow:      {"slow", "Slow Ball!", core.ColorBrightCyan, 'S'},
	PowerUpExtraLife: {"extra_life", "Extra Life!", core.ColorBrightYellow, '♥'},
	PowerUpShrink:    {"shrink", "Shrink!", core.ColorGray, '-'},
}

func (k PowerUpKind) props() powerUpProps {
	if k < 0 || k >= PowerUpCount {
		return powerUpProps{name: "unknown", glyph: '?'}
	}
	return powerUpTable[k]
}

// String returns the kind name.
func (k PowerUpKind) String() string { return k.props().name }

// Message returns the text shown when the power-up is collected.
func (k PowerUpKind) Message() string { return k.props().message }

// Color returns the display color of the falling capsule.
func (k PowerUpKind) Color() core.Color { return k.props().color }

// Glyph returns the display character of the falling capsule.
func (k PowerUpKind) Glyph() rune { return k.props().glyph }

// maybeDropPowerUp rolls the drop chance for a destroyed brick and, on
// success, releases a random power-up from its center.
func (g *Game) maybeDropPowerUp(brick *Brick) {
	if g.rng.Float64() >= g.cfg.PowerUps.DropChance {
		return
	}
	kind := PowerUpKind(g.rng.Intn(int(PowerUpCount)))
	g.spawnPowerUp(kind, brick.Rect.Center())
}

// spawnPowerUp adds a falling power-up centered on pos.
func (g *Game) spawnPowerUp(kind PowerUpKind, pos core.Vec2) {
	cfg := g.cfg.PowerUps
	g.powerUps = append(g.powerUps, &PowerUp{
		Kind: kind,
		Rect: core.CenteredRectF(pos.X, pos.Y, cfg.Width, cfg.Height),
		VelY: cfg.FallSpeed,
	})
}

// applyPowerUp overwrites paddle or ball attributes for a collected
// power-up and shows its message. Effects last until the next reset.
func (g *Game) applyPowerUp(kind PowerUpKind) {
	fieldW := g.cfg.Playfield.Width

	switch kind {
	case PowerUpGrow:
		g.paddle.SetWidth(g.cfg.Paddle.GrowWidth, fieldW)
	case PowerUpLaser:
		g.paddle.HasLaser = true
	case PowerUpGlue:
		g.paddle.HasGlue = true
	case PowerUpSlow:
		g.slowed = true
		g.ball.SetSpeed(g.cfg.Ball.SlowSpeed)
	case PowerUpExtraLife:
		g.lives++
	case PowerUpShrink:
		g.paddle.SetWidth(g.cfg.Paddle.ShrinkWidth, fieldW)
		g.ball.SetSize(g.cfg.Ball.SmallSize)
	}

	g.showMessage(kind.Message())
}
