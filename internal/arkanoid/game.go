package arkanoid

import (
	"slices"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Screen phases
const (
	PhaseTitle    = "title_screen" // Waiting for SPACE
	PhasePlaying  = "playing"      // Ball in play
	PhaseGameOver = "game_over"    // No lives left
	PhaseWin      = "you_win"      // All walls cleared
)

// Minimum terminal size the playfield can be drawn in.
const (
	MinScreenW = 50
	MinScreenH = 16
)

// Game implements the brick breaker logic.
type Game struct {
	cfg        config.Config
	runtime    core.RuntimeConfig
	difficulty *config.DifficultyManager
	rng        *SimpleRNG

	// Screen state
	phase          string
	paused         bool
	muted          bool
	screenTooSmall bool

	// Run state
	score int
	lives int
	level int
	tick  int

	// Entities
	paddle    *Paddle
	ball      *Ball
	bricks    []*Brick
	powerUps  []*PowerUp
	lasers    []*Laser
	particles []*Particle
	fireworks []*Firework

	// Slow power-up caps the difficulty speed until the next reset
	slowed bool

	// Power-up banner
	message      string
	messageTimer int

	fireworkTimer int

	// Sound cues raised during the current tick
	cues []core.Cue
}

// New creates a game using the given configuration.
// Call Reset before the first Step.
func New(cfg config.Config) *Game {
	return &Game{
		cfg:        cfg,
		difficulty: config.NewDifficultyManager(cfg.Difficulty),
		paddle:     &Paddle{},
		ball:       &Ball{},
	}
}

// Reset seeds the game and returns it to the title screen.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.rng = NewSimpleRNG(runtime.Seed)
	g.tick = 0
	g.Resize(runtime.ScreenW, runtime.ScreenH)
	g.restart()
}

// Resize records a new terminal size. The simulation is unaffected; only
// drawing and the too-small check depend on it.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

// restart returns to the title screen with a fresh run: level 1 wall,
// score 0, full lives, no entities in flight and sound unmuted.
func (g *Game) restart() {
	g.phase = PhaseTitle
	g.paused = false
	g.muted = false
	g.score = 0
	g.lives = g.cfg.Gameplay.Lives
	g.level = 1
	g.bricks = BuildWall(g.level, g.cfg.Bricks)
	g.powerUps = nil
	g.lasers = nil
	g.particles = nil
	g.fireworks = nil
	g.message = ""
	g.messageTimer = 0
	g.fireworkTimer = 0
	g.resetBallAndPaddle()
}

// resetBallAndPaddle recenters both and drops any power-up effects.
func (g *Game) resetBallAndPaddle() {
	fieldW, fieldH := g.cfg.Playfield.Width, g.cfg.Playfield.Height

	g.paddle.Reset(g.cfg.Paddle, fieldW, fieldH)

	dir := 1.0
	if g.rng.Intn(2) == 0 {
		dir = -1
	}
	speed := g.difficulty.Speed(g.cfg.Ball.Speed, g.score, g.tick)
	g.ball.Reset(g.cfg.Ball.Size, speed, fieldW, fieldH, dir)
	g.slowed = false
}

// applyDifficulty brings the ball up to the speed for the current score and
// tick count. A slowed ball never goes faster than the slow speed.
func (g *Game) applyDifficulty() {
	if !g.difficulty.IsEnabled() {
		return
	}
	speed := g.difficulty.Speed(g.cfg.Ball.Speed, g.score, g.tick)
	if g.slowed {
		speed = min(speed, g.cfg.Ball.SlowSpeed)
	}
	if speed != g.ball.Speed {
		g.ball.SetSpeed(speed)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = nil

	if g.screenTooSmall {
		return g.result()
	}

	if in.Has(core.ActionMute) {
		g.muted = !g.muted
	}

	switch g.phase {
	case PhaseTitle:
		if in.Has(core.ActionLaunch) {
			g.phase = PhasePlaying
		}

	case PhasePlaying:
		if in.Has(core.ActionPause) {
			g.paused = !g.paused
		}
		if g.paused {
			return g.result()
		}
		g.tick++
		g.updatePlaying(in)

	case PhaseGameOver, PhaseWin:
		if in.Has(core.ActionLaunch) {
			g.restart()
			return g.result()
		}
		if g.phase == PhaseWin {
			g.updateFireworks()
		}
	}

	// Banner and particles run in every phase
	if g.messageTimer > 0 {
		g.messageTimer--
	}
	g.particles = updateParticles(g.particles)

	return g.result()
}

// updatePlaying runs one tick of play in fixed order:
// paddle, ball, bricks, power-ups, lasers, then the difficulty speed.
func (g *Game) updatePlaying(in core.InputFrame) {
	g.updatePaddle(in)

	if !g.updateBall(in) {
		return
	}

	g.updateBricks()
	g.updatePowerUps()
	g.updateLasers()
	g.applyDifficulty()

	if len(g.bricks) == 0 {
		g.advanceLevel()
	}
}

// updatePaddle moves the paddle and fires lasers.
func (g *Game) updatePaddle(in core.InputFrame) {
	speed := g.cfg.Paddle.Speed
	if in.Has(core.ActionLeft) {
		g.paddle.Move(-speed, g.cfg.Playfield.Width)
	}
	if in.Has(core.ActionRight) {
		g.paddle.Move(speed, g.cfg.Playfield.Width)
	}

	if g.paddle.Cooldown > 0 {
		g.paddle.Cooldown--
	}
	if in.Has(core.ActionFire) && g.paddle.HasLaser && g.paddle.Cooldown == 0 {
		g.fireLasers()
	}
}

// fireLasers launches a pair of shots from the paddle guns.
func (g *Game) fireLasers() {
	cfg := g.cfg.Laser
	cx := g.paddle.Rect.CenterX()
	top := g.paddle.Rect.Y

	for _, x := range []float64{cx - cfg.Offset, cx + cfg.Offset} {
		g.lasers = append(g.lasers, &Laser{
			Rect: core.NewRectF(x-cfg.Width/2, top-cfg.Height, cfg.Width, cfg.Height),
			VelY: -cfg.Speed,
		})
	}
	g.paddle.Cooldown = g.cfg.Paddle.LaserCooldown
	g.cue(core.CueLaser)
}

// updateBall moves the ball and resolves wall and paddle contacts.
// Returns false if the tick ended play.
func (g *Game) updateBall(in core.InputFrame) bool {
	b := g.ball

	if b.Glued {
		if !in.Has(core.ActionLaunch) {
			b.FollowPaddle(g.paddle)
			return true
		}
		b.Glued = false
		DeflectFromPaddle(b, g.paddle)
	}

	b.Move()

	if BallLost(b, g.cfg.Playfield.Height) {
		g.loseLife()
		return g.phase == PhasePlaying
	}

	contact := BounceWalls(b, g.cfg.Playfield.Width)
	if c := BouncePaddle(b, g.paddle); c != ContactNone {
		contact = c
	}
	if contact != ContactNone {
		g.cue(core.CueBounce)
		g.emit(b.Rect.Center(), core.ColorYellow, g.cfg.Effects.BounceParticles, bounceSpark)
	}
	return true
}

// updateBricks breaks at most one brick the ball overlaps.
func (g *Game) updateBricks() {
	idx := FirstHit(g.ball.Rect, g.bricks)
	if idx < 0 {
		return
	}

	brick := g.bricks[idx]
	g.ball.Vel.Y = -g.ball.Vel.Y
	g.emit(brick.Rect.Center(), brick.Color, g.cfg.Effects.BrickParticles, brickDebris)
	g.bricks = slices.Delete(g.bricks, idx, idx+1)
	g.addScore(brick.Points)
	g.cue(core.CueBrickBreak)
	g.maybeDropPowerUp(brick)
}

// updatePowerUps moves falling power-ups and collects those the paddle catches.
func (g *Game) updatePowerUps() {
	kept := g.powerUps[:0]
	for _, p := range g.powerUps {
		p.Update()
		switch {
		case p.Rect.Y > g.cfg.Playfield.Height:
			// Fell off the bottom
		case p.Rect.Intersects(g.paddle.Rect):
			g.applyPowerUp(p.Kind)
		default:
			kept = append(kept, p)
		}
	}
	g.powerUps = kept
}

// updateLasers moves shots and breaks the first brick each one hits.
func (g *Game) updateLasers() {
	kept := g.lasers[:0]
	for _, l := range g.lasers {
		l.Update()
		if l.Rect.Bottom() < 0 {
			continue
		}

		idx := FirstHit(l.Rect, g.bricks)
		if idx < 0 {
			kept = append(kept, l)
			continue
		}

		brick := g.bricks[idx]
		g.emit(brick.Rect.Center(), brick.Color, g.cfg.Effects.LaserParticles, laserDebris)
		g.bricks = slices.Delete(g.bricks, idx, idx+1)
		g.addScore(brick.Points)
		g.cue(core.CueBrickBreak)
	}
	g.lasers = kept
}

// loseLife handles a ball that dropped past the paddle.
func (g *Game) loseLife() {
	g.lives--
	if g.lives <= 0 {
		g.lives = 0
		g.phase = PhaseGameOver
		g.cue(core.CueGameOver)
		return
	}
	g.resetBallAndPaddle()
}

// advanceLevel builds the next wall, or wins the run after the last one.
func (g *Game) advanceLevel() {
	if g.level >= LevelCount {
		g.phase = PhaseWin
		g.fireworkTimer = 0
		return
	}

	g.level++
	g.bricks = BuildWall(g.level, g.cfg.Bricks)
	g.powerUps = nil
	g.lasers = nil
	g.resetBallAndPaddle()
}

// updateFireworks launches a new burst every few ticks and ages the old ones.
func (g *Game) updateFireworks() {
	fx := g.cfg.Effects

	g.fireworkTimer--
	if g.fireworkTimer <= 0 {
		g.fireworks = append(g.fireworks,
			NewFirework(g.rng, g.cfg.Playfield.Width, g.cfg.Playfield.Height, fx.FireworkParticles, fx.ParticleDecay))
		g.fireworkTimer = g.rng.IntRange(fx.FireworkMinDelay, fx.FireworkMaxDelay)
	}

	kept := g.fireworks[:0]
	for _, f := range g.fireworks {
		f.Update()
		if !f.Dead() {
			kept = append(kept, f)
		}
	}
	g.fireworks = kept
}

// emit adds a particle burst.
func (g *Game) emit(pos core.Vec2, color core.Color, n int, spec ParticleSpec) {
	g.particles = append(g.particles, Burst(g.rng, pos, color, n, spec, g.cfg.Effects.ParticleDecay)...)
}

func (g *Game) addScore(points int) {
	if points > 0 {
		g.score += points
	}
}

// showMessage displays a banner for the configured number of ticks.
func (g *Game) showMessage(text string) {
	g.message = text
	g.messageTimer = g.cfg.PowerUps.MessageTicks
}

// cue raises a sound cue unless sound is muted.
func (g *Game) cue(c core.Cue) {
	if g.muted {
		return
	}
	g.cues = append(g.cues, c)
}

func (g *Game) result() core.StepResult {
	return core.StepResult{State: g.State(), Cues: g.cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Phase:    g.phase,
		Score:    g.score,
		Lives:    g.lives,
		Level:    g.level,
		GameOver: g.phase == PhaseGameOver || g.phase == PhaseWin,
		Paused:   g.paused,
		Muted:    g.muted,
	}
}
