package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Paddle is the player's bat at the bottom of the playfield.
type Paddle struct {
	Rect     core.RectF
	HasLaser bool // Laser power-up collected, F fires
	HasGlue  bool // Glue power-up collected, ball sticks on contact
	Cooldown int  // Ticks until the next laser volley is allowed
}

// Reset centers the paddle at its configured width and clears power-ups.
func (p *Paddle) Reset(cfg config.PaddleConfig, fieldW, fieldH float64) {
	y := fieldH - cfg.BottomOffset - cfg.Height
	p.Rect = core.NewRectF((fieldW-cfg.Width)/2, y, cfg.Width, cfg.Height)
	p.HasLaser = false
	p.HasGlue = false
	p.Cooldown = 0
}

// Move shifts the paddle horizontally and keeps it inside the playfield.
func (p *Paddle) Move(dx, fieldW float64) {
	p.Rect.X = core.ClampF(p.Rect.X+dx, 0, fieldW-p.Rect.W)
}

// SetWidth resizes the paddle around its current center.
func (p *Paddle) SetWidth(w, fieldW float64) {
	cx := p.Rect.CenterX()
	p.Rect.W = w
	p.Rect.X = core.ClampF(cx-w/2, 0, math.Max(0, fieldW-w))
}

// Ball is the single ball in play.
type Ball struct {
	Rect       core.RectF
	Vel        core.Vec2
	Speed      float64 // Nominal per-axis speed; the velocity magnitude is Speed*sqrt(2)
	Glued      bool    // Stuck to the paddle until launched
	GlueOffset float64 // Ball center minus paddle center while glued
}

// Reset puts the ball in the middle of the playfield heading down,
// drifting left or right depending on dir (-1 or 1).
func (b *Ball) Reset(size, speed, fieldW, fieldH float64, dir float64) {
	b.Rect = core.CenteredRectF(fieldW/2, fieldH/2, size, size)
	b.Speed = speed
	b.Vel = core.Vec2{X: dir * speed, Y: speed}
	b.Glued = false
	b.GlueOffset = 0
}

// Move advances the ball by its velocity.
func (b *Ball) Move() {
	b.Rect.X += b.Vel.X
	b.Rect.Y += b.Vel.Y
}

// Magnitude returns the velocity magnitude the ball should travel at.
func (b *Ball) Magnitude() float64 {
	return b.Speed * math.Sqrt2
}

// SetSpeed changes the nominal speed and rescales the current velocity,
// keeping its direction.
func (b *Ball) SetSpeed(speed float64) {
	b.Speed = speed
	if l := b.Vel.Len(); l > 0 {
		b.Vel = b.Vel.Scale(b.Magnitude() / l)
	}
}

// SetSize resizes the ball around its center.
func (b *Ball) SetSize(size float64) {
	c := b.Rect.Center()
	b.Rect = core.CenteredRectF(c.X, c.Y, size, size)
}

// Glue sticks the ball to the paddle at its current horizontal offset.
func (b *Ball) Glue(p *Paddle) {
	b.Glued = true
	b.GlueOffset = b.Rect.CenterX() - p.Rect.CenterX()
	b.Vel = core.Vec2{}
	b.FollowPaddle(p)
}

// FollowPaddle keeps a glued ball resting on top of the paddle.
func (b *Ball) FollowPaddle(p *Paddle) {
	half := p.Rect.W / 2
	offset := core.ClampF(b.GlueOffset, -half, half)
	b.Rect.X = p.Rect.CenterX() + offset - b.Rect.W/2
	b.Rect.Y = p.Rect.Y - b.Rect.H
}

// Brick is one breakable block of the wall.
type Brick struct {
	Rect     core.RectF
	Color    core.Color
	Row, Col int
	Points   int
}

// PowerUp is a falling collectible released by a destroyed brick.
type PowerUp struct {
	Kind PowerUpKind
	Rect core.RectF
	VelY float64
}

// Update moves the power-up down.
func (p *PowerUp) Update() {
	p.Rect.Y += p.VelY
}

// Laser is a shot fired upward from the paddle.
type Laser struct {
	Rect core.RectF
	VelY float64 // Negative, lasers travel up
}

// Update moves the laser up.
func (l *Laser) Update() {
	l.Rect.Y += l.VelY
}

// Particle is a short-lived spark that shrinks until it disappears.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Gravity float64
	Size    float64
	Decay   float64
	Color   core.Color
}

// Update moves the particle, applies gravity and shrinks it.
func (p *Particle) Update() {
	p.Pos = p.Pos.Add(p.Vel)
	p.Vel.Y += p.Gravity
	p.Size -= p.Decay
}

// Alive reports whether the particle is still visible.
func (p *Particle) Alive() bool {
	return p.Size > 0
}

// ParticleSpec describes the random ranges a particle burst draws from.
type ParticleSpec struct {
	MinSize, MaxSize   float64
	MinSpeed, MaxSpeed float64
	Gravity            float64
}

// Burst shapes used by the game.
var (
	bounceSpark   = ParticleSpec{MinSize: 1, MaxSize: 3, MinSpeed: 1, MaxSpeed: 3}
	brickDebris   = ParticleSpec{MinSize: 1, MaxSize: 4, MinSpeed: 1, MaxSpeed: 4, Gravity: 0.05}
	laserDebris   = ParticleSpec{MinSize: 1, MaxSize: 3, MinSpeed: 1, MaxSpeed: 3, Gravity: 0.05}
	fireworkSpark = ParticleSpec{MinSize: 2, MaxSize: 5, MinSpeed: 1, MaxSpeed: 6, Gravity: 0.05}
)

// Burst creates n particles flying out of pos in random directions.
func Burst(rng *SimpleRNG, pos core.Vec2, color core.Color, n int, spec ParticleSpec, decay float64) []*Particle {
	out := make([]*Particle, 0, n)
	for range n {
		angle := rng.Uniform(0, 2*math.Pi)
		speed := rng.Uniform(spec.MinSpeed, spec.MaxSpeed)
		out = append(out, &Particle{
			Pos:     pos,
			Vel:     core.FromAngle(angle, speed),
			Gravity: spec.Gravity,
			Size:    rng.Uniform(spec.MinSize, spec.MaxSize),
			Decay:   decay,
			Color:   color,
		})
	}
	return out
}

// Firework is a single colored burst on the victory screen.
type Firework struct {
	Particles []*Particle
}

// NewFirework launches a burst at a random point in the upper half of the field.
func NewFirework(rng *SimpleRNG, fieldW, fieldH float64, n int, decay float64) *Firework {
	pos := core.Vec2{
		X: rng.Uniform(fieldW*0.1, fieldW*0.9),
		Y: rng.Uniform(fieldH*0.1, fieldH*0.5),
	}
	color := core.FireworkPalette[rng.Intn(len(core.FireworkPalette))]
	return &Firework{Particles: Burst(rng, pos, color, n, fireworkSpark, decay)}
}

// Update advances every spark and drops the expired ones.
func (f *Firework) Update() {
	f.Particles = updateParticles(f.Particles)
}

// Dead reports whether every spark has expired.
func (f *Firework) Dead() bool {
	return len(f.Particles) == 0
}

// updateParticles advances particles in place and prunes the dead.
func updateParticles(ps []*Particle) []*Particle {
	kept := ps[:0]
	for _, p := range ps {
		p.Update()
		if p.Alive() {
			kept = append(kept, p)
		}
	}
	return kept
}
