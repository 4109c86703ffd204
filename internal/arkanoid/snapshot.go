package arkanoid

import "math"

// Snapshot contains the complete simulation state in primitive types.
// Floats are stored as their IEEE-754 bits so equal states hash equally.
type Snapshot struct {
	Tick   uint64
	Phase  string
	Paused bool
	Muted  bool
	Score  int
	Lives  int
	Level  int

	// Paddle: X, W, then flags and cooldown
	PaddleX, PaddleW uint64
	HasLaser         bool
	HasGlue          bool
	Cooldown         int

	// Ball: X, Y, VX, VY, Size, Speed
	BallData  [6]uint64
	BallGlued bool
	Slowed    bool

	// Remaining bricks as row*100+col
	Bricks []int

	// Power-ups: Kind, X, Y per entry
	PowerUpData []uint64

	// Lasers: X, Y per entry
	LaserData []uint64

	ParticleCount int
	FireworkCount int
	MessageTimer  int
	FireworkTimer int

	RNGState uint64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	bits := math.Float64bits

	bricks := make([]int, len(g.bricks))
	for i, b := range g.bricks {
		bricks[i] = b.Row*100 + b.Col
	}

	powerUps := make([]uint64, 0, len(g.powerUps)*3)
	for _, p := range g.powerUps {
		powerUps = append(powerUps, uint64(p.Kind), bits(p.Rect.X), bits(p.Rect.Y)) //#nosec G115 -- kind is small and non-negative
	}

	lasers := make([]uint64, 0, len(g.lasers)*2)
	for _, l := range g.lasers {
		lasers = append(lasers, bits(l.Rect.X), bits(l.Rect.Y))
	}

	b := g.ball
	return Snapshot{
		Tick:   uint64(g.tick), //#nosec G115 -- tick count is always positive
		Phase:  g.phase,
		Paused: g.paused,
		Muted:  g.muted,
		Score:  g.score,
		Lives:  g.lives,
		Level:  g.level,

		PaddleX:  bits(g.paddle.Rect.X),
		PaddleW:  bits(g.paddle.Rect.W),
		HasLaser: g.paddle.HasLaser,
		HasGlue:  g.paddle.HasGlue,
		Cooldown: g.paddle.Cooldown,

		BallData: [6]uint64{
			bits(b.Rect.X), bits(b.Rect.Y),
			bits(b.Vel.X), bits(b.Vel.Y),
			bits(b.Rect.W), bits(b.Speed),
		},
		BallGlued: b.Glued,
		Slowed:    g.slowed,

		Bricks:      bricks,
		PowerUpData: powerUps,
		LaserData:   lasers,

		ParticleCount: len(g.particles),
		FireworkCount: len(g.fireworks),
		MessageTimer:  g.messageTimer,
		FireworkTimer: g.fireworkTimer,

		RNGState: g.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.Phase {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + boolBit(snap.Paused)
	h = h*31 + boolBit(snap.Muted)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level) //#nosec G115 -- hash computation

	h = h*31 + snap.PaddleX
	h = h*31 + snap.PaddleW
	h = h*31 + boolBit(snap.HasLaser)
	h = h*31 + boolBit(snap.HasGlue)
	h = h*31 + uint64(snap.Cooldown) //#nosec G115 -- hash computation

	for _, v := range snap.BallData {
		h = h*31 + v
	}
	h = h*31 + boolBit(snap.BallGlued)
	h = h*31 + boolBit(snap.Slowed)

	for _, v := range snap.Bricks {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, v := range snap.PowerUpData {
		h = h*31 + v
	}
	for _, v := range snap.LaserData {
		h = h*31 + v
	}

	h = h*31 + uint64(snap.ParticleCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FireworkCount) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.MessageTimer)  //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.FireworkTimer) //#nosec G115 -- hash computation

	h = h*31 + snap.RNGState

	return h
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
