package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// Contact describes what the ball touched during a tick.
type Contact int

const (
	ContactNone   Contact = iota
	ContactWall           // Left, right or top edge
	ContactPaddle         // Paddle, including a glue catch
)

// maxBounceAngle is the deflection from vertical at the paddle edges.
const maxBounceAngle = math.Pi / 3

// BounceWalls reflects the ball off the left, right and top edges.
// The bottom edge is open.
func BounceWalls(b *Ball, fieldW float64) Contact {
	contact := ContactNone

	if b.Rect.X <= 0 {
		b.Rect.X = 0
		b.Vel.X = math.Abs(b.Vel.X)
		contact = ContactWall
	} else if b.Rect.Right() >= fieldW {
		b.Rect.X = fieldW - b.Rect.W
		b.Vel.X = -math.Abs(b.Vel.X)
		contact = ContactWall
	}

	if b.Rect.Y <= 0 {
		b.Rect.Y = 0
		b.Vel.Y = math.Abs(b.Vel.Y)
		contact = ContactWall
	}

	return contact
}

// BouncePaddle bounces a descending ball off the paddle, or glues it there
// when the paddle is sticky.
func BouncePaddle(b *Ball, p *Paddle) Contact {
	if b.Vel.Y <= 0 || !b.Rect.Intersects(p.Rect) {
		return ContactNone
	}

	b.Rect.Y = p.Rect.Y - b.Rect.H
	if p.HasGlue {
		b.Glue(p)
		return ContactPaddle
	}
	DeflectFromPaddle(b, p)
	return ContactPaddle
}

// DeflectFromPaddle sends the ball upward at an angle set by where it sits
// relative to the paddle center: the edges give the steepest deflection.
func DeflectFromPaddle(b *Ball, p *Paddle) {
	offset := 0.0
	if half := p.Rect.W / 2; half > 0 {
		offset = core.ClampF((b.Rect.CenterX()-p.Rect.CenterX())/half, -1, 1)
	}
	angle := offset * maxBounceAngle
	mag := b.Magnitude()
	b.Vel = core.Vec2{X: mag * math.Sin(angle), Y: -mag * math.Cos(angle)}
}

// BallLost reports whether the ball has dropped below the playfield.
func BallLost(b *Ball, fieldH float64) bool {
	return b.Rect.Y > fieldH
}

// FirstHit returns the index of the first brick r overlaps, or -1.
func FirstHit(r core.RectF, bricks []*Brick) int {
	for i, brick := range bricks {
		if r.Intersects(brick.Rect) {
			return i
		}
	}
	return -1
}
