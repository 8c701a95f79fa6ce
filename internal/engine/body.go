package engine

import "fmt"

const (
	// MaxTrailCapacity bounds the configurable trail length.
	MaxTrailCapacity = 100000

	// gravityDamping is a fixed modeling constant folded into every
	// gravity coefficient. It is not the physical G.
	gravityDamping = 0.5

	// radiusFactor derives a body's render radius from its mass.
	radiusFactor = 10.0
)

// Body is a point mass. Mass is fixed at construction; position changes
// only in the displacement phase and momentum only in the accumulation
// phase of a step.
type Body struct {
	mass     float64
	pos      Vec2
	momentum Vec2
	trail    []Vec2
	trailCap int
}

func newBody(mass float64, pos, momentum Vec2) *Body {
	return &Body{
		mass:     mass,
		pos:      pos,
		momentum: momentum,
	}
}

func (b *Body) Mass() float64   { return b.mass }
func (b *Body) Position() Vec2  { return b.pos }
func (b *Body) Momentum() Vec2  { return b.momentum }
func (b *Body) TrailCap() int   { return b.trailCap }
func (b *Body) Radius() float64 { return b.mass * radiusFactor }

// SetPosition places the body without recording trail history.
func (b *Body) SetPosition(p Vec2) { b.pos = p }

// SetMomentum overwrites the body's momentum.
func (b *Body) SetMomentum(m Vec2) { b.momentum = m }

// Trail returns a copy of the recorded positions, oldest first.
func (b *Body) Trail() []Vec2 {
	t := make([]Vec2, len(b.trail))
	copy(t, b.trail)
	return t
}

// TrailLen returns the number of recorded positions.
func (b *Body) TrailLen() int { return len(b.trail) }

// SetTrailCapacity configures how many past positions the body retains.
// Zero disables history. The trail itself shrinks lazily on the next
// Advance, never here.
func (b *Body) SetTrailCapacity(n int) error {
	if n < 0 || n > MaxTrailCapacity {
		return fmt.Errorf("%w: trail capacity %d not in [0, %d]", ErrInvalidArgument, n, MaxTrailCapacity)
	}
	b.trailCap = n
	return nil
}

// GravitationalCoefficient returns the scalar impulse factor other exerts
// on b: mass·mass / distance² damped by the fixed model constant.
//
// Coincident bodies make the distance zero and the coefficient infinite;
// the model treats that as a degenerate input and lets ±Inf/NaN propagate
// rather than softening the divisor.
func (b *Body) GravitationalCoefficient(other *Body) float64 {
	d := b.pos.Distance(other.pos)
	return b.mass * other.mass / (d * d) * gravityDamping
}

// ApplyGravity accumulates the impulse other exerts on b into b's
// momentum. Positions are read, never written, so calling this for every
// pair before any body moves keeps the whole phase on pre-step state.
func (b *Body) ApplyGravity(other *Body) {
	c := b.GravitationalCoefficient(other)
	b.momentum = b.momentum.Add(b.pos.Difference(other.pos).Scale(c))
}

// Advance records the current position into the trail and then displaces
// the body by its momentum. Recording happens only while the trail is
// below capacity, so a full trail freezes instead of sliding. The head
// trim handles a capacity lowered after entries accumulated.
func (b *Body) Advance() {
	if b.trailCap > 0 && len(b.trail) < b.trailCap {
		b.trail = append(b.trail, b.pos)
	}
	if excess := len(b.trail) - b.trailCap; excess > 0 {
		b.trail = b.trail[excess:]
	}
	b.pos = b.pos.Add(b.momentum)
}
