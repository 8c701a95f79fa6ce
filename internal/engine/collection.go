package engine

import "fmt"

// MaxBodies is the hard capacity of a Collection.
const MaxBodies = 10

// Collection owns a bounded, ordered set of bodies. It is the only
// entry point for running simulation steps, which guarantees the
// accumulation phase finishes for every body before any body moves.
type Collection struct {
	bodies []*Body
}

func NewCollection() *Collection {
	return &Collection{bodies: make([]*Body, 0, MaxBodies)}
}

// Len returns the number of bodies.
func (c *Collection) Len() int { return len(c.bodies) }

// Bodies returns the live body slice in insertion order. Callers must
// not grow or reorder it; use AddBody/RemoveBody for that.
func (c *Collection) Bodies() []*Body { return c.bodies }

// AddBody constructs a body and appends it. The collection is unchanged
// when the capacity check fails.
func (c *Collection) AddBody(mass float64, pos, momentum Vec2) (*Body, error) {
	if len(c.bodies) >= MaxBodies {
		return nil, fmt.Errorf("%w: collection already holds %d bodies", ErrCapacityExceeded, MaxBodies)
	}
	b := newBody(mass, pos, momentum)
	c.bodies = append(c.bodies, b)
	return b, nil
}

// RemoveBody removes and returns the body at index i.
func (c *Collection) RemoveBody(i int) (*Body, error) {
	if i < 0 || i >= len(c.bodies) {
		return nil, fmt.Errorf("%w: index %d with %d bodies", ErrIndexOutOfRange, i, len(c.bodies))
	}
	b := c.bodies[i]
	c.bodies = append(c.bodies[:i], c.bodies[i+1:]...)
	return b, nil
}

// Body returns the body at index i.
func (c *Collection) Body(i int) (*Body, error) {
	if i < 0 || i >= len(c.bodies) {
		return nil, fmt.Errorf("%w: index %d with %d bodies", ErrIndexOutOfRange, i, len(c.bodies))
	}
	return c.bodies[i], nil
}

// CenterOfMass returns the mass-weighted average position.
func (c *Collection) CenterOfMass() (Vec2, error) {
	if len(c.bodies) == 0 {
		return Vec2{}, fmt.Errorf("%w: center of mass undefined", ErrEmptyCollection)
	}
	var weighted Vec2
	total := 0.0
	for _, b := range c.bodies {
		weighted = weighted.Add(b.pos.Scale(b.mass))
		total += b.mass
	}
	return weighted.Scale(1 / total), nil
}

// Step advances the simulation by one tick in two strict phases.
//
// Phase 1 visits all n·(n-1) ordered pairs and accumulates impulses into
// momenta. ApplyGravity reads positions and masses only, so every pair
// sees pre-step state regardless of visit order. Phase 2 then displaces
// every body. The phase barrier between the loops is the one ordering
// guarantee the model depends on.
func (c *Collection) Step() {
	for i, b := range c.bodies {
		for j, other := range c.bodies {
			if i == j {
				continue
			}
			b.ApplyGravity(other)
		}
	}
	for _, b := range c.bodies {
		b.Advance()
	}
}

// RunSteps calls Step exactly n times. Zero or negative n is a no-op.
func (c *Collection) RunSteps(n int) {
	for i := 0; i < n; i++ {
		c.Step()
	}
}

// TotalEnergy returns kinetic plus pairwise potential energy under the
// damped coefficient convention. Coincident pairs propagate -Inf, same
// as the force calculation.
func (c *Collection) TotalEnergy() float64 {
	ke := 0.0
	pe := 0.0
	for i, b := range c.bodies {
		m := b.Momentum()
		ke += 0.5 * b.mass * (m.X*m.X + m.Y*m.Y)
		for j := i + 1; j < len(c.bodies); j++ {
			o := c.bodies[j]
			d := b.pos.Distance(o.pos)
			pe -= gravityDamping * b.mass * o.mass / d
		}
	}
	return ke + pe
}

// TotalMomentum returns the mass-weighted sum of body momenta.
func (c *Collection) TotalMomentum() Vec2 {
	var p Vec2
	for _, b := range c.bodies {
		p = p.Add(b.momentum.Scale(b.mass))
	}
	return p
}
