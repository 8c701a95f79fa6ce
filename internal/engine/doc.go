// Package engine implements the gravitational point-mass model.
//
// The package defines the core entities and the two-phase update rule:
//
//   - [Vec2]: 2D value pair used for both position and momentum
//   - [Body]: point mass with momentum and a bounded position trail
//   - [Collection]: capacity-bounded body set driving the simulation step
//
// A step runs in two strict phases. First every ordered body pair
// exchanges a gravity impulse into momentum, reading only pre-step
// positions and masses. Only after the last impulse is applied does any
// body move. Interleaving the phases would let later pairs observe
// already-moved positions and corrupt the force calculation.
//
// # Example
//
//	col := engine.NewCollection()
//	a, _ := col.AddBody(1.0, engine.Vec2{X: -10}, engine.Vec2{})
//	b, _ := col.AddBody(1.0, engine.Vec2{X: 10}, engine.Vec2{})
//	col.RunSteps(100)
//
// # Thread Safety
//
// Collection instances are NOT thread-safe. A collection is exclusively
// owned and advanced by one driver at a time.
package engine
