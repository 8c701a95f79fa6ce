// Package analysis provides run metrics and aggregate statistics over a
// body collection.
package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/gravlab/internal/engine"
)

// EnergyDrift tracks the maximum relative deviation of total energy from
// the first observed value. With the impulse update rule energy is not
// exactly conserved, so the drift doubles as a step-size sanity check.
type EnergyDrift struct {
	initial float64
	max     float64
	samples int
}

func NewEnergyDrift() *EnergyDrift { return &EnergyDrift{} }

func (e *EnergyDrift) Name() string { return "energy_drift" }

func (e *EnergyDrift) Observe(col *engine.Collection) {
	energy := col.TotalEnergy()
	if e.samples == 0 {
		e.initial = energy
	}
	e.samples++

	if e.initial != 0 {
		drift := math.Abs(energy-e.initial) / math.Abs(e.initial)
		e.max = math.Max(e.max, drift)
	}
}

func (e *EnergyDrift) Value() float64 { return e.max }

func (e *EnergyDrift) Reset() {
	e.initial = 0
	e.max = 0
	e.samples = 0
}

// MomentumDrift tracks the magnitude growth of total momentum. For the
// symmetric pair loop the impulses cancel, so any growth beyond float
// noise points at a broken accumulation phase.
type MomentumDrift struct {
	initial float64
	max     float64
	samples int
}

func NewMomentumDrift() *MomentumDrift { return &MomentumDrift{} }

func (m *MomentumDrift) Name() string { return "momentum_drift" }

func (m *MomentumDrift) Observe(col *engine.Collection) {
	norm := col.TotalMomentum().Norm()
	if m.samples == 0 {
		m.initial = norm
	}
	m.samples++

	m.max = math.Max(m.max, math.Abs(norm-m.initial))
}

func (m *MomentumDrift) Value() float64 { return m.max }

func (m *MomentumDrift) Reset() {
	m.initial = 0
	m.max = 0
	m.samples = 0
}

// Dispersion samples the standard deviation of body distances from the
// center of mass, averaged over the run. A collapsing or escaping system
// shows up as a shrinking or exploding value.
type Dispersion struct {
	total   float64
	samples int
}

func NewDispersion() *Dispersion { return &Dispersion{} }

func (d *Dispersion) Name() string { return "dispersion" }

func (d *Dispersion) Observe(col *engine.Collection) {
	com, err := col.CenterOfMass()
	if err != nil {
		return
	}
	dists := make([]float64, 0, col.Len())
	for _, b := range col.Bodies() {
		dists = append(dists, b.Position().Distance(com))
	}
	d.total += stat.StdDev(dists, nil)
	d.samples++
}

func (d *Dispersion) Value() float64 {
	if d.samples == 0 {
		return 0
	}
	return d.total / float64(d.samples)
}

func (d *Dispersion) Reset() {
	d.total = 0
	d.samples = 0
}

// Summary reduces a sample series to mean and standard deviation.
func Summary(samples []float64) (mean, stddev float64) {
	if len(samples) == 0 {
		return 0, 0
	}
	return stat.Mean(samples, nil), stat.StdDev(samples, nil)
}
