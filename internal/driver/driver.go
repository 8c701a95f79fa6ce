// Package driver advances a collection in tick-sized batches and fans
// snapshots out to observers and metrics. It owns the sequencing around
// the engine; the engine owns the per-step phase ordering.
package driver

import (
	"context"
	"fmt"

	"github.com/san-kum/gravlab/internal/engine"
	"github.com/san-kum/gravlab/internal/scene"
)

// Observer receives a render snapshot after every tick.
type Observer interface {
	OnTick(step int, views []scene.BodyView)
}

// Metric samples the collection after every tick and reduces to a value.
type Metric interface {
	Name() string
	Observe(col *engine.Collection)
	Value() float64
	Reset()
}

// Result summarizes a finished run.
type Result struct {
	Steps   int
	Ticks   int
	Metrics map[string]float64
}

// Runner drives one collection. Not safe for concurrent use; a
// collection has exactly one driver at a time.
type Runner struct {
	col          *engine.Collection
	sheet        *scene.Sheet
	stepsPerTick int
	observers    []Observer
	metrics      []Metric
	steps        int
}

func New(col *engine.Collection, sheet *scene.Sheet, stepsPerTick int) (*Runner, error) {
	if stepsPerTick <= 0 {
		return nil, fmt.Errorf("steps per tick must be positive, got %d", stepsPerTick)
	}
	return &Runner{
		col:          col,
		sheet:        sheet,
		stepsPerTick: stepsPerTick,
	}, nil
}

func (r *Runner) AddObserver(o Observer) { r.observers = append(r.observers, o) }
func (r *Runner) AddMetric(m Metric)     { r.metrics = append(r.metrics, m) }

func (r *Runner) Collection() *engine.Collection { return r.col }
func (r *Runner) Sheet() *scene.Sheet            { return r.sheet }
func (r *Runner) Steps() int                     { return r.steps }
func (r *Runner) StepsPerTick() int              { return r.stepsPerTick }

// SetStepsPerTick adjusts the batch size between ticks (live view speed
// control). Values below 1 are clamped to 1.
func (r *Runner) SetStepsPerTick(n int) {
	if n < 1 {
		n = 1
	}
	r.stepsPerTick = n
}

// Tick advances the collection by one batch of steps and notifies
// metrics and observers with the post-batch state.
func (r *Runner) Tick() {
	r.col.RunSteps(r.stepsPerTick)
	r.steps += r.stepsPerTick

	for _, m := range r.metrics {
		m.Observe(r.col)
	}
	if len(r.observers) > 0 {
		views := r.sheet.Snapshot()
		for _, o := range r.observers {
			o.OnTick(r.steps, views)
		}
	}
}

// Run executes ticks batches, honoring ctx cancellation between batches,
// and collects metric values.
func (r *Runner) Run(ctx context.Context, ticks int) (*Result, error) {
	for _, m := range r.metrics {
		m.Reset()
	}
	// Sample the initial state so drift metrics have a baseline.
	for _, m := range r.metrics {
		m.Observe(r.col)
	}

	for i := 0; i < ticks; i++ {
		select {
		case <-ctx.Done():
			return r.result(i), ctx.Err()
		default:
		}
		r.Tick()
	}

	return r.result(ticks), nil
}

func (r *Runner) result(ticks int) *Result {
	res := &Result{
		Steps:   r.steps,
		Ticks:   ticks,
		Metrics: make(map[string]float64, len(r.metrics)),
	}
	for _, m := range r.metrics {
		res.Metrics[m.Name()] = m.Value()
	}
	return res
}
