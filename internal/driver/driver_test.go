package driver

import (
	"context"
	"testing"

	"github.com/san-kum/gravlab/internal/engine"
	"github.com/san-kum/gravlab/internal/scene"
)

type recordingObserver struct {
	ticks []int
	views [][]scene.BodyView
}

func (r *recordingObserver) OnTick(step int, views []scene.BodyView) {
	r.ticks = append(r.ticks, step)
	r.views = append(r.views, views)
}

type countingMetric struct {
	samples int
}

func (c *countingMetric) Name() string                   { return "samples" }
func (c *countingMetric) Observe(col *engine.Collection) { c.samples++ }
func (c *countingMetric) Value() float64                 { return float64(c.samples) }
func (c *countingMetric) Reset()                         { c.samples = 0 }

func newTestRunner(t *testing.T, stepsPerTick int) *Runner {
	t.Helper()
	col := engine.NewCollection()
	col.AddBody(1.0, engine.Vec2{X: -10}, engine.Vec2{})
	col.AddBody(1.0, engine.Vec2{X: 10}, engine.Vec2{})
	sheet := scene.NewSheet(col)
	r, err := New(col, sheet, stepsPerTick)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func TestNew_RejectsBadBatchSize(t *testing.T) {
	col := engine.NewCollection()
	if _, err := New(col, scene.NewSheet(col), 0); err == nil {
		t.Error("expected error for zero steps per tick")
	}
}

func TestRunner_Tick(t *testing.T) {
	r := newTestRunner(t, 3)
	obs := &recordingObserver{}
	r.AddObserver(obs)

	r.Tick()
	r.Tick()

	if r.Steps() != 6 {
		t.Errorf("Steps() = %d, want 6", r.Steps())
	}
	if len(obs.ticks) != 2 || obs.ticks[0] != 3 || obs.ticks[1] != 6 {
		t.Errorf("observer ticks = %v, want [3 6]", obs.ticks)
	}
	if len(obs.views[0]) != 2 {
		t.Errorf("snapshot has %d views, want 2", len(obs.views[0]))
	}
}

func TestRunner_Run(t *testing.T) {
	r := newTestRunner(t, 2)
	m := &countingMetric{samples: 99} // Reset must clear the stale count
	r.AddMetric(m)

	res, err := r.Run(context.Background(), 5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Steps != 10 {
		t.Errorf("result steps = %d, want 10", res.Steps)
	}
	if res.Ticks != 5 {
		t.Errorf("result ticks = %d, want 5", res.Ticks)
	}
	// Baseline sample plus one per tick.
	if res.Metrics["samples"] != 6 {
		t.Errorf("metric samples = %v, want 6", res.Metrics["samples"])
	}
}

func TestRunner_Run_Canceled(t *testing.T) {
	r := newTestRunner(t, 1)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := r.Run(ctx, 100)
	if err != context.Canceled {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if res.Ticks != 0 {
		t.Errorf("canceled run reported %d ticks", res.Ticks)
	}
}

func TestRunner_SetStepsPerTick_Clamps(t *testing.T) {
	r := newTestRunner(t, 4)
	r.SetStepsPerTick(-3)
	if r.StepsPerTick() != 1 {
		t.Errorf("StepsPerTick() = %d, want 1", r.StepsPerTick())
	}
}
