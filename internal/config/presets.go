package config

import "math"

// Presets are ready-to-run scenarios, addressable by name from the CLI.
var Presets = map[string]*Scenario{
	"binary": DefaultScenario(),
	"trio": {
		Name:         "trio",
		StepsPerTick: 4,
		Trail:        800,
		Bodies: []BodyConfig{
			{Mass: 0.6, Pos: [2]float64{-50, -30}, Momentum: [2]float64{0.15, -0.1}},
			{Mass: 0.6, Pos: [2]float64{50, -30}, Momentum: [2]float64{-0.1, 0.2}},
			{Mass: 0.6, Pos: [2]float64{0, 55}, Momentum: [2]float64{-0.05, -0.1}},
		},
	},
	"ring":  ringScenario(6),
	"chaos": chaosScenario(),
}

// ringScenario places n light bodies in a circular orbit around a heavy
// center, with tangential momenta sized for the damped gravity model:
// the per-step impulse magnitude on an orbiter is 0.5*m*M/r, so circular
// speed is sqrt(0.5*m*M/r).
func ringScenario(n int) *Scenario {
	const (
		centralMass = 1.0
		orbiterMass = 0.1
		radius      = 60.0
	)

	bodies := []BodyConfig{
		{Mass: centralMass, Pos: [2]float64{0, 0}, Momentum: [2]float64{0, 0}},
	}
	v := math.Sqrt(0.5 * orbiterMass * centralMass / radius)
	for i := 0; i < n; i++ {
		angle := float64(i) * 2 * math.Pi / float64(n)
		bodies = append(bodies, BodyConfig{
			Mass:     orbiterMass,
			Pos:      [2]float64{radius * math.Cos(angle), radius * math.Sin(angle)},
			Momentum: [2]float64{-v * math.Sin(angle), v * math.Cos(angle)},
		})
	}

	return &Scenario{
		Name:         "ring",
		StepsPerTick: 2,
		Trail:        400,
		Bodies:       bodies,
	}
}

func chaosScenario() *Scenario {
	return &Scenario{
		Name:         "chaos",
		StepsPerTick: 6,
		Trail:        1200,
		Bodies: []BodyConfig{
			{Mass: 0.9, Pos: [2]float64{-30, 10}, Momentum: [2]float64{0.1, 0.05}},
			{Mass: 0.4, Pos: [2]float64{25, -20}, Momentum: [2]float64{-0.2, 0.1}},
			{Mass: 0.7, Pos: [2]float64{10, 40}, Momentum: [2]float64{0.05, -0.15}},
			{Mass: 0.3, Pos: [2]float64{-45, -35}, Momentum: [2]float64{0.15, 0.1}},
			{Mass: 0.5, Pos: [2]float64{50, 30}, Momentum: [2]float64{-0.1, -0.05}},
		},
	}
}

func GetPreset(name string) *Scenario {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
