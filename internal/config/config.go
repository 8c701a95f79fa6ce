package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/gravlab/internal/engine"
	"github.com/san-kum/gravlab/internal/scene"
)

const (
	DefaultStepsPerTick = 4
	DefaultTrail        = 600
	DefaultSteps        = 1000
)

// Scenario describes a full simulation setup: the bodies, their trail
// budget, and how many engine steps each driver tick advances.
type Scenario struct {
	Name         string       `yaml:"name"`
	StepsPerTick int          `yaml:"steps_per_tick"`
	Trail        int          `yaml:"trail"`
	Bodies       []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	Mass       float64    `yaml:"mass"`
	Pos        [2]float64 `yaml:"pos"`
	Momentum   [2]float64 `yaml:"momentum"`
	Color      *int       `yaml:"color,omitempty"`
	TrailWidth float64    `yaml:"trail_width,omitempty"`
}

func DefaultScenario() *Scenario {
	return &Scenario{
		Name:         "binary",
		StepsPerTick: DefaultStepsPerTick,
		Trail:        DefaultTrail,
		Bodies: []BodyConfig{
			{Mass: 0.8, Pos: [2]float64{-40, 0}, Momentum: [2]float64{0, 0.25}},
			{Mass: 0.8, Pos: [2]float64{40, 0}, Momentum: [2]float64{0, -0.25}},
		},
	}
}

func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	s := DefaultScenario()
	s.Bodies = nil
	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

func Save(path string, s *Scenario) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate surfaces engine-range violations before any body is built, so
// a bad scenario fails as a whole instead of half-constructing.
func (s *Scenario) Validate() error {
	if len(s.Bodies) == 0 {
		return fmt.Errorf("scenario %q has no bodies", s.Name)
	}
	if len(s.Bodies) > engine.MaxBodies {
		return fmt.Errorf("scenario %q has %d bodies, limit is %d", s.Name, len(s.Bodies), engine.MaxBodies)
	}
	if s.Trail < 0 || s.Trail > engine.MaxTrailCapacity {
		return fmt.Errorf("scenario %q trail %d not in [0, %d]", s.Name, s.Trail, engine.MaxTrailCapacity)
	}
	if s.StepsPerTick <= 0 {
		return fmt.Errorf("scenario %q steps_per_tick must be positive, got %d", s.Name, s.StepsPerTick)
	}
	for i, b := range s.Bodies {
		if b.Mass <= 0 {
			return fmt.Errorf("body %d: mass must be positive, got %v", i, b.Mass)
		}
		if b.Color != nil && (*b.Color < 0 || *b.Color >= len(scene.Palette)) {
			return fmt.Errorf("body %d: color %d not in [0, %d)", i, *b.Color, len(scene.Palette))
		}
		if b.TrailWidth < 0 || b.TrailWidth > b.Mass*10 {
			return fmt.Errorf("body %d: trail_width %v not in (0, %v]", i, b.TrailWidth, b.Mass*10)
		}
	}
	return nil
}

// Build constructs the collection and its style sheet from the scenario.
func (s *Scenario) Build() (*engine.Collection, *scene.Sheet, error) {
	if err := s.Validate(); err != nil {
		return nil, nil, err
	}

	col := engine.NewCollection()
	sheet := scene.NewSheet(col)

	for i, bc := range s.Bodies {
		b, err := col.AddBody(bc.Mass,
			engine.Vec2{X: bc.Pos[0], Y: bc.Pos[1]},
			engine.Vec2{X: bc.Momentum[0], Y: bc.Momentum[1]})
		if err != nil {
			return nil, nil, fmt.Errorf("body %d: %w", i, err)
		}
		if err := b.SetTrailCapacity(s.Trail); err != nil {
			return nil, nil, fmt.Errorf("body %d: %w", i, err)
		}
		sheet.Append()
		if bc.Color != nil {
			if err := sheet.SetColorIndex(i, *bc.Color); err != nil {
				return nil, nil, fmt.Errorf("body %d: %w", i, err)
			}
		}
		if bc.TrailWidth != 0 {
			if err := sheet.SetTrailWidth(i, bc.TrailWidth); err != nil {
				return nil, nil, fmt.Errorf("body %d: %w", i, err)
			}
		}
	}

	return col, sheet, nil
}
