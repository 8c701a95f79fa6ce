package config

import (
	"path/filepath"
	"testing"

	"github.com/san-kum/gravlab/internal/engine"
)

func TestDefaultScenario(t *testing.T) {
	s := DefaultScenario()

	if s.Name != "binary" {
		t.Errorf("expected scenario binary, got %s", s.Name)
	}
	if s.StepsPerTick <= 0 {
		t.Error("steps_per_tick should be positive")
	}
	if err := s.Validate(); err != nil {
		t.Errorf("default scenario should validate: %v", err)
	}
}

func TestScenario_Validate(t *testing.T) {
	color := func(i int) *int { return &i }

	tests := []struct {
		name    string
		mutate  func(*Scenario)
		wantErr bool
	}{
		{"valid", func(s *Scenario) {}, false},
		{"no bodies", func(s *Scenario) { s.Bodies = nil }, true},
		{"too many bodies", func(s *Scenario) {
			s.Bodies = make([]BodyConfig, engine.MaxBodies+1)
			for i := range s.Bodies {
				s.Bodies[i] = BodyConfig{Mass: 0.5}
			}
		}, true},
		{"negative trail", func(s *Scenario) { s.Trail = -1 }, true},
		{"trail over max", func(s *Scenario) { s.Trail = engine.MaxTrailCapacity + 1 }, true},
		{"trail at max", func(s *Scenario) { s.Trail = engine.MaxTrailCapacity }, false},
		{"zero steps per tick", func(s *Scenario) { s.StepsPerTick = 0 }, true},
		{"zero mass", func(s *Scenario) { s.Bodies[0].Mass = 0 }, true},
		{"bad color", func(s *Scenario) { s.Bodies[0].Color = color(99) }, true},
		{"good color", func(s *Scenario) { s.Bodies[0].Color = color(3) }, false},
		{"oversized trail width", func(s *Scenario) { s.Bodies[0].TrailWidth = 100 }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultScenario()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestScenario_Build(t *testing.T) {
	s := GetPreset("trio")
	if s == nil {
		t.Fatal("expected trio preset")
	}

	col, sheet, err := s.Build()
	if err != nil {
		t.Fatal(err)
	}
	if col.Len() != 3 {
		t.Errorf("collection has %d bodies, want 3", col.Len())
	}
	for i, b := range col.Bodies() {
		if b.TrailCap() != s.Trail {
			t.Errorf("body %d trail capacity = %d, want %d", i, b.TrailCap(), s.Trail)
		}
	}
	if got := len(sheet.Snapshot()); got != 3 {
		t.Errorf("sheet has %d views, want 3", got)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scenario.yaml")

	orig := GetPreset("ring")
	if err := Save(path, orig); err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Name != orig.Name {
		t.Errorf("name = %s, want %s", loaded.Name, orig.Name)
	}
	if len(loaded.Bodies) != len(orig.Bodies) {
		t.Errorf("bodies = %d, want %d", len(loaded.Bodies), len(orig.Bodies))
	}
	if loaded.Bodies[1].Momentum != orig.Bodies[1].Momentum {
		t.Errorf("momentum = %v, want %v", loaded.Bodies[1].Momentum, orig.Bodies[1].Momentum)
	}
}

func TestLoad_RejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	s := DefaultScenario()
	s.Trail = -5
	if err := Save(path, s); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("expected error loading invalid scenario")
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if GetPreset("nonexistent") != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	names := ListPresets()
	if len(names) == 0 {
		t.Error("expected presets")
	}
}

func TestRingPreset_TangentialMomentum(t *testing.T) {
	s := GetPreset("ring")
	// Orbiter momenta are perpendicular to their position vectors.
	for i, b := range s.Bodies[1:] {
		dot := b.Pos[0]*b.Momentum[0] + b.Pos[1]*b.Momentum[1]
		if dot > 1e-9 || dot < -1e-9 {
			t.Errorf("orbiter %d momentum not tangential: dot = %v", i, dot)
		}
	}
}
