package scene

import (
	"errors"
	"testing"

	"github.com/san-kum/gravlab/internal/engine"
)

func newTestSheet(t *testing.T, masses ...float64) (*engine.Collection, *Sheet) {
	t.Helper()
	col := engine.NewCollection()
	for i, m := range masses {
		if _, err := col.AddBody(m, engine.Vec2{X: float64(i)}, engine.Vec2{}); err != nil {
			t.Fatal(err)
		}
	}
	return col, NewSheet(col)
}

func TestSheet_SetColorIndex(t *testing.T) {
	_, sheet := newTestSheet(t, 1.0)

	tests := []struct {
		name    string
		idx     int
		wantErr bool
	}{
		{"first", 0, false},
		{"last", len(Palette) - 1, false},
		{"negative", -1, true},
		{"past palette", len(Palette), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sheet.SetColorIndex(0, tt.idx)
			if tt.wantErr {
				if !errors.Is(err, engine.ErrInvalidArgument) {
					t.Errorf("expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			st, _ := sheet.Style(0)
			if st.ColorIndex != tt.idx {
				t.Errorf("color index = %d, want %d", st.ColorIndex, tt.idx)
			}
		})
	}
}

func TestSheet_SetTrailWidth(t *testing.T) {
	// Mass 0.5 gives radius 5; widths are bounded by it.
	_, sheet := newTestSheet(t, 0.5)

	tests := []struct {
		name    string
		w       float64
		wantErr bool
	}{
		{"thin", 0.5, false},
		{"at radius", 5.0, false},
		{"zero", 0, true},
		{"negative", -1, true},
		{"over radius", 5.1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := sheet.SetTrailWidth(0, tt.w)
			if tt.wantErr {
				if !errors.Is(err, engine.ErrInvalidArgument) {
					t.Errorf("expected ErrInvalidArgument, got %v", err)
				}
				return
			}
			if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSheet_SetTrailWidth_BadIndex(t *testing.T) {
	_, sheet := newTestSheet(t, 1.0)
	if err := sheet.SetTrailWidth(3, 1.0); !errors.Is(err, engine.ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestSheet_RemoveKeepsAlignment(t *testing.T) {
	col, sheet := newTestSheet(t, 1.0, 0.8, 0.6)
	sheet.SetColorIndex(2, 5)

	if _, err := col.RemoveBody(0); err != nil {
		t.Fatal(err)
	}
	if err := sheet.Remove(0); err != nil {
		t.Fatal(err)
	}

	views := sheet.Snapshot()
	if len(views) != 2 {
		t.Fatalf("snapshot has %d views, want 2", len(views))
	}
	if views[1].ColorIndex != 5 {
		t.Errorf("style moved: color index = %d, want 5", views[1].ColorIndex)
	}
}

func TestSheet_Snapshot(t *testing.T) {
	col, sheet := newTestSheet(t, 1.0, 0.5)
	b, _ := col.Body(0)
	b.SetTrailCapacity(4)
	col.RunSteps(2)

	views := sheet.Snapshot()
	if len(views) != 2 {
		t.Fatalf("snapshot has %d views, want 2", len(views))
	}
	if views[0].Radius != 10 {
		t.Errorf("radius = %v, want 10", views[0].Radius)
	}
	if len(views[0].Trail) != 2 {
		t.Errorf("trail copy has %d entries, want 2", len(views[0].Trail))
	}

	// Views are decoupled from live bodies.
	views[0].Trail[0] = engine.Vec2{X: 999}
	if b.Trail()[0].X == 999 {
		t.Error("snapshot aliases the body trail")
	}
}
