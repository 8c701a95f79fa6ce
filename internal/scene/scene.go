// Package scene carries the presentation state for a body collection:
// colors and trail stroke widths live here, keyed to bodies by index, so
// the engine stays free of rendering concerns.
package scene

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/gravlab/internal/engine"
)

// Palette is the fixed set of body colors, addressed by color index.
var Palette = []lipgloss.Color{
	lipgloss.Color("#00ffff"), // cyan
	lipgloss.Color("#ff00ff"), // magenta
	lipgloss.Color("#ffff00"), // yellow
	lipgloss.Color("#00ff88"), // mint
	lipgloss.Color("#ff6b6b"), // coral
	lipgloss.Color("#0088ff"), // azure
	lipgloss.Color("#feca57"), // amber
	lipgloss.Color("#e0f0ff"), // ice
}

// DefaultTrailWidth is assigned when a body joins a sheet.
const DefaultTrailWidth = 1.0

// Style is the cosmetic state of one body. It never influences physics.
type Style struct {
	ColorIndex int
	TrailWidth float64
}

// Sheet holds one Style per body of a collection, index-aligned with the
// collection's body order.
type Sheet struct {
	col    *engine.Collection
	styles []Style
}

// NewSheet builds a sheet over col with a default style for each body
// already present, cycling through the palette.
func NewSheet(col *engine.Collection) *Sheet {
	s := &Sheet{col: col}
	for range col.Bodies() {
		s.Append()
	}
	return s
}

// Append adds a default style slot for a newly added body.
func (s *Sheet) Append() {
	s.styles = append(s.styles, Style{
		ColorIndex: len(s.styles) % len(Palette),
		TrailWidth: DefaultTrailWidth,
	})
}

// Remove drops the style at index i, keeping the sheet aligned with a
// RemoveBody call on the collection.
func (s *Sheet) Remove(i int) error {
	if i < 0 || i >= len(s.styles) {
		return fmt.Errorf("%w: style index %d with %d styles", engine.ErrIndexOutOfRange, i, len(s.styles))
	}
	s.styles = append(s.styles[:i], s.styles[i+1:]...)
	return nil
}

// Style returns the style of body i.
func (s *Sheet) Style(i int) (Style, error) {
	if i < 0 || i >= len(s.styles) {
		return Style{}, fmt.Errorf("%w: style index %d with %d styles", engine.ErrIndexOutOfRange, i, len(s.styles))
	}
	return s.styles[i], nil
}

// SetColorIndex assigns a palette color to body i.
func (s *Sheet) SetColorIndex(i, idx int) error {
	if i < 0 || i >= len(s.styles) {
		return fmt.Errorf("%w: style index %d with %d styles", engine.ErrIndexOutOfRange, i, len(s.styles))
	}
	if idx < 0 || idx >= len(Palette) {
		return fmt.Errorf("%w: color index %d not in [0, %d)", engine.ErrInvalidArgument, idx, len(Palette))
	}
	s.styles[i].ColorIndex = idx
	return nil
}

// SetTrailWidth sets the trail stroke width of body i. The width must be
// positive and no larger than the body's render radius.
func (s *Sheet) SetTrailWidth(i int, w float64) error {
	b, err := s.col.Body(i)
	if err != nil {
		return err
	}
	if w <= 0 || w > b.Radius() {
		return fmt.Errorf("%w: trail width %v not in (0, %v]", engine.ErrInvalidArgument, w, b.Radius())
	}
	s.styles[i].TrailWidth = w
	return nil
}

// BodyView is a read-only render snapshot of one body.
type BodyView struct {
	Position   engine.Vec2
	Momentum   engine.Vec2
	Radius     float64
	Trail      []engine.Vec2
	ColorIndex int
	TrailWidth float64
}

// Color returns the palette color for the view.
func (v BodyView) Color() lipgloss.Color {
	return Palette[v.ColorIndex]
}

// Snapshot captures the collection for a renderer: positions, radii,
// trail copies, and per-body style.
func (s *Sheet) Snapshot() []BodyView {
	views := make([]BodyView, 0, s.col.Len())
	for i, b := range s.col.Bodies() {
		st := Style{ColorIndex: i % len(Palette), TrailWidth: DefaultTrailWidth}
		if i < len(s.styles) {
			st = s.styles[i]
		}
		views = append(views, BodyView{
			Position:   b.Position(),
			Momentum:   b.Momentum(),
			Radius:     b.Radius(),
			Trail:      b.Trail(),
			ColorIndex: st.ColorIndex,
			TrailWidth: st.TrailWidth,
		})
	}
	return views
}
