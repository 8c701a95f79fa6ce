package viz

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/gravlab/internal/config"
	"github.com/san-kum/gravlab/internal/driver"
	"github.com/san-kum/gravlab/internal/engine"
	"github.com/san-kum/gravlab/internal/scene"
)

const (
	canvasWidth   = 80
	canvasHeight  = 24
	energyHistory = 240
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(12)
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	selectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
)

type TickMsg time.Time

// Model is the bubbletea state for the live view.
type Model struct {
	scenario *config.Scenario
	runner   *driver.Runner
	sheet    *scene.Sheet
	canvas   *Canvas
	fps      int
	running  bool
	selected int
	energies []float64
	showHelp bool
	err      error
}

// NewModel builds the live view over a freshly constructed scenario.
func NewModel(s *config.Scenario, fps int) (Model, error) {
	if fps <= 0 {
		fps = 30
	}
	m := Model{
		scenario: s,
		canvas:   NewCanvas(canvasWidth, canvasHeight),
		fps:      fps,
		running:  true,
	}
	if err := m.rebuild(); err != nil {
		return Model{}, err
	}
	return m, nil
}

func (m *Model) rebuild() error {
	col, sheet, err := m.scenario.Build()
	if err != nil {
		return err
	}
	runner, err := driver.New(col, sheet, m.scenario.StepsPerTick)
	if err != nil {
		return err
	}
	m.runner = runner
	m.sheet = sheet
	m.selected = 0
	m.energies = m.energies[:0]
	return nil
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg { return TickMsg(t) })
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.err = m.rebuild()
		case "tab":
			if n := m.runner.Collection().Len(); n > 0 {
				m.selected = (m.selected + 1) % n
			}
		case "c":
			m.cycleColor()
		case "+", "=":
			m.runner.SetStepsPerTick(m.runner.StepsPerTick() + 1)
		case "-", "_":
			m.runner.SetStepsPerTick(m.runner.StepsPerTick() - 1)
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.runner.Tick()
			m.energies = append(m.energies, m.runner.Collection().TotalEnergy())
			if len(m.energies) > energyHistory {
				m.energies = m.energies[1:]
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m *Model) cycleColor() {
	st, err := m.sheet.Style(m.selected)
	if err != nil {
		return
	}
	m.sheet.SetColorIndex(m.selected, (st.ColorIndex+1)%len(scene.Palette))
}

// draw projects the current snapshot onto the braille canvas: trails as
// polylines, bodies as circles, the center of mass as a cross.
func (m *Model) draw(views []scene.BodyView) {
	m.canvas.Clear()
	minX, minY, maxX, maxY := bounds(views)

	rangeX := maxX - minX
	rangeY := maxY - minY
	if rangeX == 0 {
		rangeX = 1
	}
	if rangeY == 0 {
		rangeY = 1
	}
	// 10% margin keeps circles off the border.
	minX -= rangeX * 0.1
	minY -= rangeY * 0.1
	rangeX *= 1.2
	rangeY *= 1.2

	dotW := float64(m.canvas.DotWidth() - 1)
	dotH := float64(m.canvas.DotHeight() - 1)

	project := func(p engine.Vec2) (int, int) {
		x := (p.X - minX) / rangeX * dotW
		y := dotH - (p.Y-minY)/rangeY*dotH
		return int(x), int(y)
	}

	for _, v := range views {
		if len(v.Trail) > 1 {
			pts := make([][2]int, len(v.Trail))
			for i, p := range v.Trail {
				x, y := project(p)
				pts[i] = [2]int{x, y}
			}
			m.canvas.Polyline(pts)
		}
		cx, cy := project(v.Position)
		r := int(v.Radius / rangeX * dotW)
		if r < 1 {
			r = 1
		}
		m.canvas.Circle(cx, cy, r)
	}

	if com, err := m.runner.Collection().CenterOfMass(); err == nil {
		x, y := project(com)
		m.canvas.Marker(x, y)
	}
}

func bounds(views []scene.BodyView) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	grow := func(p engine.Vec2) {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	for _, v := range views {
		grow(v.Position)
		for _, p := range v.Trail {
			grow(p)
		}
	}
	if math.IsInf(minX, 1) {
		return 0, 0, 1, 1
	}
	return minX, minY, maxX, maxY
}

func (m Model) View() string {
	if m.err != nil {
		return fmt.Sprintf("error: %v\n", m.err)
	}

	views := m.sheet.Snapshot()
	m.draw(views)

	var s strings.Builder
	s.WriteString(headerStyle.Render(strings.ToUpper(m.scenario.Name)) + "\n")

	status := "RUNNING"
	if !m.running {
		status = "PAUSED"
	}
	s.WriteString(fmt.Sprintf("%s\n", status))

	s.WriteString(canvasStyle.Render(m.canvas.String()) + "\n")

	if len(m.energies) > 1 {
		chart := asciigraph.Plot(m.energies,
			asciigraph.Height(4),
			asciigraph.Width(40),
			asciigraph.Caption("energy"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	s.WriteString(labelStyle.Render("Steps") + valueStyle.Render(fmt.Sprintf("%d", m.runner.Steps())) + "\n")
	s.WriteString(labelStyle.Render("Steps/tick") + valueStyle.Render(fmt.Sprintf("%d", m.runner.StepsPerTick())) + "\n")
	if com, err := m.runner.Collection().CenterOfMass(); err == nil {
		s.WriteString(labelStyle.Render("Center") + valueStyle.Render(fmt.Sprintf("(%.2f, %.2f)", com.X, com.Y)) + "\n")
	}

	s.WriteString("\nBODIES\n")
	for i, v := range views {
		dot := lipgloss.NewStyle().Foreground(v.Color()).Render("●")
		line := fmt.Sprintf("%s m=%.2f pos=(%.1f, %.1f)", dot, v.Radius/10, v.Position.X, v.Position.Y)
		if i == m.selected {
			line = selectStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		s.WriteString(line + "\n")
	}

	if m.showHelp {
		s.WriteString(helpStyle.Render("space pause · r reset · tab select · c color · +/- speed · q quit"))
	} else {
		s.WriteString(helpStyle.Render("? help"))
	}
	return s.String()
}
