package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"github.com/san-kum/gravlab/internal/analysis"
	"github.com/san-kum/gravlab/internal/config"
	"github.com/san-kum/gravlab/internal/driver"
	"github.com/san-kum/gravlab/internal/export"
	"github.com/san-kum/gravlab/internal/viz"
)

var (
	configFile string
	preset     string
	steps      int
	trail      int
	frameRate  int
	format     string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "gravlab",
		Short: "bounded n-body gravity sandbox",
	}

	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scenario file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use a built-in scenario")
	rootCmd.PersistentFlags().IntVar(&trail, "trail", -1, "override trail capacity")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a scenario and print metrics",
		RunE:  runScenario,
	}
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "engine steps to advance")

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "run with live terminal visualization",
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&frameRate, "fps", 30, "frame rate")

	plotCmd := &cobra.Command{
		Use:   "plot [body]",
		Short: "chart one body's coordinates over a run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotBody,
	}
	plotCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "engine steps to advance")

	exportCmd := &cobra.Command{
		Use:   "export",
		Short: "run a scenario and write the trajectory to stdout",
		RunE:  exportRun,
	}
	exportCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "engine steps to advance")
	exportCmd.Flags().StringVar(&format, "format", "csv", "output format: csv, json, or svg")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in scenarios",
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	rootCmd.AddCommand(runCmd, liveCmd, plotCmd, exportCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func loadScenario() (*config.Scenario, error) {
	var s *config.Scenario
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load scenario: %w", err)
		}
		s = loaded
	case preset != "":
		s = config.GetPreset(preset)
		if s == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
	default:
		s = config.DefaultScenario()
	}

	if trail >= 0 {
		s.Trail = trail
	}
	return s, nil
}

func newRunner(s *config.Scenario) (*driver.Runner, error) {
	col, sheet, err := s.Build()
	if err != nil {
		return nil, err
	}
	return driver.New(col, sheet, s.StepsPerTick)
}

func ticksFor(s *config.Scenario) int {
	ticks := steps / s.StepsPerTick
	if steps%s.StepsPerTick != 0 {
		ticks++
	}
	return ticks
}

func runScenario(cmd *cobra.Command, args []string) error {
	s, err := loadScenario()
	if err != nil {
		return err
	}
	r, err := newRunner(s)
	if err != nil {
		return err
	}

	r.AddMetric(analysis.NewEnergyDrift())
	r.AddMetric(analysis.NewMomentumDrift())
	r.AddMetric(analysis.NewDispersion())

	fmt.Printf("running %s...\n", s.Name)
	start := time.Now()

	result, err := r.Run(context.Background(), ticksFor(s))
	if err != nil {
		return err
	}

	fmt.Printf("completed %d steps in %v\n\n", result.Steps, time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "BODY\tMASS\tPOS\tMOMENTUM\tTRAIL")
	for i, b := range r.Collection().Bodies() {
		fmt.Fprintf(w, "%d\t%.2f\t(%.2f, %.2f)\t(%.4f, %.4f)\t%d\n",
			i, b.Mass(),
			b.Position().X, b.Position().Y,
			b.Momentum().X, b.Momentum().Y,
			b.TrailLen(),
		)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if com, err := r.Collection().CenterOfMass(); err == nil {
		fmt.Printf("\ncenter of mass: (%.4f, %.4f)\n", com.X, com.Y)
	}

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}
	return nil
}

func runLive(cmd *cobra.Command, args []string) error {
	s, err := loadScenario()
	if err != nil {
		return err
	}
	m, err := viz.NewModel(s, frameRate)
	if err != nil {
		return err
	}
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}

func plotBody(cmd *cobra.Command, args []string) error {
	idx, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("body index must be an integer: %w", err)
	}

	s, err := loadScenario()
	if err != nil {
		return err
	}
	if idx < 0 || idx >= len(s.Bodies) {
		return fmt.Errorf("body index %d with %d bodies", idx, len(s.Bodies))
	}
	r, err := newRunner(s)
	if err != nil {
		return err
	}

	rec := export.NewRecorder()
	r.AddObserver(rec)

	if _, err := r.Run(context.Background(), ticksFor(s)); err != nil {
		return err
	}

	frames := rec.Frames()
	xs := make([]float64, len(frames))
	ys := make([]float64, len(frames))
	for i, f := range frames {
		xs[i] = f.Bodies[idx].X
		ys[i] = f.Bodies[idx].Y
	}

	fmt.Printf("scenario: %s, body %d, %d samples\n\n", s.Name, idx, len(frames))
	fmt.Println(asciigraph.Plot(xs,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("x vs step")))
	fmt.Println()
	fmt.Println(asciigraph.Plot(ys,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Caption("y vs step")))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	s, err := loadScenario()
	if err != nil {
		return err
	}
	r, err := newRunner(s)
	if err != nil {
		return err
	}

	rec := export.NewRecorder()
	r.AddObserver(rec)

	if _, err := r.Run(context.Background(), ticksFor(s)); err != nil {
		return err
	}

	switch format {
	case "csv":
		return export.WriteCSV(os.Stdout, rec.Frames())
	case "json":
		return export.WriteJSON(os.Stdout, s.Name, rec.Frames())
	case "svg":
		views := r.Sheet().Snapshot()
		_, err := fmt.Println(export.TrailSVG(views, 800, 600))
		return err
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
