// Package export renders finished runs into portable artifacts: SVG
// trail plots and CSV/JSON trajectory streams. Everything writes to an
// io.Writer; there is no run store on disk.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/san-kum/gravlab/internal/scene"
)

// Frame is one recorded tick: the step counter and per-body positions.
type Frame struct {
	Step   int         `json:"step"`
	Bodies []FrameBody `json:"bodies"`
}

type FrameBody struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Recorder collects frames as a driver observer.
type Recorder struct {
	frames []Frame
}

func NewRecorder() *Recorder { return &Recorder{} }

func (r *Recorder) OnTick(step int, views []scene.BodyView) {
	bodies := make([]FrameBody, len(views))
	for i, v := range views {
		bodies[i] = FrameBody{X: v.Position.X, Y: v.Position.Y}
	}
	r.frames = append(r.frames, Frame{Step: step, Bodies: bodies})
}

func (r *Recorder) Frames() []Frame { return r.frames }

// WriteCSV streams frames as one row per tick: step, then x/y per body.
func WriteCSV(w io.Writer, frames []Frame) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to export")
	}

	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"step"}
	for i := range frames[0].Bodies {
		header = append(header, fmt.Sprintf("b%d_x", i), fmt.Sprintf("b%d_y", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for _, f := range frames {
		row := []string{strconv.Itoa(f.Step)}
		for _, b := range f.Bodies {
			row = append(row,
				strconv.FormatFloat(b.X, 'f', 6, 64),
				strconv.FormatFloat(b.Y, 'f', 6, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

type jsonRun struct {
	Scenario string  `json:"scenario"`
	Frames   []Frame `json:"frames"`
}

// WriteJSON streams frames as an indented JSON document.
func WriteJSON(w io.Writer, scenario string, frames []Frame) error {
	if len(frames) == 0 {
		return fmt.Errorf("no frames to export")
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(jsonRun{Scenario: scenario, Frames: frames})
}
