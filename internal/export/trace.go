package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/physics"
)

type Sample struct {
	Time      float64 `json:"t"`
	Theta     float64 `json:"theta"`
	ThetaDot  float64 `json:"theta_dot"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	Potential float64 `json:"potential"`
	Kinetic   float64 `json:"kinetic"`
}

// Trace is the JSON document written by WriteJSON.
type Trace struct {
	Radius  float64            `json:"radius"`
	Mass    float64            `json:"mass"`
	Dt      float64            `json:"dt"`
	Steps   int                `json:"steps"`
	Metrics map[string]float64 `json:"metrics,omitempty"`
	Samples []Sample           `json:"samples"`
}

// Recorder is an observer that keeps one Sample per step.
type Recorder struct {
	model   *physics.Pendulum
	samples []Sample
}

func NewRecorder(model *physics.Pendulum) *Recorder {
	return &Recorder{model: model, samples: make([]Sample, 0)}
}

func (r *Recorder) OnStep(x dynamo.State, t float64) {
	r.Record(x, t)
}

func (r *Recorder) Record(x dynamo.State, t float64) {
	pos := r.model.Position(x[0])
	r.samples = append(r.samples, Sample{
		Time:      t,
		Theta:     x[0],
		ThetaDot:  x[1],
		X:         pos.X,
		Y:         pos.Y,
		Potential: r.model.Potential(x[0]),
		Kinetic:   r.model.Kinetic(x[1]),
	})
}

func (r *Recorder) Samples() []Sample { return r.samples }

var csvHeader = []string{"time", "theta", "theta_dot", "x", "y", "potential", "kinetic"}

func WriteCSV(w io.Writer, samples []Sample) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return err
	}

	for _, s := range samples {
		row := []string{
			formatFloat(s.Time),
			formatFloat(s.Theta),
			formatFloat(s.ThetaDot),
			formatFloat(s.X),
			formatFloat(s.Y),
			formatFloat(s.Potential),
			formatFloat(s.Kinetic),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func WriteJSON(w io.Writer, trace *Trace) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(trace)
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', 6, 64)
}
