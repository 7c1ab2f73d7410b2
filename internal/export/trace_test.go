package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/physics"
)

func recordSome() *Recorder {
	r := NewRecorder(physics.NewPendulum(500, 1, 9.8))
	r.Record(dynamo.State{math.Pi + 0.5, 0}, 0)
	r.OnStep(dynamo.State{3.6588, 0.0172}, 1)
	r.OnStep(dynamo.State{3.6932, 0.0344}, 2)
	return r
}

func TestRecorderSamples(t *testing.T) {
	r := recordSome()
	samples := r.Samples()

	if len(samples) != 3 {
		t.Fatalf("expected 3 samples, got %d", len(samples))
	}
	if samples[0].Kinetic != 0 {
		t.Errorf("expected zero kinetic energy at rest, got %f", samples[0].Kinetic)
	}
	if samples[2].Time != 2 {
		t.Errorf("expected time 2, got %f", samples[2].Time)
	}

	expectedX := 500 * math.Cos(math.Pi+0.5)
	if math.Abs(samples[0].X-expectedX) > 1e-9 {
		t.Errorf("expected x %f, got %f", expectedX, samples[0].X)
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, recordSome().Samples()); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}
	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d", len(records))
	}
	if strings.Join(records[0], ",") != "time,theta,theta_dot,x,y,potential,kinetic" {
		t.Errorf("unexpected header %v", records[0])
	}
	if records[2][1] != "3.658800" {
		t.Errorf("expected theta 3.658800, got %s", records[2][1])
	}
}

func TestWriteJSON(t *testing.T) {
	trace := &Trace{
		Radius:  500,
		Mass:    1,
		Dt:      1,
		Steps:   2,
		Metrics: map[string]float64{"energy_drift": 0.01},
		Samples: recordSome().Samples(),
	}

	var buf bytes.Buffer
	if err := WriteJSON(&buf, trace); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	var decoded Trace
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if decoded.Steps != 2 || len(decoded.Samples) != 3 {
		t.Errorf("expected 2 steps and 3 samples, got %d and %d", decoded.Steps, len(decoded.Samples))
	}
	if decoded.Metrics["energy_drift"] != 0.01 {
		t.Errorf("expected drift metric, got %v", decoded.Metrics)
	}
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, recordSome().Samples(), 200, 100, "#640032"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "<?xml") || !strings.Contains(out, "</svg>") {
		t.Error("expected a complete svg document")
	}
	if strings.Count(out, " L") != 2 {
		t.Errorf("expected 2 line segments, got %d", strings.Count(out, " L"))
	}
}

func TestWriteSVGTooShort(t *testing.T) {
	var buf bytes.Buffer
	r := NewRecorder(physics.NewPendulum(1, 1, 9.8))
	r.Record(dynamo.State{0, 0}, 0)

	if err := WriteSVG(&buf, r.Samples(), 10, 10, "#fff"); err == nil {
		t.Error("expected error for a single sample")
	}
}

func TestWriteSVGUsesDisplayCoordinates(t *testing.T) {
	samples := []Sample{
		{X: 0, Y: -500},
		{X: 300, Y: -400},
	}

	var buf bytes.Buffer
	if err := WriteSVG(&buf, samples, 1280, 900, "#640032"); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	out := buf.String()
	tests := []struct{ name, want string }{
		{"pivot", `cx="640.0" cy="90.0"`},
		{"bottom of swing", `d="M640.0,590.0`},
		{"second point", ` L940.0,490.0"`},
	}
	for _, tt := range tests {
		if !strings.Contains(out, tt.want) {
			t.Errorf("%s: expected %q in\n%s", tt.name, tt.want, out)
		}
	}
}

func TestWriteSVGScaleIndependentOfAmplitude(t *testing.T) {
	small := []Sample{{X: 0, Y: -500}, {X: 10, Y: -499.9}}
	large := []Sample{{X: 0, Y: -500}, {X: 500, Y: 0}}

	var a, b bytes.Buffer
	if err := WriteSVG(&a, small, 1280, 900, "#fff"); err != nil {
		t.Fatal(err)
	}
	if err := WriteSVG(&b, large, 1280, 900, "#fff"); err != nil {
		t.Fatal(err)
	}
	for _, out := range []string{a.String(), b.String()} {
		if !strings.Contains(out, `d="M640.0,590.0`) {
			t.Errorf("expected the first point at (640, 590), got\n%s", out)
		}
	}
}
