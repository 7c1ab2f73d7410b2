package metrics

import (
	"math"
	"testing"

	"github.com/san-kum/pendsim/internal/dynamo"
	"github.com/san-kum/pendsim/internal/physics"
)

var (
	_ dynamo.Metric = (*Energy)(nil)
	_ dynamo.Metric = (*EnergyDrift)(nil)
)

func TestEnergyMean(t *testing.T) {
	p := physics.NewPendulum(1, 1, 9.8)
	m := NewEnergy(p)

	m.OnStep(dynamo.State{-math.Pi / 2, 0}, 0)
	m.OnStep(dynamo.State{0, 0}, 1)

	// 0 at the bottom, m*g*r at horizontal
	expected := (0 + 9.8) / 2
	if math.Abs(m.Value()-expected) > 1e-9 {
		t.Errorf("expected mean energy %f, got %f", expected, m.Value())
	}
}

func TestEnergyReset(t *testing.T) {
	m := NewEnergy(physics.NewPendulum(1, 1, 9.8))

	m.OnStep(dynamo.State{1.0, 1.0}, 0)
	if m.Value() == 0 {
		t.Error("expected non-zero energy")
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero energy after reset")
	}
}

func TestEnergyDrift(t *testing.T) {
	p := physics.NewPendulum(1, 1, 9.8)
	m := NewEnergyDrift(p)

	m.OnStep(dynamo.State{0, 0}, 0)           // 9.8
	m.OnStep(dynamo.State{math.Pi / 2, 0}, 1) // 19.6
	m.OnStep(dynamo.State{0, 0}, 2)           // back to 9.8

	if math.Abs(m.Value()-1.0) > 1e-9 {
		t.Errorf("expected max drift 1.0, got %f", m.Value())
	}
	if math.Abs(m.Current()-9.8) > 1e-9 {
		t.Errorf("expected current energy 9.8, got %f", m.Current())
	}

	m.Reset()
	if m.Value() != 0 {
		t.Error("expected zero drift after reset")
	}
}

func TestEnergyDriftZeroInitialEnergy(t *testing.T) {
	m := NewEnergyDrift(physics.NewPendulum(1, 1, 9.8))

	m.OnStep(dynamo.State{-math.Pi / 2, 0}, 0)
	m.OnStep(dynamo.State{0, 1}, 1)

	if m.Value() != 0 {
		t.Errorf("expected drift to stay 0 when starting from zero energy, got %f", m.Value())
	}
}
