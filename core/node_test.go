package core

import (
	"errors"
	"math"
	"testing"
)

func floatNear(a, b float64) bool {
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))
	return math.Abs(a-b) <= 1e-9*scale
}

func f(v float64) *float64 { return &v }

func TestComputingNode_ReferenceScenario(t *testing.T) {
	// On-board computer from the standalone reference case.
	obc := NewComputingNode(30.0, 0.9)

	out, err := obc.Process(100)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out != 90 {
		t.Errorf("Process(100) = %d, want 90", out)
	}

	tc, err := obc.TimeCost(100)
	if err != nil {
		t.Fatalf("TimeCost: %v", err)
	}
	if !floatNear(tc, 100.0/30.0) {
		t.Errorf("TimeCost(100) = %v, want %v", tc, 100.0/30.0)
	}

	ec, err := obc.EnergyCost(100, EnergyParams{EnergyUptime: f(5), EnergyIO: f(25)})
	if err != nil {
		t.Fatalf("EnergyCost: %v", err)
	}
	if want := 25.0*100 + 5.0*(100.0/30.0); !floatNear(ec, want) {
		t.Errorf("EnergyCost(100) = %v, want %v", ec, want)
	}
}

func TestTransmissionNode_ReferenceScenario(t *testing.T) {
	// Ground link from the standalone reference case.
	link := NewTransmissionNode(10.0)

	if got := link.ScaleFactor(); got != 1 {
		t.Fatalf("transmission scale factor = %v, want 1", got)
	}

	out, err := link.Process(90)
	if err != nil {
		t.Fatalf("Process: %v", err)
	}
	if out != 90 {
		t.Errorf("Process(90) = %d, want identity 90", out)
	}

	tc, err := link.TimeCost(90)
	if err != nil {
		t.Fatalf("TimeCost: %v", err)
	}
	if !floatNear(tc, 9.0) {
		t.Errorf("TimeCost(90) = %v, want 9", tc)
	}

	ec, err := link.EnergyCost(90, EnergyParams{Energy: f(5), DistanceKm: f(700)})
	if err != nil {
		t.Fatalf("EnergyCost: %v", err)
	}
	if want := math.Log10(700) * 5 * 9; !floatNear(ec, want) {
		t.Errorf("EnergyCost(90) = %v, want %v", ec, want)
	}
}

func TestNode_AccessorsAreIndependent(t *testing.T) {
	// Setters touch exactly the field they name: throughput accessors only
	// the throughput, scale-factor accessors only the scale factor.
	n := NewComputingNode(30.0, 0.9)

	n.SetScaleFactor(0.4)
	if got := n.ScaleFactor(); got != 0.4 {
		t.Errorf("ScaleFactor after SetScaleFactor = %v, want 0.4", got)
	}
	if got := n.Throughput(); got != 30.0 {
		t.Errorf("Throughput changed by SetScaleFactor: %v, want 30", got)
	}

	n.SetThroughput(300.0)
	if got := n.Throughput(); got != 300.0 {
		t.Errorf("Throughput after SetThroughput = %v, want 300", got)
	}
	if got := n.ScaleFactor(); got != 0.4 {
		t.Errorf("ScaleFactor changed by SetThroughput: %v, want 0.4", got)
	}

	// Links keep their identity scale factor regardless of the setter.
	link := NewTransmissionNode(10.0)
	link.SetScaleFactor(0.5)
	if got := link.ScaleFactor(); got != 1 {
		t.Errorf("transmission ScaleFactor after SetScaleFactor = %v, want 1", got)
	}
}

func TestNode_ValidationIsLazy(t *testing.T) {
	// Construction with an invalid throughput is tolerated; the failure
	// surfaces at the first cost computation, never as NaN/Inf.
	n := NewComputingNode(0, 0.9)

	if _, err := n.TimeCost(100); !errors.Is(err, ErrInvalidConfiguration) {
		t.Fatalf("TimeCost with zero throughput err = %v, want ErrInvalidConfiguration", err)
	}

	n.SetThroughput(30.0)
	tc, err := n.TimeCost(100)
	if err != nil {
		t.Fatalf("TimeCost after repair: %v", err)
	}
	if math.IsNaN(tc) || math.IsInf(tc, 0) {
		t.Fatalf("TimeCost returned non-finite %v", tc)
	}
}

func TestNode_ProcessHasNoSideEffects(t *testing.T) {
	n := NewComputingNode(30.0, 0.9)
	if _, err := n.Process(100); err != nil {
		t.Fatalf("Process: %v", err)
	}
	if got := n.Throughput(); got != 30.0 {
		t.Errorf("Process mutated throughput: %v", got)
	}
	if got := n.ScaleFactor(); got != 0.9 {
		t.Errorf("Process mutated scale factor: %v", got)
	}
}

func TestNode_EnergyCostMonotonicInDataSize(t *testing.T) {
	computing := NewComputingNode(30.0, 0.9)
	link := NewTransmissionNode(10.0)

	var prevComputing, prevTransmission float64
	for _, dataIn := range []DataUnits{0, 1, 10, 100, 1000, 10000} {
		ec, err := computing.EnergyCost(dataIn, EnergyParams{EnergyUptime: f(5), EnergyIO: f(25)})
		if err != nil {
			t.Fatalf("computing EnergyCost(%d): %v", dataIn, err)
		}
		if ec < prevComputing {
			t.Errorf("computing energy decreased at %d: %v < %v", dataIn, ec, prevComputing)
		}
		prevComputing = ec

		te, err := link.EnergyCost(dataIn, EnergyParams{Energy: f(5), DistanceKm: f(700)})
		if err != nil {
			t.Fatalf("transmission EnergyCost(%d): %v", dataIn, err)
		}
		if te < prevTransmission {
			t.Errorf("transmission energy decreased at %d: %v < %v", dataIn, te, prevTransmission)
		}
		prevTransmission = te
	}
}
