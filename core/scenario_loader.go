package core

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/DChenet/sec-cost-simulator2/model"
)

// Scenario is a runnable scenario built from a definition: a name, an initial
// payload size and the runner over its stages.
type Scenario struct {
	Name    string
	Initial DataUnits
	Runner  *ScenarioRunner
}

// LoadScenario reads a JSON scenario definition from r and builds a runnable
// scenario from it.
//
// It deliberately fails only on JSON / structural errors; parameter validation
// (throughput, distances, energy coefficients) stays lazy and surfaces when
// the scenario runs, the same way directly constructed stages behave.
func LoadScenario(r io.Reader) (*Scenario, error) {
	var def model.ScenarioDefinition
	if err := json.NewDecoder(r).Decode(&def); err != nil {
		return nil, fmt.Errorf("load scenario: decode failed: %w", err)
	}
	return BuildScenario(&def)
}

// BuildScenario converts a decoded definition into a runnable scenario.
func BuildScenario(def *model.ScenarioDefinition) (*Scenario, error) {
	if def == nil {
		return nil, fmt.Errorf("build scenario: nil definition: %w", ErrIncompletePipeline)
	}
	if len(def.Stages) == 0 {
		return nil, fmt.Errorf("build scenario %q: no stages: %w", def.Name, ErrIncompletePipeline)
	}

	stages := make([]Stage, 0, len(def.Stages))
	for i, sd := range def.Stages {
		stage, err := buildStage(i, sd)
		if err != nil {
			return nil, fmt.Errorf("build scenario %q: %w", def.Name, err)
		}
		stages = append(stages, stage)
	}

	return &Scenario{
		Name:    def.Name,
		Initial: DataUnits(def.InitialData),
		Runner:  NewScenarioRunner(stages...),
	}, nil
}

func buildStage(i int, sd model.StageDefinition) (Stage, error) {
	name := sd.Name
	if name == "" {
		name = fmt.Sprintf("stage-%d", i)
	}

	energy := EnergyParams{
		EnergyUptime: sd.Energy.EnergyUptime,
		EnergyIO:     sd.Energy.EnergyIO,
		Energy:       sd.Energy.Energy,
		DistanceKm:   sd.Energy.DistanceKm,
	}

	var node Node
	switch sd.Kind {
	case model.StageKindComputing:
		scale := 1.0
		if sd.ScaleFactor != nil {
			scale = *sd.ScaleFactor
		}
		node = NewComputingNode(sd.Throughput, scale)

	case model.StageKindTransmission:
		node = NewTransmissionNode(sd.Throughput)
		if sd.Geometry != nil {
			d, err := deriveDistanceKm(sd.Geometry)
			if err != nil {
				return Stage{}, fmt.Errorf("stage %d (%s): %w", i, name, err)
			}
			energy.DistanceKm = &d
		}

	default:
		return Stage{}, fmt.Errorf("stage %d (%s): unknown kind %q: %w", i, name, sd.Kind, ErrIncompletePipeline)
	}

	return Stage{Name: name, Node: node, Energy: energy}, nil
}

func deriveDistanceKm(g *model.LinkGeometry) (float64, error) {
	at, err := time.Parse(time.RFC3339, g.At)
	if err != nil {
		return 0, fmt.Errorf("parse geometry time %q: %w", g.At, err)
	}
	orbit := NewOrbitModelFromTLE(g.TLELine1, g.TLELine2)
	return orbit.SlantRangeKm(at, Vec3{X: g.Ground.X, Y: g.Ground.Y, Z: g.Ground.Z})
}
