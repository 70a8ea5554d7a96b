package main

import (
	"sync"

	"github.com/DChenet/sec-cost-simulator2/catalog"
	"github.com/DChenet/sec-cost-simulator2/core"
	"github.com/DChenet/sec-cost-simulator2/model"
)

func fptr(v float64) *float64 { return &v }

var builtinOnce = sync.OnceValue(func() *catalog.Catalog {
	c := catalog.New()
	for _, def := range builtinDefinitions() {
		if err := c.Register(def); err != nil {
			panic(err) // definitions below are static; a failure here is a bug
		}
	}
	return c
})

func builtinCatalog() *catalog.Catalog { return builtinOnce() }

func builtinScenario(name string) (*core.Scenario, error) {
	return builtinCatalog().Build(name)
}

// builtinDefinitions are ready-made reference pipelines so the tool is usable
// without writing a scenario file. "standalone" downlinks straight from the
// on-board computer; "edge-computing" routes through an inter-satellite link
// and an edge satellite before the ground link.
func builtinDefinitions() []*model.ScenarioDefinition {
	return []*model.ScenarioDefinition{
		{
			Name:        "standalone",
			InitialData: 100,
			Stages: []model.StageDefinition{
				{
					Name:        "obc",
					Kind:        model.StageKindComputing,
					Throughput:  30,
					ScaleFactor: fptr(0.9),
					Energy:      model.EnergyDefinition{EnergyUptime: fptr(5), EnergyIO: fptr(25)},
				},
				{
					Name:       "ground-link",
					Kind:       model.StageKindTransmission,
					Throughput: 10,
					Energy:     model.EnergyDefinition{Energy: fptr(5), DistanceKm: fptr(700)},
				},
			},
		},
		{
			Name:        "edge-computing",
			InitialData: 100,
			Stages: []model.StageDefinition{
				{
					Name:        "obc",
					Kind:        model.StageKindComputing,
					Throughput:  30,
					ScaleFactor: fptr(0.9),
					Energy:      model.EnergyDefinition{EnergyUptime: fptr(5), EnergyIO: fptr(25)},
				},
				{
					Name:       "isl",
					Kind:       model.StageKindTransmission,
					Throughput: 20,
					Energy:     model.EnergyDefinition{Energy: fptr(5), DistanceKm: fptr(100)},
				},
				{
					Name:        "edge",
					Kind:        model.StageKindComputing,
					Throughput:  300,
					ScaleFactor: fptr(0.4),
					Energy:      model.EnergyDefinition{EnergyUptime: fptr(5), EnergyIO: fptr(25)},
				},
				{
					Name:       "ground-link",
					Kind:       model.StageKindTransmission,
					Throughput: 10,
					Energy:     model.EnergyDefinition{Energy: fptr(5), DistanceKm: fptr(700)},
				},
			},
		},
	}
}
