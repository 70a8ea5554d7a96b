package catalog

import (
	"fmt"
	"sync"
	"testing"

	"github.com/DChenet/sec-cost-simulator2/model"
)

func f(v float64) *float64 { return &v }

func standaloneDefinition() *model.ScenarioDefinition {
	return &model.ScenarioDefinition{
		Name:        "standalone",
		InitialData: 100,
		Stages: []model.StageDefinition{
			{
				Name:        "obc",
				Kind:        model.StageKindComputing,
				Throughput:  30,
				ScaleFactor: f(0.9),
				Energy:      model.EnergyDefinition{EnergyUptime: f(5), EnergyIO: f(25)},
			},
			{
				Name:       "ground-link",
				Kind:       model.StageKindTransmission,
				Throughput: 10,
				Energy:     model.EnergyDefinition{Energy: f(5), DistanceKm: f(700)},
			},
		},
	}
}

func TestRegisterAndGet(t *testing.T) {
	c := New()
	if err := c.Register(standaloneDefinition()); err != nil {
		t.Fatalf("Register error: %v", err)
	}
	got := c.Get("standalone")
	if got == nil || got.InitialData != 100 {
		t.Fatalf("Get returned %#v, want initial data 100", got)
	}
	if c.Get("missing") != nil {
		t.Fatalf("Get for unknown name should return nil")
	}
}

func TestRegisterDuplicate(t *testing.T) {
	c := New()
	if err := c.Register(standaloneDefinition()); err != nil {
		t.Fatalf("first Register error: %v", err)
	}
	if err := c.Register(standaloneDefinition()); err == nil {
		t.Fatalf("expected duplicate Register to fail")
	}
}

func TestRegisterUnnamed(t *testing.T) {
	c := New()
	if err := c.Register(nil); err == nil {
		t.Fatalf("expected Register(nil) to fail")
	}
	if err := c.Register(&model.ScenarioDefinition{}); err == nil {
		t.Fatalf("expected Register of unnamed definition to fail")
	}
}

func TestNamesSorted(t *testing.T) {
	c := New()
	for _, name := range []string{"zeta", "alpha", "mid"} {
		def := standaloneDefinition()
		def.Name = name
		if err := c.Register(def); err != nil {
			t.Fatalf("Register %q error: %v", name, err)
		}
	}

	names := c.Names()
	want := []string{"alpha", "mid", "zeta"}
	if len(names) != len(want) {
		t.Fatalf("Names len=%d, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("Names[%d]=%q, want %q", i, names[i], want[i])
		}
	}
}

func TestBuild(t *testing.T) {
	c := New()
	if err := c.Register(standaloneDefinition()); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	scenario, err := c.Build("standalone")
	if err != nil {
		t.Fatalf("Build error: %v", err)
	}
	result, err := scenario.Runner.Run(scenario.Initial)
	if err != nil {
		t.Fatalf("Run error: %v", err)
	}
	if result.FinalPayload != 90 {
		t.Fatalf("final payload = %d, want 90", result.FinalPayload)
	}

	if _, err := c.Build("missing"); err == nil {
		t.Fatalf("expected Build of unknown scenario to fail")
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := New()
	if err := c.Register(standaloneDefinition()); err != nil {
		t.Fatalf("Register error: %v", err)
	}

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = c.Get("standalone")
			_ = c.Names()
		}()
		go func(i int) {
			defer wg.Done()
			def := standaloneDefinition()
			def.Name = fmt.Sprintf("scenario-%d", i)
			_ = c.Register(def)
		}(i)
	}
	wg.Wait()
}
