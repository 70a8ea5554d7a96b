// Package sweep evaluates a scenario repeatedly while varying one stage
// parameter, producing named numeric series for external plotting. Each
// evaluation builds its own node instances, so sweeps never share mutable
// node state and can safely be parallelised by the caller.
package sweep

import (
	"fmt"

	"github.com/DChenet/sec-cost-simulator2/core"
)

// Point is one (x, y) sample of a series.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is a named, reproducible numeric series.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Parameter identifies which stage parameter a sweep varies.
type Parameter int

const (
	ParamThroughput Parameter = iota
	ParamScaleFactor
	ParamDistanceKm
)

func (p Parameter) String() string {
	switch p {
	case ParamThroughput:
		return "throughput"
	case ParamScaleFactor:
		return "scale_factor"
	case ParamDistanceKm:
		return "distance_km"
	default:
		return "unknown"
	}
}

// StageTemplate describes how to rebuild one stage for each evaluation.
type StageTemplate struct {
	Name        string
	Kind        core.NodeKind
	Throughput  float64
	ScaleFactor float64 // ignored for transmission stages
	Energy      core.EnergyParams
}

// TemplatesFromStages captures the configuration of existing runner stages as
// templates, so a sweep can be derived from a loaded scenario.
func TemplatesFromStages(stages []core.Stage) []StageTemplate {
	templates := make([]StageTemplate, 0, len(stages))
	for _, s := range stages {
		t := StageTemplate{Name: s.Name, Energy: s.Energy}
		if s.Node != nil {
			t.Kind = s.Node.Kind()
			t.Throughput = s.Node.Throughput()
			t.ScaleFactor = s.Node.ScaleFactor()
		}
		templates = append(templates, t)
	}
	return templates
}

// Config is one sweep: vary a single parameter of a single stage across
// Values and record the scenario's total time and energy per point.
type Config struct {
	Name      string
	Initial   core.DataUnits
	Stages    []StageTemplate
	Stage     int // index of the stage whose parameter varies
	Parameter Parameter
	Values    []float64
}

// Result holds the two series a sweep produces: total time cost and total
// energy cost, both keyed by the swept value on the x axis.
type Result struct {
	TimeSeries   Series `json:"time_series"`
	EnergySeries Series `json:"energy_series"`
}

// Run evaluates the sweep. It fails on the first invalid evaluation and
// discards any series collected up to that point, mirroring the runner's
// atomic-failure contract.
func Run(cfg Config) (*Result, error) {
	if len(cfg.Stages) == 0 {
		return nil, fmt.Errorf("sweep %q: no stages: %w", cfg.Name, core.ErrIncompletePipeline)
	}
	if cfg.Stage < 0 || cfg.Stage >= len(cfg.Stages) {
		return nil, fmt.Errorf("sweep %q: stage index %d out of range: %w", cfg.Name, cfg.Stage, core.ErrInvalidConfiguration)
	}
	if len(cfg.Values) == 0 {
		return nil, fmt.Errorf("sweep %q: no values to sweep: %w", cfg.Name, core.ErrInvalidConfiguration)
	}

	result := &Result{
		TimeSeries:   Series{Name: cfg.Name + "_time", Points: make([]Point, 0, len(cfg.Values))},
		EnergySeries: Series{Name: cfg.Name + "_energy", Points: make([]Point, 0, len(cfg.Values))},
	}

	for _, value := range cfg.Values {
		stages, err := buildStages(cfg, value)
		if err != nil {
			return nil, fmt.Errorf("sweep %q at %s=%v: %w", cfg.Name, cfg.Parameter, value, err)
		}

		run, err := core.NewScenarioRunner(stages...).Run(cfg.Initial)
		if err != nil {
			return nil, fmt.Errorf("sweep %q at %s=%v: %w", cfg.Name, cfg.Parameter, value, err)
		}

		result.TimeSeries.Points = append(result.TimeSeries.Points, Point{X: value, Y: run.TotalTime})
		result.EnergySeries.Points = append(result.EnergySeries.Points, Point{X: value, Y: run.TotalEnergy})
	}

	return result, nil
}

// buildStages materialises fresh nodes for one evaluation, applying the swept
// value to the selected stage.
func buildStages(cfg Config, value float64) ([]core.Stage, error) {
	stages := make([]core.Stage, 0, len(cfg.Stages))
	for i, tmpl := range cfg.Stages {
		tmpl := tmpl // copy; Energy pointers are read-only, the struct is not
		if i == cfg.Stage {
			switch cfg.Parameter {
			case ParamThroughput:
				tmpl.Throughput = value
			case ParamScaleFactor:
				if tmpl.Kind == core.KindTransmission {
					return nil, fmt.Errorf("cannot sweep scale factor of a transmission stage: %w", core.ErrInvalidConfiguration)
				}
				tmpl.ScaleFactor = value
			case ParamDistanceKm:
				if tmpl.Kind != core.KindTransmission {
					return nil, fmt.Errorf("cannot sweep distance of a computing stage: %w", core.ErrInvalidConfiguration)
				}
				v := value
				tmpl.Energy.DistanceKm = &v
			default:
				return nil, fmt.Errorf("unknown sweep parameter %v: %w", cfg.Parameter, core.ErrInvalidConfiguration)
			}
		}

		var node core.Node
		switch tmpl.Kind {
		case core.KindTransmission:
			node = core.NewTransmissionNode(tmpl.Throughput)
		default:
			node = core.NewComputingNode(tmpl.Throughput, tmpl.ScaleFactor)
		}
		stages = append(stages, core.Stage{Name: tmpl.Name, Node: node, Energy: tmpl.Energy})
	}
	return stages, nil
}

// CostCurve samples one cost formula directly from the shared formula table,
// varying throughput for a fixed input size. It exists for tooling that wants
// a single-stage curve without building a whole scenario.
func CostCurve(node core.NodeKind, cost core.CostKind, dataIn core.DataUnits, throughputs []float64, params core.EnergyParams) (Series, error) {
	s := Series{
		Name:   fmt.Sprintf("%s_%s_vs_throughput", node, cost),
		Points: make([]Point, 0, len(throughputs)),
	}
	for _, throughput := range throughputs {
		y, err := core.EvaluateCost(node, cost, dataIn, throughput, params)
		if err != nil {
			return Series{}, fmt.Errorf("cost curve at throughput %v: %w", throughput, err)
		}
		s.Points = append(s.Points, Point{X: throughput, Y: y})
	}
	return s, nil
}
