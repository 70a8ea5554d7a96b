package core

import "fmt"

// Stage pairs a node with the per-call energy parameters used when a scenario
// traverses it.
type Stage struct {
	Name   string
	Node   Node
	Energy EnergyParams
}

// StageResult records the costs of one traversed stage. TimeCost and
// EnergyCost are priced on the size entering the stage; PayloadOut is the
// size handed to the next stage.
type StageResult struct {
	Name       string    `json:"name"`
	Kind       string    `json:"kind"`
	PayloadIn  DataUnits `json:"payload_in"`
	TimeCost   float64   `json:"time_cost"`
	EnergyCost float64   `json:"energy_cost"`
	PayloadOut DataUnits `json:"payload_out"`
}

// RunResult is the complete outcome of one scenario traversal: the ordered
// per-stage results and the running totals across the chain.
type RunResult struct {
	Stages       []StageResult `json:"stages"`
	TotalTime    float64       `json:"total_time"`
	TotalEnergy  float64       `json:"total_energy"`
	FinalPayload DataUnits     `json:"final_payload"`
}

// ScenarioRunner chains stages: stage i's costs are priced on its input size,
// its Process output becomes stage i+1's input, and time and energy totals
// accumulate across the chain.
//
// A runner is not safe for concurrent use with shared nodes; parallel
// parameter sweeps must build their own node instances per evaluation.
type ScenarioRunner struct {
	stages []Stage
}

// NewScenarioRunner builds a runner over the given ordered stages.
func NewScenarioRunner(stages ...Stage) *ScenarioRunner {
	return &ScenarioRunner{stages: stages}
}

// Stages returns a copy of the runner's stage list.
func (r *ScenarioRunner) Stages() []Stage {
	out := make([]Stage, len(r.stages))
	copy(out, r.stages)
	return out
}

// Run traverses all stages starting from the initial payload size. The run is
// atomic: if any stage fails validation the whole run fails and no partial
// totals are surfaced, since costs accumulated before a failure are not
// meaningful on their own.
func (r *ScenarioRunner) Run(initial DataUnits) (*RunResult, error) {
	if len(r.stages) == 0 {
		return nil, fmt.Errorf("scenario has no stages: %w", ErrIncompletePipeline)
	}

	payload, err := NewPayload(initial)
	if err != nil {
		return nil, err
	}

	result := &RunResult{Stages: make([]StageResult, 0, len(r.stages))}
	for i, stage := range r.stages {
		if stage.Node == nil {
			return nil, fmt.Errorf("stage %d (%s) has no node: %w", i, stage.Name, ErrIncompletePipeline)
		}

		dataIn := payload.DataIn()
		timeCost, err := stage.Node.TimeCost(dataIn)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, stage.Name, err)
		}
		energyCost, err := stage.Node.EnergyCost(dataIn, stage.Energy)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, stage.Name, err)
		}

		// Both Process and DataOut go through the shared scaling routine,
		// so mutating the payload with the node's scale factor yields
		// exactly the Process output.
		out, err := payload.DataOut(stage.Node.ScaleFactor(), true)
		if err != nil {
			return nil, fmt.Errorf("stage %d (%s): %w", i, stage.Name, err)
		}

		result.Stages = append(result.Stages, StageResult{
			Name:       stage.Name,
			Kind:       stage.Node.Kind().String(),
			PayloadIn:  dataIn,
			TimeCost:   timeCost,
			EnergyCost: energyCost,
			PayloadOut: out,
		})
		result.TotalTime += timeCost
		result.TotalEnergy += energyCost
	}

	result.FinalPayload = payload.DataIn()
	return result, nil
}
