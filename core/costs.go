package core

import (
	"fmt"
	"math"
)

// NodeKind discriminates the closed set of pipeline stage variants.
type NodeKind int

const (
	KindComputing NodeKind = iota
	KindTransmission
)

func (k NodeKind) String() string {
	switch k {
	case KindComputing:
		return "computing"
	case KindTransmission:
		return "transmission"
	default:
		return "unknown"
	}
}

// CostKind selects which cost a formula computes.
type CostKind int

const (
	CostTime CostKind = iota
	CostEnergy
)

func (k CostKind) String() string {
	switch k {
	case CostTime:
		return "time"
	case CostEnergy:
		return "energy"
	default:
		return "unknown"
	}
}

// EnergyParams carries the per-call energy model parameters for one stage
// traversal. They are deliberately not node state: throughput and scale
// factor configure a node, energy coefficients configure a traversal.
// Pointers distinguish unset from an explicit zero; a traversal missing the
// parameters its node kind requires fails with ErrIncompletePipeline.
type EnergyParams struct {
	// Computing stages.
	EnergyUptime *float64 `json:"energy_uptime,omitempty"` // J per second of busy time
	EnergyIO     *float64 `json:"energy_io,omitempty"`     // J per data unit moved

	// Transmission stages.
	Energy     *float64 `json:"energy,omitempty"`      // J per second of link time
	DistanceKm *float64 `json:"distance_km,omitempty"` // link distance, must be >= 1
}

type costKey struct {
	node NodeKind
	cost CostKind
}

// costFormula computes a scalar cost from a stage's input size, throughput
// and per-call energy parameters. dataIn and throughput are validated by
// EvaluateCost before any formula runs.
type costFormula func(dataIn, throughput float64, p EnergyParams) (float64, error)

// costFormulas is the single formula table for the whole system. Node methods
// and the sweep tooling both price through it, so every cost has exactly one
// implementation.
//
// Transmission energy is the logarithmic distance model,
// log10(distance) * energy * dataIn/throughput; it is the formula the
// reference scenarios exercise.
var costFormulas = map[costKey]costFormula{
	{KindComputing, CostTime}:      timeCost,
	{KindTransmission, CostTime}:   timeCost,
	{KindComputing, CostEnergy}:    computingEnergyCost,
	{KindTransmission, CostEnergy}: transmissionEnergyCost,
}

func timeCost(dataIn, throughput float64, _ EnergyParams) (float64, error) {
	return dataIn / throughput, nil
}

func computingEnergyCost(dataIn, throughput float64, p EnergyParams) (float64, error) {
	if p.EnergyUptime == nil || p.EnergyIO == nil {
		return 0, fmt.Errorf("computing energy: energy_uptime and energy_io are required: %w", ErrIncompletePipeline)
	}
	if !isFinite(*p.EnergyUptime) || !isFinite(*p.EnergyIO) {
		return 0, fmt.Errorf("computing energy: non-finite energy parameter: %w", ErrInvalidConfiguration)
	}
	return *p.EnergyIO*dataIn + *p.EnergyUptime*(dataIn/throughput), nil
}

func transmissionEnergyCost(dataIn, throughput float64, p EnergyParams) (float64, error) {
	if p.Energy == nil || p.DistanceKm == nil {
		return 0, fmt.Errorf("transmission energy: energy and distance_km are required: %w", ErrIncompletePipeline)
	}
	if !isFinite(*p.Energy) {
		return 0, fmt.Errorf("transmission energy: non-finite energy parameter: %w", ErrInvalidConfiguration)
	}
	// log10 is undefined at distance <= 0 and turns the cost negative below
	// 1 km, so anything under 1 km is rejected as a misconfigured link.
	if d := *p.DistanceKm; !isFinite(d) || d < 1 {
		return 0, fmt.Errorf("transmission energy: distance %v km out of range, must be >= 1: %w", *p.DistanceKm, ErrInvalidConfiguration)
	}
	return math.Log10(*p.DistanceKm) * *p.Energy * (dataIn / throughput), nil
}

// EvaluateCost prices one cost from the shared formula table. It validates
// dataIn and throughput before dispatching, so no formula can divide by zero
// or leak NaN/Inf to callers.
func EvaluateCost(node NodeKind, cost CostKind, dataIn DataUnits, throughput float64, p EnergyParams) (float64, error) {
	if dataIn < 0 {
		return 0, fmt.Errorf("%s %s cost: negative data size %d: %w", node, cost, dataIn, ErrInvalidConfiguration)
	}
	if throughput <= 0 || !isFinite(throughput) {
		return 0, fmt.Errorf("%s %s cost: throughput %v must be positive: %w", node, cost, throughput, ErrInvalidConfiguration)
	}
	formula, ok := costFormulas[costKey{node: node, cost: cost}]
	if !ok {
		return 0, fmt.Errorf("%s %s cost: no formula registered: %w", node, cost, ErrInvalidConfiguration)
	}
	return formula(float64(dataIn), throughput, p)
}
