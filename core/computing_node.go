package core

// ComputingNode models an on-board or edge processing stage. Its energy model
// has a throughput-bound uptime term and a per-unit I/O term.
type ComputingNode struct {
	nodeConfig
}

// NewComputingNode constructs a computing stage with the given throughput
// (data units per second) and scale factor φ. Validation is deferred to the
// first cost or Process call.
func NewComputingNode(throughput, scaleFactor float64) *ComputingNode {
	return &ComputingNode{nodeConfig{throughput: throughput, scaleFactor: scaleFactor}}
}

func (n *ComputingNode) Kind() NodeKind { return KindComputing }

func (n *ComputingNode) Process(dataIn DataUnits) (DataUnits, error) {
	return n.process(dataIn)
}

func (n *ComputingNode) TimeCost(dataIn DataUnits) (float64, error) {
	return EvaluateCost(KindComputing, CostTime, dataIn, n.throughput, EnergyParams{})
}

// EnergyCost prices a traversal as
// energyIO * dataIn + energyUptime * (dataIn / throughput).
func (n *ComputingNode) EnergyCost(dataIn DataUnits, params EnergyParams) (float64, error) {
	return EvaluateCost(KindComputing, CostEnergy, dataIn, n.throughput, params)
}
