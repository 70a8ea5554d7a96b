package core

// Node is one pipeline stage: it transforms a payload size by its scale
// factor and prices a traversal in time and energy. The implementation set is
// closed — ComputingNode and TransmissionNode — and both price exclusively
// through the shared formula table in costs.go.
type Node interface {
	// Kind reports which formula family the node prices with.
	Kind() NodeKind

	// Process returns ceil(dataIn * scaleFactor), with the multiplication
	// performed at extended precision. Configuration state is not mutated.
	// The ceiling models conservative data growth from processing overhead.
	Process(dataIn DataUnits) (DataUnits, error)

	// TimeCost returns dataIn / throughput.
	TimeCost(dataIn DataUnits) (float64, error)

	// EnergyCost prices a traversal with the kind-specific energy model.
	// Energy parameters are supplied per call, not held on the node.
	EnergyCost(dataIn DataUnits, params EnergyParams) (float64, error)

	Throughput() float64
	SetThroughput(throughput float64)
	ScaleFactor() float64
	SetScaleFactor(scaleFactor float64)
}

// nodeConfig is the mutable configuration shared by both node variants.
// Accessors are plain state mutation: validation happens lazily when a cost
// or Process call uses the configuration, so a node may hold an invalid
// intermediate configuration without failing until it is exercised.
type nodeConfig struct {
	throughput  float64 // data units per second
	scaleFactor float64 // φ, applied on Process
}

func (c *nodeConfig) Throughput() float64 { return c.throughput }

func (c *nodeConfig) SetThroughput(throughput float64) { c.throughput = throughput }

func (c *nodeConfig) ScaleFactor() float64 { return c.scaleFactor }

func (c *nodeConfig) SetScaleFactor(scaleFactor float64) { c.scaleFactor = scaleFactor }

func (c *nodeConfig) process(dataIn DataUnits) (DataUnits, error) {
	return ScaleCeil(dataIn, c.scaleFactor)
}
