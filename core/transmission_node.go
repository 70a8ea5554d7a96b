package core

// TransmissionNode models a communication link (inter-satellite link, ground
// link). Links never change the payload size, so the scale factor defaults
// to 1 and Process is the identity for integer inputs.
type TransmissionNode struct {
	nodeConfig
}

// NewTransmissionNode constructs a transmission stage with the given
// throughput (data units per second).
func NewTransmissionNode(throughput float64) *TransmissionNode {
	return &TransmissionNode{nodeConfig{throughput: throughput, scaleFactor: 1}}
}

func (n *TransmissionNode) Kind() NodeKind { return KindTransmission }

// SetScaleFactor is inert: links never change the payload size, so the scale
// factor stays pinned at 1.
func (n *TransmissionNode) SetScaleFactor(float64) {}

func (n *TransmissionNode) Process(dataIn DataUnits) (DataUnits, error) {
	return n.process(dataIn)
}

func (n *TransmissionNode) TimeCost(dataIn DataUnits) (float64, error) {
	return EvaluateCost(KindTransmission, CostTime, dataIn, n.throughput, EnergyParams{})
}

// EnergyCost prices a traversal as
// log10(distanceKm) * energy * (dataIn / throughput). Energy grows with the
// decadic logarithm of the link distance, which must be at least 1 km.
func (n *TransmissionNode) EnergyCost(dataIn DataUnits, params EnergyParams) (float64, error) {
	return EvaluateCost(KindTransmission, CostEnergy, dataIn, n.throughput, params)
}
