package core

import "fmt"

// Payload holds the quantity of data travelling through a pipeline. It is
// created once per scenario with an initial size and, when a caller asks for
// it, mutated in place by each traversed stage.
type Payload struct {
	value DataUnits
}

// NewPayload constructs a payload with the given initial size.
func NewPayload(value DataUnits) (*Payload, error) {
	if value < 0 {
		return nil, fmt.Errorf("payload: negative initial size %d: %w", value, ErrInvalidConfiguration)
	}
	return &Payload{value: value}, nil
}

// DataIn returns the current size unchanged.
func (p *Payload) DataIn() DataUnits { return p.value }

// DataOut ceil-scales the current size by scaleFactor and returns the result.
// When mutate is true the stored value is replaced with the result; otherwise
// the payload is left untouched and only the derived size is returned.
// Callers must be explicit about which semantics they want at each stage.
func (p *Payload) DataOut(scaleFactor float64, mutate bool) (DataUnits, error) {
	out, err := ScaleCeil(p.value, scaleFactor)
	if err != nil {
		return 0, fmt.Errorf("payload: %w", err)
	}
	if mutate {
		p.value = out
	}
	return out, nil
}
