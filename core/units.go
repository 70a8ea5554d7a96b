package core

import "fmt"

// DataUnits is an integer quantity of data in abstract units. The reference
// scenarios use megabits, but nothing in the cost model depends on the unit.
type DataUnits int64

func (d DataUnits) String() string {
	return fmt.Sprintf("%d units", int64(d))
}
