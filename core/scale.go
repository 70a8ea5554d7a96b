package core

import (
	"fmt"
	"math"
	"math/big"
)

// scalePrecision is the mantissa width (bits) used for scale-factor
// multiplication. 80 bits covers the significand of an x87 extended-precision
// float with room to spare, which keeps chained stages stable when the scale
// factor sits near an integer boundary.
const scalePrecision = 80

// snapTolerance is the relative distance below which a product is treated as
// being the neighbouring integer rather than sitting fractionally above it.
// Scale factors arrive as float64, so a factor like 0.9 carries representation
// noise a few ulps wide; without the snap, 100 * 0.9 would ceil to 91. The
// tolerance is far too small to swallow genuine fractional growth.
const snapTolerance = 0x1p-48

// ScaleCeil multiplies value by factor at extended precision and rounds the
// result up to the nearest integer. It is the single scaling routine behind
// both Payload.DataOut and Node.Process, so payload scaling and stage
// processing can never drift apart.
func ScaleCeil(value DataUnits, factor float64) (DataUnits, error) {
	if value < 0 {
		return 0, fmt.Errorf("scale: negative data size %d: %w", value, ErrInvalidConfiguration)
	}
	if factor < 0 || !isFinite(factor) {
		return 0, fmt.Errorf("scale: scale factor %v must be a finite non-negative number: %w", factor, ErrInvalidConfiguration)
	}

	product := new(big.Float).SetPrec(scalePrecision).SetInt64(int64(value))
	product.Mul(product, new(big.Float).SetPrec(scalePrecision).SetFloat64(factor))

	// product >= 0, so Int truncation is a floor.
	floor, acc := product.Int(nil)
	if acc == big.Exact {
		return bigToDataUnits(floor)
	}

	frac := new(big.Float).SetPrec(scalePrecision).SetInt(floor)
	frac.Sub(product, frac)
	fracF, _ := frac.Float64()
	prodF, _ := product.Float64()

	if fracF <= math.Max(1, prodF)*snapTolerance {
		return bigToDataUnits(floor)
	}
	floor.Add(floor, big.NewInt(1))
	return bigToDataUnits(floor)
}

func bigToDataUnits(i *big.Int) (DataUnits, error) {
	if !i.IsInt64() {
		return 0, fmt.Errorf("scale: result %s overflows the data size range: %w", i, ErrInvalidConfiguration)
	}
	return DataUnits(i.Int64()), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
