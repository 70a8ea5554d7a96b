package core

import "errors"

var (
	// ErrInvalidConfiguration is a package-level sentinel for stage parameters
	// that cannot be priced: non-positive throughput, negative data sizes,
	// out-of-range link distances, non-finite inputs. It is raised at the
	// point of use (cost or Process call), never at construction.
	ErrInvalidConfiguration = errors.New("invalid configuration")

	// ErrIncompletePipeline is a package-level sentinel for a scenario that
	// cannot run at all: zero stages, a stage without a node, or a stage
	// missing the energy parameters its node kind requires.
	ErrIncompletePipeline = errors.New("incomplete pipeline")
)
