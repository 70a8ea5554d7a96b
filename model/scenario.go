package model

// StageKind values accepted in scenario definitions.
const (
	StageKindComputing    = "computing"
	StageKindTransmission = "transmission"
)

// EnergyDefinition is the JSON shape of per-stage energy parameters.
// Pointers keep "absent" distinguishable from an explicit zero, the same way
// optional scenario fields are handled elsewhere in this module.
type EnergyDefinition struct {
	EnergyUptime *float64 `json:"energy_uptime,omitempty"`
	EnergyIO     *float64 `json:"energy_io,omitempty"`
	Energy       *float64 `json:"energy,omitempty"`
	DistanceKm   *float64 `json:"distance_km,omitempty"`
}

// Position is an ECEF position in kilometres.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// LinkGeometry lets a transmission stage derive its distance from satellite
// and ground-station geometry instead of a literal distance_km: the satellite
// is propagated from its TLE to the given instant and the slant range to the
// ground point becomes the stage's distance parameter.
type LinkGeometry struct {
	TLELine1 string   `json:"tle_line_1"`
	TLELine2 string   `json:"tle_line_2"`
	Ground   Position `json:"ground"`
	At       string   `json:"at"` // RFC 3339 instant for propagation
}

// StageDefinition describes one pipeline stage in a scenario file.
type StageDefinition struct {
	Name       string  `json:"name"`
	Kind       string  `json:"kind"` // "computing" | "transmission"
	Throughput float64 `json:"throughput"`

	// ScaleFactor is φ for computing stages; optional, defaults to 1.
	// Transmission stages always use 1.
	ScaleFactor *float64 `json:"scale_factor,omitempty"`

	Energy EnergyDefinition `json:"energy"`

	// Geometry is only meaningful on transmission stages. When set, it
	// overrides Energy.DistanceKm with a derived slant range.
	Geometry *LinkGeometry `json:"geometry,omitempty"`
}

// ScenarioDefinition is a complete scenario file: an initial payload size and
// the ordered stages it traverses.
type ScenarioDefinition struct {
	Name        string            `json:"name"`
	InitialData int64             `json:"initial_data"`
	Stages      []StageDefinition `json:"stages"`
}
