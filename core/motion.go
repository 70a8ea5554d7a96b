package core

import (
	"fmt"
	"time"

	satellite "github.com/joshuaferrara/go-satellite"
)

// OrbitModel propagates a satellite from TLE data with SGP4 so transmission
// stages can derive their link distance from actual geometry rather than a
// hand-picked constant.
type OrbitModel struct {
	sat satellite.Satellite
}

// NewOrbitModelFromTLE constructs an orbit model from two TLE lines.
func NewOrbitModelFromTLE(line1, line2 string) *OrbitModel {
	return &OrbitModel{sat: satellite.TLEToSat(line1, line2, satellite.GravityWGS72)}
}

// PositionAt returns the satellite's ECEF position in kilometres at t.
func (m *OrbitModel) PositionAt(t time.Time) Vec3 {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()

	posECI, _ := satellite.Propagate(m.sat, year, int(month), day, hour, min, sec)
	jd := satellite.JDay(year, int(month), day, hour, min, sec)
	gmst := satellite.ThetaG_JD(jd)
	posECEF := satellite.ECIToECEF(posECI, gmst)

	return Vec3{X: posECEF.X, Y: posECEF.Y, Z: posECEF.Z}
}

// SlantRangeKm returns the straight-line distance between the satellite at t
// and a ground point (ECEF kilometres). It fails when the Earth blocks the
// path, since no link exists without line of sight.
func (m *OrbitModel) SlantRangeKm(t time.Time, ground Vec3) (float64, error) {
	pos := m.PositionAt(t)
	if !LineOfSight(pos, ground) {
		return 0, fmt.Errorf("no line of sight to ground point at %s: %w",
			t.UTC().Format(time.RFC3339), ErrInvalidConfiguration)
	}
	return pos.DistanceTo(ground), nil
}
