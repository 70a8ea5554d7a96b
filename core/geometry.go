package core

import "math"

// EarthRadiusKm is the mean Earth radius used for the line-of-sight check
// (kilometres).
const EarthRadiusKm = 6371.0

// Vec3 is an ECEF-style vector in kilometres.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// DistanceTo returns the straight-line distance between two points.
func (v Vec3) DistanceTo(other Vec3) float64 {
	d := v.Sub(other)
	return math.Sqrt(d.Dot(d))
}

// losTolerance absorbs ground points that sit exactly on the Earth sphere:
// the endpoint of a satellite-to-ground segment touches the surface by
// construction and must not count as blocked.
const losTolerance = 1e-6

// LineOfSight reports whether the straight segment between p1 and p2 clears
// the Earth sphere. If the segment dips inside the sphere, the Earth blocks
// the path and no link can exist between the two points.
func LineOfSight(p1, p2 Vec3) bool {
	v := p2.Sub(p1)
	a := v.Dot(v)
	if a == 0 {
		// Degenerate case: both points coincide. Clear if at or above
		// the surface.
		return p1.Dot(p1) >= EarthRadiusKm*EarthRadiusKm-losTolerance
	}

	// Closest point on the segment to the Earth's centre: t minimises
	// |p1 + t v|^2, clamped to the segment.
	t := -p1.Dot(v) / a
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}

	closest := Vec3{
		X: p1.X + v.X*t,
		Y: p1.Y + v.Y*t,
		Z: p1.Z + v.Z*t,
	}
	return closest.Dot(closest) >= EarthRadiusKm*EarthRadiusKm-losTolerance
}
