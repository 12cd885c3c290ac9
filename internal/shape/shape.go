// Package shape provides the geometric primitives the rest of the
// pipeline builds on: an oblate-spheroid body shape, lat/lon <-> Cartesian
// conversion, great-circle distance, rhumb-line destination, and the axial-tilt
// rotation applied to a body's surface frame.
//
// The conversions are adapted from the teacher's
// internal/spatial/spherical_projection.go (ToCartesian/ToLatLon) and
// internal/spatial/great_circle.go (haversine distance), generalized from
// a fixed-radius sphere to an oblate spheroid whose equatorial and polar
// radii differ (spec §3's Ellipsoid/Shape data). Vector and quaternion
// arithmetic uses gonum (spatial/r3, num/quat) rather than hand-rolled
// 3-vectors, matching the rest of the pack's preference for gonum
// wherever vector math shows up (e.g. other_examples' kepler.go orbital
// mechanics).
package shape

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
	"gonum.org/v1/gonum/spatial/r3"
)

// Ellipsoid is a body's oblate-spheroid shape: equatorial radius and
// flattening factor; the polar radius (equatorial * (1 - flattening)) is
// derived by PolarRadiusM rather than stored.
type Ellipsoid struct {
	EquatorialRadiusM float64
	Flattening        float64
}

// PolarRadiusM returns the polar radius implied by EquatorialRadiusM and
// Flattening.
func (e Ellipsoid) PolarRadiusM() float64 {
	return e.EquatorialRadiusM * (1 - e.Flattening)
}

// RadiusAtLatitudeM returns the distance from center to surface at the
// given geodetic latitude (radians), interpolating between equatorial and
// polar radius.
func (e Ellipsoid) RadiusAtLatitudeM(latRad float64) float64 {
	a := e.EquatorialRadiusM
	b := e.PolarRadiusM()
	sinLat := math.Sin(latRad)
	cosLat := math.Cos(latRad)
	// standard ellipse radius-at-angle formula, parameterized on geodetic
	// latitude rather than polar angle
	aaCos := a * a * cosLat
	bbSin := b * b * sinLat
	num := aaCos*aaCos + bbSin*bbSin
	den := (a * cosLat) * (a * cosLat) + (b * sinLat) * (b * sinLat)
	if den == 0 {
		return a
	}
	return math.Sqrt(num / den)
}

func degToRad(d float64) float64 { return d * math.Pi / 180 }
func radToDeg(r float64) float64 { return r * 180 / math.Pi }

// ToCartesian converts geodetic latitude/longitude (degrees) on e's
// surface to a body-centered Cartesian vector in meters.
func ToCartesian(e Ellipsoid, latDeg, lonDeg float64) r3.Vec {
	latR := degToRad(latDeg)
	lonR := degToRad(lonDeg)
	radius := e.RadiusAtLatitudeM(latR)
	return r3.Vec{
		X: radius * math.Cos(latR) * math.Cos(lonR),
		Y: radius * math.Cos(latR) * math.Sin(lonR),
		Z: radius * math.Sin(latR),
	}
}

// ToLatLon converts a body-centered Cartesian vector back to geodetic
// latitude/longitude in degrees, the inverse of ToCartesian. Round-tripping
// a point through ToCartesian then ToLatLon must return the original
// coordinates to within floating-point tolerance (spec §8's lat/lon <->
// vector invariant).
func ToLatLon(v r3.Vec) (latDeg, lonDeg float64) {
	r := math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
	if r == 0 {
		return 0, 0
	}
	lat := math.Asin(v.Z / r)
	lon := math.Atan2(v.Y, v.X)
	return radToDeg(lat), radToDeg(lon)
}

// GreatCircleDistanceM returns the haversine great-circle distance in
// meters between two lat/lon points (degrees) on a sphere of the given
// radius.
func GreatCircleDistanceM(lat1, lon1, lat2, lon2, radiusM float64) float64 {
	p1, p2 := degToRad(lat1), degToRad(lat2)
	dp := degToRad(lat2 - lat1)
	dl := degToRad(lon2 - lon1)
	a := math.Sin(dp/2)*math.Sin(dp/2) + math.Cos(p1)*math.Cos(p2)*math.Sin(dl/2)*math.Sin(dl/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return radiusM * c
}

// RhumbLineDestination returns the lat/lon (degrees) reached by
// travelling bearingDeg from (lat, lon) for angularDistance radians of
// arc along a constant-bearing (rhumb) track; no radius is involved, since
// the distance is already an angle.
//
// NOTE: the spec leaves the isometric-latitude term here as an open
// question - the source material's formula used
// angularDistance + cos(angularDistance)
// in place of the textbook rhumb-line isometric latitude term. That is
// almost certainly not the textbook rhumb-line formula, but the spec
// explicitly declines to resolve the discrepancy, so it is kept here
// exactly as specified rather than "corrected" to the standard
// Mercator-projection derivation.
func RhumbLineDestination(lat, lon, bearingDeg, angularDistance float64) (latDeg, lonDeg float64) {
	phi1 := degToRad(lat)
	theta := degToRad(bearingDeg)

	phi2 := phi1 + angularDistance*math.Cos(theta)

	deltaPsi := math.Log(math.Tan(math.Pi/4+phi2/2) / math.Tan(math.Pi/4+phi1/2))
	var q float64
	if math.Abs(deltaPsi) > 1e-12 {
		q = (phi2 - phi1) / deltaPsi
	} else {
		q = math.Cos(phi1)
	}

	// open question: textbook uses deltaPsi here; source material used
	// angularDistance + cos(angularDistance). Kept literal, per spec §9.
	deltaLon := (angularDistance + math.Cos(angularDistance)) * math.Sin(theta) / q
	lon2 := degToRad(lon) + deltaLon

	return radToDeg(phi2), radToDeg(lon2)
}

// axisAngle builds the unit quaternion representing a rotation of
// angleRad about the given (assumed unit) axis.
func axisAngle(axis r3.Vec, angleRad float64) quat.Number {
	half := angleRad / 2
	s := math.Sin(half)
	return quat.Number{Real: math.Cos(half), Imag: axis.X * s, Jmag: axis.Y * s, Kmag: axis.Z * s}
}

// AxialRotation returns the quaternion that rotates a body's un-tilted
// surface frame (spin axis along +Z) to its actual orientation, given an
// axial tilt (obliquity, degrees) and a precession phase (degrees) about
// the orbital-plane normal.
func AxialRotation(obliquityDeg, precessionDeg float64) quat.Number {
	tilt := axisAngle(r3.Vec{X: 1}, degToRad(obliquityDeg))
	prec := axisAngle(r3.Vec{Z: 1}, degToRad(precessionDeg))
	return quat.Mul(prec, tilt)
}
