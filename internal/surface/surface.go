// Package surface implements the pure query layer (spec §4.10): given a
// fully generated body and an explicit point in time, answer point
// queries about elevation, temperature, precipitation, illumination,
// slope, pressure and resource richness, without mutating the body and
// without reading from any ambient clock - time is always a parameter,
// never read from the environment (spec §9 Design Notes).
//
// Per spec §5, the one piece of genuinely shared, mutable, process-wide
// state in this whole pipeline is the Hadley-cell latitude lookup table
// used by PrecipitationAt - every other package's state is
// scoped to a single Planetoid. That table is guarded here by a
// sync.RWMutex and lazily populated once, adapted from the teacher's
// internal/ecosystem/geology.go pattern of guarding a shared struct with
// sync.RWMutex, generalized from "one struct's fields" to "one
// process-wide slice."
package surface

import (
	"math"
	"sync"

	"github.com/thousandworlds/planetoid/internal/noise"
	"github.com/thousandworlds/planetoid/internal/orbit"
	"github.com/thousandworlds/planetoid/internal/satellite"
	"github.com/thousandworlds/planetoid/internal/shape"
)

// DryLapseRateKPerM and MoistLapseRateKPerM are the unsaturated and
// saturated adiabatic lapse rates (K per meter of elevation gain), used
// to pick which lapse applies at a point depending on how humid it is.
const (
	DryLapseRateKPerM   = 0.0098
	MoistLapseRateKPerM = 0.0055
)

// WaterFreezePointK is fresh water's freezing point, the reference
// temperature below which precipitation falls as snow rather than rain.
const WaterFreezePointK = 273.15

var (
	hadleyMu    sync.RWMutex
	hadleyTable []float64 // indexed by integer degree latitude + 90
)

// hadleyCellFactor returns a [0,1] precipitation multiplier for the given
// latitude, modeling the three-cell Hadley/Ferrel/Polar circulation bands
// (wet equator, dry ~30 degrees, wet ~60 degrees, dry poles). The table is
// built once, process-wide, on first use - every Planetoid shares the
// same climatology shape and there is no per-body variation to justify
// per-instance storage.
func hadleyCellFactor(latDeg float64) float64 {
	idx := int(math.Round(latDeg)) + 90
	if idx < 0 {
		idx = 0
	}
	if idx > 180 {
		idx = 180
	}

	hadleyMu.RLock()
	if hadleyTable != nil {
		v := hadleyTable[idx]
		hadleyMu.RUnlock()
		return v
	}
	hadleyMu.RUnlock()

	hadleyMu.Lock()
	defer hadleyMu.Unlock()
	if hadleyTable == nil {
		table := make([]float64, 181)
		for d := -90; d <= 90; d++ {
			rad := float64(d) * math.Pi / 180
			// three-lobe approximation: high near equator and ~60deg,
			// low near ~30deg and the poles.
			table[d+90] = 0.5 + 0.3*math.Cos(6*rad) + 0.2*math.Cos(rad)
		}
		hadleyTable = table
	}
	return hadleyTable[idx]
}

// StarInsolation is one star's contribution to a point's illumination:
// the flux it delivers at this body's orbital distance, and the phase
// offset of its apparent position relative to the body's rotation
// (0 for a body's only star).
type StarInsolation struct {
	LuminousFluxWM2 float64
	DirectionRad    float64
}

// SatelliteReflector is one satellite's contribution to reflected
// illumination: its orbital distance and period (to compute phase at
// query time) and its surface albedo.
type SatelliteReflector struct {
	DistanceM     float64
	PeriodSeconds float64
	Albedo        float64
}

// Body is the minimal read-only surface the query functions need from a
// generated Planetoid - kept narrow so internal/planetoid can satisfy it
// without this package importing internal/planetoid (which would create
// an import cycle, since planetoid orchestrates surface as part of its
// pipeline). Stars and Satellites are slices rather than single values so
// queries degrade silently (zero contribution) when a body has none,
// per spec §5/§7's missing-collaborator handling.
type Body struct {
	Shape                  shape.Ellipsoid
	Noise                  noise.Set
	SeaLevelM              float64
	MeanSurfaceTempK       float64
	EquatorSurfaceTempK    float64
	PolarSurfaceTempK      float64
	BlackbodyPeriapsisK    float64
	BlackbodyApoapsisK     float64
	RotationPeriodSeconds  float64
	OrbitalPeriodSeconds   float64
	ObliquityDeg           float64
	SurfacePressurePa      float64
	AverageElevationScaleM float64 // multiplies raw noise into meters of relief
	Stars                  []StarInsolation
	Satellites             []SatelliteReflector
}

// rotationPhase returns the body's fractional position (0-1) through its
// current rotation at time t, or 0 for a body with no meaningful spin
// period.
func rotationPhase(b Body, tSeconds float64) float64 {
	if b.RotationPeriodSeconds <= 0 {
		return 0
	}
	f := math.Mod(tSeconds/b.RotationPeriodSeconds, 1)
	if f < 0 {
		f += 1
	}
	return f
}

// seasonPhase returns the body's fractional position (0-1, 0 = periapsis)
// through its current orbit at time t, or 0 for a body with no orbit
// (e.g. one not yet assigned a primary).
func seasonPhase(b Body, tSeconds float64) float64 {
	if b.OrbitalPeriodSeconds <= 0 {
		return 0
	}
	f := math.Mod(tSeconds/b.OrbitalPeriodSeconds, 1)
	if f < 0 {
		f += 1
	}
	return f
}

// ElevationAtM returns terrain elevation in meters, relative to the
// body's mean radius, at the given lat/lon.
func ElevationAtM(b Body, latDeg, lonDeg float64) float64 {
	v := b.Noise.Elevation.Noise2D(latDeg/10, lonDeg/10)
	v = noise.ElevationTransform(v)
	ridge := noise.RidgedTransform(b.Noise.MountainRidge.Noise2D(latDeg/5, lonDeg/5))
	mask := (b.Noise.MountainMask.Noise2D(latDeg/20, lonDeg/20) + 1) / 2
	return (v + ridge*mask*0.5) * b.AverageElevationScaleM
}

// SlopeAt approximates the local terrain gradient magnitude (meters of
// rise per meter of horizontal distance) via a central finite difference
// at a small angular step.
func SlopeAt(b Body, latDeg, lonDeg float64) float64 {
	const stepDeg = 0.01
	radiusM := b.Shape.RadiusAtLatitudeM(latDeg * math.Pi / 180)
	stepM := radiusM * stepDeg * math.Pi / 180

	eLat1 := ElevationAtM(b, latDeg-stepDeg, lonDeg)
	eLat2 := ElevationAtM(b, latDeg+stepDeg, lonDeg)
	eLon1 := ElevationAtM(b, latDeg, lonDeg-stepDeg)
	eLon2 := ElevationAtM(b, latDeg, lonDeg+stepDeg)

	dLat := (eLat2 - eLat1) / (2 * stepM)
	dLon := (eLon2 - eLon1) / (2 * stepM)
	return math.Hypot(dLat, dLon)
}

// TemperatureAtK returns surface temperature at the given time and
// lat/lon: a seasonal blackbody estimate (interpolated between the
// periapsis and apoapsis extremes by the fraction of the orbital period
// elapsed since periapsis), blended toward
// the pole by latitude and by a secondary equatorial term that tracks
// season with obliquity, then corrected downward for elevation using
// whichever lapse rate - moist or dry - fits the point's humidity.
func TemperatureAtK(b Body, tSeconds, latDeg, lonDeg float64) float64 {
	latRad := latDeg * math.Pi / 180
	tiltRad := b.ObliquityDeg * math.Pi / 180

	f := seasonPhase(b, tSeconds)
	blackbodyNow := b.BlackbodyApoapsisK + (b.BlackbodyPeriapsisK-b.BlackbodyApoapsisK)*(1+math.Cos(2*math.Pi*f))/2
	if blackbodyNow == 0 {
		blackbodyNow = b.MeanSurfaceTempK
	}

	equatorT := blackbodyNow * orbit.EquatorialTemperatureFactor
	polarT := blackbodyNow * (2 - orbit.EquatorialTemperatureFactor)

	denom := math.Pi/2 - math.Abs(tiltRad)
	if denom <= 1e-6 {
		denom = 1e-6
	}
	equatorialBlend := math.Sin(latRad/denom*math.Pi) / 3

	latitudinal := equatorT - (equatorT-polarT)*math.Abs(math.Sin(latRad))
	latitudinal += equatorialBlend * (equatorT - polarT) * math.Cos(2*math.Pi*f)

	elevM := ElevationAtM(b, latDeg, lonDeg)
	lapseRate := DryLapseRateKPerM
	if HumidityAt(b, latDeg, lonDeg) > 0.6 {
		lapseRate = MoistLapseRateKPerM
	}
	return latitudinal - elevM*lapseRate
}

// Precipitation is a point's annual precipitation rate, with the
// rain/snow phase recorded separately rather than folded into sign or
// unit tricks on AmountMM.
type Precipitation struct {
	AmountMM float64
	IsSnow   bool
}

// PrecipitationAt returns annual precipitation at the given time and
// lat/lon, combining macro/micro noise texture with the process-wide
// Hadley climatology band and a humidity channel, gated by how far the
// point's temperature sits above the freezing-adjacent threshold, and
// boosted within the ITCZ band, which migrates toward the summer
// hemisphere with deltaYears folded into the macro-noise phase so
// multi-year climate queries don't alias onto an identical pattern.
func PrecipitationAt(b Body, tSeconds, latDeg, lonDeg, deltaYears float64) Precipitation {
	const avgMM = 3000.0
	const itczHalfWidthDeg = 180.0 / 8 // pi/8 radians, expressed in degrees

	r1 := (b.Noise.PrecipMacro.Noise2D(latDeg/15+deltaYears, lonDeg/15) + 1) / 2
	r2 := (b.Noise.PrecipMicro.Noise2D(latDeg/3, lonDeg/3) + 1) / 2
	r3 := HumidityAt(b, latDeg, lonDeg)
	hadley := hadleyCellFactor(latDeg)

	f := seasonPhase(b, tSeconds)
	itczLatDeg := b.ObliquityDeg * math.Sin(2*math.Pi*f)
	itcz := 1.0
	if math.Abs(latDeg-itczLatDeg) < itczHalfWidthDeg {
		itcz = 1.3
	}

	temp := TemperatureAtK(b, tSeconds, latDeg, lonDeg)
	gate := clamp01((temp - (WaterFreezePointK - 16)) / 16)

	amount := avgMM * (r1*r2 + hadley*r3) * gate * itcz
	return Precipitation{AmountMM: amount, IsSnow: temp <= WaterFreezePointK}
}

// HumidityAt returns a [0,1] relative humidity estimate.
func HumidityAt(b Body, latDeg, lonDeg float64) float64 {
	return (b.Noise.Humidity.Noise2D(latDeg/12, lonDeg/12) + 1) / 2
}

// AtmosphericPressureAtM returns surface pressure (Pa) at elevationM
// above mean radius, via the barometric formula with a fixed Earth-like
// scale height of 8500 m for every body.
func AtmosphericPressureAtM(b Body, elevationM float64) float64 {
	if b.SurfacePressurePa <= 0 {
		return 0
	}
	const scaleHeightM = 8500
	return b.SurfacePressurePa * math.Exp(-elevationM/scaleHeightM)
}

// IlluminationAt sums each star's contribution - luminous flux times the
// sine of solar elevation, zero when the star is below the horizon -
// plus each satellite's reflected light (inverse-square falloff times
// phase fraction times albedo). A body with no stars or no satellites
// simply contributes nothing from that term rather than erroring (spec
// §5/§7's silent degradation on missing collaborators).
func IlluminationAt(b Body, tSeconds, latDeg, lonDeg float64) float64 {
	latRad := latDeg * math.Pi / 180
	tiltRad := b.ObliquityDeg * math.Pi / 180

	f := seasonPhase(b, tSeconds)
	declination := tiltRad * math.Sin(2*math.Pi*f)
	rotation := rotationPhase(b, tSeconds)

	var total float64
	for _, star := range b.Stars {
		hourAngle := 2*math.Pi*rotation + star.DirectionRad
		cosZenith := math.Sin(latRad)*math.Sin(declination) + math.Cos(latRad)*math.Cos(declination)*math.Cos(hourAngle)
		if cosZenith > 0 {
			total += star.LuminousFluxWM2 * cosZenith // sin(solar elevation) == cos(zenith angle)
		}
	}

	for _, sat := range b.Satellites {
		if sat.DistanceM <= 0 {
			continue
		}
		phase := satellite.PhaseAngleRad(sat.PeriodSeconds/86400, tSeconds)
		total += sat.Albedo * satellite.PhaseFraction(phase) / (4 * math.Pi * sat.DistanceM * sat.DistanceM)
	}

	return total
}

// SunriseSunset returns the fractional day-phase (0-1 of the local solar
// day, 0 = local midnight, 0.5 = local noon) of sunrise and sunset at
// latDeg, for the season at tSeconds; the rotation phase at tSeconds
// does not enter the result. Per spec §4.10, continuous daylight and
// continuous polar night are not representable as a pair of phases, so
// each return is nil ("None") in the direction that doesn't occur:
// continuous daylight returns (Some(0), None); continuous polar night
// returns (None, Some(0)).
func SunriseSunset(b Body, tSeconds, latDeg float64) (sunrise, sunset *float64) {
	latRad := latDeg * math.Pi / 180
	tiltRad := b.ObliquityDeg * math.Pi / 180
	f := seasonPhase(b, tSeconds)
	declination := tiltRad * math.Sin(2*math.Pi*f)

	cosH := -math.Tan(latRad) * math.Tan(declination)
	zero := 0.0
	switch {
	case cosH <= -1:
		return &zero, nil // continuous daylight: already risen, never sets
	case cosH >= 1:
		return nil, &zero // continuous polar night: never rises, already set
	}

	hourAngle := math.Acos(cosH)
	sr := 0.5 - hourAngle/(2*math.Pi)
	ss := 0.5 + hourAngle/(2*math.Pi)
	return &sr, &ss
}

// ResourceRichnessAt returns a [0,1] mineral-resource richness score,
// driven by elevation (mountain-building concentrates ore bodies) and a
// slower secondary noise texture standing in for tectonic history, since
// this pipeline has no standalone plate-tectonics simulation.
func ResourceRichnessAt(b Body, latDeg, lonDeg float64) float64 {
	elevM := ElevationAtM(b, latDeg, lonDeg)
	elevFactor := clamp01(elevM / (b.AverageElevationScaleM + 1))
	texture := (b.Noise.MountainMask.Noise2D(latDeg/8, lonDeg/8) + 1) / 2
	return clamp01(0.4*elevFactor + 0.6*texture)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
