// Package planetoid is the root entity and generation pipeline: it wires
// together every other internal package into the twelve-stage pipeline
// and exposes the resulting body's queryable state.
//
// Grounded on the teacher's internal/ecosystem/geology.go WorldGeology
// struct: a single root entity (uuid.UUID identity, sync.RWMutex-guarded
// derived caches, composed sub-structs for each subsystem) is the same
// shape used here, generalized from a MUD world's tile/plate/biome
// composition to an astronomical body's material/orbit/atmosphere
// composition. The pipeline stage order follows the twelve stages of the
// generation design directly; per-type dispatch is table-driven (see
// internal/composition, internal/atmosphere) rather than virtual, per
// the design's tagged-variant-dispatch guidance.
package planetoid

import (
	"math"
	"math/big"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/thousandworlds/planetoid/internal/atmosphere"
	"github.com/thousandworlds/planetoid/internal/composition"
	"github.com/thousandworlds/planetoid/internal/habitability"
	"github.com/thousandworlds/planetoid/internal/hydrosphere"
	"github.com/thousandworlds/planetoid/internal/invariant"
	"github.com/thousandworlds/planetoid/internal/material"
	"github.com/thousandworlds/planetoid/internal/noise"
	"github.com/thousandworlds/planetoid/internal/obslog"
	"github.com/thousandworlds/planetoid/internal/orbit"
	"github.com/thousandworlds/planetoid/internal/perr"
	"github.com/thousandworlds/planetoid/internal/planettype"
	"github.com/thousandworlds/planetoid/internal/reconstitute"
	"github.com/thousandworlds/planetoid/internal/satellite"
	"github.com/thousandworlds/planetoid/internal/shape"
	"github.com/thousandworlds/planetoid/internal/substance"
	"github.com/thousandworlds/planetoid/internal/surface"
)

const (
	gravitationalConstant = 6.674e-11
	solarMassKg           = 1.98847e30
	auInMeters            = 1.495978707e11
	stellarLifetimeYears  = 1.0e10 // sun-like main sequence lifetime, used for tidal-lock comparisons
	defaultStellarAgeYears = 4.6e9
)

// Resource is one extracted crust constituent (spec §4.2 stage 10).
type Resource struct {
	SubstanceName string
	Proportion    float64
	IsVein        bool
	Seed          uint32
}

// Params are the caller-supplied generation inputs (spec §4.2's entry
// point signature, narrowed to what this module implements: star/
// parent/data-store resolution is left to the embedding application).
type Params struct {
	Seed             uint32
	Type             planettype.Type
	Name             string
	ParentID         uuid.UUID
	IsSatellite      bool
	StarLuminositySolar float64
	StarMassSolar    float64
	StellarAgeYears  float64
	MinOrbitAU       float64
	MaxOrbitAU       float64
	Habitability     *habitability.Constraints
	Registry         substance.Registry
	Logger           zerolog.Logger
	MaxCorrectionPasses int
}

// Planetoid is one fully generated body.
type Planetoid struct {
	ID   uuid.UUID
	Seed uint32
	Name string
	Type planettype.Type
	ParentID uuid.UUID

	Shape       shape.Ellipsoid
	MassKg      *big.Float
	DensityKgM3 float64
	SurfaceGravityMS2 float64
	Material    *material.Composite

	Orbit *orbit.Elements

	RotationPeriodSeconds float64
	AxialTilt             orbit.AxialTilt
	TidallyLocked         bool

	Atmosphere  atmosphere.Composition
	Hydrosphere hydrosphere.Result

	AlbedoTotal   float64
	SurfaceAlbedo float64
	BiosphereFlag bool
	MagnetosphereFlag bool
	InhospitableFlag  bool

	BlackbodyK          float64
	BlackbodyApoapsisK   float64
	BlackbodyPeriapsisK  float64
	AverageBlackbodyK    float64
	InsolationAvgWM2     float64

	Satellites []satellite.Moon
	Rings      []satellite.Ring
	Resources  []Resource

	NoiseSeeds [6]int64
	Noise      noise.Set

	MaxElevationM float64

	mu                sync.RWMutex
	cachedSurfaceBody *surface.Body
}

// Generate runs the full twelve-stage pipeline (spec §4.2) and returns a
// fully populated, immutable-except-for-the-listed-mutators Planetoid.
func Generate(p Params) (*Planetoid, error) {
	if err := validateParams(p); err != nil {
		return nil, err
	}
	if p.Registry == nil {
		p.Registry = substance.NewDefaultRegistry()
	}
	if p.MaxCorrectionPasses == 0 {
		p.MaxCorrectionPasses = 10
	}
	if p.StellarAgeYears == 0 {
		p.StellarAgeYears = defaultStellarAgeYears
	}
	if p.StarMassSolar == 0 {
		p.StarMassSolar = 1
	}
	if p.StarLuminositySolar == 0 {
		p.StarLuminositySolar = 1
	}

	r := reconstitute.New(p.Seed, reconstitute.DefaultTable)
	logger := p.Logger
	body := &Planetoid{
		ID:       uuid.New(),
		Seed:     p.Seed,
		Name:     p.Name,
		Type:     p.Type,
		ParentID: p.ParentID,
	}

	obslog.Stage(logger, p.Seed, string(p.Type), "eccentricity")
	ecc := eccentricityForType(r, p.Type)

	obslog.Stage(logger, p.Seed, string(p.Type), "semi_major_axis")
	minAU, maxAU := p.MinOrbitAU, p.MaxOrbitAU
	if minAU == 0 && maxAU == 0 {
		minAU, maxAU = 0.3, 30
	}
	orb := orbit.AssignOrbit(r, minAU, maxAU)
	orb.Eccentricity = ecc

	obslog.Stage(logger, p.Seed, string(p.Type), "material_reconstitution")
	massKg, densityKgM3, radiusM, flattening := reconstituteMaterial(r, p.Type)
	body.Shape = shape.Ellipsoid{EquatorialRadiusM: radiusM, Flattening: flattening}
	body.MassKg = massKg
	body.DensityKgM3 = densityKgM3
	massFloat, _ := massKg.Float64()
	body.SurfaceGravityMS2 = gravitationalConstant * massFloat / (radiusM * radiusM)

	layers := composition.Table(p.Type, radiusM, 288)
	comp, err := material.NewComposite(p.Registry, massKg, layers)
	if err != nil {
		return nil, err
	}
	body.Material = comp
	if err := invariant.Check(invariant.Mass, func() error { return checkMassClosure(comp) }); err != nil {
		return nil, err
	}

	obslog.Stage(logger, p.Seed, string(p.Type), "rotation_period")
	starMassKg := p.StarMassSolar * solarMassKg
	semiMajorM := orb.SemiMajorAxisAU * auInMeters
	lockFraction := orbit.TidalLockAgeFractionOfStellarAge(r, orb.SemiMajorAxisAU)
	locked := orbit.IsTidallyLocked(lockFraction, p.StellarAgeYears, stellarLifetimeYears)
	var rotationSeconds float64
	if locked {
		rotationSeconds = 2 * math.Pi * math.Sqrt(math.Pow(semiMajorM, 3)/(gravitationalConstant*(massFloat+starMassKg)))
	} else {
		rotationSeconds = orbit.RotationPeriodSeconds(r)
	}
	body.RotationPeriodSeconds = rotationSeconds
	body.TidallyLocked = locked

	obslog.Stage(logger, p.Seed, string(p.Type), "orbit_assignment")
	body.Orbit = &orb

	obslog.Stage(logger, p.Seed, string(p.Type), "axis")
	body.AxialTilt = orbit.AssignAxialTilt(r)

	obslog.Stage(logger, p.Seed, string(p.Type), "temperature_seed")
	luminosityNow := orbit.SolarLuminosity(p.StellarAgeYears, p.StellarAgeYears)
	insolAvg := orbit.InsolationWM2(p.StarLuminositySolar*luminosityNow, orb.SemiMajorAxisAU)
	insolPeri := orbit.InsolationWM2(p.StarLuminositySolar*luminosityNow, orb.PerihelionAU())
	insolApo := orbit.InsolationWM2(p.StarLuminositySolar*luminosityNow, orb.AphelionAU())
	body.SurfaceAlbedo = 0.3
	body.AlbedoTotal = 0.3
	body.InsolationAvgWM2 = insolAvg
	body.BlackbodyK = orbit.EffectiveTemperatureK(insolAvg, body.AlbedoTotal)
	body.BlackbodyPeriapsisK = orbit.EffectiveTemperatureK(insolPeri, body.AlbedoTotal)
	body.BlackbodyApoapsisK = orbit.EffectiveTemperatureK(insolApo, body.AlbedoTotal)
	body.AverageBlackbodyK = (body.BlackbodyPeriapsisK + body.BlackbodyApoapsisK) / 2

	body.NoiseSeeds = deriveNoiseSeeds(r)
	body.Noise = noise.NewSet(body.NoiseSeeds[0], body.NoiseSeeds[1], body.NoiseSeeds[2], body.NoiseSeeds[3], body.NoiseSeeds[4], body.NoiseSeeds[5])
	body.MaxElevationM = maxElevationFor(p.Type, body.SurfaceGravityMS2)

	obslog.Stage(logger, p.Seed, string(p.Type), "hydrosphere")
	if canHoldWater(p.Type) {
		tiles := sampleTiles(body.Shape, body.Noise, body.MaxElevationM, 24)
		body.Hydrosphere = hydrosphere.Generate(r, tiles, massFloat, densityKgM3, body.BlackbodyK, 273.15)
	} else {
		body.Hydrosphere = hydrosphere.Result{SeaLevelM: -1.1 * body.MaxElevationM}
	}

	obslog.Stage(logger, p.Seed, string(p.Type), "correction_loop_or_atmosphere")
	comp0 := atmosphere.GeneratePath(r, p.Type, body.SurfaceGravityMS2)
	if p.Habitability != nil {
		body.Atmosphere, err = runCorrectionLoop(r, body, p, comp0, &orb, logger)
		if err != nil {
			return nil, err
		}
	} else {
		coupled, passes := atmosphere.CoupleWithHydrosphere(comp0, body.Hydrosphere.OceanFractionArea, body.AverageBlackbodyK)
		body.Atmosphere = coupled
		obslog.Stage(logger, p.Seed, string(p.Type), "atmosphere_converged")
		_ = passes
	}

	obslog.Stage(logger, p.Seed, string(p.Type), "resources")
	body.Resources = extractResources(r, comp, body.MagnetosphereFlag, body.BiosphereFlag)

	hill := satellite.HillSphereRadiusM(massFloat, starMassKg, semiMajorM)
	if !p.IsSatellite {
		obslog.Stage(logger, p.Seed, string(p.Type), "satellites")
		body.Satellites = satellite.GenerateMoons(r, p.Type, massFloat, radiusM, densityKgM3, starMassKg, semiMajorM)
	}

	obslog.Stage(logger, p.Seed, string(p.Type), "rings")
	atmosphereTopM := radiusM + atmosphereHeightAboveSurfaceM(body.Atmosphere.SurfacePressurePa)
	body.Rings = satellite.GenerateRings(r, p.Type, radiusM, densityKgM3, atmosphereTopM, hill)

	return body, nil
}

// atmosphereHeightAboveSurfaceM estimates how far above the surface a
// body's atmosphere remains dense enough to matter, in meters: eight
// scale heights out, past which pressure has fallen by a factor of
// e^-8 and is negligible for ring-inner-edge purposes. Airless bodies
// get a small fixed buffer instead.
func atmosphereHeightAboveSurfaceM(surfacePressurePa float64) float64 {
	const scaleHeightM = 8500.0
	if surfacePressurePa <= 0 {
		return 1000
	}
	return scaleHeightM * 8
}

func validateParams(p Params) error {
	if p.Seed == 0 {
		return perr.New(perr.CodeInvalidInput, "seed must be non-zero")
	}
	if p.Type == "" {
		return perr.New(perr.CodeInvalidInput, "type must be set")
	}
	if p.Habitability != nil && p.Habitability.MinSurfaceTempK > p.Habitability.MaxSurfaceTempK {
		return perr.New(perr.CodeInvalidInput, "habitability min temperature exceeds max")
	}
	return nil
}

func eccentricityForType(r *reconstitute.Reconstitution, t planettype.Type) float64 {
	v := r.GetDouble(reconstitute.IdxEccentricity)
	switch t {
	case planettype.Comet:
		const saltCometEccentricity uint64 = 1 << 32 // outside the small salts internal/satellite uses
		return r.DrawAt(saltCometEccentricity, 0, reconstitute.Spec{Kind: reconstitute.Uniform, Min: 0, Max: 1}) // uniform [0,1)
	case planettype.AsteroidMetal, planettype.AsteroidSilicate, planettype.AsteroidCarbon:
		if v > 0.4 {
			v = math.Mod(v, 0.4)
		}
		return v
	default:
		if v > 0.999 {
			v = 0.999
		}
		return v
	}
}

func reconstituteMaterial(r *reconstitute.Reconstitution, t planettype.Type) (massKg *big.Float, densityKgM3, radiusM, flattening float64) {
	baseDensity := map[planettype.Type]float64{
		planettype.Terrestrial: 5500, planettype.Iron: 7000, planettype.Carbon: 3500,
		planettype.Dwarf: 2000, planettype.GasGiant: 1300, planettype.IceGiant: 1600,
		planettype.AsteroidMetal: 7000, planettype.AsteroidSilicate: 3000, planettype.AsteroidCarbon: 1800,
		planettype.Comet: 600,
	}[t]
	if baseDensity == 0 {
		baseDensity = 3000
	}

	if t.IsGiant() {
		puffyRoll := r.GetDouble(reconstitute.IdxDensityPuffyRoll)
		if puffyRoll < 0.2 {
			baseDensity *= r.GetDouble(reconstitute.IdxDensityPuffyFactor)
		}
	}
	densityKgM3 = baseDensity

	gravityTarget := 5 + r.GetDouble(reconstitute.IdxGravityTarget)*20 // m/s^2, 5..25
	if t.IsAsteroidOrComet() {
		gravityTarget = 0.001 + r.GetDouble(reconstitute.IdxGravityTarget)*0.5
	}
	if t.IsGiant() {
		gravityTarget = 8 + r.GetDouble(reconstitute.IdxGravityTarget)*15
	}

	radiusM = gravityTarget / (gravitationalConstant * (4.0 / 3.0) * math.Pi * densityKgM3)
	volumeM3 := (4.0 / 3.0) * math.Pi * radiusM * radiusM * radiusM
	massFloat := volumeM3 * densityKgM3
	massKg = new(big.Float).SetPrec(256).SetFloat64(massFloat)

	flattening = r.GetDouble(reconstitute.IdxPlanetFlattening) // open question: applied uniformly, including comets
	return
}

func canHoldWater(t planettype.Type) bool {
	switch t {
	case planettype.Carbon, planettype.Iron:
		return false
	}
	return !t.IsGiant() && !t.IsAsteroidOrComet()
}

func maxElevationFor(t planettype.Type, surfaceGravityMS2 float64) float64 {
	if t.IsGiant() {
		return 0
	}
	if surfaceGravityMS2 <= 0 {
		return 0
	}
	return 200000 / surfaceGravityMS2
}

func deriveNoiseSeeds(r *reconstitute.Reconstitution) [6]int64 {
	return [6]int64{
		r.GetInt(reconstitute.IdxNoiseSeedElevation),
		r.GetInt(reconstitute.IdxNoiseSeedRidge),
		r.GetInt(reconstitute.IdxNoiseSeedMountainMask),
		r.GetInt(reconstitute.IdxNoiseSeedPrecipMacro),
		r.GetInt(reconstitute.IdxNoiseSeedPrecipMicro),
		r.GetInt(reconstitute.IdxNoiseSeedHumidity),
	}
}

// sampleTiles builds a lat/lon grid of (elevation, area) samples for the
// hydrosphere sea-level search, giving each tile the area in m^2 of an
// equirectangular grid cell on a sphere of the equatorial radius: the
// equatorial cell area R^2*dlat*dlon scaled by cos(latitude), the way
// the cell area shrinks toward the poles.
func sampleTiles(e shape.Ellipsoid, n noise.Set, maxElevationM float64, resolution int) []hydrosphere.Tile {
	tiles := make([]hydrosphere.Tile, 0, resolution*resolution*2)
	cellAreaM2 := e.EquatorialRadiusM * e.EquatorialRadiusM *
		(math.Pi / float64(resolution-1)) * (2 * math.Pi / float64(resolution*2-1))
	for i := 0; i < resolution; i++ {
		lat := -90 + 180*float64(i)/float64(resolution-1)
		latRad := lat * math.Pi / 180
		area := math.Cos(latRad) * cellAreaM2
		if area < 0 {
			area = 0
		}
		for j := 0; j < resolution*2; j++ {
			lon := -180 + 360*float64(j)/float64(resolution*2-1)
			raw := n.Elevation.Noise2D(lat/10, lon/10)
			elev := noise.ElevationTransform(raw) * maxElevationM
			tiles = append(tiles, hydrosphere.Tile{ElevationM: elev, AreaM2: area})
		}
	}
	return tiles
}

func checkMassClosure(c *material.Composite) error {
	sum := 0.0
	for _, l := range c.Layers {
		sum += l.MassFraction
	}
	if math.Abs(sum-1) > 1e-9 {
		return perr.New(perr.CodeNumericalDegeneracy, "layer mass fractions sum to %f, want 1", sum)
	}
	return nil
}

// runCorrectionLoop implements the §4.7 temperature-orbit correction
// loop. Before iterating, it transforms the caller's mean-surface-
// temperature envelope into the equivalent equatorial-temperature
// envelope the loop actually measures against: the ×1.06 equatorial
// concentration factor, a highlands correction (elevation times the dry
// lapse rate, damped the way a moist atmosphere would damp it), and a
// subtraction of the atmosphere coupling loop's own initial greenhouse
// guess, so the two loops aren't double-counting the same forcing. Each
// pass re-evaluates against that transformed envelope and nudges orbital
// distance to close the gap, halving the step whenever the delta's sign
// flips (dampened oscillation) and fully regenerating the atmosphere
// composition - rather than just re-coupling the previous one - on the
// first pass and whenever the delta is diverging.
func runCorrectionLoop(r *reconstitute.Reconstitution, body *Planetoid, p Params, initial atmosphere.Composition, orb *orbit.Elements, logger zerolog.Logger) (atmosphere.Composition, error) {
	comp := initial

	bandHalfWidth := (p.Habitability.MaxSurfaceTempK - p.Habitability.MinSurfaceTempK) / 2
	targetMeanT := p.Habitability.MinSurfaceTempK + bandHalfWidth
	targetEquatorialT := targetMeanT*orbit.EquatorialTemperatureFactor +
		0.04*body.MaxElevationM*surface.DryLapseRateKPerM -
		atmosphere.GreenhouseGuessK
	transformed := habitability.Constraints{
		MinSurfaceTempK:    targetEquatorialT - bandHalfWidth,
		MaxSurfaceTempK:    targetEquatorialT + bandHalfWidth,
		RequireLiquidWater: p.Habitability.RequireLiquidWater,
	}

	prevDelta := 0.0
	for pass := 0; pass < p.MaxCorrectionPasses; pass++ {
		if pass == 0 {
			comp = atmosphere.GeneratePath(r, p.Type, body.SurfaceGravityMS2)
		}
		coupled, _ := atmosphere.CoupleWithHydrosphere(comp, body.Hydrosphere.OceanFractionArea, body.AverageBlackbodyK)
		comp = coupled
		equatorialT := body.AverageBlackbodyK*orbit.EquatorialTemperatureFactor + comp.GreenhouseForcingK

		eval := habitability.Evaluate(transformed, equatorialT, body.Hydrosphere.OceanFractionArea)

		diverging := pass > 0 && prevDelta != 0 && sign(eval.TemperatureDeltaK) == sign(prevDelta) && math.Abs(eval.TemperatureDeltaK) > math.Abs(prevDelta)
		if diverging {
			comp = atmosphere.GeneratePath(r, p.Type, body.SurfaceGravityMS2)
			coupled, _ = atmosphere.CoupleWithHydrosphere(comp, body.Hydrosphere.OceanFractionArea, body.AverageBlackbodyK)
			comp = coupled
			equatorialT = body.AverageBlackbodyK*orbit.EquatorialTemperatureFactor + comp.GreenhouseForcingK
			eval = habitability.Evaluate(transformed, equatorialT, body.Hydrosphere.OceanFractionArea)
		}

		if eval.Satisfied || math.Abs(eval.TemperatureDeltaK) < 0.5 {
			body.InhospitableFlag = false
			return comp, nil
		}

		step := habitability.CorrectionDirection(eval, orb.SemiMajorAxisAU)
		if prevDelta != 0 && sign(eval.TemperatureDeltaK) != sign(prevDelta) {
			step /= 2 // dampen oscillation on sign flip
		}
		orb.SemiMajorAxisAU += step
		if orb.SemiMajorAxisAU < 0.01 {
			orb.SemiMajorAxisAU = 0.01
		}

		insol := orbit.InsolationWM2(p.StarLuminositySolar, orb.SemiMajorAxisAU)
		body.BlackbodyK = orbit.EffectiveTemperatureK(insol, body.AlbedoTotal)
		body.AverageBlackbodyK = body.BlackbodyK
		body.InsolationAvgWM2 = insol

		prevDelta = eval.TemperatureDeltaK
		obslog.Anomaly(logger, p.Seed, string(p.Type), "correction pass", map[string]any{
			"pass": pass, "delta_k": eval.TemperatureDeltaK, "semi_major_au": orb.SemiMajorAxisAU, "regenerated_atmosphere": pass == 0 || diverging,
		})
	}
	body.InhospitableFlag = true
	return comp, nil
}

func sign(v float64) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

// extractResources records every composite layer with a positive mass
// fraction as a resource (spec §4.2 stage 10), marked as a vein when it
// is under 5% of body mass; it does not restrict itself to the crust and
// does not classify layers as gem, ore or hydrocarbon. It adds halite when biosphereFlag
// indicates life-bearing oceans and elemental sulfur when
// magnetosphereFlag is set (a volcanic-outgassing proxy, since this
// pipeline has no standalone plate-tectonics simulation to derive sulfur
// deposits from directly).
func extractResources(r *reconstitute.Reconstitution, c *material.Composite, magnetosphere, biosphere bool) []Resource {
	var out []Resource
	for i, l := range c.Layers {
		if l.MassFraction <= 0 {
			continue
		}
		out = append(out, Resource{
			SubstanceName: l.SubstanceName,
			Proportion:    l.MassFraction,
			IsVein:        l.MassFraction < 0.05,
			Seed:          uint32(r.GetInt(reconstitute.IdxAtmosphereTraceRoll)) + uint32(i),
		})
	}
	if biosphere {
		out = append(out, Resource{SubstanceName: "halite", Proportion: 0.01, IsVein: true})
	}
	if magnetosphere {
		out = append(out, Resource{SubstanceName: "sulfur", Proportion: 0.01, IsVein: true})
	}
	return out
}

// SurfaceBody builds (or returns the cached) surface.Body view used by
// the pure query layer. This is the one per-planetoid derived value this
// package caches, per spec §5's "per-planetoid lazily computed scalars"
// - guarded here by sync.RWMutex rather than computed eagerly during
// Generate, since most callers never run a surface query at all.
func (p *Planetoid) SurfaceBody() surface.Body {
	p.mu.RLock()
	if p.cachedSurfaceBody != nil {
		b := *p.cachedSurfaceBody
		p.mu.RUnlock()
		return b
	}
	p.mu.RUnlock()

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cachedSurfaceBody == nil {
		var orbitalPeriodSeconds float64
		if p.Orbit != nil {
			orbitalPeriodSeconds = p.Orbit.OrbitalPeriodDays * 86400
		}

		stars := []surface.StarInsolation{{LuminousFluxWM2: p.InsolationAvgWM2, DirectionRad: 0}}

		satellites := make([]surface.SatelliteReflector, 0, len(p.Satellites))
		for _, m := range p.Satellites {
			satellites = append(satellites, surface.SatelliteReflector{
				DistanceM:     m.DistanceM,
				PeriodSeconds: m.PeriodDays * 86400,
				Albedo:        moonAlbedo(m.Type),
			})
		}

		b := surface.Body{
			Shape:                  p.Shape,
			Noise:                  p.Noise,
			SeaLevelM:              p.Hydrosphere.SeaLevelM,
			MeanSurfaceTempK:       p.AverageBlackbodyK,
			EquatorSurfaceTempK:    p.AverageBlackbodyK * orbit.EquatorialTemperatureFactor,
			PolarSurfaceTempK:      p.AverageBlackbodyK * (2 - orbit.EquatorialTemperatureFactor),
			BlackbodyPeriapsisK:    p.BlackbodyPeriapsisK,
			BlackbodyApoapsisK:     p.BlackbodyApoapsisK,
			RotationPeriodSeconds:  p.RotationPeriodSeconds,
			OrbitalPeriodSeconds:   orbitalPeriodSeconds,
			ObliquityDeg:           p.AxialTilt.ObliquityDeg,
			SurfacePressurePa:      p.Atmosphere.SurfacePressurePa,
			AverageElevationScaleM: p.MaxElevationM,
			Stars:                  stars,
			Satellites:             satellites,
		}
		p.cachedSurfaceBody = &b
	}
	return *p.cachedSurfaceBody
}

// moonAlbedo gives a representative Bond albedo per satellite material
// type, used only for the reflected-illumination term - molten lava
// worlds run dark, ordinary rocky/dwarf moons are middling, and the rest
// default to a mid-gray rocky estimate.
func moonAlbedo(t planettype.Type) float64 {
	switch t {
	case planettype.Lava, planettype.LavaDwarf:
		return 0.1
	case planettype.Carbon:
		return 0.05
	case planettype.Iron:
		return 0.15
	default:
		return 0.12
	}
}

// InvalidateTemperatureCaches clears the cached surface.Body view,
// forcing the next SurfaceBody call to rebuild it. Spec §3's lifecycle
// names rotational period, axial tilt, atmospheric pressure, and raster
// overlays as the only post-generation mutable fields, each of which
// must call this after mutation.
func (p *Planetoid) InvalidateTemperatureCaches() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cachedSurfaceBody = nil
}

// SetRotationPeriodSeconds mutates the rotational period, one of the
// lifecycle-mutable fields, and invalidates derived caches, per spec §3.
func (p *Planetoid) SetRotationPeriodSeconds(seconds float64) {
	p.mu.Lock()
	p.RotationPeriodSeconds = seconds
	p.mu.Unlock()
	p.InvalidateTemperatureCaches()
}

// SetAtmosphericPressurePa mutates surface pressure and invalidates
// derived caches.
func (p *Planetoid) SetAtmosphericPressurePa(pa float64) {
	p.mu.Lock()
	p.Atmosphere.SurfacePressurePa = pa
	p.mu.Unlock()
	p.InvalidateTemperatureCaches()
}
