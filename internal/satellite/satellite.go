// Package satellite generates a body's moons (recursively, within its
// Hill sphere) and rings (spec §4.8/§4.9).
//
// Grounded on the teacher's internal/worldgen/astronomy/satellites.go:
// the RocheLimitFactor constant and Kepler's third law for orbital
// period are reused directly; this package generalizes
// the teacher's flat, uniformly-banded Satellite list into the spec's
// iterative Hill-sphere-filling walk, since the spec treats a large
// captured moon as itself a full recursive body-generation call rather
// than a leaf record, and bounds each primary's satellite count by a
// per-type budget instead of a single generic probability band.
package satellite

import (
	"math"

	"github.com/google/uuid"
	"github.com/thousandworlds/planetoid/internal/planettype"
	"github.com/thousandworlds/planetoid/internal/reconstitute"
)

// RocheLimitFactor is reused verbatim from the teacher's
// astronomy/satellites.go.
const (
	RocheLimitFactor      = 2.5
	gravitationalConstant = 6.674e-11
)

// Salts distinguish independent per-item draw roles that share the same
// Reconstitution.DrawAt item index (the Nth satellite, the Nth ring).
const (
	saltMoonPeriapsis    uint64 = 1
	saltMoonEccentricity uint64 = 2
	saltMoonType         uint64 = 3
	saltRingMaterial     uint64 = 10
	saltRingInner        uint64 = 11
	saltRingDepth        uint64 = 12
)

// Moon is one satellite: its own identity, orbital geometry around the
// primary, the material type the Roche-proximity draw assigned it, and
// (recursively) its own Planetoid seed - the caller is expected to feed
// SeedForRecursion into the same pipeline entry point used for top-level
// bodies.
type Moon struct {
	ID   uuid.UUID
	Type planettype.Type

	// DistanceM is retained as an alias of PeriapsisM for callers that
	// only want a single representative orbital distance.
	DistanceM          float64
	PeriapsisM         float64
	ApoapsisM          float64
	Eccentricity       float64
	SphereOfInfluenceM float64
	MaxMassKg          float64
	PeriodDays         float64
	SeedForRecursion   uint32
}

// HillSphereRadiusM returns the distance within which a body of mass
// hostMassKg, orbiting a star of mass starMassKg at semiMajorAxisM, can
// retain satellites against the star's tidal pull.
func HillSphereRadiusM(hostMassKg, starMassKg, semiMajorAxisM float64) float64 {
	if starMassKg <= 0 {
		return 0
	}
	return semiMajorAxisM * math.Cbrt(hostMassKg/(3*starMassKg))
}

// RocheLimitM returns the distance inside which tidal forces from a body
// of hostMassKg/hostRadiusM would disrupt a satellite of
// satelliteDensityKgM3, using RocheLimitFactor as the fluid-satellite
// approximation's leading constant.
func RocheLimitM(hostRadiusM, hostDensityKgM3, satelliteDensityKgM3 float64) float64 {
	if satelliteDensityKgM3 <= 0 {
		return 0
	}
	return hostRadiusM * RocheLimitFactor * math.Cbrt(hostDensityKgM3/satelliteDensityKgM3)
}

// SphereOfInfluenceM returns the distance out to which a satellite of
// massKg, orbiting hostMassKg at distanceM, dominates local gravity over
// its host - the same cube-root scaling as a Hill sphere, applied to the
// satellite/host pair instead of the host/star pair.
func SphereOfInfluenceM(massKg, hostMassKg, distanceM float64) float64 {
	if hostMassKg <= 0 || massKg <= 0 || distanceM <= 0 {
		return 0
	}
	return distanceM * math.Cbrt(massKg/(3*hostMassKg))
}

// OrbitalPeriodDays applies Kepler's third law for a satellite at
// distanceM around a primary of hostMassKg.
func OrbitalPeriodDays(hostMassKg, distanceM float64) float64 {
	if hostMassKg <= 0 {
		return 0
	}
	periodSeconds := 2 * math.Pi * math.Sqrt(math.Pow(distanceM, 3)/(gravitationalConstant*hostMassKg))
	return periodSeconds / 86400
}

// moonBudget returns the maximum number of satellites a primary of type
// t may retain (spec §4.8's per-type satellite budget): gas giants keep
// the most, ice giants fewer, ordinary rocky primaries a handful,
// minor-body primaries at most one, and comets none at all.
func moonBudget(t planettype.Type) int {
	switch {
	case t == planettype.GasGiant:
		return 75
	case t == planettype.IceGiant:
		return 40
	case t == planettype.Comet:
		return 0
	case t.IsAsteroidOrComet():
		return 1
	default:
		return 5
	}
}

// moonType assigns a satellite's own material type (spec §4.8 step 4):
// a moon drawn very close to its primary's Roche limit is tidally
// flexed into a molten lava-dwarf; one drawn merely close is a lava
// world; everything farther out draws from the standard distribution of
// small rocky bodies.
func moonType(r *reconstitute.Reconstitution, index int, periapsisM, rocheM float64) planettype.Type {
	if rocheM > 0 {
		ratio := periapsisM / rocheM
		switch {
		case ratio < 1.02:
			return planettype.LavaDwarf
		case ratio < 1.3:
			return planettype.Lava
		}
	}

	roll := r.DrawAt(saltMoonType, index, reconstitute.Spec{Kind: reconstitute.Uniform, Min: 0, Max: 1})
	switch {
	case roll < 0.60:
		return planettype.Dwarf
	case roll < 0.80:
		return planettype.Terrestrial
	case roll < 0.90:
		return planettype.Carbon
	default:
		return planettype.Iron
	}
}

// GenerateMoons walks outward from the primary's surface to its Hill
// sphere, placing one satellite per iteration until the budget for
// hostType is exhausted, the next candidate's periapsis would exceed
// the containment ceiling, or a candidate's apoapsis plus sphere of
// influence would pass that ceiling (spec §4.8): each satellite's periapsis is
// drawn uniformly within the remaining band, its eccentricity half-
// normal but clamped so its apoapsis cannot exceed that ceiling, its
// maximum mass capped so the primary-satellite barycenter stays inside
// the primary, and its type biased toward molten by Roche proximity.
// The next satellite's inner edge is then advanced past this one's
// apoapsis plus sphere of influence, so satellites never overlap each
// other's gravitational domain (invariant: apoapsis + SOI <= hill/3).
func GenerateMoons(r *reconstitute.Reconstitution, hostType planettype.Type, hostMassKg, hostRadiusM, hostDensityKgM3, starMassKg, semiMajorAxisM float64) []Moon {
	hill := HillSphereRadiusM(hostMassKg, starMassKg, semiMajorAxisM)
	roche := RocheLimitM(hostRadiusM, hostDensityKgM3, 3000)
	if hill <= roche {
		return nil
	}

	budget := moonBudget(hostType)
	if budget == 0 {
		return nil
	}

	minPeri := hostRadiusM + 20.0
	maxApo := hill / 3
	if maxApo <= 0 {
		maxApo = hostRadiusM * 100
	}

	moons := make([]Moon, 0, budget)
	for i := 0; i < budget; i++ {
		if minPeri > maxApo {
			break
		}

		periUnit := r.DrawAt(saltMoonPeriapsis, i, reconstitute.Spec{Kind: reconstitute.Uniform, Min: 0, Max: 1})
		periapsis := minPeri + periUnit*(maxApo-minPeri)

		k := maxApo / periapsis
		eccMax := 0.0
		if k > 1 {
			eccMax = (k - 1) / (k + 1)
		}
		ecc := r.DrawAt(saltMoonEccentricity, i, reconstitute.Spec{Kind: reconstitute.HalfNormal, Mean: 0, Sigma: 0.05})
		if ecc > eccMax {
			ecc = eccMax
		}

		semiMajor := periapsis / (1 - ecc)
		apoapsis := semiMajor * (1 + ecc)

		maxMassKg := hostMassKg * hostRadiusM / periapsis // keeps the two-body barycenter inside the primary

		t := moonType(r, i, periapsis, roche)
		soi := SphereOfInfluenceM(maxMassKg, hostMassKg, periapsis)
		if apoapsis+soi > maxApo {
			break
		}
		period := OrbitalPeriodDays(hostMassKg, semiMajor)

		moons = append(moons, Moon{
			ID:                 uuid.New(),
			Type:               t,
			DistanceM:          periapsis,
			PeriapsisM:         periapsis,
			ApoapsisM:          apoapsis,
			Eccentricity:       ecc,
			SphereOfInfluenceM: soi,
			MaxMassKg:          maxMassKg,
			PeriodDays:         period,
			SeedForRecursion:   deriveChildSeed(r.Seed(), i),
		})

		minPeri = apoapsis + soi
	}
	return moons
}

// PhaseAngleRad approximates a moon's star-moon-primary phase angle at
// elapsed time tSeconds, treating its orbit as circular over periodDays
// for the purpose of the illumination query's reflected-light term
// (spec §2/§4.10's satellite-phase query).
func PhaseAngleRad(periodDays, tSeconds float64) float64 {
	if periodDays <= 0 {
		return 0
	}
	periodSeconds := periodDays * 86400
	frac := math.Mod(tSeconds, periodSeconds) / periodSeconds
	if frac < 0 {
		frac += 1
	}
	return frac * 2 * math.Pi
}

// PhaseFraction converts a phase angle to an illuminated-fraction
// multiplier: full at phase 0 (moon opposite its primary from the
// star's point of view, fully lit), dark at phase pi (moon between the
// star and the point being illuminated).
func PhaseFraction(phaseAngleRad float64) float64 {
	return (1 + math.Cos(phaseAngleRad)) / 2
}

// deriveChildSeed derives a satellite's own master seed from its
// primary's seed and index, so that regenerating the same primary always
// regenerates bit-identical moons in the same order, while two different
// moons of the same primary never share a seed.
func deriveChildSeed(parentSeed uint32, index int) uint32 {
	z := uint64(parentSeed)<<16 ^ uint64(uint32(index))*0x2545F4914F6CDD1D
	z = (z ^ (z >> 33)) * 0xFF51AFD7ED558CCD
	z = (z ^ (z >> 33)) * 0xC4CEB9FE1A85EC53
	z = z ^ (z >> 33)
	return uint32(z)
}

// Ring is one ring band around a body (spec §4.9): an annulus between an
// inner and outer radius, inside the Roche limit where accreted material
// cannot coalesce into a moon.
type Ring struct {
	Material     string // "icy" or "rocky"
	InnerRadiusM float64
	OuterRadiusM float64
	OpticalDepth float64
}

const (
	icyParticleDensityKgM3   = 900.0
	rockyParticleDensityKgM3 = 3000.0
	ringOuterLimitFactor     = 1.26
)

// ringOuterLimitM is the spec's outer boundary where ring material of
// particleDensityKgM3 can no longer hold together against the planet's
// tidal field, capped at a third of the Hill radius so a ring system
// never reaches into territory satellites are entitled to.
func ringOuterLimitM(planetRadiusM, planetDensityKgM3, particleDensityKgM3, hillRadiusM float64) float64 {
	limit := ringOuterLimitFactor * planetRadiusM * math.Cbrt(planetDensityKgM3/particleDensityKgM3)
	if cap := hillRadiusM / 3; cap > 0 && limit > cap {
		limit = cap
	}
	return limit
}

// GenerateRings places a ring system for planet type t, if any: asteroids,
// comets, and dwarf-class bodies (including lava dwarfs) never have
// rings; giants retain one with 0.9 probability, everything else
// ringable with 0.1 (spec §4.9). Ring count is half-normal around one;
// each ring independently draws icy or rocky material, and successive
// rings are packed outward from atmosphereHeightM, each consuming its
// own band out to its material's outer limit before the next ring
// starts.
func GenerateRings(r *reconstitute.Reconstitution, t planettype.Type, planetRadiusM, planetDensityKgM3, atmosphereHeightM, hillRadiusM float64) []Ring {
	if t.NeverRinged() {
		return nil
	}

	threshold := 0.1
	countIdx := reconstitute.IdxRingCountOther
	if t.IsGiant() {
		threshold = 0.9
		countIdx = reconstitute.IdxRingCountGiant
	}
	if r.GetDouble(reconstitute.IdxRingPresenceRoll) >= threshold {
		return nil
	}

	count := int(math.Round(r.GetDouble(countIdx)))
	if count < 1 {
		count = 1
	}

	icyOuter := ringOuterLimitM(planetRadiusM, planetDensityKgM3, icyParticleDensityKgM3, hillRadiusM)
	rockyOuter := ringOuterLimitM(planetRadiusM, planetDensityKgM3, rockyParticleDensityKgM3, hillRadiusM)
	outerBound := math.Max(icyOuter, rockyOuter)
	if outerBound <= atmosphereHeightM {
		return nil
	}

	rings := make([]Ring, 0, count)
	remainingInner := atmosphereHeightM
	for i := 0; i < count && remainingInner < outerBound; i++ {
		isIcy := r.DrawAt(saltRingMaterial, i, reconstitute.Spec{Kind: reconstitute.Uniform, Min: 0, Max: 1}) < 0.5
		material := "rocky"
		bandOuter := rockyOuter
		if isIcy {
			material = "icy"
			bandOuter = icyOuter
		}
		if bandOuter <= remainingInner {
			continue
		}

		bandWidth := bandOuter - remainingInner
		innerFrac := r.DrawAt(saltRingInner, i, reconstitute.Spec{Kind: reconstitute.Uniform, Min: 0, Max: 1})
		ringInner := remainingInner + innerFrac*bandWidth*0.5
		ringOuter := ringInner + bandWidth*0.5
		if ringOuter > bandOuter {
			ringOuter = bandOuter
		}

		depthRoll := r.DrawAt(saltRingDepth, i, reconstitute.Spec{Kind: reconstitute.Uniform, Min: 0, Max: 1})
		rings = append(rings, Ring{
			Material:     material,
			InnerRadiusM: ringInner,
			OuterRadiusM: ringOuter,
			OpticalDepth: 0.1 + depthRoll*0.4,
		})
		remainingInner = ringOuter
	}
	return rings
}
