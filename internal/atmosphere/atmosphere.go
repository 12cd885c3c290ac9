// Package atmosphere generates a body's atmosphere (spec §4.6): one of
// four composition paths depending on body type, then an
// atmosphere-hydrosphere coupling loop (the carbon-silicate cycle and an
// albedo-cloud feedback term; no condensation/evaporation exchange),
// bounded at ten passes.
//
// Grounded on internal/ecosystem/atmosphere/service.go's Atmosphere
// struct (CO2Mass/N2Mass/O2Mass, a logarithmic CO2-greenhouse-forcing
// term worth ~3C per doubling) - generalized here from a
// continuously-simulated, mutex-guarded running atmosphere to a single
// generation-time computation, since this pipeline is one-shot rather
// than a live ecosystem tick (spec §5: no background simulation).
package atmosphere

import (
	"math"

	"github.com/thousandworlds/planetoid/internal/planettype"
	"github.com/thousandworlds/planetoid/internal/reconstitute"
)

// greenhouseGuessK is a documented magic number from the spec's Design
// Notes: the initial greenhouse-forcing guess used to seed the
// atmosphere-hydrosphere coupling loop before it has run any passes.
// The spec flags this constant as empirical rather than derived and
// asks that it be kept, not re-derived.
const greenhouseGuessK = 30.0

// GreenhouseGuessK exposes greenhouseGuessK to callers outside this
// package (the correction loop's target-temperature transform needs to
// subtract the same initial guess the coupling loop itself seeds with).
const GreenhouseGuessK = greenhouseGuessK

// Composition is a body's atmosphere, expressed as partial surface
// pressure per gas (Pa) plus the derived totals the rest of the pipeline
// needs.
type Composition struct {
	PartialPressurePa map[string]float64
	SurfacePressurePa float64
	GreenhouseForcingK float64
	BondAlbedo        float64
}

// GeneratePath chooses one of the spec's four generation paths by body
// type: primordial-retained (giants), outgassed-secondary (terrestrial/
// carbon/iron), trace (dwarf/asteroid - too little gravity to retain
// anything but trace gas), or volatile-sublimation (comet, near
// perihelion).
func GeneratePath(r *reconstitute.Reconstitution, t planettype.Type, surfaceGravityMS2 float64) Composition {
	switch {
	case t.IsGiant():
		return primordialPath()
	case t == planettype.Comet:
		return sublimationPath(r)
	case t.IsAsteroidOrComet() || t == planettype.Dwarf || t == planettype.LavaDwarf:
		return tracePath(r)
	default:
		return outgassedPath(r, surfaceGravityMS2)
	}
}

func primordialPath() Composition {
	return Composition{
		PartialPressurePa: map[string]float64{
			"nitrogen": 0, "methane": 2e7, "water": 5e6,
		},
		SurfacePressurePa:  2.5e7,
		GreenhouseForcingK: 0, // opaque deep atmosphere; no discrete surface greenhouse term
		BondAlbedo:         0.5,
	}
}

func outgassedPath(r *reconstitute.Reconstitution, surfaceGravityMS2 float64) Composition {
	// retained fraction scales with surface gravity: low-gravity rocky
	// bodies lose outgassed volatiles to escape faster than they
	// accumulate them.
	retained := clamp01(surfaceGravityMS2 / 15.0)
	co2 := 9e4 * retained
	n2 := 1e5 * retained
	o2 := 2e4 * retained * r.GetDouble(reconstitute.IdxAtmosphereTraceRoll)
	total := co2 + n2 + o2
	return Composition{
		PartialPressurePa: map[string]float64{
			"carbon_dioxide": co2, "nitrogen": n2, "oxygen": o2,
		},
		SurfacePressurePa:  total,
		GreenhouseForcingK: co2GreenhouseForcing(co2),
		BondAlbedo:         0.3,
	}
}

func tracePath(r *reconstitute.Reconstitution) Composition {
	roll := r.GetDouble(reconstitute.IdxAtmosphereTraceRoll)
	total := roll * 10 // at most ~10 Pa: a whisper of outgassed trace atmosphere
	return Composition{
		PartialPressurePa: map[string]float64{"carbon_dioxide": total},
		SurfacePressurePa: total,
		BondAlbedo:        0.1,
	}
}

func sublimationPath(r *reconstitute.Reconstitution) Composition {
	roll := r.GetDouble(reconstitute.IdxAtmosphereTraceRoll)
	co2 := roll * 500
	return Composition{
		PartialPressurePa: map[string]float64{"carbon_dioxide": co2, "water": co2 * 0.4},
		SurfacePressurePa: co2 * 1.4,
		BondAlbedo:        0.05,
	}
}

// co2GreenhouseForcing is the logarithmic forcing-per-doubling term
// adapted from the teacher's updateDerivedProperties: roughly 3C per
// doubling of CO2 partial pressure above a reference baseline, floored
// at zero for sub-baseline atmospheres.
func co2GreenhouseForcing(co2PartialPa float64) float64 {
	const referencePa = 40.0 // modern Earth-ish reference CO2 partial pressure
	if co2PartialPa <= 0 {
		return 0
	}
	f := 3.0 * math.Log2(co2PartialPa/referencePa)
	if f < 0 {
		return 0
	}
	return f
}

// CoupleWithHydrosphere runs the atmosphere-hydrosphere feedback loop
// (carbon-silicate weathering drawdown of CO2 and an albedo-cloud
// feedback term), for at most ten passes or until the greenhouse forcing
// stabilizes to within 0.01K, whichever comes first - matching the spec's
// explicit bound on the correction loop. No gas condenses into or
// evaporates from surface water here: only the CO2 partial pressure,
// the albedo and the forcing change.
func CoupleWithHydrosphere(comp Composition, oceanFractionArea float64, baseTempK float64) (Composition, int) {
	forcing := comp.GreenhouseForcingK
	if forcing == 0 {
		forcing = greenhouseGuessK
	}
	passes := 0
	for ; passes < 10; passes++ {
		// carbon-silicate cycle: more ocean area draws down more CO2 as
		// temperature (and thus weathering rate) rises, a negative
		// feedback that damps runaway greenhouse forcing.
		weatheringDrawdown := oceanFractionArea * 0.02 * math.Max(0, baseTempK+forcing-288)
		co2 := comp.PartialPressurePa["carbon_dioxide"] - weatheringDrawdown
		if co2 < 0 {
			co2 = 0
		}
		comp.PartialPressurePa["carbon_dioxide"] = co2
		newForcing := co2GreenhouseForcing(co2)

		// albedo-cloud feedback: more ocean area exposed to warmth grows
		// more cloud cover, which raises albedo and damps the forcing
		// further.
		comp.BondAlbedo = clamp01(comp.BondAlbedo + 0.05*oceanFractionArea*(newForcing-forcing)/100)

		if math.Abs(newForcing-forcing) < 0.01 {
			forcing = newForcing
			passes++
			break
		}
		forcing = newForcing
	}
	comp.GreenhouseForcingK = forcing
	return comp, passes
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
