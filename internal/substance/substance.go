// Package substance provides the substance registry: the lookup service
// the generation pipeline treats as an external collaborator (spec §6) for
// the physical and chemical constants of the materials planetary bodies
// are made of and wrapped in.
//
// The shape follows the teacher's mineral catalog
// (internal/worldgen/minerals/types.go): a small struct of named physical
// constants plus a set of predefined package-level values, generalized
// from "ore deposits" (Name, FormationType, BaseValue, Hardness) to the
// wider set of properties the spec's atmosphere, hydrosphere and
// composition components all need (melting/boiling point, a
// temperature-dependent vapor pressure curve, liquid/solid density,
// greenhouse potential, and three boolean classification flags).
package substance

import "math"

// Substance is one named material's full set of physical constants, as
// specified in spec §6.
type Substance struct {
	Name string

	MeltingPointK float64
	BoilingPointK float64

	// DensityLiquidKgM3 and DensitySolidKgM3 are bulk densities in the
	// respective phase at standard pressure.
	DensityLiquidKgM3 float64
	DensitySolidKgM3  float64

	// GreenhousePotential is a dimensionless per-mole radiative forcing
	// multiplier relative to CO2 (CO2 itself is defined as 1.0).
	GreenhousePotential float64

	// Antoine coefficients for log10(P_mmHg) = A - B/(C+T_celsius), valid
	// on [AntoineMinK, AntoineMaxK]. VaporPressure clamps its input to
	// this range rather than extrapolating the fit outside it.
	AntoineA, AntoineB, AntoineC float64
	AntoineMinK, AntoineMaxK     float64

	IsGemstone    bool
	IsMetalOre    bool
	IsHydrocarbon bool
}

// VaporPressurePa returns the equilibrium vapor pressure in pascals at
// temperature tK, via the Antoine equation. Temperatures outside the
// fitted range are clamped to the nearest bound rather than extrapolated,
// since the fit coefficients have no physical meaning past their range.
func (s Substance) VaporPressurePa(tK float64) float64 {
	t := tK
	if t < s.AntoineMinK {
		t = s.AntoineMinK
	}
	if t > s.AntoineMaxK {
		t = s.AntoineMaxK
	}
	tc := t - 273.15
	logP := s.AntoineA - s.AntoineB/(s.AntoineC+tc)
	mmHg := math.Pow(10, logP)
	return mmHg * 133.322 // mmHg -> Pa
}

// Registry is the lookup contract the rest of the pipeline depends on.
// The pipeline never constructs a Substance directly; it always asks a
// Registry by name, so a caller embedding this module can swap in a
// database-backed registry without touching generation code.
type Registry interface {
	Lookup(name string) (Substance, bool)
	All() []Substance
}

// memRegistry is the in-memory reference implementation, populated with
// the fixed set of substances the generation components reference by
// name (water, the major atmospheric gases, silicate rock, iron, and a
// handful of ices relevant to outer-system bodies).
type memRegistry struct {
	byName map[string]Substance
}

// NewDefaultRegistry returns a Registry preloaded with the substances
// referenced throughout internal/atmosphere, internal/hydrosphere and
// internal/composition.
func NewDefaultRegistry() Registry {
	list := []Substance{
		{
			Name: "water", MeltingPointK: 273.15, BoilingPointK: 373.15,
			DensityLiquidKgM3: 1000, DensitySolidKgM3: 917,
			GreenhousePotential: 0.1,
			AntoineA: 8.07131, AntoineB: 1730.63, AntoineC: 233.426,
			AntoineMinK: 255, AntoineMaxK: 373,
		},
		{
			Name: "carbon_dioxide", MeltingPointK: 216.58, BoilingPointK: 194.65, // sublimes at 1 atm
			DensityLiquidKgM3: 1101, DensitySolidKgM3: 1562,
			GreenhousePotential: 1.0,
			AntoineA: 6.81228, AntoineB: 1301.679, AntoineC: -3.494,
			AntoineMinK: 154, AntoineMaxK: 196,
		},
		{
			Name: "nitrogen", MeltingPointK: 63.15, BoilingPointK: 77.36,
			DensityLiquidKgM3: 807, DensitySolidKgM3: 1026,
			GreenhousePotential: 0,
			AntoineA: 6.49457, AntoineB: 255.68, AntoineC: -6.6,
			AntoineMinK: 63, AntoineMaxK: 126,
		},
		{
			Name: "oxygen", MeltingPointK: 54.36, BoilingPointK: 90.19,
			DensityLiquidKgM3: 1141, DensitySolidKgM3: 1426,
			GreenhousePotential: 0,
			AntoineA: 6.69144, AntoineB: 319.01, AntoineC: -6.45,
			AntoineMinK: 54, AntoineMaxK: 155,
		},
		{
			Name: "methane", MeltingPointK: 90.7, BoilingPointK: 111.7,
			DensityLiquidKgM3: 422.6, DensitySolidKgM3: 522.7,
			GreenhousePotential: 28,
			AntoineA: 6.61184, AntoineB: 389.93, AntoineC: -7.16,
			AntoineMinK: 91, AntoineMaxK: 190,
			IsHydrocarbon: true,
		},
		{
			Name: "ammonia", MeltingPointK: 195.4, BoilingPointK: 239.8,
			DensityLiquidKgM3: 682, DensitySolidKgM3: 817,
			GreenhousePotential: 0,
			AntoineA: 7.55466, AntoineB: 1002.711, AntoineC: 247.885,
			AntoineMinK: 179, AntoineMaxK: 261,
		},
		{
			Name: "sulfur_dioxide", MeltingPointK: 197.6, BoilingPointK: 263.1,
			DensityLiquidKgM3: 1377, DensitySolidKgM3: 1940,
			GreenhousePotential: 0,
			AntoineA: 4.37798, AntoineB: 668.225, AntoineC: -33.4,
			AntoineMinK: 210, AntoineMaxK: 280,
		},
		{
			Name: "silicate_rock", MeltingPointK: 1873, BoilingPointK: 3000,
			DensityLiquidKgM3: 2700, DensitySolidKgM3: 3000,
			GreenhousePotential: 0,
			AntoineMinK: 1873, AntoineMaxK: 1873,
		},
		{
			Name: "iron", MeltingPointK: 1811, BoilingPointK: 3134,
			DensityLiquidKgM3: 6980, DensitySolidKgM3: 7874,
			GreenhousePotential: 0,
			AntoineMinK: 1811, AntoineMaxK: 1811,
			IsMetalOre: true,
		},
		{
			Name: "carbon_graphite", MeltingPointK: 3915, BoilingPointK: 4300,
			DensityLiquidKgM3: 1600, DensitySolidKgM3: 2260,
			GreenhousePotential: 0,
			AntoineMinK: 3915, AntoineMaxK: 3915,
		},
		{
			Name: "water_ice", MeltingPointK: 273.15, BoilingPointK: 373.15,
			DensityLiquidKgM3: 1000, DensitySolidKgM3: 917,
			GreenhousePotential: 0.1,
			AntoineMinK: 200, AntoineMaxK: 273,
		},
		{
			Name: "diamond", MeltingPointK: 3820, BoilingPointK: 5100,
			DensityLiquidKgM3: 3100, DensitySolidKgM3: 3515,
			GreenhousePotential: 0,
			AntoineMinK: 3820, AntoineMaxK: 3820,
			IsGemstone: true,
		},
	}
	m := make(map[string]Substance, len(list))
	for _, s := range list {
		m[s.Name] = s
	}
	return &memRegistry{byName: m}
}

func (r *memRegistry) Lookup(name string) (Substance, bool) {
	s, ok := r.byName[name]
	return s, ok
}

func (r *memRegistry) All() []Substance {
	out := make([]Substance, 0, len(r.byName))
	for _, s := range r.byName {
		out = append(out, s)
	}
	return out
}
