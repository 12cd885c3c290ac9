// Package composition builds a body's core/mantle/crust layer set from
// its type and radius (spec §4.3), handing the result to
// internal/material for density/mass resolution.
//
// Grounded on the teacher's internal/worldgen/minerals (the substance
// names referenced here are the ones internal/substance registers) and
// on internal/ecosystem/geology.go's pattern of building a composite
// structure from a handful of named sub-parts rather than a flat field
// list.
package composition

import (
	"math"

	"github.com/thousandworlds/planetoid/internal/material"
	"github.com/thousandworlds/planetoid/internal/planettype"
)

// crustFractionCap is the spec's ceiling on crust mass fraction,
// preventing the 400000/r^1.6 formula from assigning an unphysically
// thick crust to small bodies.
const crustFractionCap = 0.2

// crustFraction implements the spec's radius-dependent crust mass
// fraction: smaller bodies cool faster relative to their volume and so
// carry proportionally thicker crusts, capped so the formula doesn't
// exceed a physically sane bound as radius shrinks toward zero.
func crustFraction(radiusM float64) float64 {
	f := 400000 / math.Pow(radiusM, 1.6)
	if f > crustFractionCap {
		f = crustFractionCap
	}
	if f < 0 {
		f = 0
	}
	return f
}

// Table returns the core/mantle/crust layer template for the given body
// type and radius. Fractions here need not sum to exactly 1 before
// material.NewComposite normalizes them - this is the "proportional
// redistribution fallback" the spec calls for when the crust-fraction
// formula and the type table's core/mantle split don't land exactly on
// 1 together.
func Table(t planettype.Type, radiusM float64, surfaceTempK float64) []material.Layer {
	switch t {
	case planettype.Terrestrial:
		crust := crustFraction(radiusM)
		return []material.Layer{
			{SubstanceName: "iron", MassFraction: 0.325, TemperatureK: 5000},
			{SubstanceName: "silicate_rock", MassFraction: 0.675 - crust, TemperatureK: 2000},
			{SubstanceName: "silicate_rock", MassFraction: crust, TemperatureK: surfaceTempK},
		}
	case planettype.Iron:
		crust := crustFraction(radiusM)
		return []material.Layer{
			{SubstanceName: "iron", MassFraction: 0.85 - crust, TemperatureK: 5000},
			{SubstanceName: "silicate_rock", MassFraction: 0.15, TemperatureK: 2000},
			{SubstanceName: "iron", MassFraction: crust, TemperatureK: surfaceTempK},
		}
	case planettype.Carbon:
		crust := crustFraction(radiusM)
		return []material.Layer{
			{SubstanceName: "iron", MassFraction: 0.3, TemperatureK: 5000},
			{SubstanceName: "carbon_graphite", MassFraction: 0.7 - crust, TemperatureK: 2000},
			{SubstanceName: "diamond", MassFraction: crust, TemperatureK: surfaceTempK},
		}
	case planettype.Dwarf:
		crust := crustFraction(radiusM)
		return []material.Layer{
			{SubstanceName: "iron", MassFraction: 0.2, TemperatureK: 1500},
			{SubstanceName: "water_ice", MassFraction: 0.8 - crust, TemperatureK: 150},
			{SubstanceName: "water_ice", MassFraction: crust, TemperatureK: surfaceTempK},
		}
	case planettype.GasGiant:
		return []material.Layer{
			{SubstanceName: "iron", MassFraction: 0.05, TemperatureK: 20000},
			{SubstanceName: "silicate_rock", MassFraction: 0.15, TemperatureK: 10000},
			{SubstanceName: "water_ice", MassFraction: 0.3, TemperatureK: 3000},
			{SubstanceName: "nitrogen", MassFraction: 0.5, TemperatureK: surfaceTempK},
		}
	case planettype.IceGiant:
		return []material.Layer{
			{SubstanceName: "iron", MassFraction: 0.1, TemperatureK: 15000},
			{SubstanceName: "silicate_rock", MassFraction: 0.2, TemperatureK: 8000},
			{SubstanceName: "water_ice", MassFraction: 0.5, TemperatureK: 2000},
			{SubstanceName: "methane", MassFraction: 0.2, TemperatureK: surfaceTempK},
		}
	case planettype.AsteroidMetal:
		return []material.Layer{
			{SubstanceName: "iron", MassFraction: 1.0, TemperatureK: surfaceTempK},
		}
	case planettype.AsteroidSilicate:
		return []material.Layer{
			{SubstanceName: "silicate_rock", MassFraction: 0.9, TemperatureK: surfaceTempK},
			{SubstanceName: "iron", MassFraction: 0.1, TemperatureK: surfaceTempK},
		}
	case planettype.AsteroidCarbon:
		return []material.Layer{
			{SubstanceName: "carbon_graphite", MassFraction: 0.6, TemperatureK: surfaceTempK},
			{SubstanceName: "silicate_rock", MassFraction: 0.4, TemperatureK: surfaceTempK},
		}
	case planettype.Comet:
		return []material.Layer{
			{SubstanceName: "water_ice", MassFraction: 0.7, TemperatureK: surfaceTempK},
			{SubstanceName: "carbon_dioxide", MassFraction: 0.2, TemperatureK: surfaceTempK},
			{SubstanceName: "silicate_rock", MassFraction: 0.1, TemperatureK: surfaceTempK},
		}
	default:
		return []material.Layer{
			{SubstanceName: "silicate_rock", MassFraction: 1.0, TemperatureK: surfaceTempK},
		}
	}
}
