// Package material implements the layered composite material model (spec
// §4.3/§3): a body's core/mantle/crust layers, each a named substance
// with a mass fraction, composed into a single effective density and mass
// the rest of the pipeline treats as one body.
//
// Grounded on the teacher's internal/ecosystem/geology.go root struct
// shape (composed sub-structs behind a single entity, spec mass/density
// fields tracked alongside shape), generalized from "tile heightmap plus
// plate tectonics" to "radially layered composite sphere."
package material

import (
	"math"
	"math/big"

	"github.com/thousandworlds/planetoid/internal/perr"
	"github.com/thousandworlds/planetoid/internal/substance"
)

// Layer is one radial shell of a body: a named substance and the mass
// fraction of the whole body it accounts for.
type Layer struct {
	SubstanceName string
	MassFraction  float64 // of total body mass, in [0, 1]
	TemperatureK  float64
}

// Composite is the full layered material model for one body.
type Composite struct {
	Layers   []Layer
	TotalMassKg *big.Float
	registry substance.Registry
}

// NewComposite validates that layer mass fractions sum to ~1 and builds a
// Composite. Fractions are renormalized if they sum to within 1% of 1,
// matching the spec's "proportional redistribution fallback" for crust
// fraction overflow (spec §4.3); fractions further off than that are
// treated as a caller bug.
func NewComposite(reg substance.Registry, totalMassKg *big.Float, layers []Layer) (*Composite, error) {
	sum := 0.0
	for _, l := range layers {
		sum += l.MassFraction
	}
	if sum <= 0 {
		return nil, perr.New(perr.CodeNumericalDegeneracy, "composite mass fractions sum to %f", sum)
	}
	if math.Abs(sum-1) > 0.01 {
		return nil, perr.New(perr.CodeInvalidInput, "composite mass fractions sum to %f, want ~1", sum)
	}
	norm := make([]Layer, len(layers))
	for i, l := range layers {
		l.MassFraction /= sum
		norm[i] = l
	}
	return &Composite{Layers: norm, TotalMassKg: totalMassKg, registry: reg}, nil
}

// BulkDensityKgM3 returns the mass-fraction-weighted harmonic mean of
// each layer's solid density - the correct average for layers at
// constant total volume with varying per-layer density, as opposed to an
// arithmetic mean which would only be correct at constant mass per layer.
func (c *Composite) BulkDensityKgM3() (float64, error) {
	var inv float64
	for _, l := range c.Layers {
		s, ok := c.registry.Lookup(l.SubstanceName)
		if !ok {
			return 0, perr.New(perr.CodeMissingCollaborator, "substance %q not found in registry", l.SubstanceName)
		}
		density := s.DensitySolidKgM3
		if l.TemperatureK > s.MeltingPointK {
			density = s.DensityLiquidKgM3
		}
		if density <= 0 {
			return 0, perr.New(perr.CodeNumericalDegeneracy, "substance %q has non-positive density", l.SubstanceName)
		}
		inv += l.MassFraction / density
	}
	if inv <= 0 {
		return 0, perr.New(perr.CodeNumericalDegeneracy, "composite density sum is non-positive")
	}
	return 1 / inv, nil
}

// LayerMassKg returns the absolute mass of one named layer.
func (c *Composite) LayerMassKg(name string) (*big.Float, bool) {
	for _, l := range c.Layers {
		if l.SubstanceName == name {
			frac := new(big.Float).SetFloat64(l.MassFraction)
			return new(big.Float).Mul(c.TotalMassKg, frac), true
		}
	}
	return nil, false
}

// VolumeM3 derives the body's volume from total mass and bulk density:
// V = m / rho. Used to cross-check the shape's own volume formula as a
// mass-closure invariant (spec §8).
func (c *Composite) VolumeM3() (float64, error) {
	density, err := c.BulkDensityKgM3()
	if err != nil {
		return 0, err
	}
	massKg, _ := c.TotalMassKg.Float64()
	return massKg / density, nil
}
