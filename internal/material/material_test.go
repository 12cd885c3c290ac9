package material

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thousandworlds/planetoid/internal/substance"
)

func TestNewCompositeNormalizesFractions(t *testing.T) {
	reg := substance.NewDefaultRegistry()
	mass := new(big.Float).SetFloat64(1e24)
	c, err := NewComposite(reg, mass, []Layer{
		{SubstanceName: "iron", MassFraction: 0.33, TemperatureK: 5000},
		{SubstanceName: "silicate_rock", MassFraction: 0.66, TemperatureK: 2000},
	})
	require.NoError(t, err)

	sum := 0.0
	for _, l := range c.Layers {
		sum += l.MassFraction
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
}

func TestNewCompositeRejectsBadFractions(t *testing.T) {
	reg := substance.NewDefaultRegistry()
	mass := new(big.Float).SetFloat64(1e24)
	_, err := NewComposite(reg, mass, []Layer{
		{SubstanceName: "iron", MassFraction: 0.1, TemperatureK: 5000},
	})
	assert.Error(t, err)
}

func TestBulkDensityMissingSubstance(t *testing.T) {
	reg := substance.NewDefaultRegistry()
	mass := new(big.Float).SetFloat64(1e24)
	c, err := NewComposite(reg, mass, []Layer{
		{SubstanceName: "unobtainium", MassFraction: 1.0, TemperatureK: 300},
	})
	require.NoError(t, err)
	_, err = c.BulkDensityKgM3()
	assert.Error(t, err)
}

func TestLayerMassKg(t *testing.T) {
	reg := substance.NewDefaultRegistry()
	mass := new(big.Float).SetFloat64(1e24)
	c, err := NewComposite(reg, mass, []Layer{
		{SubstanceName: "iron", MassFraction: 0.5, TemperatureK: 5000},
		{SubstanceName: "silicate_rock", MassFraction: 0.5, TemperatureK: 2000},
	})
	require.NoError(t, err)

	m, ok := c.LayerMassKg("iron")
	require.True(t, ok)
	f, _ := m.Float64()
	assert.InDelta(t, 5e23, f, 1e18)
}

func TestMassClosure(t *testing.T) {
	reg := substance.NewDefaultRegistry()
	mass := new(big.Float).SetFloat64(5.972e24)
	c, err := NewComposite(reg, mass, []Layer{
		{SubstanceName: "iron", MassFraction: 0.325, TemperatureK: 5000},
		{SubstanceName: "silicate_rock", MassFraction: 0.675, TemperatureK: 2000},
	})
	require.NoError(t, err)

	var sum big.Float
	for _, l := range c.Layers {
		m, _ := c.LayerMassKg(l.SubstanceName)
		sum.Add(&sum, m)
	}
	diff := new(big.Float).Sub(&sum, mass)
	diffF, _ := diff.Float64()
	massF, _ := mass.Float64()
	assert.Less(t, diffF/massF, 1e-9)
}
