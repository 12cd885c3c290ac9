package substance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRegistryLookup(t *testing.T) {
	reg := NewDefaultRegistry()
	water, ok := reg.Lookup("water")
	require.True(t, ok)
	assert.Equal(t, 273.15, water.MeltingPointK)
}

func TestLookupMissingReturnsFalse(t *testing.T) {
	reg := NewDefaultRegistry()
	_, ok := reg.Lookup("unobtainium")
	assert.False(t, ok)
}

func TestVaporPressureClampsToFittedRange(t *testing.T) {
	reg := NewDefaultRegistry()
	water, _ := reg.Lookup("water")
	atMin := water.VaporPressurePa(water.AntoineMinK)
	belowMin := water.VaporPressurePa(water.AntoineMinK - 50)
	assert.Equal(t, atMin, belowMin)
}

func TestVaporPressureIncreasesWithTemperature(t *testing.T) {
	reg := NewDefaultRegistry()
	water, _ := reg.Lookup("water")
	low := water.VaporPressurePa(280)
	high := water.VaporPressurePa(360)
	assert.Greater(t, high, low)
}

func TestAllReturnsEveryRegisteredSubstance(t *testing.T) {
	reg := NewDefaultRegistry()
	all := reg.All()
	assert.NotEmpty(t, all)

	names := map[string]bool{}
	for _, s := range all {
		names[s.Name] = true
	}
	assert.True(t, names["iron"])
	assert.True(t, names["water"])
}

func TestClassificationFlags(t *testing.T) {
	reg := NewDefaultRegistry()
	iron, _ := reg.Lookup("iron")
	assert.True(t, iron.IsMetalOre)

	diamond, _ := reg.Lookup("diamond")
	assert.True(t, diamond.IsGemstone)

	methane, _ := reg.Lookup("methane")
	assert.True(t, methane.IsHydrocarbon)
}
