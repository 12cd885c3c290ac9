package atmosphere

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thousandworlds/planetoid/internal/planettype"
	"github.com/thousandworlds/planetoid/internal/reconstitute"
)

func TestGeneratePathGiantIsPrimordial(t *testing.T) {
	r := reconstitute.New(1, reconstitute.DefaultTable)
	comp := GeneratePath(r, planettype.GasGiant, 25)
	assert.Greater(t, comp.SurfacePressurePa, 1e6)
}

func TestGeneratePathAsteroidIsTrace(t *testing.T) {
	r := reconstitute.New(1, reconstitute.DefaultTable)
	comp := GeneratePath(r, planettype.AsteroidSilicate, 0.01)
	assert.Less(t, comp.SurfacePressurePa, 20.0)
}

func TestGeneratePathTerrestrialScalesWithGravity(t *testing.T) {
	r1 := reconstitute.New(5, reconstitute.DefaultTable)
	r2 := reconstitute.New(5, reconstitute.DefaultTable)
	low := GeneratePath(r1, planettype.Terrestrial, 1)
	high := GeneratePath(r2, planettype.Terrestrial, 20)
	assert.Greater(t, high.SurfacePressurePa, low.SurfacePressurePa)
}

func TestCO2GreenhouseForcingFlooredAtZero(t *testing.T) {
	assert.Equal(t, 0.0, co2GreenhouseForcing(0))
	assert.Equal(t, 0.0, co2GreenhouseForcing(10)) // below reference baseline
}

func TestCO2GreenhouseForcingIncreasesWithPressure(t *testing.T) {
	low := co2GreenhouseForcing(80)
	high := co2GreenhouseForcing(800)
	assert.Greater(t, high, low)
}

func TestCoupleWithHydrosphereConvergesWithinBound(t *testing.T) {
	comp := Composition{
		PartialPressurePa: map[string]float64{"carbon_dioxide": 500},
		SurfacePressurePa: 1e5,
		BondAlbedo:        0.3,
	}
	result, passes := CoupleWithHydrosphere(comp, 0.6, 288)
	assert.LessOrEqual(t, passes, 10)
	assert.GreaterOrEqual(t, result.PartialPressurePa["carbon_dioxide"], 0.0)
}

func TestCoupleWithHydrosphereAlbedoStaysInRange(t *testing.T) {
	comp := Composition{
		PartialPressurePa: map[string]float64{"carbon_dioxide": 2000},
		BondAlbedo:        0.3,
	}
	result, _ := CoupleWithHydrosphere(comp, 1.0, 320)
	assert.GreaterOrEqual(t, result.BondAlbedo, 0.0)
	assert.LessOrEqual(t, result.BondAlbedo, 1.0)
}
