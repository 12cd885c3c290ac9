package surface

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thousandworlds/planetoid/internal/noise"
	"github.com/thousandworlds/planetoid/internal/shape"
)

func testBody() Body {
	return Body{
		Shape:                  shape.Ellipsoid{EquatorialRadiusM: 6.371e6, Flattening: 0.0034},
		Noise:                  noise.NewSet(1, 2, 3, 4, 5, 6),
		SeaLevelM:              0,
		MeanSurfaceTempK:       288,
		EquatorSurfaceTempK:    300,
		PolarSurfaceTempK:      240,
		BlackbodyPeriapsisK:    295,
		BlackbodyApoapsisK:     281,
		RotationPeriodSeconds:  86400,
		OrbitalPeriodSeconds:   365.25 * 86400,
		ObliquityDeg:           23.4,
		SurfacePressurePa:      101325,
		AverageElevationScaleM: 5000,
		Stars:                  []StarInsolation{{LuminousFluxWM2: 1361, DirectionRad: 0}},
	}
}

func TestTemperatureHigherAtEquatorThanPole(t *testing.T) {
	b := testBody()
	equator := TemperatureAtK(b, 0, 0, 0)
	pole := TemperatureAtK(b, 0, 89, 0)
	assert.Greater(t, equator, pole)
}

func TestAtmosphericPressureDecreasesWithElevation(t *testing.T) {
	b := testBody()
	low := AtmosphericPressureAtM(b, 0)
	high := AtmosphericPressureAtM(b, 5000)
	assert.Greater(t, low, high)
}

func TestAtmosphericPressureZeroForVacuum(t *testing.T) {
	b := testBody()
	b.SurfacePressurePa = 0
	assert.Equal(t, 0.0, AtmosphericPressureAtM(b, 0))
}

func TestSunriseSunsetContinuousPolarNight(t *testing.T) {
	b := testBody()
	b.ObliquityDeg = 90 // guarantees |tan(lat)*tan(decl)| >= 1 somewhere in the year
	// a quarter orbit puts the declination at +90 degrees, so the far
	// southern latitudes are in polar night
	sunrise, sunset := SunriseSunset(b, b.OrbitalPeriodSeconds/4, -89)
	assert.Nil(t, sunrise)
	if assert.NotNil(t, sunset) {
		assert.Equal(t, 0.0, *sunset)
	}
}

func TestSunriseSunsetMidLatitudeHasBothEvents(t *testing.T) {
	b := testBody()
	sunrise, sunset := SunriseSunset(b, 0, 45)
	if assert.NotNil(t, sunrise) && assert.NotNil(t, sunset) {
		assert.Greater(t, *sunset, *sunrise)
		assert.Greater(t, *sunrise, 0.0)
	}
}

func TestPrecipitationNonNegative(t *testing.T) {
	b := testBody()
	p := PrecipitationAt(b, 0, 10, 20, 0)
	assert.GreaterOrEqual(t, p.AmountMM, 0.0)
}

func TestPrecipitationBelowFreezingIsSnow(t *testing.T) {
	b := testBody()
	b.BlackbodyPeriapsisK = 0
	b.BlackbodyApoapsisK = 0
	b.MeanSurfaceTempK = 200
	b.EquatorSurfaceTempK = 210
	b.PolarSurfaceTempK = 180
	p := PrecipitationAt(b, 0, 80, 0, 0)
	assert.True(t, p.IsSnow)
}

func TestHumidityWithinUnitRange(t *testing.T) {
	b := testBody()
	h := HumidityAt(b, 10, 20)
	assert.GreaterOrEqual(t, h, 0.0)
	assert.LessOrEqual(t, h, 1.0)
}

func TestResourceRichnessWithinUnitRange(t *testing.T) {
	b := testBody()
	v := ResourceRichnessAt(b, 10, 20)
	assert.GreaterOrEqual(t, v, 0.0)
	assert.LessOrEqual(t, v, 1.0)
}

func TestSlopeNonNegative(t *testing.T) {
	b := testBody()
	s := SlopeAt(b, 30, 40)
	assert.GreaterOrEqual(t, s, 0.0)
}

func TestIlluminationZeroWithoutStars(t *testing.T) {
	b := testBody()
	b.Stars = nil
	b.Satellites = nil
	assert.Equal(t, 0.0, IlluminationAt(b, 0, 0, 0))
}

func TestIlluminationNonNegative(t *testing.T) {
	b := testBody()
	v := IlluminationAt(b, 0, 0, 0)
	assert.GreaterOrEqual(t, v, 0.0)
}

func TestIlluminationDegradesSilentlyWithoutSatellites(t *testing.T) {
	b := testBody()
	b.Satellites = nil
	assert.NotPanics(t, func() { IlluminationAt(b, 1000, 10, 10) })
}
