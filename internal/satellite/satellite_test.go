package satellite

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thousandworlds/planetoid/internal/planettype"
	"github.com/thousandworlds/planetoid/internal/reconstitute"
)

func TestHillSphereZeroWithoutStar(t *testing.T) {
	assert.Equal(t, 0.0, HillSphereRadiusM(1e24, 0, 1e11))
}

func TestRocheLimitZeroForZeroDensity(t *testing.T) {
	assert.Equal(t, 0.0, RocheLimitM(6.4e6, 5500, 0))
}

func TestOrbitalPeriodPositive(t *testing.T) {
	p := OrbitalPeriodDays(5.972e24, 3.84e8)
	assert.Greater(t, p, 0.0)
}

func TestGenerateMoonsNoneWhenHillInsideRoche(t *testing.T) {
	r := reconstitute.New(1, reconstitute.DefaultTable)
	// Tiny Hill sphere (star very massive relative to host) collapses
	// below the Roche limit, so no moons should be produced.
	moons := GenerateMoons(r, planettype.Terrestrial, 1e20, 1e6, 3000, 1e31, 1e9)
	assert.Nil(t, moons)
}

func TestGenerateMoonsNoneForComets(t *testing.T) {
	r := reconstitute.New(1, reconstitute.DefaultTable)
	moons := GenerateMoons(r, planettype.Comet, 5.972e24, 6.371e6, 5500, 1.989e30, 1.5e11)
	assert.Nil(t, moons)
}

func TestGenerateMoonsDeterministic(t *testing.T) {
	r1 := reconstitute.New(77, reconstitute.DefaultTable)
	r2 := reconstitute.New(77, reconstitute.DefaultTable)
	m1 := GenerateMoons(r1, planettype.Terrestrial, 5.972e24, 6.371e6, 5500, 1.989e30, 1.5e11)
	m2 := GenerateMoons(r2, planettype.Terrestrial, 5.972e24, 6.371e6, 5500, 1.989e30, 1.5e11)
	assert.Equal(t, len(m1), len(m2))
	for i := range m1 {
		assert.Equal(t, m1[i].PeriapsisM, m2[i].PeriapsisM)
		assert.Equal(t, m1[i].Type, m2[i].Type)
		assert.Equal(t, m1[i].SeedForRecursion, m2[i].SeedForRecursion)
	}
}

func TestGenerateMoonsStayWithinHillSphereThird(t *testing.T) {
	r := reconstitute.New(99, reconstitute.DefaultTable)
	hostMass, hostRadius, hostDensity, starMass, semiMajor := 5.972e24, 6.371e6, 5500.0, 1.989e30, 1.5e11
	moons := GenerateMoons(r, planettype.Terrestrial, hostMass, hostRadius, hostDensity, starMass, semiMajor)
	hill := HillSphereRadiusM(hostMass, starMass, semiMajor)
	for _, m := range moons {
		assert.LessOrEqual(t, m.ApoapsisM+m.SphereOfInfluenceM, hill/3+1e-6)
	}
}

func TestGenerateMoonsRespectPerTypeBudget(t *testing.T) {
	r := reconstitute.New(100, reconstitute.DefaultTable)
	moons := GenerateMoons(r, planettype.GasGiant, 1.898e27, 7.1e7, 1300, 1.989e30, 7.78e11)
	assert.LessOrEqual(t, len(moons), 75)
}

func TestGenerateMoonsCloseToRocheAreLava(t *testing.T) {
	r := reconstitute.New(5, reconstitute.DefaultTable)
	hostRadius, hostDensity := 6.371e6, 6000.0
	roche := RocheLimitM(hostRadius, hostDensity, 3000)
	moons := GenerateMoons(r, planettype.Terrestrial, 5.972e24, hostRadius, hostDensity, 1.989e30, 1.5e11)
	if len(moons) > 0 && moons[0].PeriapsisM < 1.05*roche {
		assert.Equal(t, planettype.Lava, moons[0].Type)
	}
}

func TestDeriveChildSeedDiffersByIndex(t *testing.T) {
	a := deriveChildSeed(123, 0)
	b := deriveChildSeed(123, 1)
	assert.NotEqual(t, a, b)
}

func TestPhaseFractionFullAtZero(t *testing.T) {
	assert.InDelta(t, 1.0, PhaseFraction(0), 1e-9)
}

func TestPhaseFractionDarkAtHalfPeriod(t *testing.T) {
	assert.InDelta(t, 0.0, PhaseFraction(3.14159265), 1e-6)
}

func TestGenerateRingsNoneForAsteroids(t *testing.T) {
	r := reconstitute.New(2, reconstitute.DefaultTable)
	rings := GenerateRings(r, planettype.AsteroidSilicate, 5e5, 3000, 1000, 1e9)
	assert.Nil(t, rings)
}

func TestGenerateRingsNoneForDwarfsOrComets(t *testing.T) {
	r := reconstitute.New(2, reconstitute.DefaultTable)
	assert.Nil(t, GenerateRings(r, planettype.Dwarf, 1e6, 2000, 1000, 1e9))
	assert.Nil(t, GenerateRings(r, planettype.Comet, 1e4, 600, 1000, 1e9))
}

func TestGenerateRingsStayOutsideAtmosphereHeight(t *testing.T) {
	r := reconstitute.New(4, reconstitute.DefaultTable)
	rings := GenerateRings(r, planettype.GasGiant, 7e7, 1300, 1e5, 6e10)
	for _, ring := range rings {
		assert.GreaterOrEqual(t, ring.InnerRadiusM, 1e5)
		assert.Greater(t, ring.OuterRadiusM, ring.InnerRadiusM)
	}
}
