package hydrosphere

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thousandworlds/planetoid/internal/reconstitute"
)

func flatTiles(n int, elevStep float64) []Tile {
	tiles := make([]Tile, n)
	for i := range tiles {
		tiles[i] = Tile{ElevationM: float64(i) * elevStep, AreaM2: 1.0}
	}
	return tiles
}

func TestGenerateProducesSeaLevelWithinTerrainRange(t *testing.T) {
	r := reconstitute.New(3, reconstitute.DefaultTable)
	tiles := flatTiles(100, 100)
	res := Generate(r, tiles, 5.972e24, 5500, 288, 273.15)

	assert.GreaterOrEqual(t, res.SeaLevelM, 0.0)
	assert.LessOrEqual(t, res.SeaLevelM, 100.0*100)
}

func TestFreezeBelowThresholdProducesIce(t *testing.T) {
	r := reconstitute.New(3, reconstitute.DefaultTable)
	tiles := flatTiles(50, 50)
	res := Generate(r, tiles, 5.972e24, 5500, 200, 273.15) // well below freezing
	assert.Greater(t, res.SurfaceIceFraction+res.DeepIceFraction, 0.0)
}

func TestWarmBodyProducesNoIce(t *testing.T) {
	r := reconstitute.New(3, reconstitute.DefaultTable)
	tiles := flatTiles(50, 50)
	res := Generate(r, tiles, 5.972e24, 5500, 300, 273.15)
	assert.Equal(t, 0.0, res.SurfaceIceFraction+res.DeepIceFraction)
}

func TestSeawaterFreshwaterSumToOne(t *testing.T) {
	r := reconstitute.New(9, reconstitute.DefaultTable)
	tiles := flatTiles(20, 10)
	res := Generate(r, tiles, 1e24, 5000, 288, 273.15)
	assert.InDelta(t, 1.0, res.SeawaterFraction+res.FreshwaterFraction, 1e-9)
}

func TestEmptyTilesNoPanic(t *testing.T) {
	r := reconstitute.New(1, reconstitute.DefaultTable)
	assert.NotPanics(t, func() {
		Generate(r, nil, 1e24, 5000, 288, 273.15)
	})
}
