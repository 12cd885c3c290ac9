// Package hydrosphere generates a body's surface water distribution
// (spec §4.5): how much water a body holds, where the sea level sits
// against its terrain, and how that water splits between salt/fresh and
// liquid/ice.
//
// Grounded on the teacher's internal/worldgen/geography/types.go
// Heightmap (a flat per-tile elevation array with Get/Set), generalized
// here to a (elevation, area) tile sample pair so sea-level search is
// area-weighted rather than tile-count-weighted - a planet's tiles don't
// all cover equal surface area under most discretizations, and the spec
// calls specifically for tile-area weighting.
package hydrosphere

import (
	"math"
	"sort"

	"github.com/thousandworlds/planetoid/internal/reconstitute"
)

// Tile is one surface sample: its elevation (meters, relative to the
// body's mean radius) and the surface area it represents (m^2).
type Tile struct {
	ElevationM float64
	AreaM2     float64
}

// Result is the generated hydrosphere.
type Result struct {
	WaterMassRatio    float64 // fraction of total body mass that is water
	SeaLevelM         float64 // elevation at which water covers enough area to hold WaterVolumeM3
	OceanFractionArea float64 // fraction of total surface area below sea level
	SeawaterFraction  float64 // of total water mass
	FreshwaterFraction float64
	SurfaceIceFraction float64 // fraction of total water mass frozen at the surface shell
	DeepIceFraction    float64 // fraction frozen in a deep/subsurface shell
}

// Generate draws a water-mass ratio and searches tiles for the sea level
// that holds that much volume, then splits the result into salt/fresh and
// surface/deep ice fractions.
//
// bodyMassKg turns the drawn mass ratio into a water mass, which a fixed
// water density of 1000 kg/m^3 turns into a target volume
// (meanDensityKgM3 is accepted but not used); averageSurfaceTempK and
// freezeThresholdK decide how much
// of the total water mass is frozen rather than liquid.
func Generate(r *reconstitute.Reconstitution, tiles []Tile, bodyMassKg, meanDensityKgM3, averageSurfaceTempK, freezeThresholdK float64) Result {
	waterRatio := r.GetDouble(reconstitute.IdxWaterMassRatio)
	waterMassKg := waterRatio * bodyMassKg
	const waterDensityKgM3 = 1000.0
	targetVolumeM3 := waterMassKg / waterDensityKgM3

	seaLevel, oceanFraction := findSeaLevel(tiles, targetVolumeM3)

	seawaterFraction := r.GetDouble(reconstitute.IdxSurfaceWaterSplit)
	if seawaterFraction < 0 {
		seawaterFraction = 0
	}
	if seawaterFraction > 1 {
		seawaterFraction = 1
	}
	// IdxSurfaceWaterSplit's Spec centers near 0.055 (Earth's fraction of
	// fresh water); seawater is the complement.
	freshFraction := seawaterFraction
	seaFraction := 1 - freshFraction

	deepFraction := r.GetDouble(reconstitute.IdxHydrosphereDeepFraction)

	frozenFraction := 0.0
	if averageSurfaceTempK < freezeThresholdK {
		// linear ramp: fully frozen 20K below threshold, fully liquid at
		// threshold.
		frozenFraction = clamp01((freezeThresholdK-averageSurfaceTempK)/20.0)
	}
	surfaceIce := frozenFraction * (1 - deepFraction)
	deepIce := frozenFraction * deepFraction

	return Result{
		WaterMassRatio:     waterRatio,
		SeaLevelM:          seaLevel,
		OceanFractionArea:  oceanFraction,
		SeawaterFraction:   seaFraction,
		FreshwaterFraction: freshFraction,
		SurfaceIceFraction: surfaceIce,
		DeepIceFraction:    deepIce,
	}
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

// findSeaLevel binary-searches over tile elevations for the level at
// which the area-weighted volume below it (area * (seaLevel - elevation),
// for every tile under the candidate level) matches targetVolumeM3, the
// "tile-area-weighted sea-level search" the spec calls for.
func findSeaLevel(tiles []Tile, targetVolumeM3 float64) (seaLevelM, oceanFractionArea float64) {
	if len(tiles) == 0 || targetVolumeM3 <= 0 {
		return minElevation(tiles), 0
	}

	sorted := make([]Tile, len(tiles))
	copy(sorted, tiles)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ElevationM < sorted[j].ElevationM })

	lo, hi := sorted[0].ElevationM, sorted[len(sorted)-1].ElevationM
	volumeAt := func(level float64) (vol, areaCovered, totalArea float64) {
		for _, t := range sorted {
			totalArea += t.AreaM2
			if t.ElevationM < level {
				vol += t.AreaM2 * (level - t.ElevationM)
				areaCovered += t.AreaM2
			}
		}
		return
	}

	for i := 0; i < 60; i++ {
		mid := (lo + hi) / 2
		vol, _, _ := volumeAt(mid)
		if vol < targetVolumeM3 {
			lo = mid
		} else {
			hi = mid
		}
	}
	level := (lo + hi) / 2
	_, areaCovered, totalArea := volumeAt(level)
	if totalArea == 0 {
		return level, 0
	}
	return level, areaCovered / totalArea
}

func minElevation(tiles []Tile) float64 {
	if len(tiles) == 0 {
		return 0
	}
	m := math.Inf(1)
	for _, t := range tiles {
		if t.ElevationM < m {
			m = t.ElevationM
		}
	}
	return m
}
