// Package noise provides the six independent noise channels the surface
// generator draws from: elevation, mountain-ridge, mountain-mask,
// precipitation macro, precipitation micro, and humidity (spec §4.4).
//
// Each channel wraps its own github.com/aquilax/go-perlin generator,
// seeded independently so the channels never correlate with each other
// even though they share a master seed upstream. This is a direct
// generalization of the teacher's internal/worldgen/geography/noise.go,
// which wraps a single perlin.NewPerlin(2, 2, 3, seed) generator behind a
// Noise2D(x, y) method - here the same wrapper is instantiated six times,
// once per channel, with per-channel alpha/beta/octave parameters to
// match each channel's intended texture (elevation is low-octave/smooth,
// ridges are high-octave/sharp).
package noise

import "github.com/aquilax/go-perlin"

// Channel is one independently-seeded noise generator.
type Channel struct {
	gen *perlin.Perlin
}

// newChannel builds a Channel with the given fractal parameters
// (alpha controls amplitude falloff per octave, beta controls frequency
// growth per octave, n is octave count), matching the teacher's
// perlin.NewPerlin(alpha, beta, n, seed) call shape.
func newChannel(alpha, beta float64, n int32, seed int64) Channel {
	return Channel{gen: perlin.NewPerlin(alpha, beta, n, seed)}
}

// Noise2D samples the channel at (x, y), returning a value nominally in
// [-1, 1].
func (c Channel) Noise2D(x, y float64) float64 {
	return c.gen.Noise2D(x, y)
}

// Set is all six channels for one planetary body, each independently
// seeded off the body's master seed via the reconstitution service so
// that two bodies generated from different seeds never share texture,
// and the same body regenerated from the same seed always reproduces
// identical terrain.
type Set struct {
	Elevation     Channel
	MountainRidge Channel
	MountainMask  Channel
	PrecipMacro   Channel
	PrecipMicro   Channel
	Humidity      Channel
}

// NewSet builds a Set from six independent sub-seeds. All channels share
// alpha=2 and beta=2 and differ only in octave count: mountain-ridge is
// the sharpest at 7 octaves, then precipitation-micro (6), elevation (5),
// humidity (4), and mountain-mask and precipitation-macro (3 each).
func NewSet(seedElevation, seedRidge, seedMask, seedPrecipMacro, seedPrecipMicro, seedHumidity int64) Set {
	return Set{
		Elevation:     newChannel(2, 2, 5, seedElevation),
		MountainRidge: newChannel(2, 2, 7, seedRidge),
		MountainMask:  newChannel(2, 2, 3, seedMask),
		PrecipMacro:   newChannel(2, 2, 3, seedPrecipMacro),
		PrecipMicro:   newChannel(2, 2, 6, seedPrecipMicro),
		Humidity:      newChannel(2, 2, 4, seedHumidity),
	}
}

// ElevationTransform applies the spec's post-transform to a raw elevation
// sample: n <- 0.5*n*(n^2+1). This scales each sample by 0.5*(n^2+1),
// halving values near zero while leaving n=0 and n=+-1 fixed, so
// low-relief terrain flattens relative to peaks and trenches.
func ElevationTransform(n float64) float64 {
	return 0.5 * n * (n*n + 1)
}

// RidgedTransform folds a raw noise sample into a ridge: 1 - |n|, biasing
// the result toward sharp high-value ridgelines at n's zero-crossings.
func RidgedTransform(n float64) float64 {
	v := n
	if v < 0 {
		v = -v
	}
	return 1 - v
}
