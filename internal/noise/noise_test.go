package noise

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewSetIndependentChannels(t *testing.T) {
	s := NewSet(1, 2, 3, 4, 5, 6)
	a := s.Elevation.Noise2D(0.5, 0.5)
	b := s.MountainRidge.Noise2D(0.5, 0.5)
	assert.NotEqual(t, a, b)
}

func TestSameSeedsProduceSameSamples(t *testing.T) {
	s1 := NewSet(10, 20, 30, 40, 50, 60)
	s2 := NewSet(10, 20, 30, 40, 50, 60)
	assert.Equal(t, s1.Elevation.Noise2D(1, 1), s2.Elevation.Noise2D(1, 1))
}

func TestElevationTransformFixedPoints(t *testing.T) {
	assert.Equal(t, 0.0, ElevationTransform(0))
	assert.InDelta(t, 1.0, ElevationTransform(1), 1e-9)
	assert.InDelta(t, -1.0, ElevationTransform(-1), 1e-9)
}

func TestRidgedTransformRange(t *testing.T) {
	v := RidgedTransform(0.3)
	assert.InDelta(t, 0.7, v, 1e-9)
	v2 := RidgedTransform(-0.3)
	assert.InDelta(t, 0.7, v2, 1e-9)
}
