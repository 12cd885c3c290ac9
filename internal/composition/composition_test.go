package composition

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thousandworlds/planetoid/internal/planettype"
)

func TestCrustFractionCapped(t *testing.T) {
	f := crustFraction(1000) // tiny radius would blow past the cap uncapped
	assert.LessOrEqual(t, f, crustFractionCap)
}

func TestCrustFractionShrinksWithRadius(t *testing.T) {
	small := crustFraction(1e6)
	large := crustFraction(1e8)
	assert.Greater(t, small, large)
}

func TestTableFractionsNearOne(t *testing.T) {
	types := []planettype.Type{
		planettype.Terrestrial, planettype.Iron, planettype.Carbon, planettype.Dwarf,
		planettype.GasGiant, planettype.IceGiant, planettype.AsteroidMetal,
		planettype.AsteroidSilicate, planettype.AsteroidCarbon, planettype.Comet,
	}
	for _, ty := range types {
		layers := Table(ty, 6.371e6, 288)
		sum := 0.0
		for _, l := range layers {
			sum += l.MassFraction
		}
		assert.InDelta(t, 1.0, sum, 0.01, "type %s", ty)
	}
}

func TestGiantHasNoCrustLayerNamedCrust(t *testing.T) {
	layers := Table(planettype.GasGiant, 7e7, 150)
	assert.Len(t, layers, 4)
}
