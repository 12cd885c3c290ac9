package invariant

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckSkippedWhenDisabled(t *testing.T) {
	SetFlags(None)
	called := false
	err := Check(Mass, func() error {
		called = true
		return errors.New("should not run")
	})
	assert.NoError(t, err)
	assert.False(t, called)
}

func TestCheckRunsWhenEnabled(t *testing.T) {
	SetFlags(Mass)
	defer SetFlags(None)

	err := Check(Mass, func() error { return errors.New("boom") })
	assert.Error(t, err)
}

func TestEnableDisableToggle(t *testing.T) {
	SetFlags(None)
	Enable(Shape)
	assert.True(t, Is(Shape))
	assert.False(t, Is(Orbit))

	Disable(Shape)
	assert.False(t, Is(Shape))
}

func TestAllCoversEveryCategory(t *testing.T) {
	SetFlags(All)
	defer SetFlags(None)
	assert.True(t, Is(Mass))
	assert.True(t, Is(Shape))
	assert.True(t, Is(Orbit))
	assert.True(t, Is(Atmosphere))
}
