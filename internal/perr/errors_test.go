package perr

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewProducesFormattedMessage(t *testing.T) {
	err := New(CodeInvalidInput, "seed %d is zero", 0)
	assert.Contains(t, err.Error(), "INVALID_INPUT")
	assert.Contains(t, err.Error(), "seed 0 is zero")
}

func TestWrapPreservesCauseForUnwrap(t *testing.T) {
	cause := errors.New("boom")
	err := Wrap(CodeNumericalDegeneracy, cause, "division collapsed")
	assert.ErrorIs(t, err, cause)
}

func TestIsMatchesCode(t *testing.T) {
	err := New(CodeInfeasible, "no body satisfied constraints")
	assert.True(t, Is(err, CodeInfeasible))
	assert.False(t, Is(err, CodeInvalidInput))
}

func TestIsFalseForPlainError(t *testing.T) {
	assert.False(t, Is(errors.New("plain"), CodeInvalidInput))
}
