package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateAcceptsNonEmptyRecognizedFormat(t *testing.T) {
	o := Overlay{Name: "biomes", Format: FormatPNG, Bytes: []byte{0x01}}
	assert.NoError(t, Validate(o))
}

func TestValidateRejectsEmptyBytes(t *testing.T) {
	o := Overlay{Name: "biomes", Format: FormatPNG}
	assert.Error(t, Validate(o))
}

func TestValidateRejectsUnknownFormat(t *testing.T) {
	o := Overlay{Name: "biomes", Format: FormatUnknown, Bytes: []byte{0x01}}
	assert.Error(t, Validate(o))
}

func TestValidateRejectsEmptyFormat(t *testing.T) {
	o := Overlay{Name: "biomes", Bytes: []byte{0x01}}
	assert.Error(t, Validate(o))
}

func TestValidateDoesNotInspectByteContent(t *testing.T) {
	// A corrupt/garbage PNG still passes: decoding is a consumer concern.
	o := Overlay{Name: "biomes", Format: FormatPNG, Bytes: []byte("not actually a png")}
	assert.NoError(t, Validate(o))
}
