// Package overlay specifies the raster-overlay contract (spec §6): a
// body may carry auxiliary image layers (a painted biome map, a
// hand-authored political map) that this module treats as opaque byte
// blobs it neither decodes nor generates - the spec's Design Notes call
// for images to stay byte-opaque rather than decoded into an in-memory
// pixel buffer the generator would otherwise need an image codec to
// produce.
package overlay

import "github.com/thousandworlds/planetoid/internal/perr"

// Format identifies the encoding of an overlay's bytes without this
// package ever needing to parse them.
type Format string

const (
	FormatPNG Format = "png"
	FormatUnknown Format = "unknown"
)

// Overlay is one opaque raster layer.
type Overlay struct {
	Name   string
	Format Format
	Bytes  []byte
}

// Validate checks only what the spec requires this module to check: that
// the blob is non-empty and tagged with a recognized format. It does not
// decode the bytes - a corrupt PNG still passes Validate and only
// surfaces as a decode failure to whatever downstream consumer actually
// renders it (spec §7's "overlay decode failure" is explicitly a
// consumer-side error, not one this module can detect).
func Validate(o Overlay) error {
	if len(o.Bytes) == 0 {
		return perr.New(perr.CodeInvalidInput, "overlay %q has no data", o.Name)
	}
	if o.Format == "" || o.Format == FormatUnknown {
		return perr.New(perr.CodeInvalidInput, "overlay %q has unrecognized format", o.Name)
	}
	return nil
}
