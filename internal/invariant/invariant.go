// Package invariant checks the structural invariants of spec §3 (mass
// closure, shape validity, orbit sanity) in debug builds, per spec §7:
// "internal assertions on the invariants of §3 should be checked in
// debug builds."
//
// Adapted from the teacher's internal/debug package: the same bitmask
// flag gate (atomic-guarded, category flags, a package-level Is check
// before doing any work) is kept, but the categories are renamed from
// the teacher's profiling/subsystem concerns (Perf/Logic/Geology/
// Tectonics/Weather) to this pipeline's own check categories, and Log
// becomes Check: instead of conditionally writing a log line, it
// conditionally runs an assertion function and returns its error.
package invariant

import (
	"sync/atomic"
)

// Flag is a bitmask category of invariant checks.
type Flag uint32

const (
	None Flag = 0
	Mass Flag = 1 << iota
	Shape
	Orbit
	Atmosphere
	All = Mass | Shape | Orbit | Atmosphere
)

var activeFlags atomic.Uint32

// SetFlags replaces the active check set.
func SetFlags(f Flag) { activeFlags.Store(uint32(f)) }

// Enable turns on the given categories in addition to whatever is active.
func Enable(f Flag) { activeFlags.Or(uint32(f)) }

// Disable turns off the given categories.
func Disable(f Flag) { activeFlags.And(^uint32(f)) }

// Is reports whether f is currently active (any bit set in common).
func Is(f Flag) bool {
	return Flag(activeFlags.Load())&f != 0
}

// Check runs fn only if f is active, returning its error - the
// invariant-checking analogue of the teacher's conditional-logging Log
// helper. Callers wrap a cheap assertion closure so the check cost
// (typically an O(n) scan, e.g. summing mass fractions) is paid only in
// debug builds that opted into that category.
func Check(f Flag, fn func() error) error {
	if !Is(f) {
		return nil
	}
	return fn()
}
