// Package perr provides the structured error type returned across the
// generation pipeline and surface query layer.
//
// Unlike a web service, the core never needs an HTTP status: failures are
// reported to the caller as one of a small set of machine-readable codes
// (see the Code* constants below), each matching a failure kind named in the
// specification's error handling design: infeasible generation, a missing
// collaborator, invalid input, or a numerical degeneracy.
package perr

import (
	"errors"
	"fmt"
)

// Code is a machine-readable error classification.
type Code string

const (
	// CodeInvalidInput marks non-finite seeds, negative masses, or
	// contradictory parameter records (e.g. MinTemperature > MaxTemperature).
	CodeInvalidInput Code = "INVALID_INPUT"

	// CodeInfeasible marks exhaustion of the habitability retry budget
	// (spec: 100 attempts) with no satisfying body found.
	CodeInfeasible Code = "INFEASIBLE"

	// CodeMissingCollaborator marks a data-store lookup that returned no
	// value for a referenced star or satellite.
	CodeMissingCollaborator Code = "MISSING_COLLABORATOR"

	// CodeNumericalDegeneracy marks a zero-radius, zero-atmosphere, or
	// zero-rotational-period body entering a branch that would otherwise
	// divide by zero.
	CodeNumericalDegeneracy Code = "NUMERICAL_DEGENERACY"
)

// GenError is the structured error type returned by this module's
// exported functions.
type GenError struct {
	Code    Code
	Message string
	Err     error
}

func (e *GenError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap supports errors.Is / errors.As error-chain inspection.
func (e *GenError) Unwrap() error {
	return e.Err
}

// New builds a GenError with no wrapped cause.
func New(code Code, format string, args ...any) *GenError {
	return &GenError{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap builds a GenError around an existing error, preserving it for
// errors.Is / errors.As.
func Wrap(code Code, err error, format string, args ...any) *GenError {
	return &GenError{Code: code, Message: fmt.Sprintf(format, args...), Err: err}
}

// Is reports whether err carries the given code, walking the error chain.
func Is(err error, code Code) bool {
	var ge *GenError
	if errors.As(err, &ge) {
		return ge.Code == code
	}
	return false
}
