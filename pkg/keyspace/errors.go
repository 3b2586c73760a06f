package keyspace

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidType reports an argument of the wrong kind, such as a
	// charset element that is not a single character.
	ErrInvalidType = errors.New("invalid type")
	// ErrInvalidValue reports an argument outside its domain.
	ErrInvalidValue = errors.New("invalid value")
	// ErrEntropyUnavailable reports that the cryptographic random source
	// could not be read.
	ErrEntropyUnavailable = errors.New("secure random source unavailable")
)

// ValidationError describes which argument failed validation. It matches
// ErrInvalidType or ErrInvalidValue with errors.Is.
type ValidationError struct {
	Param  string
	Reason string
	Kind   error
	Cause  error
}

func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: %s: %s", e.Kind, e.Param, e.Reason)
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *ValidationError) Unwrap() []error {
	if e.Cause != nil {
		return []error{e.Kind, e.Cause}
	}
	return []error{e.Kind}
}

func invalidValue(param, reason string) error {
	return &ValidationError{Param: param, Reason: reason, Kind: ErrInvalidValue}
}

func invalidType(param, reason string, cause error) error {
	return &ValidationError{Param: param, Reason: reason, Kind: ErrInvalidType, Cause: cause}
}

// TypeError wraps a decoding failure for param as ErrInvalidType. It is used
// by callers that accept untyped input (config files, flags).
func TypeError(param string, cause error) error {
	return invalidType(param, "malformed input", cause)
}
