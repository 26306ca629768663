package quantity

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedUnit is returned when a unit outside the kind's closed set,
	// including the Undefined sentinel, is used for conversion or lookup.
	ErrUnsupportedUnit = errors.New("unsupported unit")

	// ErrMalformedQuantity is returned when input has no separable number and unit.
	ErrMalformedQuantity = errors.New("malformed quantity string")

	// ErrInvalidNumber is returned when the numeric token does not parse under
	// the culture's separator rules.
	ErrInvalidNumber = errors.New("invalid numeric literal")

	// ErrUnrecognizedUnit is returned when the unit token resolves to no unit of the kind.
	ErrUnrecognizedUnit = errors.New("unrecognized unit")

	// ErrInvalidCulture is returned when a culture name is not a valid BCP 47 tag.
	ErrInvalidCulture = errors.New("invalid culture")
)

// UnsupportedUnitError describes a unit that is not a member of a kind's table.
type UnsupportedUnitError struct {
	Kind string
	Unit string
}

func (e *UnsupportedUnitError) Error() string {
	return fmt.Sprintf("%s: %s has no unit %s", ErrUnsupportedUnit, e.Kind, e.Unit)
}

func (e *UnsupportedUnitError) Unwrap() error {
	return ErrUnsupportedUnit
}

// ParseError carries the diagnostic context of a failed parse.
type ParseError struct {
	// Kind is one of ErrMalformedQuantity, ErrInvalidNumber or ErrUnrecognizedUnit.
	Kind error
	// Quantity is the name of the quantity kind being parsed.
	Quantity string
	// Input is the raw, untrimmed input.
	Input string
	// Token is the offending token, if the failure is attributable to one.
	Token string
	// Culture describes the culture the input was parsed with.
	Culture string
	// Err is the underlying cause, if any.
	Err error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("%s: %s %q (culture %s)", e.Kind, e.Quantity, e.Input, e.Culture)
	if e.Token != "" {
		msg += fmt.Sprintf(": token %q", e.Token)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}
