package naca

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidShape indicates shape parameters outside the 4-digit family.
	ErrInvalidShape = errors.New("naca: invalid shape parameters")
	// ErrTooFewPoints indicates a point count below 2.
	ErrTooFewPoints = errors.New("naca: point count must be at least 2")
	// ErrNoLeadingEdge indicates no row after the first lies on x = 0.
	ErrNoLeadingEdge = errors.New("naca: no leading edge found")
	// ErrInvalidDesignation indicates a designation which is not four digits.
	ErrInvalidDesignation = errors.New("naca: designation must have 4 digits")
)

// ShapeError reports which shape parameter is invalid, and why.
type ShapeError struct {
	Param  string  // name of the offending parameter
	Value  float64 // value as given by the caller
	Reason string
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("%s: %s = %g: %s", ErrInvalidShape, e.Param, e.Value, e.Reason)
}

func (e *ShapeError) Unwrap() error {
	return ErrInvalidShape
}
