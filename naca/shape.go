package naca

import (
	"fmt"
	"math"
	"strings"

	"github.com/npillmayer/airfoil"
)

// ShapeParameters describe a 4-digit section, every value in percent of chord.
// Values are immutable once constructed by NewShape or ParseDesignation.
// The zero value is not a valid shape (thickness is 0).
type ShapeParameters struct {
	maxCamber float64
	camberPos float64
	thickness float64
}

// NewShape validates and creates shape parameters.
//
// Thickness must be > 0. Camber and camber position are either both > 0, or
// both ≤ 0, in which case the section is symmetric and both are set to 0.
// A positive camber without a positive position (or vice versa) is rejected.
func NewShape(maxCamber, camberPos, thickness float64) (ShapeParameters, error) {
	for _, v := range []struct {
		name  string
		value float64
	}{{"thickness", thickness}, {"max camber", maxCamber}, {"camber position", camberPos}} {
		if !airfoil.Finite(v.value) {
			return ShapeParameters{}, &ShapeError{Param: v.name, Value: v.value, Reason: "must be a finite number"}
		}
	}
	if thickness <= 0 {
		return ShapeParameters{}, &ShapeError{Param: "thickness", Value: thickness,
			Reason: "thickness of airfoil must be greater than zero"}
	}
	if maxCamber <= 0 && camberPos <= 0 {
		return ShapeParameters{thickness: thickness}, nil
	}
	if maxCamber <= 0 {
		return ShapeParameters{}, &ShapeError{Param: "max camber", Value: maxCamber,
			Reason: fmt.Sprintf("must be positive for camber position %g", camberPos)}
	}
	if camberPos <= 0 {
		return ShapeParameters{}, &ShapeError{Param: "camber position", Value: camberPos,
			Reason: fmt.Sprintf("must be positive for max camber %g", maxCamber)}
	}
	if camberPos >= 100 {
		return ShapeParameters{}, &ShapeError{Param: "camber position", Value: camberPos,
			Reason: "must lie within the chord (< 100)"}
	}
	return ShapeParameters{maxCamber: maxCamber, camberPos: camberPos, thickness: thickness}, nil
}

// MustShape is like NewShape, but panics on invalid parameters.
// Intended for constants and tests.
func MustShape(maxCamber, camberPos, thickness float64) ShapeParameters {
	s, err := NewShape(maxCamber, camberPos, thickness)
	if err != nil {
		panic(err)
	}
	return s
}

// MaxCamber is the maximum camber in percent of chord.
func (s ShapeParameters) MaxCamber() float64 { return s.maxCamber }

// CamberPos is the chordwise position of the maximum camber in percent of chord.
func (s ShapeParameters) CamberPos() float64 { return s.camberPos }

// Thickness is the maximum thickness in percent of chord.
func (s ShapeParameters) Thickness() float64 { return s.thickness }

// IsSymmetric is true for sections without camber.
func (s ShapeParameters) IsSymmetric() bool {
	return s.maxCamber == 0 && s.camberPos == 0
}

// valid re-checks the invariants, catching zero values.
func (s ShapeParameters) valid() error {
	_, err := NewShape(s.maxCamber, s.camberPos, s.thickness)
	return err
}

// IsRepresentable is true if s has an exact 4-digit code: integer camber
// up to 9, camber position a multiple of 10 up to 90 and integer thickness
// up to 99.
func (s ShapeParameters) IsRepresentable() bool {
	return isDigits(s.maxCamber, 9) && isDigits(s.camberPos/10, 9) && isDigits(s.thickness, 99)
}

func isDigits(v, limit float64) bool {
	return v == math.Trunc(v) && v >= 0 && v <= limit
}

// Designation returns the 4-digit code of s, e.g. "2412" or "0012".
// Shapes without an exact code get a label listing the parameters,
// e.g. "M2.5P40T12" for m = 2.5, p = 40 and t = 12.
func (s ShapeParameters) Designation() string {
	if !s.IsRepresentable() {
		return s.label()
	}
	return fmt.Sprintf("%d%d%02d", int(s.maxCamber), int(s.camberPos/10), int(s.thickness))
}

// Nearest returns the code of the 4-digit section closest to s, rounding
// every parameter to the resolution of its digits. Rounding the camber to 0
// gives a symmetric code. Shapes which do not round into a valid code get the
// label of Designation.
func (s ShapeParameters) Nearest() string {
	m := math.Round(s.maxCamber)
	p := math.Round(s.camberPos / 10)
	t := math.Round(s.thickness)
	if m == 0 {
		p = 0
	}
	if m > 9 || p > 9 || t < 1 || t > 99 || (m > 0 && p == 0) {
		return s.label()
	}
	return fmt.Sprintf("%d%d%02d", int(m), int(p), int(t))
}

func (s ShapeParameters) label() string {
	return fmt.Sprintf("M%gP%gT%g", s.maxCamber, s.camberPos, s.thickness)
}

func (s ShapeParameters) String() string {
	return fmt.Sprintf("NACA %s (m=%g%%, p=%g%%, t=%g%%)", s.Designation(),
		s.maxCamber, s.camberPos, s.thickness)
}

// ParseDesignation creates shape parameters from a 4-digit code.
// An optional prefix "NACA" is accepted, e.g. "naca2412" or "NACA 0012".
func ParseDesignation(code string) (ShapeParameters, error) {
	c := strings.ToUpper(strings.TrimSpace(code))
	c = strings.TrimPrefix(c, "NACA")
	c = strings.TrimLeft(c, " -_")
	if len(c) != 4 {
		return ShapeParameters{}, fmt.Errorf("%w: %q", ErrInvalidDesignation, code)
	}
	var d [4]float64
	for i, r := range c {
		if r < '0' || r > '9' {
			return ShapeParameters{}, fmt.Errorf("%w: %q", ErrInvalidDesignation, code)
		}
		d[i] = float64(r - '0')
	}
	return NewShape(d[0], d[1]*10, d[2]*10+d[3])
}
