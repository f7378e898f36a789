/*
Package airfoil implements points, affine transformations and coordinate
series for two-dimensional airfoil sections.

A section outline is a Series of pairs, running along the upper surface from
the trailing edge to the leading edge and back along the lower surface.
Sub-packages build on this: naca synthesizes and decomposes 4-digit NACA
sections, repair reconstructs sparse data, coordfile reads and writes flat
coordinate files. Package outline measures sections as polygons, render
plots them.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package airfoil

import (
	"fmt"
	"math"

	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'airfoil'
func tracer() tracing.Trace {
	return tracing.Select("airfoil")
}

// --- Numbers ---------------------------------------------------------------

// Epsilon : coordinates closer than ε are considered equal
var Epsilon float64 = 0.0000001

// Is0 is a predicate: is n = 0 ?
func Is0(n float64) bool {
	return math.Abs(n) <= Epsilon
}

// Zap makes n = 0 if n "means" to be zero
func Zap(n float64) float64 {
	if Is0(n) {
		return 0
	}
	return n
}

// Finite is a predicate: is n neither NaN nor ±Inf ?
func Finite(n float64) bool {
	return !math.IsNaN(n) && !math.IsInf(n, 0)
}

// --- Pairs -----------------------------------------------------------------

// Pair is a 2D-point, x being the chordwise and y the normal coordinate.
// Pairs add and subtract like vectors.
type Pair complex128

// Origin is (0,0), the leading edge of a normalized section.
var Origin = P(0, 0)

// P is a quick notation for contructing a pair from floats.
func P(x, y float64) Pair {
	return Pair(complex(x, y))
}

func (p Pair) String() string {
	return fmt.Sprintf("(%g,%g)", real(p), imag(p))
}

// F returns both coordinates.
func (p Pair) F() (float64, float64) {
	return real(p), imag(p)
}

// X is the chordwise coordinate.
func (p Pair) X() float64 {
	return real(p)
}

// Y is the normal coordinate.
func (p Pair) Y() float64 {
	return imag(p)
}

// Zap rounds both coordinates to Epsilon.
func (p Pair) Zap() Pair {
	return P(Zap(p.X()), Zap(p.Y()))
}

// Equal compares two pairs within Epsilon.
func (p Pair) Equal(p2 Pair) bool {
	return Is0(p.X()-p2.X()) && Is0(p.Y()-p2.Y())
}

// Rotated returns p rotated counter-clockwise around the origin by theta
// (in radians).
func (p Pair) Rotated(theta float64) Pair {
	return Rotation(theta).Transform(p)
}

// --- Affine transforms -----------------------------------------------------

// AT is an affine transform of the plane,
//
//	x' = a·x + b·y + tx
//	y' = c·x + d·y + ty
type AT struct {
	a, b, c, d float64
	tx, ty     float64
}

// Identity transform. Will transform a point onto itself.
func Identity() AT {
	return AT{a: 1, d: 1}
}

// Scaling scales uniformly by factor f, relative to the origin.
func Scaling(f float64) AT {
	return AT{a: f, d: f}
}

// Translation shifts by v.
func Translation(v Pair) AT {
	return AT{a: 1, d: 1, tx: v.X(), ty: v.Y()}
}

// Rotation rotates counter-clockwise around the origin by theta (in radians).
func Rotation(theta float64) AT {
	sin, cos := math.Sincos(theta)
	return AT{a: cos, b: -sin, c: sin, d: cos}
}

// Then returns the transform which applies m first, then n.
func (m AT) Then(n AT) AT {
	return AT{
		a:  n.a*m.a + n.b*m.c,
		b:  n.a*m.b + n.b*m.d,
		c:  n.c*m.a + n.d*m.c,
		d:  n.c*m.b + n.d*m.d,
		tx: n.a*m.tx + n.b*m.ty + n.tx,
		ty: n.c*m.tx + n.d*m.ty + n.ty,
	}
}

// Transform maps a point.
func (m AT) Transform(p Pair) Pair {
	x, y := p.F()
	return P(m.a*x+m.b*y+m.tx, m.c*x+m.d*y+m.ty)
}

// Debug Stringer for an affine transform.
func (m AT) String() string {
	return fmt.Sprintf("[%g,%g,%g|%g,%g,%g]", m.a, m.b, m.tx, m.c, m.d, m.ty)
}
