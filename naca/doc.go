/*
Package naca synthesizes and analyzes 4-digit NACA airfoil sections.

A 4-digit section is fully described by three percentages of chord: the
maximum camber, the chordwise position of the maximum camber, and the
maximum thickness. The designation "2412" stands for 2 % camber at 40 %
chord with 12 % thickness.

Synthesize produces a closed outline from these parameters:

	shape, err := naca.NewShape(2, 40, 12)
	outline, err := naca.Synthesize(shape, 200)

Decompose goes the other way and recovers camber line, camber and thickness
from a (synthesized or digitized) outline. Both are approximate inverses of
each other, up to the discretization implied by the number of points.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package naca

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'naca'
func tracer() tracing.Trace {
	return tracing.Select("naca")
}
