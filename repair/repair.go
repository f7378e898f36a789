/*
Package repair reconstructs airfoil outlines from digitized data which is too
sparse for smooth downstream use.

Repair fits a polynomial to each surface and resamples it. This is best
effort: polynomials follow the blunt leading edge of a section badly, and the
result depends on how well the split point between the surfaces is
isolated. Regenerate replaces the data by a 4-digit NACA outline with the
same camber and thickness instead.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package repair

import (
	"errors"
	"fmt"

	"github.com/npillmayer/airfoil"
	"github.com/npillmayer/airfoil/naca"
	"github.com/npillmayer/airfoil/polyn"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'repair'
func tracer() tracing.Trace {
	return tracing.Select("repair")
}

// DefaultDensity is the number of rows per surface produced by Repair.
const DefaultDensity = 100

var (
	// ErrNoCoincidentPoint indicates no interior row coincides with another row.
	ErrNoCoincidentPoint = errors.New("repair: no coincident point found")
	// ErrUnderdeterminedFit indicates a surface with fewer rows than degree+1.
	ErrUnderdeterminedFit = errors.New("repair: too few rows for polynomial degree")
	// ErrDensity indicates a resampling density below 2.
	ErrDensity = errors.New("repair: density must be at least 2")
)

// CoincidentSplit returns the smallest interior index whose point coincides,
// within airfoil.Epsilon, with another row of s. Outlines listing the
// leading edge once per surface are split there. A closed trailing edge
// (first row = last row) is not a split.
func CoincidentSplit(s airfoil.Series) (int, error) {
	for i := 1; i < len(s)-1; i++ {
		for j := range s {
			if j != i && s[i].Equal(s[j]) {
				tracer().Debugf("row %d %v coincides with row %d", i, s[i], j)
				return i, nil
			}
		}
	}
	return -1, fmt.Errorf("%w among %d rows", ErrNoCoincidentPoint, len(s))
}

// Repair is RepairN with DefaultDensity.
func Repair(s airfoil.Series, degree int) (airfoil.Series, error) {
	return RepairN(s, degree, DefaultDensity)
}

// RepairN splits s at its coincident point, fits a polynomial of the given
// degree to each half and resamples both halves at density rows each. Each
// half keeps its x-range and direction of traversal.
func RepairN(s airfoil.Series, degree, density int) (airfoil.Series, error) {
	if density < 2 {
		return nil, fmt.Errorf("%w: %d", ErrDensity, density)
	}
	if degree < 0 {
		return nil, fmt.Errorf("repair: %w: %d", polyn.ErrDegree, degree)
	}
	split, err := CoincidentSplit(s)
	if err != nil {
		return nil, err
	}
	halves := []struct {
		name string
		rows airfoil.Series
	}{
		{"first", s[:split+1]},
		{"second", s[split:]},
	}
	out := make(airfoil.Series, 0, 2*density)
	for _, h := range halves {
		if len(h.rows) < degree+1 {
			return nil, fmt.Errorf("%w: %s half has %d rows, degree %d needs %d",
				ErrUnderdeterminedFit, h.name, len(h.rows), degree, degree+1)
		}
		p, err := polyn.Fit(h.rows.Xs(), h.rows.Ys(), degree)
		if err != nil {
			return nil, fmt.Errorf("repair: %s half: %w", h.name, err)
		}
		tracer().P("half", h.name).Infof("fitted %d rows, rms deviation %g",
			len(h.rows), polyn.Residual(p, h.rows.Xs(), h.rows.Ys()))
		out = append(out, resample(p, h.rows, density)...)
	}
	return out, nil
}

// resample evaluates p at density positions spread over the x-range of rows,
// in the direction rows are traversed.
func resample(p polyn.Polynomial, rows airfoil.Series, density int) airfoil.Series {
	ll, ur := rows.Bounds()
	from, to := ll.X(), ur.X()
	if rows[0].X() > rows[len(rows)-1].X() {
		from, to = to, from
	}
	r := make(airfoil.Series, density)
	for i := range r {
		x := from + (to-from)*float64(i)/float64(density-1)
		if i == density-1 {
			x = to
		}
		r[i] = airfoil.P(x, p.Eval(x))
	}
	return r
}

// Regenerate replaces s by a synthesized 4-digit outline of the given number
// of points. Camber, camber position and thickness are recovered from s,
// the result is scaled to the chord of s.
func Regenerate(s airfoil.Series, points int) (airfoil.Series, naca.ShapeParameters, error) {
	g, err := naca.Decompose(s)
	if err != nil {
		return nil, naca.ShapeParameters{}, err
	}
	shape, err := g.Shape()
	if err != nil {
		return nil, naca.ShapeParameters{}, err
	}
	tracer().Infof("regenerating %s with %d points", shape, points)
	out, err := naca.Synthesize(shape, points)
	if err != nil {
		return nil, shape, err
	}
	out, err = airfoil.Scale{Mode: airfoil.ToChord, Value: g.Chord}.Apply(out)
	return out, shape, err
}
