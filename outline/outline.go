// Package outline treats an airfoil coordinate series as a closed polygon,
// for bounds, enclosed area and the overlap of two sections.
//
// Boolean operations are delegated to polyclip.
package outline

import (
	"fmt"
	"math"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/airfoil"
	"github.com/npillmayer/schuko/tracing"
)

// L traces with key 'outline'.
func L() tracing.Trace {
	return tracing.Select("outline")
}

// FromSeries converts s into a single-contour polygon. Consecutive duplicate
// rows (a leading edge listed once per surface, a closed trailing edge) are
// collapsed, as polyclip expects no zero-length edges.
func FromSeries(s airfoil.Series) polyclip.Polygon {
	c := make(polyclip.Contour, 0, len(s))
	for i, p := range s {
		if i > 0 && p.Equal(s[i-1]) {
			continue
		}
		c = append(c, polyclip.Point{X: p.X(), Y: p.Y()})
	}
	if len(c) > 1 {
		first, last := c[0], c[len(c)-1]
		if airfoil.P(first.X, first.Y).Equal(airfoil.P(last.X, last.Y)) {
			c = c[:len(c)-1]
		}
	}
	return polyclip.Polygon{c}
}

// Box returns a rectangle as a polygon, lower left corner first.
func Box(ll, ur airfoil.Pair) polyclip.Polygon {
	return polyclip.Polygon{{
		{X: ll.X(), Y: ll.Y()},
		{X: ur.X(), Y: ll.Y()},
		{X: ur.X(), Y: ur.Y()},
		{X: ll.X(), Y: ur.Y()},
	}}
}

// Bounds returns the bounding box of the outline of s.
func Bounds(s airfoil.Series) (ll, ur airfoil.Pair) {
	if len(s) == 0 {
		return airfoil.Origin, airfoil.Origin
	}
	r := FromSeries(s).BoundingBox()
	return airfoil.P(r.Min.X, r.Min.Y), airfoil.P(r.Max.X, r.Max.Y)
}

// Area returns the enclosed area of all contours of a polygon. Contours are
// expected not to intersect themselves; holes are not subtracted.
func Area(pg polyclip.Polygon) float64 {
	a := 0.0
	for _, c := range pg {
		a += math.Abs(signedArea(c))
	}
	return a
}

// SeriesArea returns the area enclosed by the outline of s.
func SeriesArea(s airfoil.Series) float64 {
	return Area(FromSeries(s))
}

// shoelace formula, positive for counter-clockwise contours
func signedArea(c polyclip.Contour) float64 {
	a := 0.0
	for i := range c {
		j := (i + 1) % len(c)
		a += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return a / 2
}

// Overlap returns the ratio of the area common to both outlines and the area
// covered by either of them: 1 for congruent sections, 0 for disjoint ones.
func Overlap(a, b airfoil.Series) (float64, error) {
	pa, pb := FromSeries(a), FromSeries(b)
	union := Area(pa.Construct(polyclip.UNION, pb))
	if union <= 0 {
		return 0, fmt.Errorf("outline: sections of %d and %d rows enclose no area", len(a), len(b))
	}
	common := Area(pa.Construct(polyclip.INTERSECTION, pb))
	L().Debugf("overlap: common %g, union %g", common, union)
	return common / union, nil
}

// AsString returns a polygon as a (debugging) string.
func AsString(pg polyclip.Polygon) string {
	s := ""
	for k, c := range pg {
		if k > 0 {
			s += " "
		}
		for i, p := range c {
			if i > 0 {
				s += "--"
			}
			s += airfoil.P(p.X, p.Y).String()
		}
		s += "--cycle"
	}
	return s
}
