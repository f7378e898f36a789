package airfoil

import (
	"fmt"
	"math"
	"strings"
)

// Series is an ordered sequence of coordinate pairs. For a well-formed section
// it runs from the trailing edge along the upper surface to the leading edge,
// then along the lower surface back to the trailing edge.
//
// Series values are treated as immutable: every operation returns a new series.
type Series []Pair

// Len returns the number of rows.
func (s Series) Len() int {
	return len(s)
}

// Xs returns the x-coordinates of all rows.
func (s Series) Xs() []float64 {
	xs := make([]float64, len(s))
	for i, p := range s {
		xs[i] = p.X()
	}
	return xs
}

// Ys returns the y-coordinates of all rows.
func (s Series) Ys() []float64 {
	ys := make([]float64, len(s))
	for i, p := range s {
		ys[i] = p.Y()
	}
	return ys
}

// Chord is the maximum x-value of the series, i.e. the trailing edge position
// for a section starting at x = 0. Returns 0 for an empty series.
func (s Series) Chord() float64 {
	if len(s) == 0 {
		return 0
	}
	c := s[0].X()
	for _, p := range s[1:] {
		c = math.Max(c, p.X())
	}
	return c
}

// Bounds returns the lower left and upper right corner of the bounding box.
func (s Series) Bounds() (ll, ur Pair) {
	if len(s) == 0 {
		return Origin, Origin
	}
	minx, miny := s[0].F()
	maxx, maxy := minx, miny
	for _, p := range s[1:] {
		minx, maxx = math.Min(minx, p.X()), math.Max(maxx, p.X())
		miny, maxy = math.Min(miny, p.Y()), math.Max(maxy, p.Y())
	}
	return P(minx, miny), P(maxx, maxy)
}

// Reversed returns a copy of s in reverse order.
func (s Series) Reversed() Series {
	r := make(Series, len(s))
	for i, p := range s {
		r[len(s)-1-i] = p
	}
	return r
}

// Transform applies an affine transform to every row.
func (s Series) Transform(m AT) Series {
	t := make(Series, len(s))
	for i, p := range s {
		t[i] = m.Transform(p)
	}
	return t
}

// Scaled returns a new series with every coordinate multiplied by factor.
func (s Series) Scaled(factor float64) (Series, error) {
	if !Finite(factor) || factor <= 0 {
		return nil, fmt.Errorf("%w: factor %g", ErrInvalidScale, factor)
	}
	tracer().Debugf("scaling %d rows by %g", len(s), factor)
	return s.Transform(Scaling(factor)), nil
}

// ScaledToChord rescales s such that its reference chord becomes target.
// The reference chord is the x-value of the first row, which is the
// trailing edge for sections starting there.
func (s Series) ScaledToChord(target float64) (Series, error) {
	factor, err := Scale{Mode: ToChord, Value: target}.Factor(s)
	if err != nil {
		return nil, err
	}
	return s.Scaled(factor)
}

// ScaleMode selects how the value of a Scale is interpreted.
type ScaleMode int

const (
	// Direct multiplies every coordinate by the scale value.
	Direct ScaleMode = iota
	// ToChord treats the scale value as a target chord length.
	ToChord
)

func (m ScaleMode) String() string {
	switch m {
	case Direct:
		return "direct"
	case ToChord:
		return "chord"
	}
	return fmt.Sprintf("ScaleMode(%d)", int(m))
}

// ParseScaleMode parses "direct" or "chord" (case-insensitive).
func ParseScaleMode(s string) (ScaleMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "direct":
		return Direct, nil
	case "chord", "tochord", "optimal":
		return ToChord, nil
	}
	return Direct, fmt.Errorf("%w: %q", ErrUnknownScaleMode, s)
}

// Scale is a scale operation: either a direct factor or a target chord.
type Scale struct {
	Mode  ScaleMode
	Value float64
}

// Unit is the identity scale.
var Unit = Scale{Mode: Direct, Value: 1.0}

// Factor computes the effective multiplicative factor of sc for series s.
func (sc Scale) Factor(s Series) (float64, error) {
	if !Finite(sc.Value) || sc.Value <= 0 {
		return 0, fmt.Errorf("%w: %s scale %g", ErrInvalidScale, sc.Mode, sc.Value)
	}
	if sc.Mode != ToChord {
		return sc.Value, nil
	}
	if len(s) == 0 {
		return 0, ErrEmptySeries
	}
	ref := s[0].X()
	if ref <= 0 {
		return 0, fmt.Errorf("%w: first row x = %g", ErrDegenerateChord, ref)
	}
	tracer().P("chord", ref).Debugf("target chord %g", sc.Value)
	return sc.Value / ref, nil
}

// Apply returns s scaled by sc.
func (sc Scale) Apply(s Series) (Series, error) {
	factor, err := sc.Factor(s)
	if err != nil {
		return nil, err
	}
	return s.Scaled(factor)
}

func (sc Scale) String() string {
	return fmt.Sprintf("%s:%g", sc.Mode, sc.Value)
}
