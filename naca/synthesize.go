package naca

import (
	"fmt"
	"math"

	"github.com/npillmayer/airfoil"
)

// Coefficients of the NACA 4-digit thickness distribution.
const (
	a0 = 0.2969
	a1 = -0.1260
	a2 = -0.3516
	a3 = 0.2843
	a4 = -0.1036
)

// HalfThickness returns the symmetric half thickness y_t at chord position x
// for a section of thickness t, both as fractions of a unit chord.
func HalfThickness(t, x float64) float64 {
	return t / 0.2 * (a0*math.Sqrt(x) + a1*x + a2*x*x + a3*x*x*x + a4*x*x*x*x)
}

// MeanLine returns the camber y_c and the camber slope angle θ at chord
// position x, for camber m at position p, all as fractions of a unit chord.
// Stations up to the camber position use the front equation, the other
// stations the rear one.
func MeanLine(m, p, x float64, front bool) (yc, theta float64) {
	if front {
		yc = m * x / (p * p) * (2*p - x)
		theta = math.Atan(2 * m / (p * p) * (p - x))
		return
	}
	q := (1 - p) * (1 - p)
	yc = m * (1 - x) / q * (1 + x - 2*p)
	theta = math.Atan(2 * m / q * (p - x))
	return
}

// stations returns n values linearly spaced over [0, 1].
func stations(n int) []float64 {
	xs := make([]float64, n)
	if n == 1 {
		return xs
	}
	for i := range xs {
		xs[i] = float64(i) / float64(n-1)
	}
	return xs
}

// nearest returns the index of the value in xs closest to v.
func nearest(xs []float64, v float64) int {
	k, d := 0, math.Inf(1)
	for i, x := range xs {
		if dx := math.Abs(x - v); dx < d {
			k, d = i, dx
		}
	}
	return k
}

// Synthesize creates the closed outline of a section with unit chord.
// See SynthesizeScaled.
func Synthesize(shape ShapeParameters, points int) (airfoil.Series, error) {
	return SynthesizeScaled(shape, points, 1.0)
}

// SynthesizeScaled creates the closed outline of a 4-digit section, using
// points/2 chordwise stations, and scales it by factor scale.
//
// The outline starts at the trailing edge, runs along the upper surface to
// the leading edge and returns along the lower surface. Both surfaces
// contain the leading edge point, so the result has 2·⌊points/2⌋ rows.
func SynthesizeScaled(shape ShapeParameters, points int, scale float64) (airfoil.Series, error) {
	if err := shape.valid(); err != nil {
		return nil, err
	}
	if points < 2 {
		return nil, fmt.Errorf("%w: got %d", ErrTooFewPoints, points)
	}
	if !airfoil.Finite(scale) || scale <= 0 {
		return nil, fmt.Errorf("%w: factor %g", airfoil.ErrInvalidScale, scale)
	}
	m, p, t := shape.maxCamber/100, shape.camberPos/100, shape.thickness/100
	xs := stations(points / 2)
	n := len(xs)
	split := -1
	if !shape.IsSymmetric() {
		// never compare the camber position for equality with a station
		split = nearest(xs, p)
	}
	tracer().P("naca", shape.Designation()).Debugf("synthesizing %d stations, split at %d", n, split)
	outline := make(airfoil.Series, 2*n)
	for i, x := range xs {
		yc, theta := 0.0, 0.0
		if split >= 0 {
			yc, theta = MeanLine(m, p, x, i <= split)
		}
		camber := airfoil.P(x, yc)
		normal := airfoil.P(0, HalfThickness(t, x)).Rotated(theta)
		outline[n-1-i] = camber + normal // upper surface, trailing edge first
		outline[n+i] = camber - normal   // lower surface, leading edge first
	}
	return outline.Scaled(scale)
}
