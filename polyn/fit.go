package polyn

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrDegree indicates a negative polynomial degree.
	ErrDegree = errors.New("polyn: degree must not be negative")
	// ErrLengthMismatch indicates sample slices of different length.
	ErrLengthMismatch = errors.New("polyn: x and y samples differ in length")
	// ErrUnderdetermined indicates fewer samples than coefficients to fit.
	ErrUnderdetermined = errors.New("polyn: fewer samples than coefficients")
	// ErrSingularFit indicates the fit produced non-finite coefficients, e.g.
	// for samples which all share the same x.
	ErrSingularFit = errors.New("polyn: singular fit")
)

// Fit returns the polynomial of the given degree which approximates the
// samples (xs[i], ys[i]) in the least-squares sense.
//
// Samples are mapped to [-1, 1] before solving the Vandermonde system by QR
// factorization; the result is expanded back to powers of x.
// An ill-conditioned system is traced, but not treated as an error.
func Fit(xs, ys []float64, degree int) (Polynomial, error) {
	if degree < 0 {
		return Polynomial{}, fmt.Errorf("%w: %d", ErrDegree, degree)
	}
	if len(xs) != len(ys) {
		return Polynomial{}, fmt.Errorf("%w: %d ≠ %d", ErrLengthMismatch, len(xs), len(ys))
	}
	if len(xs) < degree+1 {
		return Polynomial{}, fmt.Errorf("%w: %d samples for degree %d", ErrUnderdetermined, len(xs), degree)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, x := range xs {
		lo, hi = math.Min(lo, x), math.Max(hi, x)
	}
	center, half := (lo+hi)/2, (hi-lo)/2
	if half == 0 {
		half = 1
	}
	a := mat.NewDense(len(xs), degree+1, nil)
	for i, x := range xs {
		u, v := (x-center)/half, 1.0
		for j := 0; j <= degree; j++ {
			a.Set(i, j, v)
			v *= u
		}
	}
	b := mat.NewVecDense(len(ys), append([]float64(nil), ys...))
	var q mat.VecDense
	if err := q.SolveVec(a, b); err != nil {
		var cond mat.Condition
		if !errors.As(err, &cond) {
			return Polynomial{}, fmt.Errorf("polyn: least squares: %w", err)
		}
		T().Infof("fit of degree %d is ill-conditioned (%g)", degree, float64(cond))
	}
	// expand q((x - center)/half) by Horner's scheme on polynomials
	u := Constant(-center / half).With(1, 1/half)
	p := Constant(q.AtVec(degree))
	for j := degree - 1; j >= 0; j-- {
		p = p.Multiply(u).Add(Constant(q.AtVec(j)))
	}
	if !p.IsValid() {
		return Polynomial{}, fmt.Errorf("%w: degree %d over %d samples", ErrSingularFit, degree, len(xs))
	}
	T().Debugf("fitted p(x) = %s", p)
	return p, nil
}

// Residual returns the root mean square deviation of p from the samples.
func Residual(p Polynomial, xs, ys []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for i, x := range xs {
		d := p.Eval(x) - ys[i]
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)))
}
