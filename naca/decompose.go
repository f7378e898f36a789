package naca

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/npillmayer/airfoil"
	"gonum.org/v1/gonum/floats"
)

// LeadingEdgeTolerance is the distance from x = 0, relative to the chord,
// within which a row is considered to lie on the leading edge.
// Digitized files usually hit 0 exactly; synthesized outlines always do.
var LeadingEdgeTolerance = 1e-6

// SymmetricCamberTolerance is the camber in percent of chord below which a
// decomposed section reads as symmetric.
var SymmetricCamberTolerance = 0.01

// ErrShortSurface indicates a surface with fewer than 2 rows after splitting.
var ErrShortSurface = errors.New("naca: surface needs at least 2 rows")

// DecomposedGeometry is the description of a section as recovered by
// Decompose. Percentages refer to the chord of the analyzed series.
type DecomposedGeometry struct {
	Camber     airfoil.Series // mean line (x, y_c), leading edge first
	SplitIndex int            // index of the leading edge within the analyzed series
	Chord      float64        // max x of the analyzed series
	MaxCamber  float64        // percent of chord
	CamberPos  float64        // percent of chord
	Thickness  float64        // percent of chord
}

// Shape converts the recovered values into shape parameters. Camber below
// SymmetricCamberTolerance yields a symmetric shape.
func (g DecomposedGeometry) Shape() (ShapeParameters, error) {
	if g.MaxCamber < SymmetricCamberTolerance {
		return NewShape(0, 0, g.Thickness)
	}
	return NewShape(g.MaxCamber, g.CamberPos, g.Thickness)
}

func (g DecomposedGeometry) String() string {
	return fmt.Sprintf("camber %.3f%% at %.3f%%, thickness %.3f%% (chord %g)",
		g.MaxCamber, g.CamberPos, g.Thickness, g.Chord)
}

// LeadingEdge returns the first index after the first row with x = 0, within
// LeadingEdgeTolerance. This is the split between upper and lower surface.
func LeadingEdge(s airfoil.Series) (int, error) {
	if len(s) == 0 {
		return -1, airfoil.ErrEmptySeries
	}
	tol := LeadingEdgeTolerance * math.Abs(s.Chord())
	for i := 1; i < len(s); i++ {
		if math.Abs(s[i].X()) <= tol {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: no row with |x| <= %g among %d rows", ErrNoLeadingEdge, tol, len(s))
}

// Surfaces splits s at its leading edge into upper and lower surface, both
// ordered by increasing x. A leading edge point given twice (once per surface)
// is kept in both halves, a single leading edge point is shared.
func Surfaces(s airfoil.Series) (upper, lower airfoil.Series, split int, err error) {
	if split, err = LeadingEdge(s); err != nil {
		return
	}
	upper = s[:split+1].Reversed()
	tol := LeadingEdgeTolerance * math.Abs(s.Chord())
	if split+1 < len(s) && math.Abs(s[split+1].X()) <= tol {
		lower = append(airfoil.Series{}, s[split+1:]...)
	} else {
		lower = append(airfoil.Series{}, s[split:]...)
	}
	if len(upper) < 2 || len(lower) < 2 {
		err = fmt.Errorf("%w: upper %d, lower %d", ErrShortSurface, len(upper), len(lower))
	}
	return
}

// Decompose recovers camber line, maximum camber, its position and the
// thickness from a closed outline. The outline has to start and end at or
// near the trailing edge and pass through the leading edge at x = 0.
//
// The outline may run either way around: the surface with the greater mean
// y is taken as the upper surface.
//
// Upper and lower rows are paired by index if both surfaces have the same
// number of rows, otherwise the lower surface is interpolated at the upper
// surface stations.
func Decompose(s airfoil.Series) (DecomposedGeometry, error) {
	upper, lower, split, err := Surfaces(s)
	if err != nil {
		return DecomposedGeometry{}, err
	}
	chord := s.Chord()
	if chord <= 0 {
		return DecomposedGeometry{}, fmt.Errorf("%w: max x = %g", airfoil.ErrDegenerateChord, chord)
	}
	var xs, yl []float64
	yu := upper.Ys()
	if len(upper) == len(lower) {
		xs = make([]float64, len(upper))
		for i := range upper {
			xs[i] = (upper[i].X() + lower[i].X()) / 2
		}
		yl = lower.Ys()
	} else {
		tracer().Debugf("surfaces differ in length (%d/%d), interpolating lower surface",
			len(upper), len(lower))
		xs = upper.Xs()
		yl = interpolate(lower, xs)
	}
	if gap := floats.Sum(yu) - floats.Sum(yl); gap < 0 {
		// series runs along the lower surface first
		tracer().Debugf("rows before the leading edge form the lower surface, swapping")
		yu, yl = yl, yu
	}
	g := DecomposedGeometry{
		Camber:     make(airfoil.Series, len(xs)),
		SplitIndex: split,
		Chord:      chord,
	}
	maxc, maxt, at := math.Inf(-1), math.Inf(-1), 0
	for i, x := range xs {
		yc := (yu[i] + yl[i]) / 2
		g.Camber[i] = airfoil.P(x, yc)
		if yc > maxc {
			maxc, at = yc, i
		}
		maxt = math.Max(maxt, yu[i]-yl[i])
	}
	g.MaxCamber = maxc / chord * 100
	g.CamberPos = xs[at] / chord * 100
	g.Thickness = maxt / chord * 100
	tracer().P("split", split).Infof("decomposed %d rows: %s", len(s), g)
	return g, nil
}

// interpolate evaluates the polyline through rows (in any x order) at xs.
// Positions outside the x-range of rows get the nearest end value.
func interpolate(rows airfoil.Series, xs []float64) []float64 {
	sorted := append(airfoil.Series{}, rows...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].X() < sorted[j].X() })
	ys := make([]float64, len(xs))
	last := len(sorted) - 1
	for k, x := range xs {
		j := sort.Search(len(sorted), func(i int) bool { return sorted[i].X() >= x })
		switch {
		case j == 0:
			ys[k] = sorted[0].Y()
		case j > last:
			ys[k] = sorted[last].Y()
		default:
			ys[k] = lerp(sorted[j-1], sorted[j], x)
		}
	}
	return ys
}

// lerp returns the y-value at x on the line through p1 and p2.
func lerp(p1, p2 airfoil.Pair, x float64) float64 {
	if p2.X() == p1.X() {
		return (p1.Y() + p2.Y()) / 2
	}
	return p1.Y() + (x-p1.X())*(p2.Y()-p1.Y())/(p2.X()-p1.X())
}
