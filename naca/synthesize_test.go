package naca

import (
	"testing"

	"github.com/npillmayer/airfoil"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHalfThickness(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	assert.Equal(t, 0.0, HalfThickness(0.12, 0))
	// maximum thickness of the 4-digit family sits at 30 % chord
	assert.InDelta(t, 0.06, HalfThickness(0.12, 0.3), 1e-4)
	assert.InDelta(t, 0.00126, HalfThickness(0.12, 1), 1e-5)
}

func TestMeanLineContinuity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	yf, tf := MeanLine(0.02, 0.4, 0.4, true)
	yr, tr := MeanLine(0.02, 0.4, 0.4, false)
	assert.InDelta(t, 0.02, yf, 1e-12)
	assert.InDelta(t, yf, yr, 1e-12)
	assert.InDelta(t, 0.0, tf, 1e-12)
	assert.InDelta(t, tf, tr, 1e-12)
	y0, _ := MeanLine(0.02, 0.4, 0, true)
	y1, _ := MeanLine(0.02, 0.4, 1, false)
	assert.Equal(t, 0.0, y0)
	assert.Equal(t, 0.0, y1)
}

func TestSynthesizeLength(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, n := range []int{2, 3, 10, 199, 200} {
		s, err := Synthesize(MustShape(2, 40, 12), n)
		require.NoError(t, err)
		assert.Equal(t, 2*(n/2), s.Len())
	}
}

func TestSynthesizeClosedLoop(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	const scale = 2.5
	s, err := SynthesizeScaled(MustShape(0, 0, 12), 200, scale)
	require.NoError(t, err)
	require.Equal(t, 200, s.Len())
	ll, ur := s.Bounds()
	assert.Equal(t, 0.0, ll.X())
	assert.InDelta(t, scale, ur.X(), 1e-12)
	assert.InDelta(t, scale, s[0].X(), 1e-12, "outline starts at trailing edge")
	assert.InDelta(t, scale, s[199].X(), 1e-12, "outline ends at trailing edge")
	assert.Equal(t, 0.0, s[99].X())
	assert.Equal(t, 0.0, s[100].X())
	for i := 0; i < 100; i++ { // upper and lower halves mirror each other
		u, l := s[99-i], s[100+i]
		assert.InDelta(t, u.X(), l.X(), 1e-12)
		assert.InDelta(t, u.Y(), -l.Y(), 1e-12)
		assert.GreaterOrEqual(t, u.Y(), 0.0)
	}
}

func TestSynthesizeCambered(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, err := Synthesize(MustShape(2, 40, 12), 200)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, s[0].X(), 1e-3)
	assert.Greater(t, s[0].Y(), s[199].Y(), "upper trailing edge first")
	assert.Equal(t, airfoil.Origin, s[99])
	assert.Equal(t, airfoil.Origin, s[100])
	// upper surface lies above the lower one
	for i := 1; i < 100; i++ {
		assert.Greater(t, s[99-i].Y(), s[100+i].Y())
	}
}

func TestSynthesizeInvalid(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	_, err := NewShape(0, 5, 10)
	assert.ErrorIs(t, err, ErrInvalidShape)
	_, err = NewShape(2, 40, 0)
	assert.ErrorIs(t, err, ErrInvalidShape)
	_, err = Synthesize(ShapeParameters{}, 100)
	assert.ErrorIs(t, err, ErrInvalidShape)
	_, err = Synthesize(MustShape(2, 40, 12), 1)
	assert.ErrorIs(t, err, ErrTooFewPoints)
	_, err = SynthesizeScaled(MustShape(2, 40, 12), 100, 0)
	assert.ErrorIs(t, err, airfoil.ErrInvalidScale)
}

func TestSynthesizeScaledToChord(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, shape := range []ShapeParameters{MustShape(0, 0, 12), MustShape(2, 40, 12), MustShape(6, 30, 9)} {
		s, err := SynthesizeScaled(shape, 120, 0.37)
		require.NoError(t, err)
		r, err := s.ScaledToChord(5.0)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, r.Chord(), 1e-9, shape.String())
	}
}
