package airfoil

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSeries() Series {
	return Series{P(1, 0.001), P(0.5, 0.06), P(0, 0), P(0.5, -0.06), P(1, -0.001)}
}

func TestScaleIdentity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := Series{P(1, 0.00126), P(0.3, 0.06), P(1e-9, 3e-10), P(0, 0)}
	r, err := s.Scaled(1.0)
	require.NoError(t, err)
	assert.Equal(t, s, r)
}

func TestScaleLinearity(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := sampleSeries()
	for _, k := range []float64{0.001, 0.5, 2, 17.25, 1000} {
		r, err := s.Scaled(k)
		require.NoError(t, err)
		assert.InDelta(t, k*s.Chord(), r.Chord(), 1e-9*k)
		assert.InDelta(t, k*s[1].Y(), r[1].Y(), 1e-12*k)
	}
	assert.Equal(t, 1.0, s.Chord(), "input must be left untouched")
}

func TestScaleRejectsNonPositive(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, k := range []float64{0, -1} {
		_, err := sampleSeries().Scaled(k)
		assert.ErrorIs(t, err, ErrInvalidScale)
	}
}

func TestScaleToChord(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, ref := range []float64{0.01, 1, 3.5, 240} {
		s, _ := sampleSeries().Scaled(ref)
		r, err := s.ScaledToChord(5.0)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, r.Chord(), 1e-9)
	}
}

func TestScaleToChordDegenerate(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := Series{P(0, 0), P(1, 0)}
	_, err := s.ScaledToChord(5.0)
	assert.ErrorIs(t, err, ErrDegenerateChord)
	_, err = Series{}.ScaledToChord(5.0)
	assert.ErrorIs(t, err, ErrEmptySeries)
}

func TestScaleModes(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s, _ := sampleSeries().Scaled(2)
	f, err := Scale{Mode: Direct, Value: 3}.Factor(s)
	require.NoError(t, err)
	assert.Equal(t, 3.0, f)
	f, err = Scale{Mode: ToChord, Value: 3}.Factor(s)
	require.NoError(t, err)
	assert.Equal(t, 1.5, f)
	r, err := Unit.Apply(s)
	require.NoError(t, err)
	assert.Equal(t, s, r)
	m, err := ParseScaleMode("Chord")
	require.NoError(t, err)
	assert.Equal(t, ToChord, m)
	_, err = ParseScaleMode("sideways")
	assert.ErrorIs(t, err, ErrUnknownScaleMode)
}

func TestBoundsAndReverse(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	s := sampleSeries()
	ll, ur := s.Bounds()
	assert.Equal(t, P(0, -0.06), ll)
	assert.Equal(t, P(1, 0.06), ur)
	r := s.Reversed()
	assert.Equal(t, s[0], r[len(r)-1])
	assert.Equal(t, []float64{1, 0.5, 0, 0.5, 1}, s.Xs())
}
