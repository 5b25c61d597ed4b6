package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Garsondee/Path-Sense/internal/scenario"
	"github.com/Garsondee/Path-Sense/internal/tactical"
)

func TestForRoute_CrossfireMetrics(t *testing.T) {
	s := scenario.Crossfire()
	g := s.Build()
	r, err := tactical.FindRoute(g, s.Start, s.Goal)
	require.NoError(t, err)
	require.NotNil(t, r)

	rep := ForRoute(g, r)
	assert.Equal(t, 16, rep.Length)
	assert.InDelta(t, 0.8868093571, rep.DangerSum, 1e-9)
	assert.InDelta(t, rep.DangerSum/16, rep.MeanDanger, 1e-12)
	// The reference route passes through the cover pocket at (3,3) and (3,4).
	assert.Equal(t, 2, rep.CoverCells)
	// Peak exposure is the goal cell itself, sqrt(13) from the r=6 hazard.
	assert.InDelta(t, 0.3990747874, rep.PeakDanger, 1e-9)
	assert.Equal(t, "B", rep.Grade)
}

func TestForRoute_CleanRouteGradesA(t *testing.T) {
	g := tactical.New(6, 1)
	r, err := tactical.FindRoute(g, tactical.Point{X: 0, Y: 0}, tactical.Point{X: 5, Y: 0})
	require.NoError(t, err)
	require.NotNil(t, r)

	rep := ForRoute(g, r)
	assert.Equal(t, "A", rep.Grade)
	assert.Zero(t, rep.DangerSum)
	assert.Zero(t, rep.PeakDanger)
	assert.Zero(t, rep.CoverCells)
}

func TestLetterGrade_Thresholds(t *testing.T) {
	cases := []struct {
		mean float64
		want string
	}{
		{0.0, "A"},
		{0.019, "A"},
		{0.02, "B"},
		{0.059, "B"},
		{0.06, "C"},
		{0.12, "D"},
		{0.25, "F"},
		{0.9, "F"},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, LetterGrade(tc.mean), "mean danger %v", tc.mean)
	}
}

func TestProfiles_BalancedIsSearchDefault(t *testing.T) {
	p, ok := ProfileByName("balanced")
	require.True(t, ok)
	assert.Equal(t, tactical.DefaultWeights(), p.Weights)

	_, ok = ProfileByName("yolo")
	assert.False(t, ok)
}

func TestProfiles_AllPassWeightValidation(t *testing.T) {
	g := tactical.New(3, 3)
	for _, p := range Profiles() {
		_, err := tactical.FindRoute(g, tactical.Point{}, tactical.Point{X: 2, Y: 2},
			tactical.WithWeights(p.Weights))
		assert.NoErrorf(t, err, "profile %s", p.Name)
	}
}
