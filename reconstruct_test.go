package flcs_test

import (
	"testing"

	"github.com/katalvlaran/flcs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The back-walk cases here pin down path recovery in the situations that
// go beyond a plain diagonal chain: uneven match values, matches entered
// through skip moves, and positive cells the best path deliberately
// skips.

// TestRun_MixedValues: two diagonal matches of different weight; the
// recovered values must be the per-cell evals, not an average.
func TestRun_MixedValues(t *testing.T) {
	eng, err := flcs.New(2, 2, func(i, j int) float64 {
		switch {
		case i == 0 && j == 0:
			return 0.3
		case i == 1 && j == 1:
			return 0.9
		}

		return 0
	}, flcs.WithBranchThreshold(1.0))
	require.NoError(t, err)

	res := eng.Run()
	assert.InDelta(t, 1.2, res.TotalMatch, 1e-9)
	require.Len(t, res.Matches, 2)
	assert.InDelta(t, 0.3, res.Matches[0].Value, 1e-9)
	assert.InDelta(t, 0.9, res.Matches[1].Value, 1e-9)
}

// TestRun_SkipsLowValueMatch: taking the weak 0.2 match at the origin
// would consume the row that the strong 0.9 match needs; the best path
// skips it, and the skipped cell must not leak into the result.
func TestRun_SkipsLowValueMatch(t *testing.T) {
	eng, err := flcs.New(2, 2, func(i, j int) float64 {
		switch {
		case i == 0 && j == 0:
			return 0.2
		case i == 0 && j == 1:
			return 0.9
		}

		return 0
	}, flcs.WithBranchThreshold(1.0))
	require.NoError(t, err)

	res := eng.Run()
	assert.InDelta(t, 0.9, res.TotalMatch, 1e-9)
	assert.Equal(t, []flcs.Match{{I: 0, J: 1, Value: 0.9}}, res.Matches)
}

// TestRun_SkipsMidPathMatch: the 0.3 cell sits between two 0.9 matches on
// the only route connecting them; the path passes through it without
// taking it, and the walk must account for that when splitting the score.
func TestRun_SkipsMidPathMatch(t *testing.T) {
	eng, err := flcs.New(4, 4, func(i, j int) float64 {
		switch {
		case i == 0 && j == 0:
			return 0.9
		case i == 1 && j == 1:
			return 0.3
		case i == 1 && j == 2:
			return 0.9
		}

		return 0
	}, flcs.WithBranchThreshold(1.0))
	require.NoError(t, err)

	res := eng.Run()
	assert.InDelta(t, 1.8, res.TotalMatch, 1e-9)
	require.Len(t, res.Matches, 2)
	assert.Equal(t, 0, res.Matches[0].I)
	assert.Equal(t, 0, res.Matches[0].J)
	assert.InDelta(t, 0.9, res.Matches[0].Value, 1e-9)
	assert.Equal(t, 1, res.Matches[1].I)
	assert.Equal(t, 2, res.Matches[1].J)
	assert.InDelta(t, 0.9, res.Matches[1].Value, 1e-9)
}

// TestRun_TerminalCellMatch: when the best path's final match sits at its
// last matrix cell, that match must appear as the result's last entry.
func TestRun_TerminalCellMatch(t *testing.T) {
	eng, err := flcs.New(2, 2, func(i, j int) float64 {
		if i == 1 && j == 1 {
			return 1
		}

		return 0
	})
	require.NoError(t, err)

	res := eng.Run()
	assert.InDelta(t, 1.0, res.TotalMatch, 1e-9)
	assert.Equal(t, []flcs.Match{{I: 1, J: 1, Value: 1}}, res.Matches)
}

// TestRun_SingleCell covers the 1×1 corners: full match and no match.
func TestRun_SingleCell(t *testing.T) {
	hit, err := flcs.New(1, 1, func(i, j int) float64 { return 0.7 }, flcs.WithBranchThreshold(1.0))
	require.NoError(t, err)
	res := hit.Run()
	assert.InDelta(t, 0.7, res.TotalMatch, 1e-9)
	assert.Equal(t, []flcs.Match{{I: 0, J: 0, Value: 0.7}}, res.Matches)

	miss, err := flcs.New(1, 1, func(i, j int) float64 { return 0 })
	require.NoError(t, err)
	res = miss.Run()
	assert.Zero(t, res.TotalMatch)
	assert.Empty(t, res.Matches)
}

// TestRun_SingleRow: with one row the path reduces to picking the best
// single cell.
func TestRun_SingleRow(t *testing.T) {
	vals := []float64{0.5, 0, 0.9}
	eng, err := flcs.New(1, 3, func(i, j int) float64 { return vals[j] }, flcs.WithBranchThreshold(1.0))
	require.NoError(t, err)

	res := eng.Run()
	assert.InDelta(t, 0.9, res.TotalMatch, 1e-9)
	assert.Equal(t, []flcs.Match{{I: 0, J: 2, Value: 0.9}}, res.Matches)
}
