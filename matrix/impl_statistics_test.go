// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/pickprofile/matrix"
	"github.com/stretchr/testify/require"
)

const epsTight = 1e-12

// ------------------------------
// RowSums / Total
// ------------------------------

func TestRowSums_FastAndFallback(t *testing.T) {
	t.Parallel()

	X := MustDenseRows(t, [][]float64{{1, 2, 3}, {0, 0, 0}, {10, 20, 30}})

	fast, err := matrix.RowSums(X)
	require.NoError(t, err)
	slow, err := matrix.RowSums(hide{X})
	require.NoError(t, err)

	require.Equal(t, []float64{6, 0, 60}, fast)
	require.Equal(t, fast, slow)

	tot, err := matrix.Total(X)
	require.NoError(t, err)
	require.Equal(t, 66.0, tot)
}

func TestRowSums_Nil(t *testing.T) {
	t.Parallel()

	_, err := matrix.RowSums(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var d *matrix.Dense
	_, err = matrix.Total(d)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ------------------------------
// NormalizeRowsPercent
// ------------------------------

func TestNormalizeRowsPercent_SplitsAndZeroRows(t *testing.T) {
	t.Parallel()

	X := MustDenseRows(t, [][]float64{
		{0, 1, 1},
		{0, 0, 0},
		{1, 1, 1},
	})

	Y, norms, err := matrix.NormalizeRowsPercent(X)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 0, 3}, norms)

	require.Equal(t, []float64{0, 50, 50}, Y.ToRows()[0])
	require.Equal(t, []float64{0, 0, 0}, Y.ToRows()[1])
	// 100/3 rounded to 6 decimals.
	require.Equal(t, []float64{33.333333, 33.333333, 33.333333}, Y.ToRows()[2])

	// Input untouched.
	require.Equal(t, 1.0, MustAt(t, X, 0, 1))
}

func TestNormalizeRowsPercent_FallbackMatchesFast(t *testing.T) {
	t.Parallel()

	X := MustDenseRows(t, [][]float64{{3, 1, 0, 7}, {0, 0, 2, 0}})
	fast, _, err := matrix.NormalizeRowsPercent(X)
	require.NoError(t, err)
	slow, _, err := matrix.NormalizeRowsPercent(hide{X})
	require.NoError(t, err)

	CompareClose(t, fast, slow, 0)
}

func TestNormalizeRowsPercent_Options(t *testing.T) {
	t.Parallel()

	X := MustDenseRows(t, [][]float64{{1, 2}})

	Y, _, err := matrix.NormalizeRowsPercent(X, matrix.WithDecimals(2))
	require.NoError(t, err)
	require.Equal(t, []float64{33.33, 66.67}, Y.ToRows()[0])

	Y, _, err = matrix.NormalizeRowsPercent(X, matrix.WithNoRounding())
	require.NoError(t, err)
	require.InDelta(t, 100.0/3, MustAt(t, Y, 0, 0), epsTight)

	Y, _, err = matrix.NormalizeRowsPercent(X, matrix.WithScale(1), matrix.WithNoRounding())
	require.NoError(t, err)
	require.InDelta(t, 2.0/3, MustAt(t, Y, 0, 1), epsTight)
}

func TestNormalizeRows_RejectsBadInput(t *testing.T) {
	t.Parallel()

	X := MustDenseRows(t, [][]float64{{1, -1}})
	_, _, err := matrix.NormalizeRowsPercent(X)
	require.ErrorIs(t, err, matrix.ErrNegativeValue)

	_, _, err = matrix.NormalizeRowsPercent(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestNormalizeRowsPercent_OverflowIsError(t *testing.T) {
	t.Parallel()

	X := MustDenseRows(t, [][]float64{{1e308, 0}})
	_, _, err := matrix.NormalizeRowsPercent(X)
	require.ErrorIs(t, err, matrix.ErrNaNInf)

	_, _, err = matrix.NormalizeRowsPercent(hide{X})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// ------------------------------
// RoundTo
// ------------------------------

func TestRoundTo(t *testing.T) {
	t.Parallel()

	X := MustDenseRows(t, [][]float64{{1.23456789, -0.0000004, 2.5}})
	Y, err := matrix.RoundTo(X, 6)
	require.NoError(t, err)
	require.Equal(t, []float64{1.234568, 0, 2.5}, Y.ToRows()[0])
	require.False(t, math.Signbit(MustAt(t, Y, 0, 1)), "negative zero must normalize to +0")

	Y, err = matrix.RoundTo(hide{X}, 0)
	require.NoError(t, err)
	require.Equal(t, []float64{1, 0, 2}, Y.ToRows()[0]) // 2.5 is an exact tie

	// Exact binary ties go to the even digit; others round normally.
	ties := MustDenseRows(t, [][]float64{{0.1953125, 99.8046875, 0.0390625}})
	Y, err = matrix.RoundTo(ties, 6)
	require.NoError(t, err)
	require.Equal(t, []float64{0.195312, 99.804688, 0.039062}, Y.ToRows()[0])

	_, err = matrix.RoundTo(X, -1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}
