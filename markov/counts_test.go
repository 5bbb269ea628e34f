// SPDX-License-Identifier: MIT

package markov_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/pickprofile/draw"
	"github.com/katalvlaran/pickprofile/markov"
	"github.com/stretchr/testify/require"
)

// scenario is the three-line history "1-7-4-8-8", "17488", "2-2-3-4-5" in file order.
func scenario() draw.Sequence {
	return draw.Sequence{
		draw.MustDraw(1, 7, 4, 8, 8),
		draw.MustDraw(1, 7, 4, 8, 8),
		draw.MustDraw(2, 2, 3, 4, 5),
	}
}

// randomHistory returns n pseudo-random draws from a fixed seed.
func randomHistory(n int, seed int64) draw.Sequence {
	rng := rand.New(rand.NewSource(seed))
	seq := make(draw.Sequence, n)
	for i := range seq {
		for p := 0; p < draw.Width; p++ {
			seq[i][p] = draw.Digit(rng.Intn(draw.States))
		}
	}

	return seq
}

func TestCount_Scenario(t *testing.T) {
	t.Parallel()

	c, err := markov.Count(scenario())
	require.NoError(t, err)

	// P1: 1→1 then 1→2.
	require.Equal(t, 1, c.At(0, 1, 1))
	require.Equal(t, 1, c.At(0, 1, 2))
	require.Equal(t, 0, c.At(0, 2, 1))
	// P2: 7→7 then 7→2.
	require.Equal(t, 1, c.At(1, 7, 7))
	require.Equal(t, 1, c.At(1, 7, 2))

	for pos := 0; pos < draw.Width; pos++ {
		require.Equal(t, 2, c.Total(pos))
	}
}

func TestCount_TotalIsLMinusOne(t *testing.T) {
	t.Parallel()

	for _, n := range []int{2, 3, 17, 500} {
		c, err := markov.Count(randomHistory(n, int64(n)))
		require.NoError(t, err)
		for pos := 0; pos < draw.Width; pos++ {
			require.Equalf(t, n-1, c.Total(pos), "n=%d pos=%d", n, pos)
		}
	}
}

func TestCount_Insufficient(t *testing.T) {
	t.Parallel()

	_, err := markov.Count(draw.Sequence{draw.MustDraw(1, 2, 3, 4, 5)})
	require.ErrorIs(t, err, draw.ErrInsufficientData)

	_, err = markov.Build(nil)
	require.ErrorIs(t, err, draw.ErrInsufficientData)
}

func TestCounts_AtOutOfRange(t *testing.T) {
	t.Parallel()

	c, err := markov.Count(scenario())
	require.NoError(t, err)
	require.Equal(t, 0, c.At(-1, 0, 0))
	require.Equal(t, 0, c.At(draw.Width, 0, 0))
	require.Equal(t, 0, c.At(0, 10, 0))
	require.Equal(t, 0, markov.Counts{}.Total(0))
}
