// SPDX-License-Identifier: MIT

package orient_test

import (
	"testing"

	"github.com/katalvlaran/pickprofile/draw"
	"github.com/katalvlaran/pickprofile/orient"
	"github.com/stretchr/testify/require"
)

// increasing is a monotonically increasing history, oldest first. Its oldest
// draw carries digits no other predecessor has, so oldest→newest covers more.
func increasing() draw.Sequence {
	return draw.Sequence{
		draw.MustDraw(0, 1, 2, 3, 4),
		draw.MustDraw(5, 5, 5, 5, 5),
		draw.MustDraw(5, 5, 5, 5, 6),
		draw.MustDraw(5, 5, 5, 5, 7),
		draw.MustDraw(5, 5, 5, 5, 8),
	}
}

func TestCoverage(t *testing.T) {
	t.Parallel()

	seq := increasing()
	require.Equal(t, [draw.Width]int{2, 2, 2, 2, 4}, orient.PositionCoverage(seq))
	require.Equal(t, 12, orient.Coverage(seq))
	require.Equal(t, 8, orient.Coverage(orient.Reverse(seq)))

	// The last draw never counts.
	require.Equal(t, 0, orient.Coverage(draw.Sequence{draw.MustDraw(1, 2, 3, 4, 5)}))
	require.Equal(t, 5, orient.Coverage(draw.Sequence{
		draw.MustDraw(1, 2, 3, 4, 5),
		draw.MustDraw(6, 7, 8, 9, 0),
	}))
}

func TestCoverage_Max(t *testing.T) {
	t.Parallel()

	seq := make(draw.Sequence, 0, 11)
	for d := 0; d < 10; d++ {
		seq = append(seq, draw.MustDraw(d, d, d, d, d))
	}
	seq = append(seq, draw.MustDraw(0, 0, 0, 0, 0))
	require.Equal(t, orient.MaxCoverage, orient.Coverage(seq))
}

func TestResolve_ReversesNewestFirst(t *testing.T) {
	t.Parallel()

	oldestFirst := increasing()
	newestFirst := orient.Reverse(oldestFirst)

	got, dec := orient.Resolve(newestFirst)
	require.True(t, dec.Reversed)
	require.Equal(t, orient.NoteReversed, dec.Note)
	require.Equal(t, 8, dec.Forward)
	require.Equal(t, 12, dec.Backward)
	require.Equal(t, oldestFirst, got)

	// Input untouched.
	require.Equal(t, draw.MustDraw(5, 5, 5, 5, 8), newestFirst[0])
}

func TestResolve_KeepsOldestFirst(t *testing.T) {
	t.Parallel()

	seq := increasing()
	got, dec := orient.Resolve(seq)
	require.False(t, dec.Reversed)
	require.Equal(t, orient.NoteKept, dec.Note)
	require.Equal(t, seq, got)
}

func TestResolve_TieKeepsOrder(t *testing.T) {
	t.Parallel()

	// Palindromic history: both directions score the same.
	seq := draw.Sequence{
		draw.MustDraw(1, 1, 1, 1, 1),
		draw.MustDraw(2, 2, 2, 2, 2),
		draw.MustDraw(1, 1, 1, 1, 1),
	}
	got, dec := orient.Resolve(seq)
	require.Equal(t, dec.Forward, dec.Backward)
	require.False(t, dec.Reversed)
	require.Equal(t, seq, got)
}

func TestResolve_ScenarioHistoryIsReversed(t *testing.T) {
	t.Parallel()

	// Two identical leading draws cover less than the reverse, whose
	// predecessors include the distinct 2-2-3-4-5.
	seq := draw.Sequence{
		draw.MustDraw(1, 7, 4, 8, 8),
		draw.MustDraw(1, 7, 4, 8, 8),
		draw.MustDraw(2, 2, 3, 4, 5),
	}
	got, dec := orient.Resolve(seq)
	require.Equal(t, 5, dec.Forward)
	require.Equal(t, 10, dec.Backward)
	require.True(t, dec.Reversed)
	require.Equal(t, draw.MustDraw(2, 2, 3, 4, 5), got[0])
}
