// SPDX-License-Identifier: MIT

package orient

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/pickprofile/draw"
)

// MaxCoverage is the best possible score: every digit at every position.
const MaxCoverage = draw.Width * draw.States

// PositionCoverage returns, per position, how many distinct digit values occur
// among the predecessor draws of seq (all draws except the last). A sequence
// shorter than two draws has no predecessors and scores zero everywhere.
func PositionCoverage(seq draw.Sequence) [draw.Width]int {
	var out [draw.Width]int
	if len(seq) < 2 {
		return out
	}

	var seen [draw.Width][draw.States]bool
	for _, d := range seq[:len(seq)-1] {
		for pos, digit := range d {
			seen[pos][digit] = true
		}
	}
	for pos := range seen {
		out[pos] = lo.Count(seen[pos][:], true)
	}

	return out
}

// Coverage is the sum of PositionCoverage over all positions, in [0, MaxCoverage].
func Coverage(seq draw.Sequence) int {
	per := PositionCoverage(seq)

	return lo.Sum(per[:])
}
