// SPDX-License-Identifier: MIT

package markov

import (
	"github.com/katalvlaran/pickprofile/draw"
	"github.com/katalvlaran/pickprofile/matrix"
)

// Counts holds one States×States transition count matrix per position.
// Cell [a][b] of position p counts draws with digit a at p immediately
// followed by a draw with digit b at p.
type Counts [draw.Width]*matrix.Dense

// Count tallies every consecutive pair of seq. Each position receives exactly
// len(seq)-1 observations.
//
// Implementation:
//   - Stage 1: validate len(seq) ≥ draw.MinDraws.
//   - Stage 2: allocate five zero 10×10 matrices.
//   - Stage 3: for i in [0, L-2] and each position, AddAt(d[i][p], d[i+1][p], 1).
//
// Errors:
//   - draw.ErrInsufficientData for sequences shorter than two draws.
//
// Complexity:
//   - Time O(L), Space O(1) beyond the fixed 5×100 cells.
func Count(seq draw.Sequence) (Counts, error) {
	var c Counts
	if err := seq.Validate(); err != nil {
		return c, markovErrorf("Count", err)
	}

	var err error
	for pos := range c {
		if c[pos], err = matrix.NewSquare(draw.States); err != nil {
			return c, markovErrorf("Count", err)
		}
	}

	for i := 0; i+1 < len(seq); i++ {
		seed, next := seq[i], seq[i+1]
		for pos := 0; pos < draw.Width; pos++ {
			if err = c[pos].AddAt(int(seed[pos]), int(next[pos]), 1); err != nil {
				return c, markovErrorf("Count", err)
			}
		}
	}

	return c, nil
}

// At returns the count for from→to at pos. Out-of-range arguments yield 0.
func (c Counts) At(pos int, from, to draw.Digit) int {
	if pos < 0 || pos >= draw.Width || c[pos] == nil {
		return 0
	}
	v, err := c[pos].At(int(from), int(to))
	if err != nil {
		return 0
	}

	return int(v)
}

// Total returns the number of observations recorded at pos.
func (c Counts) Total(pos int) int {
	if pos < 0 || pos >= draw.Width || c[pos] == nil {
		return 0
	}
	t, err := matrix.Total(c[pos])
	if err != nil {
		return 0
	}

	return int(t)
}
