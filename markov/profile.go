// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/pickprofile/draw"
	"github.com/katalvlaran/pickprofile/matrix"
)

// Profile is the set of five positional transition matrices (percentages).
// Index 0 is P1.
type Profile [draw.Width]*matrix.Dense

// Decimals is the precision of every emitted percentage.
const Decimals = 6

// Normalize converts counts to row percentages rounded to Decimals places
// (exact ties to even, e.g. 100/512 → 0.195312). Rows with no observations
// stay all-zero.
func Normalize(c Counts) (Profile, error) {
	var p Profile
	for pos, m := range c {
		if err := matrix.ValidateSquare(m); err != nil {
			return p, markovErrorf("Normalize", fmt.Errorf("%s: %w", Label(pos), err))
		}
		pct, _, err := matrix.NormalizeRowsPercent(m,
			matrix.WithScale(RowTarget),
			matrix.WithDecimals(Decimals),
		)
		if err != nil {
			return p, markovErrorf("Normalize", fmt.Errorf("%s: %w", Label(pos), err))
		}
		p[pos] = pct
	}

	return p, nil
}

// Build counts the transitions of seq and normalizes them.
// Output is a pure function of seq.
func Build(seq draw.Sequence) (Profile, error) {
	c, err := Count(seq)
	if err != nil {
		return Profile{}, err
	}

	return Normalize(c)
}

// NewProfile assembles a Profile from raw rows, e.g. a decoded JSON document.
// Every position must be a States×States matrix of finite values.
func NewProfile(rows [draw.Width][][]float64) (Profile, error) {
	var p Profile
	for pos, r := range rows {
		if len(r) != draw.States {
			return p, markovErrorf("NewProfile", fmt.Errorf("%s: %w", Label(pos), ErrShape))
		}
		m, err := matrix.NewDenseFromRows(r)
		if err != nil {
			return p, markovErrorf("NewProfile", fmt.Errorf("%s: %w", Label(pos), err))
		}
		if m.Cols() != draw.States {
			return p, markovErrorf("NewProfile", fmt.Errorf("%s: %w", Label(pos), ErrShape))
		}
		p[pos] = m
	}

	return p, nil
}

// Rows returns a copy of position pos as [][]float64 (nil for unset positions).
func (p Profile) Rows(pos int) [][]float64 {
	if pos < 0 || pos >= draw.Width || p[pos] == nil {
		return nil
	}

	return p[pos].ToRows()
}

// Lookup returns the matrix for a label such as "P3".
func (p Profile) Lookup(label string) (*matrix.Dense, bool) {
	pos, ok := PositionOf(label)
	if !ok || p[pos] == nil {
		return nil, false
	}

	return p[pos], true
}
