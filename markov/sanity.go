// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/katalvlaran/pickprofile/draw"
	"github.com/katalvlaran/pickprofile/matrix"
)

const (
	// RowTarget is the total of every non-zero percentage row.
	RowTarget = 100.0

	// RowTolerance is the accepted absolute drift of a row total.
	RowTolerance = 1e-3

	sumDecimals = 3
)

// RowSums returns, per position, each row's total rounded to 3 decimals.
// Expect 100 for observed predecessor digits and 0 otherwise.
func RowSums(p Profile) ([draw.Width][]float64, error) {
	var out [draw.Width][]float64
	for pos, m := range p {
		sums, err := matrix.RowSums(m)
		if err != nil {
			return out, markovErrorf("RowSums", fmt.Errorf("%s: %w", Label(pos), err))
		}
		vec, err := matrix.NewDenseFromRows([][]float64{sums})
		if err != nil {
			return out, markovErrorf("RowSums", fmt.Errorf("%s: %w", Label(pos), err))
		}
		rounded, err := matrix.RoundTo(vec, sumDecimals)
		if err != nil {
			return out, markovErrorf("RowSums", fmt.Errorf("%s: %w", Label(pos), err))
		}
		out[pos], _ = rounded.Row(0)
	}

	return out, nil
}

// SanityLines renders RowSums as "P1 row sums: [100, 0, ...]", one line per position.
func SanityLines(p Profile) ([]string, error) {
	sums, err := RowSums(p)
	if err != nil {
		return nil, err
	}
	lines := make([]string, 0, draw.Width)
	for pos, s := range sums {
		parts := lo.Map(s, func(v float64, _ int) string {
			return strconv.FormatFloat(v, 'f', -1, 64)
		})
		lines = append(lines, fmt.Sprintf("%s row sums: [%s]", Label(pos), strings.Join(parts, ", ")))
	}

	return lines, nil
}

// Check verifies every row of every position sums to RowTarget ± RowTolerance
// or is exactly zero.
//
// Errors: ErrRowSum (joined with matrix.ErrRowTotal) naming the position.
func Check(p Profile) error {
	for pos, m := range p {
		if err := matrix.ValidateRowTotals(m, RowTarget, matrix.WithEpsilon(RowTolerance)); err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRowSum, Label(pos), err)
		}
	}

	return nil
}
