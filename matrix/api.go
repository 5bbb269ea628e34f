// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, documented entry points; each facade delegates to the
//     canonical kernel in impl_statistics.go.
//   - Keep function names explicit and intention-revealing.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying kernels.
//   - Validation is performed in the kernels; facades only forward.

package matrix

// ---------- Constructors ----------

// NewSquare returns a zero n×n *Dense, the shape of every transition matrix.
func NewSquare(n int) (*Dense, error) {
	return NewDense(n, n)
}

// ---------- Row statistics ----------

// RowSums returns vector s where s[i] = Σ_j m[i,j].
// Complexity: O(rc).
func RowSums(m Matrix) ([]float64, error) { return rowSums(m) }

// Total returns the sum of every element of m.
// Complexity: O(rc).
func Total(m Matrix) (float64, error) { return total(m) }

// NormalizeRowsPercent returns a copy of m whose non-zero rows sum to 100
// together with the original row totals;
// each cell computed as 100*m[i,j]/rowTotal[i] and rounded to 6 decimals.
// Zero rows stay exactly zero. Use WithScale / WithDecimals / WithNoRounding
// to change the policy.
//
//	counts [[1 1] [0 0]] → [[50 50] [0 0]]
func NormalizeRowsPercent(m Matrix, opts ...Option) (*Dense, []float64, error) {
	return normalizeRowsPercent(m, opts...)
}

// RoundTo returns a copy of m with every element rounded to decimals places
// (correctly rounded from the exact binary value, exact ties to even).
// decimals must be in [0, MaxDecimals].
func RoundTo(m Matrix, decimals int) (*Dense, error) { return roundTo(m, decimals) }
