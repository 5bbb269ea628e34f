// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the row statistics used by transition models (row sums, grand
//     total, percent row normalization) as deterministic kernels.
//   - Keep tight loops centralized in ew* micro-kernels where it improves reuse.
//
// Exposed API (see api.go):
//   - RowSums(X)                 -> sums            // Σ_j X[i,j]
//   - Total(X)                   -> Σ_ij X[i,j]
//   - NormalizeRowsPercent(X, …) -> (Y, norms)      // rows sum to scale (100), rounded
//   - RoundTo(X, decimals)       -> Y               // correctly rounded, ties to even
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - Dense fast-paths avoid At/Set and operate on row-major flat buffers.

package matrix

// Operation name constants for unified error wrapping.
const (
	opRowSums              = "RowSums"
	opTotal                = "Total"
	opNormalizeRowsPercent = "NormalizeRowsPercent"
	opRoundTo              = "RoundTo"
)

// rowSumsAndZeros returns per-row sums and whether each row is exactly all-zero.
// A row whose entries cancel to 0 is NOT all-zero; the distinction matters to
// ValidateRowTotals.
// Complexity: Time O(r*c), Space O(r).
func rowSumsAndZeros(X Matrix) ([]float64, []bool, error) {
	r, c := X.Rows(), X.Cols()
	sums := make([]float64, r)
	zeros := make([]bool, r)
	var i, j int
	var s, v float64

	if d, ok := X.(*Dense); ok {
		for i = 0; i < r; i++ {
			s = 0.0
			zero := true
			base := i * c
			for j = 0; j < c; j++ {
				v = d.data[base+j]
				if v != 0 {
					zero = false
				}
				s += v
			}
			sums[i], zeros[i] = s, zero
		}

		return sums, zeros, nil
	}

	var err error
	for i = 0; i < r; i++ {
		s = 0.0
		zero := true
		for j = 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, nil, err
			}
			if v != 0 {
				zero = false
			}
			s += v
		}
		sums[i], zeros[i] = s, zero
	}

	return sums, zeros, nil
}

// rowSums returns vector s where s[i] = Σ_j X[i,j].
// Complexity: Time O(r*c), Space O(r).
func rowSums(X Matrix) ([]float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums, _, err := rowSumsAndZeros(X)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return sums, nil
}

// total returns Σ_ij X[i,j]. For a count matrix this is the number of observations.
// Complexity: Time O(r*c), Space O(r).
func total(X Matrix) (float64, error) {
	sums, err := rowSums(X)
	if err != nil {
		return 0, matrixErrorf(opTotal, err)
	}
	t := 0.0
	for _, s := range sums {
		t += s
	}

	return t, nil
}

// normalizeRows scales every non-zero row so that it sums to scale.
// Implementation:
//   - Stage 1: Validate X (non-nil, finite, non-negative).
//   - Stage 2: Compute per-row totals (norms).
//   - Stage 3: ewDivRows computes scale*x/norm per cell; zero rows stay zero.
//   - Stage 4: Optional rounding to a fixed number of decimals.
//
// Behavior highlights:
//   - Degenerate rows (norm==0) come back as exact zeros, never NaN.
//   - Each cell is computed as (scale*x)/norm so a row of equal counts yields
//     exactly equal percentages.
//
// Returns:
//   - *Dense: normalized copy (r×c).
//   - []float64: original row totals (len=r).
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf, ErrNegativeValue from validation.
//
// Complexity:
//   - Time O(r*c), Space O(r*c) (+ O(r) norms).
func normalizeRows(op string, X Matrix, o Options) (*Dense, []float64, error) {
	// Stage 1 (Validate): counts must be finite and non-negative.
	if err := ValidateNonNegative(X); err != nil {
		return nil, nil, matrixErrorf(op, err)
	}

	// Stage 2 (Execute): row totals.
	norms, _, err := rowSumsAndZeros(X)
	if err != nil {
		return nil, nil, matrixErrorf(op, err)
	}

	// Stage 3 (Apply): proportional scaling.
	Y, err := ewDivRows(X, norms, o.scale)
	if err != nil {
		return nil, nil, matrixErrorf(op, err)
	}

	// Stage 4 (Finalize): fixed-decimal output policy.
	if o.decimals >= 0 {
		ewRoundInPlace(Y, o.decimals)
	}

	return Y, norms, nil
}

// normalizeRowsPercent makes every non-zero row sum to 100 (or WithScale) and
// rounds to DefaultDecimals (or WithDecimals / WithNoRounding).
func normalizeRowsPercent(X Matrix, opts ...Option) (*Dense, []float64, error) {
	return normalizeRows(opNormalizeRowsPercent, X, gatherOptions(opts...))
}

// roundTo returns a copy of X with every element rounded to decimals places.
// Errors: ErrNilMatrix; wrapped At errors on the fallback path.
// Complexity: Time O(r*c), Space O(r*c).
func roundTo(X Matrix, decimals int) (*Dense, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opRoundTo, err)
	}
	if decimals < 0 || decimals > MaxDecimals {
		return nil, matrixErrorf(opRoundTo, ErrOutOfRange)
	}
	out, err := copyToDense(X)
	if err != nil {
		return nil, matrixErrorf(opRoundTo, err)
	}
	ewRoundInPlace(out, decimals)

	return out, nil
}
