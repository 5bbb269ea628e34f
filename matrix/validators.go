// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/value checks here.
//  - Return sentinel errors wrapped with a validator tag so call sites can
//    match with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//
// Note:
//  - Each composite validator follows a fixed sequence (NotNil → Shape → Values).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// Catches both a nil interface and a typed nil *Dense.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Transition matrices are always square: predecessor × successor states.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if x == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix) // reuse the "nil argument" sentinel
	}
	if len(x) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateNonNegative ensures every element is finite and ≥ 0.
// Used before normalizing counts: a negative or non-finite weight has no
// percentage interpretation.
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrNegativeValue.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	r, c := m.Rows(), m.Cols()
	var i, j int
	var v float64
	var err error
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateNonNegative", err)
			}
			if isNonFinite(v) {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)", i, j), ErrNaNInf)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateNonNegative(%d,%d)", i, j), ErrNegativeValue)
			}
		}
	}

	return nil
}

// ValidateRowTotals checks that every row of m sums to target within eps, or
// is exactly all-zero. The first offending row is reported in the message.
//
// Inputs:
//   - m: matrix under test.
//   - target: expected non-zero row total (e.g., 100 for percentages).
//   - opts: WithEpsilon overrides DefaultEpsilon.
//
// Errors: ErrNilMatrix, ErrRowTotal.
// Complexity: O(r*c).
func ValidateRowTotals(m Matrix, target float64, opts ...Option) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	o := gatherOptions(opts...)
	sums, zeros, err := rowSumsAndZeros(m)
	if err != nil {
		return validatorErrorf("ValidateRowTotals", err)
	}
	for i, s := range sums {
		if zeros[i] {
			continue
		}
		if math.Abs(s-target) > o.eps {
			return validatorErrorf(fmt.Sprintf("ValidateRowTotals: row %d sums to %g", i, s), ErrRowTotal)
		}
	}

	return nil
}
