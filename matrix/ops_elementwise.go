// SPDX-License-Identifier: MIT
// Package matrix - element-wise micro-kernels (internal).
//
// Contract:
//   - Kernels never mutate their Matrix inputs unless the name says InPlace.
//   - Dense fast-path on flat buffers; generic fallback through At/Set.
//   - Deterministic i→j loops.

package matrix

import (
	"fmt"
	"strconv"
)

// matrixErrorf tags an error with the public operation name.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// copyToDense returns a *Dense copy of any Matrix.
// Complexity: O(r*c).
func copyToDense(X Matrix) (*Dense, error) {
	if d, ok := X.(*Dense); ok {
		return d.Clone().(*Dense), nil
	}
	r, c := X.Rows(), X.Cols()
	out, err := NewDense(r, c)
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if v, err = X.At(i, j); err != nil {
				return nil, err
			}
			if err = out.Set(i, j, v); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// ewDivRows computes out[i,j] = scale*X[i,j]/norms[i] for norms[i] != 0 and
// out[i,j] = 0 otherwise. A product that overflows is ErrNaNInf on both paths.
// Time: O(r*c). Space: O(r*c).
func ewDivRows(X Matrix, norms []float64, scale float64) (*Dense, error) {
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(norms, r); err != nil {
		return nil, matrixErrorf("divRows", err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf("divRows", err)
	}

	// Dense fast-path.
	if d, ok := X.(*Dense); ok {
		for i := 0; i < r; i++ {
			n := norms[i]
			if n == 0 {
				continue // row stays zero
			}
			base := i * c
			for j := 0; j < c; j++ {
				v := scale * d.data[base+j] / n
				if isNonFinite(v) {
					return nil, matrixErrorf("divRows", denseErrorf(ctxSet, i, j, ErrNaNInf))
				}
				out.data[base+j] = v
			}
		}
		return out, nil
	}

	// Generic fallback.
	for i := 0; i < r; i++ {
		n := norms[i]
		if n == 0 {
			continue
		}
		for j := 0; j < c; j++ {
			v, e := X.At(i, j)
			if e != nil {
				return nil, matrixErrorf("divRows", e)
			}
			if e = out.Set(i, j, scale*v/n); e != nil {
				return nil, matrixErrorf("divRows", e)
			}
		}
	}
	return out, nil
}

// ewRoundInPlace rounds every element of d to decimals places.
// Time: O(r*c). Space: O(1).
func ewRoundInPlace(d *Dense, decimals int) {
	for k, v := range d.data {
		d.data[k] = roundDecimal(v, decimals)
	}
}

// roundDecimal rounds v to decimals places using the exact binary value of v,
// so a true tie goes to the even digit (0.1953125 → 0.195312) and a value
// just above or below a decimal tie rounds by its real position.
// ±0 normalizes to +0 so zero rows serialize identically.
func roundDecimal(v float64, decimals int) float64 {
	out, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', decimals, 64), 64)
	if err != nil || out == 0 {
		return 0
	}

	return out
}
