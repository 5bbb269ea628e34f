// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All kernels return these sentinels (wrapped once with an operation
// tag) and tests check them via errors.Is. No kernel panics on user-triggered
// error conditions; panics are reserved for invalid Option values.

package matrix

import "errors"

// Every message is prefixed with "matrix: ..." so it greps cleanly in logs.
// Wrap with fmt.Errorf("ctx: %w", ErrX) at the boundary; callers use errors.Is.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/AddAt) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// or a flat/row-wise source whose length does not match the requested shape.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil receiver")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNegativeValue signals a negative entry in a matrix that is required to
	// hold non-negative weights (e.g., counts before percent normalization).
	ErrNegativeValue = errors.New("matrix: negative value encountered")

	// ErrRowTotal signals a row whose total is neither ~target (within eps)
	// nor exactly zero.
	ErrRowTotal = errors.New("matrix: row total outside tolerance")
)
