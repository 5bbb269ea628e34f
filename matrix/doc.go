// Package matrix provides the small dense-matrix kernel behind the transition
// models: row-major float64 storage, row sums, percent row normalization
// and fixed-decimal rounding.
//
// The matrix package provides:
//
//   - Dense, a bounds-checked row-major matrix (At/Set never panic).
//   - RowSums, Total and NormalizeRowsPercent for count → percentage conversion.
//   - RoundTo for the fixed 6-decimal output policy.
//   - Central validators and sentinel errors shared by every kernel.
//
// All kernels are deterministic (fixed i→j loop order, no map iteration) and
// return new matrices; inputs are never mutated.
//
// See the examples in this package and markov for usage patterns.
package matrix
