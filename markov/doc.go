// SPDX-License-Identifier: MIT

// Package markov builds positional first-order transition models from an
// oriented draw sequence.
//
// For every position P1..P5 the builder counts digit→digit transitions between
// consecutive draws (Count) and converts each 10×10 count matrix into row
// percentages (Normalize): row a, column b is the share of draws with digit a
// at that position that were followed by digit b. Rows for digits that never
// appear as a predecessor are all zero.
//
// Storage is the matrix package's Dense; everything here is a pure function of
// the input sequence.
package markov
