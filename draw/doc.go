// Package draw turns loosely formatted draw histories into ordered sequences
// of fixed-width digit draws.
//
// A history is read line by line. Each line contributes at most one Draw: the
// first five digit characters on the line, in order, with any non-digit
// separators between them ("1-7-4-8-8", "17488", "Tue 1 7 4 8 8" all parse).
// Lines with fewer than five digits contribute nothing.
//
// The package also holds the window selector (Recent) that keeps only the most
// recent N draws of an already oriented sequence.
//
//	seq, err := draw.Extract(text)
//	if errors.Is(err, draw.ErrInsufficientData) { ... }
//	recent := draw.Recent(seq, 500)
package draw
