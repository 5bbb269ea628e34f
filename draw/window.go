// SPDX-License-Identifier: MIT

package draw

import "fmt"

// Recent returns the last n draws of seq, preserving order. For n ≤ 1 the
// whole sequence is used; for n ≥ len(seq) the result equals seq. The
// returned slice never aliases seq.
//
// Apply Recent after orientation so "last" means "most recent".
func Recent(seq Sequence, n int) Sequence {
	if n <= 1 || n >= len(seq) {
		return seq.Clone()
	}

	return seq[len(seq)-n:].Clone()
}

// WindowNote describes the window choice for n in human-readable form.
func WindowNote(n int) string {
	if n > 1 {
		return fmt.Sprintf("Using most recent %d draws.", n)
	}

	return "Using all parsed draws."
}
