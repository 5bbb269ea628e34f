// SPDX-License-Identifier: MIT

package orient

import (
	"github.com/samber/lo"

	"github.com/katalvlaran/pickprofile/draw"
)

// Notes reported with a Decision.
const (
	NoteReversed = "Input looked newest→oldest; reversed to oldest→newest."
	NoteKept     = "Input already oldest→newest."
)

// Decision records how Resolve oriented a sequence.
type Decision struct {
	// Reversed is true when the returned sequence is the reverse of the input.
	Reversed bool
	// Forward is the coverage of the input as given.
	Forward int
	// Backward is the coverage of the exact reverse.
	Backward int
	// Note is a human-readable summary (NoteReversed or NoteKept).
	Note string
}

// Resolve returns seq in oldest→newest order together with the decision.
// The input is never mutated; the returned sequence is always a fresh copy.
func Resolve(seq draw.Sequence) (draw.Sequence, Decision) {
	reversed := Reverse(seq)
	dec := Decision{
		Forward:  Coverage(seq),
		Backward: Coverage(reversed),
	}
	// Strictly greater: ties keep the given order.
	if dec.Backward > dec.Forward {
		dec.Reversed = true
		dec.Note = NoteReversed

		return reversed, dec
	}
	dec.Note = NoteKept

	return seq.Clone(), dec
}

// Reverse returns a reversed copy of seq.
func Reverse(seq draw.Sequence) draw.Sequence {
	cp := seq.Clone()
	lo.Reverse(cp)

	return cp
}
