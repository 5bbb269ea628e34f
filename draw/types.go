// SPDX-License-Identifier: MIT

package draw

import (
	"fmt"
	"strings"
)

const (
	// Width is the number of digits in a draw.
	Width = 5

	// States is the number of distinct digit values per position.
	States = 10

	// MinDraws is the minimum sequence length that yields a transition.
	MinDraws = 2
)

// Digit is a single decimal digit in [0,9].
type Digit uint8

// Valid reports whether d is in [0,9].
func (d Digit) Valid() bool { return d < States }

// Draw is one observed instance of Width ordered digits. Index 0 is the first
// position (P1). Draw is a value type; copies never alias.
type Draw [Width]Digit

// NewDraw builds a Draw from ints, rejecting anything outside [0,9].
func NewDraw(digits ...int) (Draw, error) {
	var d Draw
	if len(digits) != Width {
		return d, fmt.Errorf("draw: need %d digits, got %d", Width, len(digits))
	}
	for i, v := range digits {
		if v < 0 || v >= States {
			return d, fmt.Errorf("draw: digit %d at position %d out of range", v, i+1)
		}
		d[i] = Digit(v)
	}

	return d, nil
}

// MustDraw is NewDraw for literals in tests and fixtures; it panics on bad input.
func MustDraw(digits ...int) Draw {
	d, err := NewDraw(digits...)
	if err != nil {
		panic(err)
	}

	return d
}

// Ints returns the digits as ints.
func (d Draw) Ints() []int {
	out := make([]int, Width)
	for i, v := range d {
		out[i] = int(v)
	}

	return out
}

// String renders the draw as "1-7-4-8-8".
func (d Draw) String() string {
	var b strings.Builder
	for i, v := range d {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteByte('0' + byte(v))
	}

	return b.String()
}

// Sequence is an ordered list of draws. Once orientation is resolved the order
// is chronological, oldest first.
type Sequence []Draw

// Len returns the number of draws.
func (s Sequence) Len() int { return len(s) }

// Transitions returns the number of consecutive pairs, max(len-1, 0).
func (s Sequence) Transitions() int {
	if len(s) < 2 {
		return 0
	}

	return len(s) - 1
}

// Clone returns an independent copy.
func (s Sequence) Clone() Sequence {
	if s == nil {
		return nil
	}
	out := make(Sequence, len(s))
	copy(out, s)

	return out
}

// Validate checks the sequence is long enough to build transitions.
func (s Sequence) Validate() error {
	if len(s) < MinDraws {
		return drawErrorf("Validate", fmt.Errorf("%w: %d draw(s), need at least %d", ErrInsufficientData, len(s), MinDraws))
	}

	return nil
}
