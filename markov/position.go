// SPDX-License-Identifier: MIT

package markov

import (
	"fmt"

	"github.com/katalvlaran/pickprofile/draw"
)

// Labels are the external position names, index-aligned with draw positions.
var Labels = [draw.Width]string{"P1", "P2", "P3", "P4", "P5"}

// Label returns "P<pos+1>".
func Label(pos int) string {
	if pos >= 0 && pos < draw.Width {
		return Labels[pos]
	}

	return fmt.Sprintf("P%d", pos+1)
}

// PositionOf maps a label back to its index; ok is false for unknown labels.
func PositionOf(label string) (int, bool) {
	for i, l := range Labels {
		if l == label {
			return i, true
		}
	}

	return 0, false
}
