// SPDX-License-Identifier: MIT

package draw

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyInput is returned when the supplied text is blank after trimming.
	ErrEmptyInput = errors.New("draw: no input text supplied")

	// ErrInsufficientData is returned when fewer than MinDraws draws could be
	// parsed; at least one transition is needed to build anything.
	ErrInsufficientData = errors.New("draw: insufficient data")
)

// drawErrorf wraps a sentinel with operation context.
func drawErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
