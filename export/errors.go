// SPDX-License-Identifier: MIT

package export

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteProfile is returned when a profile has a missing position.
	ErrIncompleteProfile = errors.New("export: profile is missing a position")

	// ErrMalformedDocument is returned by Decode for documents that are not
	// exactly five 10×10 matrices under P1..P5.
	ErrMalformedDocument = errors.New("export: malformed profile document")
)

func exportErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
