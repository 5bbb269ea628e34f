// SPDX-License-Identifier: MIT

package markov

import (
	"errors"
	"fmt"
)

var (
	// ErrRowSum is returned by Check when a non-zero row does not sum to ~100.
	ErrRowSum = errors.New("markov: row sum outside tolerance")

	// ErrShape is returned when a profile matrix is not States×States.
	ErrShape = errors.New("markov: matrix must be 10x10")
)

func markovErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
