// SPDX-License-Identifier: MIT

package draw

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ExtractLine returns the first Width digits found on line, in order, skipping
// any non-digit characters between them. ok is false when the line carries
// fewer than Width digits. Any Unicode decimal digit (category Nd) counts,
// so "١٢٣٤٥" and fullwidth "１２３４５" both read as 1-2-3-4-5.
//
// Implementation:
//   - Stage 1: scan runes left to right; every decimal digit fills the next slot.
//   - Stage 2: stop as soon as Width slots are filled.
//
// Complexity: O(len(line)), no allocations.
func ExtractLine(line string) (d Draw, ok bool) {
	n := 0
	for _, r := range line {
		v, isDigit := digitValue(r)
		if !isDigit {
			continue // separator, label, date punctuation ...
		}
		d[n] = v
		n++
		if n == Width {
			break
		}
	}
	if n < Width {
		return Draw{}, false
	}

	return d, true
}

// digitValue returns the numeric value of a decimal digit rune.
// Nd digits come in contiguous 0..9 runs, so the value is the offset from
// the start of the run modulo 10.
func digitValue(r rune) (Digit, bool) {
	if r >= '0' && r <= '9' {
		return Digit(r - '0'), true
	}
	if r < utf8.RuneSelf || !unicode.IsDigit(r) {
		return 0, false
	}
	for _, rg := range unicode.Nd.R16 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return Digit((r - lo) % States), true
		}
	}
	for _, rg := range unicode.Nd.R32 {
		if lo, hi := rune(rg.Lo), rune(rg.Hi); r >= lo && r <= hi {
			return Digit((r - lo) % States), true
		}
	}

	return 0, false
}

// Lines splits text on every line boundary: \n, \r\n, lone \r, and the
// Unicode separators (\v, \f, FS/GS/RS, NEL, LS, PS). Empty lines are dropped;
// they could never hold a draw.
func Lines(text string) []string {
	return strings.FieldsFunc(text, isLineBreak)
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}

	return false
}

// Extract parses a whole history. Lines are processed in order and every
// matching line appends exactly one Draw.
//
// Errors:
//   - ErrEmptyInput when text is blank after trimming.
//   - ErrInsufficientData when fewer than MinDraws draws were parsed.
func Extract(text string) (Sequence, error) {
	if strings.TrimSpace(text) == "" {
		return nil, drawErrorf("Extract", ErrEmptyInput)
	}

	var seq Sequence
	for _, line := range Lines(text) {
		if d, ok := ExtractLine(line); ok {
			seq = append(seq, d)
		}
	}
	if len(seq) < MinDraws {
		return nil, drawErrorf("Extract",
			fmt.Errorf("%w: parsed %d draw(s), need at least %d", ErrInsufficientData, len(seq), MinDraws))
	}

	return seq, nil
}
