// SPDX-License-Identifier: MIT

package export

import (
	"fmt"

	"github.com/goccy/go-json"

	"github.com/katalvlaran/pickprofile/draw"
	"github.com/katalvlaran/pickprofile/markov"
)

const (
	// MIMEType is the content type of an encoded profile.
	MIMEType = "application/json"

	indent = "  "
)

// Grid is one positional matrix as it appears on the wire.
type Grid [draw.States][draw.States]float64

// Document is the wire form of a profile. Field order fixes key order.
type Document struct {
	P1 Grid `json:"P1"`
	P2 Grid `json:"P2"`
	P3 Grid `json:"P3"`
	P4 Grid `json:"P4"`
	P5 Grid `json:"P5"`
}

// grids returns pointers to the five grids in position order.
func (d *Document) grids() [draw.Width]*Grid {
	return [draw.Width]*Grid{&d.P1, &d.P2, &d.P3, &d.P4, &d.P5}
}

// NewDocument copies a profile into its wire form.
//
// Errors: ErrIncompleteProfile for nil positions, markov.ErrShape for
// matrices that are not 10×10.
func NewDocument(p markov.Profile) (Document, error) {
	var doc Document
	for pos, g := range doc.grids() {
		m := p[pos]
		if m == nil {
			return doc, exportErrorf("NewDocument", fmt.Errorf("%s: %w", markov.Label(pos), ErrIncompleteProfile))
		}
		if r, c := m.Shape(); r != draw.States || c != draw.States {
			return doc, exportErrorf("NewDocument", fmt.Errorf("%s: %w", markov.Label(pos), markov.ErrShape))
		}
		m.Do(func(i, j int, v float64) bool {
			g[i][j] = v
			return true
		})
	}

	return doc, nil
}

// Profile converts the document back into a markov.Profile.
func (d Document) Profile() (markov.Profile, error) {
	var rows [draw.Width][][]float64
	for pos, g := range d.grids() {
		rows[pos] = make([][]float64, draw.States)
		for i := range g {
			rows[pos][i] = append([]float64(nil), g[i][:]...)
		}
	}

	return markov.NewProfile(rows)
}

// Encode renders p as indented JSON with keys P1..P5.
func Encode(p markov.Profile) ([]byte, error) {
	doc, err := NewDocument(p)
	if err != nil {
		return nil, err
	}
	b, err := json.MarshalIndent(doc, "", indent)
	if err != nil {
		return nil, exportErrorf("Encode", err)
	}

	return b, nil
}

// Decode parses a profile document. It requires exactly the keys P1..P5, each
// holding ten rows of ten numbers.
func Decode(b []byte) (markov.Profile, error) {
	var raw map[string][][]float64
	if err := json.Unmarshal(b, &raw); err != nil {
		return markov.Profile{}, exportErrorf("Decode", fmt.Errorf("%w: %w", ErrMalformedDocument, err))
	}
	if len(raw) != draw.Width {
		return markov.Profile{}, exportErrorf("Decode",
			fmt.Errorf("%w: want %d keys, got %d", ErrMalformedDocument, draw.Width, len(raw)))
	}

	var rows [draw.Width][][]float64
	for pos, label := range markov.Labels {
		r, ok := raw[label]
		if !ok {
			return markov.Profile{}, exportErrorf("Decode", fmt.Errorf("%w: missing %s", ErrMalformedDocument, label))
		}
		rows[pos] = r
	}
	p, err := markov.NewProfile(rows)
	if err != nil {
		return markov.Profile{}, exportErrorf("Decode", fmt.Errorf("%w: %w", ErrMalformedDocument, err))
	}

	return p, nil
}

// Preview renders the first n rows of P1 as {"P1": [...]}, for quick display.
// n is clamped to [0, 10].
func Preview(p markov.Profile, n int) ([]byte, error) {
	doc, err := NewDocument(p)
	if err != nil {
		return nil, err
	}
	n = min(max(n, 0), draw.States)
	b, err := json.MarshalIndent(map[string][][draw.States]float64{
		markov.Label(0): doc.P1[:n],
	}, "", indent)
	if err != nil {
		return nil, exportErrorf("Preview", err)
	}

	return b, nil
}
