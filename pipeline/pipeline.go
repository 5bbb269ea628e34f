// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/pickprofile/draw"
	"github.com/katalvlaran/pickprofile/export"
	"github.com/katalvlaran/pickprofile/markov"
	"github.com/katalvlaran/pickprofile/orient"
)

// Config is the caller-owned build configuration.
type Config struct {
	// State is the jurisdiction label, e.g. "DC". Opaque to the build.
	State string
	// Draw is the draw-session label, e.g. "mid". Opaque to the build.
	Draw string
	// Recent keeps only the most recent N draws; N ≤ 1 keeps all.
	Recent int
	// Logger receives per-stage events. Nil disables logging.
	Logger *zerolog.Logger
}

// Result is everything one build produces.
type Result struct {
	Profile  markov.Profile
	JSON     []byte
	Filename string

	// Orientation is the decision taken on the parsed history.
	Orientation orient.Decision
	// Parsed is the number of draws extracted from the text.
	Parsed int
	// Used is the number of draws the matrices were built from.
	Used int
	// WindowNote describes the window choice.
	WindowNote string
}

// Summary is a one-line account of the build, e.g.
// "Input already oldest→newest. Parsed draws: 120. Using all parsed draws."
func (r Result) Summary() string {
	return fmt.Sprintf("%s Parsed draws: %d. %s", r.Orientation.Note, r.Parsed, r.WindowNote)
}

// Build runs the full pipeline on text.
//
// Errors:
//   - draw.ErrEmptyInput when text is blank.
//   - draw.ErrInsufficientData when fewer than two draws parse.
//
// No partial Result is returned on error.
func Build(text string, cfg Config) (Result, error) {
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}
	log = log.With().Str("state", cfg.State).Str("draw", cfg.Draw).Logger()

	// Stage 1: extract.
	seq, err := draw.Extract(text)
	if err != nil {
		log.Debug().Err(err).Msg("extract failed")
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}
	log.Debug().Int("parsed", len(seq)).Msg("draws extracted")

	// Stage 2: orient.
	oriented, dec := orient.Resolve(seq)
	log.Debug().
		Int("coverage_forward", dec.Forward).
		Int("coverage_backward", dec.Backward).
		Bool("reversed", dec.Reversed).
		Msg("orientation resolved")

	// Stage 3: window.
	working := draw.Recent(oriented, cfg.Recent)
	log.Debug().Int("recent", cfg.Recent).Int("used", len(working)).Msg("window applied")

	// Stage 4: matrices.
	profile, err := markov.Build(working)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	// Stage 5: export.
	b, err := export.Encode(profile)
	if err != nil {
		return Result{}, fmt.Errorf("pipeline: %w", err)
	}

	res := Result{
		Profile:     profile,
		JSON:        b,
		Filename:    export.Filename(cfg.State, cfg.Draw),
		Orientation: dec,
		Parsed:      len(seq),
		Used:        len(working),
		WindowNote:  draw.WindowNote(cfg.Recent),
	}
	log.Info().
		Str("file", res.Filename).
		Int("parsed", res.Parsed).
		Int("used", res.Used).
		Bool("reversed", dec.Reversed).
		Msg("profile built")

	return res, nil
}
