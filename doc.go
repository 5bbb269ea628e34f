// Package pickprofile turns a loosely formatted history of 5-digit draws into
// five positional first-order Markov transition profiles.
//
// What is a profile?
//
//	One 10×10 matrix per digit position (P1..P5). Cell [a][b] is the
//	percentage of times digit a at that position was followed by digit b in
//	the next draw. Non-zero rows sum to 100; unseen digits give all-zero rows.
//
// Pipeline (each stage is its own package):
//
//	draw/     — extract draws from raw text, keep the most recent N
//	orient/   — infer whether the history is oldest→newest and fix it
//	markov/   — count transitions per position, normalize to percentages
//	export/   — JSON document (keys P1..P5) and positional_matrices_* filename
//	matrix/   — dense row-major kernel: row sums, normalization, rounding
//	pipeline/ — wires the stages together with structured logging
//
// Quick example:
//
//	res, err := pipeline.Build(text, pipeline.Config{State: "DC", Draw: "mid"})
//	if err != nil {
//		// draw.ErrEmptyInput or draw.ErrInsufficientData
//	}
//	os.WriteFile(res.Filename, res.JSON, 0o644)
//
// The cmd/pickprofile command wraps the pipeline with env/flag configuration
// (build) and a row-sum checker for existing files (inspect).
package pickprofile
