// Package pipeline wires the stages into one build:
//
//	text → draw.Extract → orient.Resolve → draw.Recent → markov.Build → export.Encode
//
// A build is synchronous and stateless. Everything it needs arrives in Config
// by value; nothing is cached between calls, so Build is safe to call from any
// number of goroutines.
package pipeline
