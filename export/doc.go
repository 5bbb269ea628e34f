// Package export serializes transition profiles into the JSON document consumed
// by the downstream profiler, and names the file it should be saved as.
//
// Document shape:
//
//	{
//	  "P1": [[p00, ..., p09], ..., [p90, ..., p99]],
//	  ...
//	  "P5": [...]
//	}
//
// Keys always appear in P1..P5 order and the output is indented with two
// spaces, so identical profiles encode to identical bytes.
package export
