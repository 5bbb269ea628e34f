// SPDX-License-Identifier: MIT

// Command pickprofile builds positional transition profiles from draw
// histories and checks existing profile files.
//
//	pickprofile build --input history.txt --state DC --draw mid --recent 500
//	pickprofile inspect positional_matrices_DC_mid.json
package main

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

func main() {
	os.Exit(execute(os.Args, os.Stdin, os.Stdout, os.Stderr))
}

// execute runs the app and returns the process exit code. Failures are logged
// on stderr through the same console logger the commands use.
func execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	err := newApp(stdin, stdout, stderr).Run(args)
	if err == nil {
		return 0
	}
	logger, _ := newLogger(stderr, zerolog.LevelErrorValue)
	logger.Error().Err(err).Msg("pickprofile failed")

	return 1
}
