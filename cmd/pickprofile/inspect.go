// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/pickprofile/export"
	"github.com/katalvlaran/pickprofile/markov"
)

var errMissingFile = errors.New("inspect: profile file argument required")

func inspectCommand() *cli.Command {
	return &cli.Command{
		Name:      "inspect",
		Usage:     "print row sums of a profile file and fail if any row is off",
		ArgsUsage: "FILE",
		Action:    runInspect,
	}
}

func runInspect(c *cli.Context) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}
	logger, err := newLogger(c.App.ErrWriter, cfg.LogLevel)
	if err != nil {
		return err
	}

	path := c.Args().First()
	if path == "" {
		return errMissingFile
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read profile: %w", err)
	}
	p, err := export.Decode(b)
	if err != nil {
		return err
	}

	lines, err := markov.SanityLines(p)
	if err != nil {
		return err
	}
	for _, l := range lines {
		fmt.Fprintln(c.App.Writer, l)
	}
	if err = markov.Check(p); err != nil {
		return err
	}
	logger.Info().Str("path", path).Msg("profile rows sum to ~100")

	return nil
}
