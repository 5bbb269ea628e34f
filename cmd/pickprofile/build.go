// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/pickprofile/export"
	"github.com/katalvlaran/pickprofile/markov"
	"github.com/katalvlaran/pickprofile/pipeline"
)

func buildCommand() *cli.Command {
	return &cli.Command{
		Name:  "build",
		Usage: "parse a draw history and write positional_matrices_<STATE>_<draw>.json",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input", Aliases: []string{"i"}, Usage: "history file (default: read stdin)"},
			&cli.StringFlag{Name: "state", Aliases: []string{"s"}, Usage: "state label: OH DC FL GA PA LA VA DE"},
			&cli.StringFlag{Name: "draw", Aliases: []string{"d"}, Usage: "draw session: mid or eve"},
			&cli.IntFlag{Name: "recent", Aliases: []string{"n"}, Usage: "use the most recent N draws (0 = all)"},
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "output directory"},
			&cli.BoolFlag{Name: "stdout", Usage: "write the JSON to stdout instead of a file"},
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "print row-sum sanity lines"},
			&cli.IntFlag{Name: "preview", Usage: "print the first K rows of P1 (0 = none)"},
		},
		Action: runBuild,
	}
}

func runBuild(c *cli.Context) error {
	cfg, err := setup(c)
	if err != nil {
		return err
	}
	applyBuildFlags(c, cfg)

	logger, err := newLogger(c.App.ErrWriter, cfg.LogLevel)
	if err != nil {
		return err
	}

	labels := Labels{State: cfg.State, Draw: cfg.Draw, Recent: cfg.Recent}
	if err = newValidator().Struct(labels); err != nil {
		return fmt.Errorf("invalid build options: %w", err)
	}
	labels = labels.Normalized()

	text, err := readHistory(c.String("input"), c.App.Reader)
	if err != nil {
		return err
	}

	res, err := pipeline.Build(text, pipeline.Config{
		State:  labels.State,
		Draw:   labels.Draw,
		Recent: labels.Recent,
		Logger: &logger,
	})
	if err != nil {
		return err
	}

	if c.Bool("stdout") {
		if _, err = c.App.Writer.Write(append(res.JSON, '\n')); err != nil {
			return fmt.Errorf("write profile: %w", err)
		}
	} else {
		path := filepath.Join(cfg.OutDir, res.Filename)
		if err = os.WriteFile(path, res.JSON, 0o644); err != nil {
			return fmt.Errorf("write profile: %w", err)
		}
		logger.Info().Str("path", path).Msgf("built profile for %s %s", labels.State, strings.ToUpper(labels.Draw))
	}
	logger.Info().Msg(res.Summary())

	if c.Bool("verbose") {
		lines, err := markov.SanityLines(res.Profile)
		if err != nil {
			return err
		}
		for _, l := range lines {
			fmt.Fprintln(c.App.ErrWriter, l)
		}
	}
	if k := c.Int("preview"); k > 0 {
		b, err := export.Preview(res.Profile, k)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.App.ErrWriter, string(b))
	}

	return nil
}

// applyBuildFlags overrides env defaults with explicitly set flags.
func applyBuildFlags(c *cli.Context, cfg *Config) {
	if c.IsSet("state") {
		cfg.State = c.String("state")
	}
	if c.IsSet("draw") {
		cfg.Draw = c.String("draw")
	}
	if c.IsSet("recent") {
		cfg.Recent = c.Int("recent")
	}
	if c.IsSet("out") {
		cfg.OutDir = c.String("out")
	}
}

// readHistory returns the history text from path, or from stdin when path is
// empty. Invalid UTF-8 bytes are dropped.
func readHistory(path string, stdin io.Reader) (string, error) {
	var (
		b   []byte
		err error
	)
	if path != "" {
		b, err = os.ReadFile(path)
	} else {
		b, err = io.ReadAll(stdin)
	}
	if err != nil {
		return "", fmt.Errorf("read history: %w", err)
	}

	return strings.ToValidUTF8(string(b), ""), nil
}
