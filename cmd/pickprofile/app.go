// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/urfave/cli/v2"
)

// version is overridden at link time: -ldflags "-X main.version=v1.2.3".
var version = "dev"

func newApp(stdin io.Reader, stdout, stderr io.Writer) *cli.App {
	return &cli.App{
		Name:      "pickprofile",
		Usage:     "build positional transition profiles from 5-digit draw histories",
		Version:   version,
		Reader:    stdin,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "zerolog level (overrides PICKPROFILE_LOG_LEVEL)",
			},
		},
		Commands: []*cli.Command{
			buildCommand(),
			inspectCommand(),
		},
	}
}

// setup loads env config and the logger shared by every command.
func setup(c *cli.Context) (*Config, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	if c.IsSet("log-level") {
		cfg.LogLevel = c.String("log-level")
	}

	return cfg, nil
}
