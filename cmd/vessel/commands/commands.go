// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the complete vessel CLI command tree.
package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vessel-sh/vessel/cmd/vessel/cli"
	modulecmd "github.com/vessel-sh/vessel/cmd/vessel/module"
	processcmd "github.com/vessel-sh/vessel/cmd/vessel/process"
	servercmd "github.com/vessel-sh/vessel/cmd/vessel/server"
	"github.com/vessel-sh/vessel/lib/version"
)

// Root builds and returns the complete vessel CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "vessel",
		Description: `Vessel: client for a remote compute-orchestration server.

Build modules from local projects, run them as processes, and inspect
what the server is doing — all over one authenticated HTTPS call per
command.`,
		Subcommands: []*cli.Command{
			modulecmd.Command(),
			processcmd.Command(),
			servercmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(_ context.Context, args []string, _ *slog.Logger) error {
					fmt.Printf("vessel %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
