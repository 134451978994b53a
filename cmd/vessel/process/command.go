// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

// Package process implements the "vessel process" subcommands:
// starting and stopping processes, listing running processes, and
// fetching process logs.
package process

import (
	"github.com/vessel-sh/vessel/cmd/vessel/cli"
)

// Command returns the "process" parent command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "process",
		Summary: "Start, stop, list, and inspect processes",
		Description: `Manage processes on the Vessel server.

A process is a running instance of a module. "start" launches a new
instance, "stop" terminates one, "list" shows everything currently
running, and "logs" fetches recent output.`,
		Subcommands: []*cli.Command{
			startCommand(),
			stopCommand(),
			listCommand(),
			logsCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Start a process running a module",
				Command:     "vessel process start demo/fibonacci",
			},
			{
				Description: "Fetch the last 100 log lines",
				Command:     "vessel process logs pr-4f2a --tail 100",
			},
		},
	}
}
