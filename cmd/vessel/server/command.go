// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

// Package server implements the "vessel server" subcommands for
// configuring which Vessel server the client talks to and with which
// credentials.
package server

import (
	"github.com/vessel-sh/vessel/cmd/vessel/cli"
)

// Command returns the "server" parent command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "server",
		Summary: "Configure the server connection",
		Description: `Configure the Vessel server connection.

"set" records the server address and authentication secret in the
per-user settings file and generates this install's identifier on
first use. "show" prints the current configuration with the secret
redacted.`,
		Subcommands: []*cli.Command{
			setCommand(),
			showCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Point the client at a server and enter the auth key",
				Command:     "vessel server set --host build-farm.internal --port 9100",
			},
		},
	}
}
