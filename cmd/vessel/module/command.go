// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

// Package module implements the "vessel module" subcommands: listing
// modules known to the server, building a module from a local project
// directory, and garbage-collecting unreferenced builds.
package module

import (
	"github.com/vessel-sh/vessel/cmd/vessel/cli"
)

// Command returns the "module" parent command with all subcommands.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "module",
		Summary: "List, build, and garbage-collect modules",
		Description: `Manage modules on the Vessel server.

A module is a deployable unit built from a local project directory.
The "build" command packages the current project (per its vessel.yaml
or vessel.jsonc manifest) and uploads it for a server-side build;
"list" shows every module the server knows; "gc" removes builds no
process references.`,
		Subcommands: []*cli.Command{
			listCommand(),
			buildCommand(),
			gcCommand(),
		},
		Examples: []cli.Example{
			{
				Description: "Build the project in the current directory",
				Command:     "vessel module build",
			},
			{
				Description: "List all modules on the server",
				Command:     "vessel module list",
			},
		},
	}
}
