// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package module

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/pflag"

	"github.com/vessel-sh/vessel/cmd/vessel/cli"
	"github.com/vessel-sh/vessel/lib/api"
	"github.com/vessel-sh/vessel/lib/project"
	"github.com/vessel-sh/vessel/lib/transport"
)

type buildParams struct {
	Dir         string `flag:"dir,d" desc:"project directory" default:"."`
	Compression string `flag:"compression" desc:"archive compression: zstd or lz4" default:"zstd"`
}

func buildCommand() *cli.Command {
	var params buildParams

	return &cli.Command{
		Name:    "build",
		Summary: "Package the local project and build it on the server",
		Description: `Build a module from a local project directory.

Reads the project manifest (vessel.yaml or vessel.jsonc), packages the
directory as a compressed tar honoring the manifest's exclusions, and
uploads it to the server's build endpoint. Builds may take a while;
the call waits up to the transport's full response timeout.`,
		Usage: "vessel module build [--dir <path>] [--compression zstd|lz4]",
		Examples: []cli.Example{
			{
				Description: "Build the project in the current directory",
				Command:     "vessel module build",
			},
			{
				Description: "Build another directory with lz4 packaging",
				Command:     "vessel module build --dir ../worker --compression lz4",
			},
		},
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("build", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return runBuild(ctx, params, logger)
		},
	}
}

func runBuild(ctx context.Context, params buildParams, logger *slog.Logger) error {
	compression, err := project.ParseCompression(params.Compression)
	if err != nil {
		return err
	}

	manifestPath, err := project.FindManifest(params.Dir)
	if err != nil {
		return err
	}
	manifest, err := project.LoadManifest(manifestPath)
	if err != nil {
		return err
	}

	archive, err := project.Package(params.Dir, manifest, compression)
	if err != nil {
		return err
	}
	logger.Info("packaged project",
		"module", manifest.Name,
		"stack", manifest.Stack,
		"archive_bytes", len(archive))

	client, err := cli.Connect(logger)
	if err != nil {
		return err
	}
	res := transport.Invoke(ctx, client, api.Build, api.BuildParams{
		Name:        manifest.Name,
		Stack:       manifest.Stack,
		Archive:     archive,
		Compression: string(compression),
	})
	return cli.Render(res, func(built api.ModuleInfo) string {
		return fmt.Sprintf("Built %s version %s (%s)", built.Name, built.Version, built.Stack)
	})
}
