// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vessel-sh/vessel/cmd/vessel/cli"
	"github.com/vessel-sh/vessel/lib/api"
	"github.com/vessel-sh/vessel/lib/transport"
)

func startCommand() *cli.Command {
	return &cli.Command{
		Name:    "start",
		Summary: "Start a process running a module",
		Usage:   "vessel process start <module>",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one module name, got %d arguments", len(args))
			}
			client, err := cli.Connect(logger)
			if err != nil {
				return err
			}
			res := transport.Invoke(ctx, client, api.Start, api.StartParams{Module: args[0]})
			return cli.Render(res, func(started api.ProcessInfo) string {
				return fmt.Sprintf("Started %s as process %s", started.Module, started.ID)
			})
		},
	}
}
