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

func stopCommand() *cli.Command {
	return &cli.Command{
		Name:    "stop",
		Summary: "Stop a running process",
		Usage:   "vessel process stop <process-id>",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one process id, got %d arguments", len(args))
			}
			client, err := cli.Connect(logger)
			if err != nil {
				return err
			}
			res := transport.Invoke(ctx, client, api.Stop, api.StopParams{Process: args[0]})
			return cli.Render(res, func(stopped string) string {
				return fmt.Sprintf("Stopped process %s", stopped)
			})
		},
	}
}
