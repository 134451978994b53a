// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package module

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/vessel-sh/vessel/cmd/vessel/cli"
	"github.com/vessel-sh/vessel/lib/api"
	"github.com/vessel-sh/vessel/lib/transport"
)

func gcCommand() *cli.Command {
	return &cli.Command{
		Name:    "gc",
		Summary: "Remove unreferenced module builds from the server",
		Usage:   "vessel module gc",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			client, err := cli.Connect(logger)
			if err != nil {
				return err
			}
			res := transport.Invoke(ctx, client, api.GarbageCollect, api.GCParams{})
			return cli.Render(res, formatRemoved)
		},
	}
}

func formatRemoved(removed []string) string {
	if len(removed) == 0 {
		return "Nothing to collect."
	}
	return fmt.Sprintf("Removed %d build(s):\n  %s",
		len(removed), strings.Join(removed, "\n  "))
}
