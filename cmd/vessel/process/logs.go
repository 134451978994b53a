// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/vessel-sh/vessel/cmd/vessel/cli"
	"github.com/vessel-sh/vessel/lib/api"
	"github.com/vessel-sh/vessel/lib/transport"
)

type logsParams struct {
	Tail int `flag:"tail,n" desc:"number of trailing lines to fetch (0 = server default)"`
}

func logsCommand() *cli.Command {
	var params logsParams

	return &cli.Command{
		Name:    "logs",
		Summary: "Fetch recent output from a process",
		Usage:   "vessel process logs <process-id> [--tail <lines>]",
		Flags: func() *pflag.FlagSet {
			return cli.FlagsFromParams("logs", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) != 1 {
				return fmt.Errorf("expected exactly one process id, got %d arguments", len(args))
			}
			client, err := cli.Connect(logger)
			if err != nil {
				return err
			}
			res := transport.Invoke(ctx, client, api.Logs, api.LogsParams{
				Process: args[0],
				Tail:    params.Tail,
			})
			return cli.Render(res, formatLogs)
		},
	}
}

// formatLogs renders log lines with their timestamps.
func formatLogs(lines []api.LogLine) string {
	if len(lines) == 0 {
		return "No output."
	}
	var output strings.Builder
	for i, line := range lines {
		if i > 0 {
			output.WriteByte('\n')
		}
		stamp := time.UnixMilli(line.Time).UTC().Format("15:04:05.000")
		output.WriteString(stamp)
		output.WriteByte(' ')
		output.WriteString(line.Text)
	}
	return output.String()
}
