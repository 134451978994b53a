// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package process

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/vessel-sh/vessel/cmd/vessel/cli"
	"github.com/vessel-sh/vessel/lib/api"
	"github.com/vessel-sh/vessel/lib/transport"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Summary: "List running processes",
		Usage:   "vessel process list",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			client, err := cli.Connect(logger)
			if err != nil {
				return err
			}
			res := transport.Invoke(ctx, client, api.ListProcesses, api.ListProcessesParams{})
			return cli.Render(res, formatProcesses)
		},
	}
}

// formatProcesses renders the process table.
func formatProcesses(processes []api.ProcessInfo) string {
	if len(processes) == 0 {
		return "No running processes."
	}
	var output strings.Builder
	table := tabwriter.NewWriter(&output, 2, 0, 3, ' ', 0)
	fmt.Fprintln(table, "ID\tMODULE\tSTARTED")
	for _, process := range processes {
		fmt.Fprintf(table, "%s\t%s\t%s\n",
			process.ID, process.Module,
			time.Unix(process.StartedAt, 0).UTC().Format(time.RFC3339))
	}
	table.Flush()
	return strings.TrimRight(output.String(), "\n")
}
