// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package module

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
		Summary: "List modules on the server",
		Usage:   "vessel module list",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			client, err := cli.Connect(logger)
			if err != nil {
				return err
			}
			res := transport.Invoke(ctx, client, api.ListModules, api.ListModulesParams{})
			return cli.Render(res, formatModules)
		},
	}
}

// formatModules renders the module table.
func formatModules(modules []api.ModuleInfo) string {
	if len(modules) == 0 {
		return "No modules."
	}
	var output strings.Builder
	table := tabwriter.NewWriter(&output, 2, 0, 3, ' ', 0)
	fmt.Fprintln(table, "NAME\tVERSION\tSTACK\tBUILT")
	for _, module := range modules {
		fmt.Fprintf(table, "%s\t%s\t%s\t%s\n",
			module.Name, module.Version, module.Stack,
			time.Unix(module.BuiltAt, 0).UTC().Format(time.RFC3339))
	}
	table.Flush()
	return strings.TrimRight(output.String(), "\n")
}
