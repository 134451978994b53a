// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/vessel-sh/vessel/cmd/vessel/cli"
	"github.com/vessel-sh/vessel/cmd/vessel/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own output (like rendered call
		// errors) return an ExitError with the desired code. Don't
		// print a redundant "error:" line for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger := cli.NewCommandLogger()
	return commands.Root().Execute(context.Background(), os.Args[1:], logger)
}
