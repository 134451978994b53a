// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vessel-sh/vessel/cmd/vessel/cli"
	"github.com/vessel-sh/vessel/lib/settings"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:    "show",
		Summary: "Print the current connection settings",
		Usage:   "vessel server show",
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			loaded, err := settings.Load()
			if err != nil {
				return err
			}

			authKey := "(not set)"
			if loaded.AuthKey != "" {
				authKey = "(set, redacted)"
			}
			installID := loaded.InstallID
			if installID == "" {
				installID = "(not set)"
			}

			fmt.Printf("server:      %s\n", loaded.BaseURL())
			fmt.Printf("auth key:    %s\n", authKey)
			fmt.Printf("install id:  %s\n", installID)
			fmt.Printf("tls verify:  %s\n", tlsVerifyState(loaded))
			return nil
		},
	}
}

func tlsVerifyState(loaded *settings.Settings) string {
	if loaded.DangerSkipTLSVerify {
		return "DISABLED (danger_skip_tls_verify)"
	}
	return "enabled"
}
