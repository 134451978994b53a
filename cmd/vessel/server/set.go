// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	"github.com/vessel-sh/vessel/cmd/vessel/cli"
	"github.com/vessel-sh/vessel/lib/settings"
)

type setParams struct {
	Host    string `flag:"host" desc:"server host" default:"localhost"`
	Port    int    `flag:"port" desc:"server port" default:"8443"`
	AuthKey string `flag:"auth-key" desc:"authentication secret (omit to be prompted without echo)"`
}

func setCommand() *cli.Command {
	var params setParams
	var flagSet *pflag.FlagSet

	return &cli.Command{
		Name:    "set",
		Summary: "Record the server address and credentials",
		Usage:   "vessel server set [--host <host>] [--port <port>] [--auth-key <secret>]",
		Flags: func() *pflag.FlagSet {
			flagSet = cli.FlagsFromParams("set", &params)
			return flagSet
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			if len(args) > 0 {
				return fmt.Errorf("unexpected argument: %s", args[0])
			}
			return runSet(params, flagSet, logger)
		},
	}
}

func runSet(params setParams, flagSet *pflag.FlagSet, logger *slog.Logger) error {
	loaded, err := settings.Load()
	if err != nil {
		return err
	}

	// Only overwrite the address when the flag was actually passed.
	// Rotating the auth key with a bare "vessel server set --auth-key"
	// must not reset a configured server back to the flag defaults,
	// mirroring how InstallID survives reconfiguration below.
	if flagSet.Changed("host") || loaded.Server.Host == "" {
		loaded.Server.Host = params.Host
	}
	if flagSet.Changed("port") || loaded.Server.Port == 0 {
		loaded.Server.Port = params.Port
	}

	authKey := params.AuthKey
	if authKey == "" {
		authKey, err = promptSecret("Auth key: ")
		if err != nil {
			return err
		}
	}
	if authKey == "" {
		return fmt.Errorf("auth key must not be empty")
	}
	loaded.AuthKey = authKey

	// The install identifier is generated once and survives later
	// reconfiguration, so the server keeps correlating this install.
	if loaded.InstallID == "" {
		loaded.InstallID = uuid.NewString()
		logger.Info("generated install identifier", "install_id", loaded.InstallID)
	}

	if err := loaded.Save(); err != nil {
		return err
	}

	path, err := settings.Path()
	if err != nil {
		return err
	}
	fmt.Printf("Server set to %s (settings: %s)\n", loaded.BaseURL(), path)
	return nil
}

// promptSecret reads a line from the terminal without echo. Falls back
// to a plain (echoed) read when stdin is not a terminal, so piped
// provisioning scripts still work.
func promptSecret(prompt string) (string, error) {
	fmt.Fprint(os.Stderr, prompt)
	if term.IsTerminal(int(os.Stdin.Fd())) {
		secret, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", fmt.Errorf("reading auth key: %w", err)
		}
		return strings.TrimSpace(string(secret)), nil
	}

	var line string
	if _, err := fmt.Fscanln(os.Stdin, &line); err != nil {
		return "", fmt.Errorf("reading auth key: %w", err)
	}
	return strings.TrimSpace(line), nil
}
