// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "vessel",
		Subcommands: []*Command{
			{
				Name: "module",
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					called = "module"
					return nil
				},
			},
			{
				Name: "process",
				Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
					called = "process"
					return nil
				},
			},
		},
	}

	if err := root.Execute(context.Background(), []string{"process"}, discardLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "process" {
		t.Errorf("dispatched to %q, want %q", called, "process")
	}
}

func TestCommand_Execute_NestedSubcommands(t *testing.T) {
	var receivedArgs []string

	root := &Command{
		Name: "vessel",
		Subcommands: []*Command{
			{
				Name: "module",
				Subcommands: []*Command{
					{
						Name: "build",
						Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
							receivedArgs = args
							return nil
						},
					},
				},
			},
		},
	}

	err := root.Execute(context.Background(), []string{"module", "build", "./project"}, discardLogger())
	if err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if len(receivedArgs) != 1 || receivedArgs[0] != "./project" {
		t.Errorf("args = %v, want [./project]", receivedArgs)
	}
}

func TestCommand_Execute_UnknownCommandSuggests(t *testing.T) {
	root := &Command{
		Name: "vessel",
		Subcommands: []*Command{
			{Name: "module"},
			{Name: "process"},
		},
	}

	err := root.Execute(context.Background(), []string{"modle"}, discardLogger())
	if err == nil {
		t.Fatal("Execute() accepted an unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "module"`) {
		t.Errorf("error %q lacks the typo suggestion", err.Error())
	}
}

func TestCommand_Execute_NoSubcommandShowsHelp(t *testing.T) {
	root := &Command{
		Name:        "vessel",
		Subcommands: []*Command{{Name: "module", Summary: "Manage modules"}},
	}

	if err := root.Execute(context.Background(), nil, discardLogger()); err == nil {
		t.Fatal("Execute() with no args and no Run returned nil")
	}
}

func TestCommand_Execute_ParsesFlags(t *testing.T) {
	type buildParams struct {
		Compression string `flag:"compression,c" desc:"archive compression" default:"zstd"`
	}
	var params buildParams

	command := &Command{
		Name: "build",
		Flags: func() *pflag.FlagSet {
			return FlagsFromParams("build", &params)
		},
		Run: func(ctx context.Context, args []string, logger *slog.Logger) error {
			return nil
		},
	}

	if err := command.Execute(context.Background(), []string{"--compression", "lz4"}, discardLogger()); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if params.Compression != "lz4" {
		t.Errorf("Compression = %q, want lz4", params.Compression)
	}
}

func TestCommand_PrintHelp_ListsSubcommands(t *testing.T) {
	root := &Command{
		Name:    "vessel",
		Summary: "Client for the Vessel orchestration server",
		Subcommands: []*Command{
			{Name: "module", Summary: "Manage modules"},
			{Name: "process", Summary: "Manage processes"},
		},
	}

	var output bytes.Buffer
	root.PrintHelp(&output)
	help := output.String()

	for _, expected := range []string{"module", "Manage modules", "process", "Manage processes"} {
		if !strings.Contains(help, expected) {
			t.Errorf("help output missing %q", expected)
		}
	}
}

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"module", "module", 0},
		{"modle", "module", 1},
		{"stat", "start", 1},
		{"gc", "logs", 3},
	}
	for _, test := range tests {
		if got := editDistance(test.a, test.b); got != test.want {
			t.Errorf("editDistance(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}
