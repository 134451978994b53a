// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-tree framework for the vessel
// binary: a [Command] type with pflag-backed flags, help synthesis,
// typo suggestions, and the shared dispatcher plumbing (settings
// loading, transport construction, result rendering, exit codes).
//
// Commands are assembled into a tree in cmd/vessel/commands and
// executed from main with a context and a structured logger.
package cli
