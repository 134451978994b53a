// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

// Package api defines the wire types and call descriptors for every
// remote operation the CLI performs. Each descriptor pairs a stable
// endpoint name with its argument and result types at compile time;
// the server implements the matching half of each call.
//
// Wire types use integer struct keys (keyasint) to keep envelopes
// small and field names out of the protocol.
package api

import (
	"github.com/vessel-sh/vessel/lib/transport"
)

// ModuleInfo describes one deployable module known to the server.
type ModuleInfo struct {
	// Name is the qualified module name (e.g. "demo/fibonacci").
	Name string `cbor:"1,keyasint"`

	// Version is the server-assigned build version.
	Version string `cbor:"2,keyasint"`

	// Stack is the runtime stack the module was built for.
	Stack string `cbor:"3,keyasint"`

	// BuiltAt is the build completion time, Unix seconds.
	BuiltAt int64 `cbor:"4,keyasint"`
}

// ProcessInfo describes one running instance of a module.
type ProcessInfo struct {
	// ID is the server-assigned process identifier.
	ID string `cbor:"1,keyasint"`

	// Module is the qualified name of the module the process runs.
	Module string `cbor:"2,keyasint"`

	// StartedAt is the start time, Unix seconds.
	StartedAt int64 `cbor:"3,keyasint"`
}

// LogLine is one line of process output.
type LogLine struct {
	// Time is the line's timestamp, Unix milliseconds.
	Time int64 `cbor:"1,keyasint"`

	// Text is the line content without a trailing newline.
	Text string `cbor:"2,keyasint"`
}

// StartParams starts a process running the named module.
type StartParams struct {
	Module string `cbor:"1,keyasint"`
}

// StopParams stops the identified process.
type StopParams struct {
	Process string `cbor:"1,keyasint"`
}

// ListModulesParams has no fields; the call still posts its encoded
// empty value (one uniform POST-per-call framing for every endpoint).
type ListModulesParams struct{}

// ListProcessesParams has no fields, like ListModulesParams.
type ListProcessesParams struct{}

// LogsParams fetches recent output from a process.
type LogsParams struct {
	Process string `cbor:"1,keyasint"`

	// Tail limits output to the last Tail lines. Zero means the
	// server's default window.
	Tail int `cbor:"2,keyasint,omitempty"`
}

// GCParams has no fields; garbage collection takes no arguments.
type GCParams struct{}

// BuildParams uploads a packaged project for a server-side build.
type BuildParams struct {
	// Name is the module name from the project manifest.
	Name string `cbor:"1,keyasint"`

	// Stack is the runtime stack from the project manifest.
	Stack string `cbor:"2,keyasint"`

	// Archive is the project directory packaged as a compressed tar.
	Archive []byte `cbor:"3,keyasint"`

	// Compression names the archive compression ("zstd" or "lz4").
	Compression string `cbor:"4,keyasint"`
}

// Call descriptors, one per remote operation. Names are protocol
// constants shared with the server; they never change for
// interoperating versions.
var (
	Start          = transport.NewCall[StartParams, ProcessInfo]("start")
	Stop           = transport.NewCall[StopParams, string]("stop")
	ListModules    = transport.NewCall[ListModulesParams, []ModuleInfo]("list-modules")
	ListProcesses  = transport.NewCall[ListProcessesParams, []ProcessInfo]("list-processes")
	Logs           = transport.NewCall[LogsParams, []LogLine]("logs")
	Build          = transport.NewCall[BuildParams, ModuleInfo]("build")
	GarbageCollect = transport.NewCall[GCParams, []string]("gc")
)
