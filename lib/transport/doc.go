// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

// Package transport executes remote calls against the Vessel server:
// one HTTPS POST per named endpoint, CBOR envelopes both ways, and a
// single Result shape for every outcome.
//
// The design center is error unification. Everything that can go wrong
// inside [Invoke] — missing credentials, a refused connection, a TLS
// failure, the round-trip timeout, an undecodable reply, a failure the
// server reported — collapses into the three-variant
// [github.com/vessel-sh/vessel/lib/result.Result]. Nothing above this
// package needs a fault-handling path; it pattern-matches the Result.
//
// Nothing here retries. Each process invocation makes one call, waited
// on synchronously, bounded by [ResponseTimeout].
package transport
