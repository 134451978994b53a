// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

// Package codec provides the binary envelope codec shared by every
// remote call: CBOR with Core Deterministic Encoding on the encode
// side, standard CBOR on the decode side.
//
// One symmetric codec for both directions keeps client and server in
// lock-step on a single schema per call. Decode failures are ordinary
// errors, never panics; the transport maps them to a user-visible
// client-side error rather than crashing.
package codec
