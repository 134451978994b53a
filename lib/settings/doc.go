// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

// Package settings loads and stores the per-user Vessel client
// configuration: server address, authentication secret, and install
// identifier.
//
// The file lives at a single explicit location — $VESSEL_CONFIG or
// <user config dir>/vessel/settings.yaml — with no fallback search.
// Settings are read exactly once per process invocation into an
// explicit struct; there are no ambient lookups after startup.
package settings
