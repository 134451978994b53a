// Copyright 2026 The Vessel Authors
// SPDX-License-Identifier: Apache-2.0

// Package project reads the on-disk project manifest and packages a
// project directory for upload to the build endpoint.
//
// The manifest (vessel.yaml or vessel.jsonc) names the module, its
// runtime stack, and archive exclusions. Packaging produces a
// deterministic compressed tar so identical trees upload identical
// bytes.
package project
