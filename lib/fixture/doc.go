// Copyright 2026 The Flategen Authors
// SPDX-License-Identifier: Apache-2.0

// Package fixture defines the fixture registry and the orchestrator
// that drives one full generation run: for every registry entry, in
// declaration order, generate the raw payload, wrap it in a gzip
// container, extract the raw DEFLATE stream, and finally write one
// manifest mapping fixture names to their DEFLATE files.
//
// Execution is strictly sequential and fail-fast: the first error
// from any stage aborts the run, and no manifest is written for a
// partial run.
package fixture
