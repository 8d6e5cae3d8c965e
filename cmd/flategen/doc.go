// Copyright 2026 The Flategen Authors
// SPDX-License-Identifier: Apache-2.0

// Flategen generates raw DEFLATE test fixtures. For every fixture in
// its registry it writes a raw payload, compresses it into a gzip
// container, strips the container down to the embedded DEFLATE
// stream, and finally records a manifest.json mapping fixture names
// to their .deflate files.
//
// With no flags it writes the built-in four-fixture set into ./data.
// An alternate registry can be supplied as a YAML file via
// --fixtures, and --seed makes the random payloads reproducible.
//
// Any I/O failure aborts the run with exit status 1; there are no
// structured exit codes.
package main
