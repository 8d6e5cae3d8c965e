// Copyright 2026 The Flategen Authors
// SPDX-License-Identifier: Apache-2.0

package payload

import (
	"crypto/rand"
	"encoding/binary"
	"io"
	mathrand "math/rand/v2"
)

// NewSource returns the default byte source: the operating system's
// random number generator. Matches the randomized mode where each run
// produces a fresh fixture set.
func NewSource() io.Reader {
	return rand.Reader
}

// NewSeededSource returns a deterministic byte source derived from
// seed. The same seed always yields the same byte stream, so fixture
// sets generated with it are reproducible across runs and machines.
func NewSeededSource(seed uint64) io.Reader {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], seed)
	return mathrand.NewChaCha8(key)
}
