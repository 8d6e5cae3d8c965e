// Copyright 2026 The Flategen Authors
// SPDX-License-Identifier: Apache-2.0

// Package payload generates raw fixture payloads of controlled
// entropy: uniformly random bytes, a repeated random block, or
// repeated natural-language text. Each pattern stresses a different
// path in a DEFLATE consumer (incompressible input, long
// back-references, realistic text).
package payload

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Kind identifies a payload generation pattern.
type Kind uint8

const (
	// KindRandom writes uniformly random bytes. No structure;
	// near-incompressible worst-case input.
	KindRandom Kind = iota

	// KindRepeat writes one random block concatenated a fixed number
	// of times. Highly redundant input for back-reference and
	// run-length paths.
	KindRepeat

	// KindLorem writes a fixed text sample repeated whole times.
	// Realistic, moderately compressible input.
	KindLorem
)

// String returns the registry name of a payload kind.
func (k Kind) String() string {
	switch k {
	case KindRandom:
		return "random"
	case KindRepeat:
		return "repeat"
	case KindLorem:
		return "lorem"
	default:
		return fmt.Sprintf("unknown(%d)", k)
	}
}

// ParseKind parses a payload kind from its registry name.
func ParseKind(name string) (Kind, error) {
	switch name {
	case "random":
		return KindRandom, nil
	case "repeat":
		return KindRepeat, nil
	case "lorem":
		return KindLorem, nil
	default:
		return 0, fmt.Errorf("unknown generator kind: %q", name)
	}
}

// Spec describes one payload: a kind plus the parameters that kind
// uses. Size applies to KindRandom and KindLorem; BlockSize and
// Repeat apply to KindRepeat.
type Spec struct {
	Kind      Kind
	Size      int
	BlockSize int
	Repeat    int
}

// Validate checks that the parameters required by the spec's kind are
// positive.
func (s Spec) Validate() error {
	switch s.Kind {
	case KindRandom, KindLorem:
		if s.Size <= 0 {
			return fmt.Errorf("%s generator: size must be positive, got %d", s.Kind, s.Size)
		}
	case KindRepeat:
		if s.BlockSize <= 0 {
			return fmt.Errorf("repeat generator: block size must be positive, got %d", s.BlockSize)
		}
		if s.Repeat <= 0 {
			return fmt.Errorf("repeat generator: repeat count must be positive, got %d", s.Repeat)
		}
	default:
		return fmt.Errorf("unknown generator kind: %d", s.Kind)
	}
	return nil
}

// Generate writes the payload described by s to path, drawing random
// bytes from source. The parent directory is created if absent and
// any existing file is overwritten.
func (s Spec) Generate(path string, source io.Reader) error {
	data, err := s.Bytes(source)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating payload directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing payload %s: %w", path, err)
	}
	return nil
}

// Bytes materializes the payload in memory. KindLorem truncates to
// whole repetitions of the sample, so the result can be smaller than
// Size — downstream consumers key off actual file sizes, not the
// nominal registry size.
func (s Spec) Bytes(source io.Reader) ([]byte, error) {
	switch s.Kind {
	case KindRandom:
		data := make([]byte, s.Size)
		if _, err := io.ReadFull(source, data); err != nil {
			return nil, fmt.Errorf("reading %d random bytes: %w", s.Size, err)
		}
		return data, nil

	case KindRepeat:
		block := make([]byte, s.BlockSize)
		if _, err := io.ReadFull(source, block); err != nil {
			return nil, fmt.Errorf("reading %d-byte random block: %w", s.BlockSize, err)
		}
		return bytes.Repeat(block, s.Repeat), nil

	case KindLorem:
		repetitions := s.Size / len(loremSample)
		return bytes.Repeat(loremSample, repetitions), nil

	default:
		return nil, fmt.Errorf("unknown generator kind: %d", s.Kind)
	}
}

// loremSample is the text block repeated by KindLorem.
var loremSample = []byte(`Lorem ipsum dolor sit amet, consectetur adipiscing elit
sed do eiusmod tempor incididunt ut labore et dolore magna aliqua
Ut enim ad minim veniam, quis nostrud exercitation ullamco laboris
nisi ut aliquip ex ea commodo consequat. Duis aute irure dolor in
reprehenderit in voluptate velit esse cillum dolore eu fugiat nulla
`)
