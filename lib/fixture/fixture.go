// Copyright 2026 The Flategen Authors
// SPDX-License-Identifier: Apache-2.0

package fixture

import (
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"

	"github.com/flategen/flategen/lib/gzipstream"
	"github.com/flategen/flategen/lib/manifest"
	"github.com/flategen/flategen/lib/payload"
)

// ManifestFileName is the manifest file written into the data
// directory after all fixtures are processed.
const ManifestFileName = "manifest.json"

const (
	gzipSuffix    = ".gz"
	deflateSuffix = ".deflate"
)

// Fixture pairs a unique name with the payload it is generated from.
// The data directory holds, per fixture: the raw payload under the
// fixture name, the gzip container under name + ".gz", and the
// extracted stream under name + ".deflate".
type Fixture struct {
	Name    string
	Payload payload.Spec
}

// GzipName returns the gzip container file name for a fixture name.
func GzipName(name string) string {
	return name + gzipSuffix
}

// DeflateName returns the DEFLATE stream file name for a fixture
// name. This is the name recorded in the manifest.
func DeflateName(name string) string {
	return name + deflateSuffix
}

// DefaultRegistry returns the built-in fixture set: a 512-byte random
// blob, two repeated random blocks (8x64 and 16x31), and roughly a
// kilobyte of repeated text.
func DefaultRegistry() []Fixture {
	return []Fixture{
		{Name: "random_data", Payload: payload.Spec{Kind: payload.KindRandom, Size: 512}},
		{Name: "repeat_1_data", Payload: payload.Spec{Kind: payload.KindRepeat, BlockSize: 8, Repeat: 64}},
		{Name: "repeat_2_data", Payload: payload.Spec{Kind: payload.KindRepeat, BlockSize: 16, Repeat: 31}},
		{Name: "lorem_ipsum_data", Payload: payload.Spec{Kind: payload.KindLorem, Size: 1024}},
	}
}

// Run processes every fixture in registry order and writes the
// manifest once all of them succeed. Random bytes are drawn from
// source. Any failure aborts the run; there is no per-fixture
// isolation and no partial manifest.
func Run(dataDir string, registry []Fixture, source io.Reader, logger *slog.Logger) error {
	seen := make(map[string]bool, len(registry))
	for _, entry := range registry {
		if seen[entry.Name] {
			return fmt.Errorf("duplicate fixture name %q in registry", entry.Name)
		}
		seen[entry.Name] = true
	}

	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data directory %s: %w", dataDir, err)
	}

	result := manifest.New()
	for _, entry := range registry {
		rawPath := filepath.Join(dataDir, entry.Name)
		containerPath := filepath.Join(dataDir, GzipName(entry.Name))
		deflatePath := filepath.Join(dataDir, DeflateName(entry.Name))

		if err := entry.Payload.Generate(rawPath, source); err != nil {
			return fmt.Errorf("generating fixture %s: %w", entry.Name, err)
		}
		if logger.Enabled(context.Background(), slog.LevelDebug) {
			if digest, size, err := hashFile(rawPath); err == nil {
				logger.Debug("payload generated",
					"name", entry.Name, "bytes", size, "blake3", digest)
			}
		}

		if err := gzipstream.Compress(rawPath, containerPath); err != nil {
			return fmt.Errorf("compressing fixture %s: %w", entry.Name, err)
		}
		if err := gzipstream.ExtractDeflate(containerPath, deflatePath); err != nil {
			return fmt.Errorf("extracting fixture %s: %w", entry.Name, err)
		}

		result.Add(entry.Name, DeflateName(entry.Name))
		logger.Info("fixture written", "name", entry.Name, "deflate", DeflateName(entry.Name))
	}

	manifestPath := filepath.Join(dataDir, ManifestFileName)
	if err := result.WriteFile(manifestPath); err != nil {
		return err
	}
	logger.Info("manifest written", "path", manifestPath, "fixtures", result.Len())
	return nil
}

// hashFile computes the BLAKE3 digest of the file at path, streamed
// in chunks to keep memory constant. Used for debug logging only.
func hashFile(path string) (digest string, size int64, err error) {
	file, err := os.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer file.Close()

	hasher := blake3.New()
	size, err = io.Copy(hasher, file)
	if err != nil {
		return "", 0, fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(hasher.Sum(nil)), size, nil
}
