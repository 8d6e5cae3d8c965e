// Copyright 2026 The Flategen Authors
// SPDX-License-Identifier: Apache-2.0

// Package manifest accumulates fixture name to DEFLATE file name
// pairs and serializes them as a flat JSON object.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"
)

// Manifest maps fixture names to their DEFLATE stream file names.
// Names are kept in insertion order for iteration; serialization
// sorts keys (encoding/json map behavior), which downstream consumers
// do not depend on.
type Manifest struct {
	names   []string
	entries map[string]string
}

// New returns an empty manifest.
func New() *Manifest {
	return &Manifest{entries: make(map[string]string)}
}

// Add records the DEFLATE file name for a fixture. Adding a name that
// is already present replaces its file name without duplicating the
// entry.
func (m *Manifest) Add(name, fileName string) {
	if _, exists := m.entries[name]; !exists {
		m.names = append(m.names, name)
	}
	m.entries[name] = fileName
}

// Len returns the number of entries.
func (m *Manifest) Len() int {
	return len(m.entries)
}

// Names returns the fixture names in insertion order.
func (m *Manifest) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// File returns the recorded file name for a fixture and whether the
// fixture is present.
func (m *Manifest) File(name string) (string, bool) {
	fileName, ok := m.entries[name]
	return fileName, ok
}

// WriteFile serializes the manifest as a flat JSON object to path,
// overwriting any existing file. There is no partial-write recovery:
// a failed write can leave the file missing or truncated.
func (m *Manifest) WriteFile(path string) error {
	data, err := json.Marshal(m.entries)
	if err != nil {
		return fmt.Errorf("encoding manifest: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
