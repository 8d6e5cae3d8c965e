// Copyright 2026 The Flategen Authors
// SPDX-License-Identifier: Apache-2.0

package fixture

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/flategen/flategen/lib/payload"
)

// registryFile is the YAML document for an alternate fixture
// registry:
//
//	fixtures:
//	  - name: random_data
//	    generator: random
//	    size: 512
//	  - name: repeat_1_data
//	    generator: repeat
//	    block_size: 8
//	    repeat: 64
type registryFile struct {
	Fixtures []fixtureEntry `yaml:"fixtures"`
}

type fixtureEntry struct {
	Name      string `yaml:"name"`
	Generator string `yaml:"generator"`
	Size      int    `yaml:"size,omitempty"`
	BlockSize int    `yaml:"block_size,omitempty"`
	Repeat    int    `yaml:"repeat,omitempty"`
}

// LoadRegistry reads a YAML fixture registry from path. Fixture order
// in the file is processing order. The registry is validated on load:
// every fixture needs a unique name, a known generator kind, and
// positive parameters for that kind.
func LoadRegistry(path string) ([]Fixture, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}

	var file registryFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", path, err)
	}
	if len(file.Fixtures) == 0 {
		return nil, fmt.Errorf("registry %s defines no fixtures", path)
	}

	seen := make(map[string]bool, len(file.Fixtures))
	registry := make([]Fixture, 0, len(file.Fixtures))
	for index, entry := range file.Fixtures {
		if entry.Name == "" {
			return nil, fmt.Errorf("registry %s: fixture %d has no name", path, index)
		}
		if seen[entry.Name] {
			return nil, fmt.Errorf("registry %s: duplicate fixture name %q", path, entry.Name)
		}
		seen[entry.Name] = true

		kind, err := payload.ParseKind(entry.Generator)
		if err != nil {
			return nil, fmt.Errorf("registry %s: fixture %q: %w", path, entry.Name, err)
		}
		spec := payload.Spec{
			Kind:      kind,
			Size:      entry.Size,
			BlockSize: entry.BlockSize,
			Repeat:    entry.Repeat,
		}
		if err := spec.Validate(); err != nil {
			return nil, fmt.Errorf("registry %s: fixture %q: %w", path, entry.Name, err)
		}

		registry = append(registry, Fixture{Name: entry.Name, Payload: spec})
	}
	return registry, nil
}
