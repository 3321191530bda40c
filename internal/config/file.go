// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// parseFile reads a YAML (or JSON, a YAML subset) config file into a
// [StructuredConfig] using the `koanf` struct tags. Durations are written as
// strings such as "30s" or "10m".
func parseFile(path string) (*StructuredConfig, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	cfg := new(StructuredConfig)
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}

	return cfg, nil
}
