// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mechvibes reads MechVibes sound pack configuration files.
package mechvibes

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/pdiddy/mechvibes2thock/pkg/types"
)

// ErrParse is returned when a config file is not valid MechVibes JSON.
var ErrParse = errors.New("invalid MechVibes config")

// Load reads and decodes the MechVibes config at path.
func Load(path string) (*types.SourceConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading MechVibes config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes MechVibes config JSON. Any decoding failure, including a
// top-level value that is not an object, wraps ErrParse.
func Parse(data []byte) (*types.SourceConfig, error) {
	var cfg types.SourceConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return &cfg, nil
}
