// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build windows

package pack

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pdiddy/mechvibes2thock/pkg/types"
)

// WriteConfig writes dest as 4-space indented JSON to path through a temp
// file in the same directory and a rename, so readers never see a
// truncated config.
func WriteConfig(log zerolog.Logger, dest types.DestConfig, path string) error {
	tmpFile, err := os.CreateTemp(filepath.Dir(path), ".config-*.json.tmp")
	if err != nil {
		return fmt.Errorf("creating temp config file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if tmpFile != nil {
			tmpFile.Close()
		}
		if err := os.Remove(tmpPath); err != nil && !os.IsNotExist(err) {
			log.Debug().Err(err).Msg("cleanup temp config file")
		}
	}()

	if err := encodeConfig(tmpFile, dest); err != nil {
		return err
	}
	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("syncing temp config file: %w", err)
	}

	// Windows cannot rename an open file.
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("closing temp config file: %w", err)
	}
	tmpFile = nil

	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
