// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

//go:build !windows

package pack

import (
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/rs/zerolog"

	"github.com/pdiddy/mechvibes2thock/pkg/types"
)

// WriteConfig writes dest as 4-space indented JSON to path. The file is
// replaced atomically so a crash never leaves a truncated config.
func WriteConfig(log zerolog.Logger, dest types.DestConfig, path string) error {
	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644))
	if err != nil {
		return fmt.Errorf("creating pending config file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			log.Debug().Err(err).Msg("cleanup pending config file")
		}
	}()

	if err := encodeConfig(pendingFile, dest); err != nil {
		return err
	}

	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
