// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pack

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/pdiddy/mechvibes2thock/internal/assets"
	"github.com/pdiddy/mechvibes2thock/internal/convert"
	"github.com/pdiddy/mechvibes2thock/internal/mechvibes"
	"github.com/pdiddy/mechvibes2thock/pkg/types"
)

// ErrInputMissing is returned when the MechVibes config file does not exist.
var ErrInputMissing = errors.New("input config not found")

// Create converts the MechVibes config at srcPath and writes a new Thock
// pack directory under cfg.OutputRoot(). Nothing is created when the input
// is missing or cannot be parsed.
func Create(log zerolog.Logger, srcPath string, cfg types.Config) (Result, error) {
	cfg = cfg.WithDefaults()

	info, err := os.Stat(srcPath)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return Result{}, fmt.Errorf("%w: %s", ErrInputMissing, srcPath)
	case err != nil:
		return Result{}, fmt.Errorf("checking MechVibes config: %w", err)
	case info.IsDir():
		return Result{}, fmt.Errorf("%w: %s is a directory", ErrInputMissing, srcPath)
	}

	src, err := mechvibes.Load(srcPath)
	if err != nil {
		return Result{}, err
	}

	dest, report := convert.Convert(src, convert.OptionsFromConfig(cfg))
	report.Log(log.With().Str("config", srcPath).Logger())

	safeName := assets.SanitizeName(dest.Name)
	soundDir := assets.ResolveSoundDir(log, cfg.SoundsRoot(), safeName)
	outputDir := filepath.Join(cfg.OutputRoot(), OutputDirName(safeName))

	result, err := Package(log, dest, soundDir, outputDir)
	if err != nil {
		return result, err
	}

	log.Info().
		Str("name", dest.Name).
		Str("id", dest.ID.String()).
		Int("keys", len(dest.Sounds)-1).
		Int("copied", len(result.Copied)).
		Int("missing", len(result.Missing)).
		Msg("pack written")
	return result, nil
}

// BatchResult holds the outcome of converting several configs.
type BatchResult struct {
	Created    int
	Incomplete int
	Failed     int
	Results    []Result
}

// Total returns the number of configs processed.
func (r BatchResult) Total() int {
	return r.Created + r.Failed
}

// HasFailures reports whether any config failed to convert.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}

// CreateBatch converts each config in turn, printing one status line per
// config and a summary to w. A failed config does not stop the batch.
func CreateBatch(log zerolog.Logger, srcPaths []string, cfg types.Config, w io.Writer) BatchResult {
	var batch BatchResult
	for _, p := range srcPaths {
		result, err := Create(log, p, cfg)
		if err != nil {
			fmt.Fprintf(w, "failed:  %s (%v)\n", p, err)
			batch.Failed++
			continue
		}
		batch.Created++
		if !result.Complete() {
			batch.Incomplete++
		}
		batch.Results = append(batch.Results, result)
		fmt.Fprintf(w, "Thock soundpack created at: %s\n", result.OutputDir)
	}
	if len(srcPaths) > 1 {
		fmt.Fprintf(w, "\nBatch summary: %d created (%d with missing sounds), %d failed (total: %d)\n",
			batch.Created, batch.Incomplete, batch.Failed, batch.Total())
	}
	return batch
}
