// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package pack assembles Thock sound pack directories: it copies the sound
// files a converted config references and writes the config alongside them.
package pack

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/google/uuid"
	"github.com/otiai10/copy"
	"github.com/rs/zerolog"

	"github.com/pdiddy/mechvibes2thock/pkg/types"
)

// copyOptions keep the mode and modification time of copied sounds and
// copy the target of a symlinked sound rather than the link.
var copyOptions = copy.Options{
	PreserveTimes: true,
	OnSymlink:     func(string) copy.SymlinkAction { return copy.Deep },
}

// ConfigFile is the name of the Thock config inside a pack directory.
const ConfigFile = "config.json"

// Result describes a packaged sound pack.
type Result struct {
	OutputDir  string   `json:"output_dir" yaml:"output_dir"`
	Referenced []string `json:"referenced" yaml:"referenced"`
	Copied     []string `json:"copied" yaml:"copied"`
	Missing    []string `json:"missing,omitempty" yaml:"missing,omitempty"`
}

// Complete reports whether every referenced sound file was copied.
func (r Result) Complete() bool {
	return len(r.Missing) == 0
}

// OutputDirName returns the directory name for a new pack:
// <safeName>_thock_<8 hex chars>.
func OutputDirName(safeName string) string {
	return fmt.Sprintf("%s_thock_%s", safeName, uuid.New().String()[:8])
}

// ReferencedFiles returns the distinct sound paths used by any binding in
// dest, sorted.
func ReferencedFiles(dest types.DestConfig) []string {
	seen := make(map[string]struct{})
	for _, b := range dest.Sounds {
		for _, f := range b.Down {
			seen[f] = struct{}{}
		}
		for _, f := range b.Up {
			seen[f] = struct{}{}
		}
	}
	files := make([]string, 0, len(seen))
	for f := range seen {
		files = append(files, f)
	}
	sort.Strings(files)
	return files
}

// Package copies the sound files referenced by dest from sourceDir into
// outputDir and writes outputDir/config.json. The pack layout is flat, so a
// reference in a subfolder is copied under its base name and the written
// config points at that name. When two references share a base name only
// the first (in sorted order) is copied; the others are reported missing.
// Missing or uncopyable sound files are logged and skipped; only failures
// to create outputDir or write the config are returned as errors. Existing
// files in outputDir that dest does not reference are left alone.
func Package(log zerolog.Logger, dest types.DestConfig, sourceDir, outputDir string) (Result, error) {
	result := Result{
		OutputDir:  outputDir,
		Referenced: ReferencedFiles(dest),
		Copied:     []string{},
	}

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return result, fmt.Errorf("creating output directory %s: %w", outputDir, err)
	}

	// flat maps each copied reference to its name inside outputDir; owner
	// maps a flat name back to the reference that claimed it.
	flat := make(map[string]string)
	owner := make(map[string]string)

	for _, file := range result.Referenced {
		if !filepath.IsLocal(file) {
			log.Warn().Str("file", file).Msg("sound path escapes the sounds folder, skipping")
			result.Missing = append(result.Missing, file)
			continue
		}

		src := filepath.Join(sourceDir, file)
		info, err := os.Stat(src)
		if err != nil || !info.Mode().IsRegular() {
			log.Warn().Str("file", file).Str("dir", sourceDir).Msg("sound file missing")
			result.Missing = append(result.Missing, file)
			continue
		}

		name := filepath.Base(file)
		if prev, taken := owner[name]; taken {
			log.Warn().Str("file", file).Str("conflicts_with", prev).Msg("sound file name already used in pack, skipping")
			result.Missing = append(result.Missing, file)
			continue
		}

		if err := copy.Copy(src, filepath.Join(outputDir, name), copyOptions); err != nil {
			log.Warn().Err(err).Str("file", file).Msg("copying sound file failed")
			result.Missing = append(result.Missing, file)
			continue
		}
		owner[name] = file
		flat[file] = name
		result.Copied = append(result.Copied, file)
	}

	if err := WriteConfig(log, flatten(dest, flat), filepath.Join(outputDir, ConfigFile)); err != nil {
		return result, err
	}
	return result, nil
}

// flatten returns a copy of dest whose sound references are renamed
// according to names. References not in names are kept as they are.
func flatten(dest types.DestConfig, names map[string]string) types.DestConfig {
	rename := func(files []string) []string {
		out := make([]string, len(files))
		for i, f := range files {
			if n, ok := names[f]; ok {
				out[i] = n
			} else {
				out[i] = f
			}
		}
		return out
	}

	sounds := make(map[string]types.SoundBinding, len(dest.Sounds))
	for key, b := range dest.Sounds {
		sounds[key] = types.SoundBinding{Down: rename(b.Down), Up: rename(b.Up)}
	}
	dest.Sounds = sounds
	return dest
}

// encodeConfig writes dest as 4-space indented JSON.
func encodeConfig(w io.Writer, dest types.DestConfig) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(dest); err != nil {
		return fmt.Errorf("encoding Thock config: %w", err)
	}
	return nil
}
