// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assets locates the sound files that belong to a sound pack.
package assets

import (
	"os"
	"path/filepath"
	"regexp"

	"github.com/rs/zerolog"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// unsafeChars matches every rune not allowed in a pack directory name.
var unsafeChars = regexp.MustCompile(`[^a-z0-9_-]`)

// SanitizeName turns a pack name into a filesystem-safe slug: lowercased,
// with every rune outside [a-z0-9_-] replaced by an underscore.
func SanitizeName(name string) string {
	return unsafeChars.ReplaceAllString(cases.Lower(language.Und).String(name), "_")
}

// ResolveSoundDir returns the directory holding a pack's sound files. It
// prefers baseDir/safeName and falls back to baseDir itself, with a warning,
// when that folder does not exist.
func ResolveSoundDir(log zerolog.Logger, baseDir, safeName string) string {
	candidate := filepath.Join(baseDir, safeName)
	if info, err := os.Stat(candidate); err == nil && info.IsDir() && safeName != "" {
		return candidate
	}
	log.Warn().
		Str("dir", candidate).
		Str("fallback", baseDir).
		Msg("sounds folder missing, falling back to base directory")
	return baseDir
}
