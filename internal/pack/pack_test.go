// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package pack

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/mechvibes2thock/pkg/types"
)

func testDest(sounds map[string]types.SoundBinding) types.DestConfig {
	return types.DestConfig{
		ID:      uuid.MustParse("7b1d5c3e-8f1a-4c3e-9a59-2b8f0e0d1c2a"),
		Name:    "Test",
		IsNew:   true,
		Source:  types.DefaultSourceLabel,
		License: types.License{Type: "unknown"},
		Sounds:  sounds,
	}
}

// writeSounds creates each named file in dir with its name as content.
func writeSounds(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, n := range names {
		path := filepath.Join(dir, n)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(n), 0o644))
	}
}

func TestReferencedFiles(t *testing.T) {
	dest := testDest(map[string]types.SoundBinding{
		"default": types.NewSoundBinding("click.wav"),
		"a":       types.NewSoundBinding("a.wav"),
		"b":       types.NewSoundBinding("click.wav"),
		"space":   {Down: []string{"space.wav"}, Up: []string{"space-up.wav"}},
	})

	got := ReferencedFiles(dest)

	assert.Equal(t, []string{"a.wav", "click.wav", "space-up.wav", "space.wav"}, got)
}

func TestReferencedFiles_Empty(t *testing.T) {
	dest := testDest(map[string]types.SoundBinding{"default": types.NewSoundBinding()})
	assert.Empty(t, ReferencedFiles(dest))
}

func TestPackage(t *testing.T) {
	srcDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "out")
	writeSounds(t, srcDir, "click.wav", "a.wav", "unreferenced.wav")

	dest := testDest(map[string]types.SoundBinding{
		"default": types.NewSoundBinding("click.wav"),
		"a":       types.NewSoundBinding("a.wav"),
		"b":       types.NewSoundBinding("missing.wav"),
	})

	var logBuf bytes.Buffer
	result, err := Package(zerolog.New(&logBuf), dest, srcDir, outDir)
	require.NoError(t, err)

	assert.Equal(t, outDir, result.OutputDir)
	assert.ElementsMatch(t, []string{"a.wav", "click.wav"}, result.Copied)
	assert.Equal(t, []string{"missing.wav"}, result.Missing)
	assert.False(t, result.Complete())
	assert.Contains(t, logBuf.String(), "sound file missing")
	assert.Contains(t, logBuf.String(), "missing.wav")

	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"a.wav", "click.wav", "config.json"}, names,
		"only referenced sounds and the config may be written")

	data, err := os.ReadFile(filepath.Join(outDir, "a.wav"))
	require.NoError(t, err)
	assert.Equal(t, "a.wav", string(data))
}

func TestPackage_ConfigJSON(t *testing.T) {
	outDir := t.TempDir()
	dest := testDest(map[string]types.SoundBinding{
		"default": types.NewSoundBinding("click.wav"),
	})

	_, err := Package(zerolog.Nop(), dest, t.TempDir(), outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, ConfigFile))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(string(data), "{\n    \"id\": "), "config must use 4-space indentation")
	assert.Contains(t, string(data), `"up": []`, "empty lists must encode as []")

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, "7b1d5c3e-8f1a-4c3e-9a59-2b8f0e0d1c2a", decoded["id"])
	assert.Equal(t, "Test", decoded["name"])
	assert.Equal(t, true, decoded["isNew"])
	assert.Equal(t, false, decoded["supportsKeyUp"])
	assert.Equal(t, "converted from MechVibes", decoded["source"])
	assert.Equal(t, map[string]any{"type": "unknown", "url": ""}, decoded["license"])

	var roundTrip types.DestConfig
	require.NoError(t, json.Unmarshal(data, &roundTrip))
	assert.Equal(t, dest, roundTrip)
}

func TestPackage_PreservesMetadata(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	writeSounds(t, srcDir, "click.wav")

	src := filepath.Join(srcDir, "click.wav")
	mtime := time.Date(2021, 3, 4, 5, 6, 7, 0, time.UTC)
	require.NoError(t, os.Chmod(src, 0o600))
	require.NoError(t, os.Chtimes(src, mtime, mtime))

	dest := testDest(map[string]types.SoundBinding{"default": types.NewSoundBinding("click.wav")})
	_, err := Package(zerolog.Nop(), dest, srcDir, outDir)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(outDir, "click.wav"))
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime), "mtime = %v, want %v", info.ModTime(), mtime)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestPackage_KeepsUnrelatedFiles(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	writeSounds(t, srcDir, "click.wav")
	require.NoError(t, os.WriteFile(filepath.Join(outDir, "notes.txt"), []byte("keep me"), 0o644))

	dest := testDest(map[string]types.SoundBinding{"default": types.NewSoundBinding("click.wav")})
	_, err := Package(zerolog.Nop(), dest, srcDir, outDir)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(outDir, "notes.txt"))
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(data))
}

func TestPackage_UnsafePaths(t *testing.T) {
	base := t.TempDir()
	srcDir := filepath.Join(base, "sounds")
	outDir := filepath.Join(base, "out")
	writeSounds(t, base, "secret.wav")
	writeSounds(t, srcDir, "sub/nested.wav")

	dest := testDest(map[string]types.SoundBinding{
		"default": types.NewSoundBinding("../secret.wav"),
		"a":       types.NewSoundBinding("sub/nested.wav"),
	})

	var logBuf bytes.Buffer
	result, err := Package(zerolog.New(&logBuf), dest, srcDir, outDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"../secret.wav"}, result.Missing)
	assert.Equal(t, []string{"sub/nested.wav"}, result.Copied)
	assert.FileExists(t, filepath.Join(outDir, "nested.wav"), "nested sounds are copied flat")
	assert.NoFileExists(t, filepath.Join(outDir, "secret.wav"))
	assert.Contains(t, logBuf.String(), "escapes")

	written := readDest(t, outDir)
	assert.Equal(t, []string{"nested.wav"}, written.Sounds["a"].Down)
	assert.Equal(t, []string{"../secret.wav"}, written.Sounds["default"].Down)
}

func TestPackage_ReferencesResolveInPack(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	writeSounds(t, srcDir, "click.wav", "keys/a.wav", "keys/mods/shift.wav")

	dest := testDest(map[string]types.SoundBinding{
		"default":   types.NewSoundBinding("click.wav"),
		"a":         types.NewSoundBinding("keys/a.wav"),
		"shiftLeft": {Down: []string{"keys/mods/shift.wav"}, Up: []string{"keys/a.wav"}},
	})

	result, err := Package(zerolog.Nop(), dest, srcDir, outDir)
	require.NoError(t, err)
	assert.True(t, result.Complete())

	written := readDest(t, outDir)
	for key, b := range written.Sounds {
		for _, f := range append(append([]string{}, b.Down...), b.Up...) {
			assert.Equal(t, filepath.Base(f), f, "key %q: reference %q must be flat", key, f)
			assert.FileExists(t, filepath.Join(outDir, f), "key %q: reference %q must resolve in the pack", key, f)
		}
	}

	data, err := os.ReadFile(filepath.Join(outDir, "shift.wav"))
	require.NoError(t, err)
	assert.Equal(t, "keys/mods/shift.wav", string(data))

	assert.Equal(t, []string{"keys/a.wav"}, dest.Sounds["a"].Down, "the caller's config is not modified")
}

func TestPackage_BaseNameCollision(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	writeSounds(t, srcDir, "left/click.wav", "right/click.wav")

	dest := testDest(map[string]types.SoundBinding{
		"default": types.NewSoundBinding("left/click.wav"),
		"a":       types.NewSoundBinding("right/click.wav"),
	})

	var logBuf bytes.Buffer
	result, err := Package(zerolog.New(&logBuf), dest, srcDir, outDir)
	require.NoError(t, err)

	assert.Equal(t, []string{"left/click.wav"}, result.Copied)
	assert.Equal(t, []string{"right/click.wav"}, result.Missing)
	assert.False(t, result.Complete())
	assert.Contains(t, logBuf.String(), "already used in pack")

	data, err := os.ReadFile(filepath.Join(outDir, "click.wav"))
	require.NoError(t, err)
	assert.Equal(t, "left/click.wav", string(data), "the first reference keeps the name")

	written := readDest(t, outDir)
	assert.Equal(t, []string{"click.wav"}, written.Sounds["default"].Down)
	assert.Equal(t, []string{"right/click.wav"}, written.Sounds["a"].Down)
}

func TestPackage_SourceIsDirectory(t *testing.T) {
	srcDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(srcDir, "click.wav"), 0o755))

	dest := testDest(map[string]types.SoundBinding{"default": types.NewSoundBinding("click.wav")})
	result, err := Package(zerolog.Nop(), dest, srcDir, t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, []string{"click.wav"}, result.Missing)
	assert.Empty(t, result.Copied)
}

func TestOutputDirName(t *testing.T) {
	pattern := regexp.MustCompile(`^test_pack_thock_[0-9a-f]{8}$`)

	a := OutputDirName("test_pack")
	b := OutputDirName("test_pack")

	assert.Regexp(t, pattern, a)
	assert.Regexp(t, pattern, b)
	assert.NotEqual(t, a, b)
}
