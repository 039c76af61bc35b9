//go:build mage

package main

import (
	"fmt"
	"path/filepath"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	// packsDir holds MechVibes packs to convert, one folder per pack with its
	// config.json and sounds.
	packsDir = "packs"
	// thockDir receives the generated Thock packs.
	thockDir = "thock-packs"
)

// Convert builds the CLI and converts every packs/*/config.json into a Thock
// pack under thock-packs/.
func Convert() error {
	mg.Deps(Build)

	configs, err := filepath.Glob(filepath.Join(packsDir, "*", "config.json"))
	if err != nil {
		return err
	}
	if len(configs) == 0 {
		fmt.Printf("No MechVibes configs found under %s/\n", packsDir)
		return nil
	}

	bin := filepath.Join(binDir, binName)
	for _, cfg := range configs {
		dir := filepath.Dir(cfg)
		if err := sh.RunV(bin, "convert", "--base-dir", dir, "--output-dir", thockDir, cfg); err != nil {
			return fmt.Errorf("converting %s: %w", cfg, err)
		}
	}
	return nil
}
