// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Default values used when the corresponding Config field is empty.
const (
	DefaultSourceLabel = "converted from MechVibes"
	DefaultPackName    = "converted_sound_pack"
)

// Config holds the settings for a conversion run. Values come from flags,
// the mechvibes2thock.yaml config file, or MECHVIBES2THOCK_* variables.
type Config struct {
	// BaseDir is where per-pack sound folders are looked up and output
	// directories are created when SoundsDir or OutputDir are empty.
	BaseDir string `json:"base_dir" yaml:"base_dir" mapstructure:"base_dir"`

	// SoundsDir overrides the directory searched for the <safe-name>/ sound
	// folder (and used as the fallback sound location).
	SoundsDir string `json:"sounds_dir,omitempty" yaml:"sounds_dir,omitempty" mapstructure:"sounds_dir"`

	// OutputDir overrides the parent directory of generated packs.
	OutputDir string `json:"output_dir,omitempty" yaml:"output_dir,omitempty" mapstructure:"output_dir"`

	// SourceLabel is the provenance string written to the Thock "source" field.
	SourceLabel string `json:"source_label" yaml:"source_label" mapstructure:"source_label"`

	// DefaultName is used when the MechVibes config has no name.
	DefaultName string `json:"default_name" yaml:"default_name" mapstructure:"default_name"`

	// Verbose enables debug logging, including dropped defines.
	Verbose bool `json:"verbose" yaml:"verbose" mapstructure:"verbose"`
}

// SoundsRoot returns the directory that holds pack sound folders.
func (c Config) SoundsRoot() string {
	if c.SoundsDir != "" {
		return c.SoundsDir
	}
	return c.BaseDir
}

// OutputRoot returns the directory under which pack directories are created.
func (c Config) OutputRoot() string {
	if c.OutputDir != "" {
		return c.OutputDir
	}
	return c.BaseDir
}

// WithDefaults returns a copy of c with empty labels filled in.
func (c Config) WithDefaults() Config {
	if c.SourceLabel == "" {
		c.SourceLabel = DefaultSourceLabel
	}
	if c.DefaultName == "" {
		c.DefaultName = DefaultPackName
	}
	if c.BaseDir == "" {
		c.BaseDir = "."
	}
	return c
}
