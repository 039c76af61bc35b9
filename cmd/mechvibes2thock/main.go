// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the mechvibes2thock CLI, which turns
// MechVibes sound packs into Thock sound packs.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mechvibes2thock/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// logger is configured in PersistentPreRunE once flags are parsed.
var logger = zerolog.Nop()

// rootCmd is the base command for the mechvibes2thock CLI.
var rootCmd = &cobra.Command{
	Use:   "mechvibes2thock",
	Short: "Convert MechVibes sound packs to Thock sound packs",
	Long: `mechvibes2thock converts a MechVibes keyboard sound pack into a Thock
sound pack. The MechVibes config.json is rewritten in Thock's format (keycodes
become Thock key names) and the referenced sound files are copied next to it
in a new <name>_thock_<suffix> directory.

Sound files are looked up in a folder named after the sanitized pack name
under the base directory, falling back to the base directory itself.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = newLogger(os.Stderr, viper.GetBool("verbose"))
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./mechvibes2thock.yaml or ~/.config/mechvibes2thock/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log dropped keycodes and other debug details")
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))

	viper.SetDefault("base_dir", ".")
	viper.SetDefault("source_label", types.DefaultSourceLabel)
	viper.SetDefault("default_name", types.DefaultPackName)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("mechvibes2thock")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "mechvibes2thock"))
		}
	}

	viper.SetEnvPrefix("MECHVIBES2THOCK")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// loadConfig resolves the run configuration from flags, file, and environment.
func loadConfig(v *viper.Viper) (types.Config, error) {
	var cfg types.Config
	if err := v.Unmarshal(&cfg); err != nil {
		return types.Config{}, fmt.Errorf("reading configuration: %w", err)
	}
	return cfg.WithDefaults(), nil
}

// newLogger returns a console logger on w at info level, or debug when
// verbose is set.
func newLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
