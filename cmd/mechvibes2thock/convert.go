// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/mechvibes2thock/internal/mechvibes"
	"github.com/pdiddy/mechvibes2thock/internal/pack"
)

const promptText = "Enter the filename of the MechVibes JSON config (e.g. config.json): "

var convertCmd = &cobra.Command{
	Use:   "convert [configs...]",
	Short: "Convert MechVibes configs into Thock sound pack directories",
	Long: `Convert reads a MechVibes config.json, maps its keycodes to Thock key
names, and writes a Thock pack directory containing config.json and the
referenced sound files. With no arguments it prompts for a filename.

Keycodes without a Thock key and null sound entries are skipped; run with
--verbose to see which. Missing sound files produce a warning and the pack
is still written. Several configs are converted one after another.`,
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().String("base-dir", ".", "directory holding pack sound folders and receiving output")
	convertCmd.Flags().String("sounds-dir", "", "directory holding pack sound folders (default: base-dir)")
	convertCmd.Flags().String("output-dir", "", "directory receiving generated packs (default: base-dir)")
	convertCmd.Flags().String("source-label", "", `provenance written to the Thock "source" field`)

	_ = viper.BindPFlag("base_dir", convertCmd.Flags().Lookup("base-dir"))
	_ = viper.BindPFlag("sounds_dir", convertCmd.Flags().Lookup("sounds-dir"))
	_ = viper.BindPFlag("output_dir", convertCmd.Flags().Lookup("output-dir"))
	_ = viper.BindPFlag("source_label", convertCmd.Flags().Lookup("source-label"))

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	paths := args
	if len(paths) == 0 {
		p, err := promptPath(cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		paths = []string{p}
	}

	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	if len(paths) > 1 {
		batch := pack.CreateBatch(logger, paths, cfg, cmd.OutOrStdout())
		if batch.HasFailures() {
			return fmt.Errorf("%d config(s) failed conversion", batch.Failed)
		}
		return nil
	}

	result, err := pack.Create(logger, paths[0], cfg)
	switch {
	case errors.Is(err, pack.ErrInputMissing):
		return fmt.Errorf("file %q not found", paths[0])
	case errors.Is(err, mechvibes.ErrParse):
		return fmt.Errorf("fatal: %w", err)
	case err != nil:
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Thock soundpack created at: %s\n", result.OutputDir)
	return nil
}

// promptPath asks for a config filename on r and returns it trimmed.
func promptPath(r io.Reader, w io.Writer) (string, error) {
	fmt.Fprint(w, promptText)
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("reading filename: %w", err)
	}
	path := strings.TrimSpace(line)
	if path == "" {
		return "", errors.New("no filename given")
	}
	return path, nil
}
