// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/mechvibes2thock/internal/assets"
	"github.com/pdiddy/mechvibes2thock/internal/convert"
	"github.com/pdiddy/mechvibes2thock/internal/mechvibes"
	"github.com/pdiddy/mechvibes2thock/internal/pack"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <config>",
	Short: "Show how a MechVibes config would be converted",
	Long: `Inspect converts a MechVibes config in memory and prints, for every
keycode in its defines block, whether it becomes a Thock key, is overridden
by a later keycode for the same key, or is dropped (and why). It also lists
the sound files the pack would need. Nothing is written to disk.`,
	Args: cobra.ExactArgs(1),
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().Bool("json", false, "output the report as JSON instead of YAML")

	rootCmd.AddCommand(inspectCmd)
}

// inspection is the document printed by inspect.
type inspection struct {
	convert.Report `yaml:",inline"`
	SafeName       string   `json:"safe_name" yaml:"safe_name"`
	Sounds         []string `json:"sounds" yaml:"sounds"`
}

func runInspect(cmd *cobra.Command, args []string) error {
	src, err := mechvibes.Load(args[0])
	if err != nil {
		return err
	}
	cfg, err := loadConfig(viper.GetViper())
	if err != nil {
		return err
	}

	dest, report := convert.Convert(src, convert.OptionsFromConfig(cfg))
	doc := inspection{
		Report:   report,
		SafeName: assets.SanitizeName(dest.Name),
		Sounds:   pack.ReferencedFiles(dest),
	}

	jsonOutput, _ := cmd.Flags().GetBool("json")
	return writeInspection(cmd.OutOrStdout(), doc, jsonOutput)
}

func writeInspection(w io.Writer, doc inspection, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return enc.Close()
}
