// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/mechvibes2thock/internal/keycode"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the MechVibes keycodes that have a Thock key",
	RunE: func(cmd *cobra.Command, args []string) error {
		jsonOutput, _ := cmd.Flags().GetBool("json")
		return formatKeys(cmd.OutOrStdout(), keycode.Entries(), jsonOutput)
	},
}

func init() {
	keysCmd.Flags().Bool("json", false, "output the table as JSON")

	rootCmd.AddCommand(keysCmd)
}

func formatKeys(w io.Writer, entries []keycode.Entry, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	}

	fmt.Fprintf(w, "%-7s  %s\n", "Keycode", "Thock key")
	fmt.Fprintln(w, strings.Repeat("-", 24))
	for _, e := range entries {
		fmt.Fprintf(w, "%-7d  %s\n", e.Code, e.Name)
	}
	fmt.Fprintf(w, "\n%d keycodes\n", len(entries))
	return nil
}
