package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of mechvibes2thock",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mechvibes2thock %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
