package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/typist"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of typist",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "typist version %s\n", strings.TrimSpace(typist.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
