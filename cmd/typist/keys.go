package main

import (
	"fmt"

	"github.com/aretw0/typist/pkg/domain"
	"github.com/spf13/cobra"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List the key names accepted in key_sequence_inject payloads",
	Run: func(cmd *cobra.Command, args []string) {
		for _, k := range domain.Keys() {
			fmt.Fprintln(cmd.OutOrStdout(), k.String())
		}
	},
}

func init() {
	rootCmd.AddCommand(keysCmd)
}
