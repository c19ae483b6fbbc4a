package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/aretw0/tendril"
	"github.com/aretw0/tendril/internal/cli"
)

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the built-in script operations",
	Run: func(cmd *cobra.Command, args []string) {
		session := cli.NewSession(io.Discard)
		ch := tendril.NewLight(session.Builder())
		for _, name := range ch.Controller().Surface().Ops() {
			fmt.Fprintln(cmd.OutOrStdout(), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(opsCmd)
}
