package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tendril",
	Short: "Tendril runs fluent call-chain scripts",
	Long:  `Tendril executes YAML scripts as deferred call chains: every step is queued first and then driven one action at a time, with nested groups running on suspended sub-chains.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
}
