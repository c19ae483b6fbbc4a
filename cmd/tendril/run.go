package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/aretw0/tendril/internal/cli"
	"github.com/aretw0/tendril/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run <script.yaml>",
	Short: "Execute a chain script",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		light, _ := cmd.Flags().GetBool("light")
		verbose, _ := cmd.Flags().GetBool("verbose")

		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := logging.New(level)

		script, err := cli.LoadScript(args[0])
		if err != nil {
			return err
		}

		out := termenv.NewOutput(os.Stdout)
		session := cli.NewSession(os.Stdout)
		if err := session.Run(cmd.Context(), script, light, logger); err != nil {
			fmt.Fprintln(os.Stderr, out.String("✗ "+err.Error()).Foreground(out.Color("1")))
			os.Exit(1)
		}

		label := script.Name
		if label == "" {
			label = args[0]
		}
		fmt.Fprintln(out, out.String(fmt.Sprintf("✓ %s done", label)).Foreground(out.Color("2")))
		return nil
	},
}

func init() {
	runCmd.Flags().Bool("light", false, "Run without recording (destructive consumption, no replay)")
	rootCmd.AddCommand(runCmd)
}
