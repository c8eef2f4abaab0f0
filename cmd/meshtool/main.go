// meshtool inspects ornament geometry, presets and scenes without a GPU.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/symbionic/ornaments/internal/logger"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var logLevel string
	root := &cobra.Command{
		Use:   "meshtool",
		Short: "Inspect ornament shapes, presets and scene files",
		Long: `meshtool builds the same geometry and animation frames the showcase
renders, headlessly, and prints what it finds.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logLevel, "")
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logger.Sync()
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(
		newListCmd(),
		newInspectCmd(),
		newSampleCmd(),
		newSceneCmd(),
	)
	return root
}
