package cli

import (
	"github.com/spf13/cobra"
)

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quisqueya",
		Short: "Quisqueya quiz: play timed quizzes, track scores, or serve the API",
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newPlayCmd())
	cmd.AddCommand(newTopCmd())
	cmd.AddCommand(newStatsCmd())
	cmd.AddCommand(newDemoCmd())
	return cmd
}
