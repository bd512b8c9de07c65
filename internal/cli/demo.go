package cli

import (
	"github.com/spf13/cobra"

	"github.com/quisqueya-quiz/backend/internal/infrastructure/config"
	"github.com/quisqueya-quiz/backend/internal/simulation"
)

func newDemoCmd() *cobra.Command {
	var sessions int

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Seed the score log with simulated quiz sessions",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(sessions)
		},
	}

	cmd.Flags().IntVar(&sessions, "sessions", 5, "number of sessions to simulate")
	return cmd
}

func runDemo(sessions int) error {
	logger := terminalLogger()
	cfg := config.Load(logger)

	svc, cleanup, err := buildService(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	return simulation.Run(svc, logger, sessions)
}
