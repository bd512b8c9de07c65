package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quisqueya-quiz/backend/internal/infrastructure/config"
)

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <player>",
		Short: "Show a player's score history summary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStats(args[0])
		},
	}
	return cmd
}

func runStats(player string) error {
	logger := terminalLogger()
	cfg := config.Load(logger)

	svc, cleanup, err := buildService(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	stats, err := svc.PlayerStats(player)
	if err != nil {
		return err
	}
	if stats.Plays == 0 {
		fmt.Printf("No recorded plays for %s.\n", player)
		return nil
	}

	fmt.Printf("Stats for %s\n", player)
	fmt.Printf("  Plays:           %d\n", stats.Plays)
	fmt.Printf("  Best score:      %d\n", stats.BestScore)
	fmt.Printf("  Best percentage: %.1f%%\n", stats.BestPercentage)
	fmt.Printf("  Mean percentage: %.1f%%\n", stats.MeanPercentage)
	return nil
}
