package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/quisqueya-quiz/backend/internal/infrastructure/config"
)

func newTopCmd() *cobra.Command {
	var (
		n     int
		theme string
	)

	cmd := &cobra.Command{
		Use:   "top",
		Short: "Show the best recorded scores",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTop(n, theme)
		},
	}

	cmd.Flags().IntVar(&n, "n", 10, "number of entries to show")
	cmd.Flags().StringVar(&theme, "theme", "", "restrict to one theme")
	return cmd
}

func runTop(n int, theme string) error {
	logger := terminalLogger()
	cfg := config.Load(logger)

	svc, cleanup, err := buildService(cfg, logger)
	if err != nil {
		return err
	}
	defer cleanup()

	entries, err := svc.Leaderboard(n, theme)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No scores recorded yet.")
		if themes, err := svc.ScoreThemes(); err == nil && len(themes) > 0 {
			fmt.Println("Themes with recorded scores:", strings.Join(themes, ", "))
		}
		return nil
	}

	title := "All themes"
	if theme != "" {
		title = "Theme: " + theme
	}
	fmt.Printf("Top %d scores (%s)\n", len(entries), title)
	for i, rec := range entries {
		fmt.Printf("%2d. %-20s %3d pts  %5.1f%%  %s/%s  %s\n",
			i+1, rec.PlayerName, rec.TotalScore, rec.Percentage,
			rec.Theme, rec.Level, rec.Timestamp.Format("2006-01-02 15:04"))
	}
	return nil
}
