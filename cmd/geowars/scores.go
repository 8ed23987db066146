package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/geowars/internal/games/geowars"
	"github.com/vovakirdan/geowars/internal/storage"
)

var (
	flagAllScores   bool
	flagClearScores bool
)

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 runs, or every run with --all.
--clear deletes every recorded run.

Examples:
  geowars scores
  geowars scores --all
  geowars scores --clear
  geowars scores --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagAllScores, "all", false, "Show every recorded run")
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete all recorded runs")
}

func runScores(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fail("open scores", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()
	if flagClearScores {
		if err := store.ClearScores(geowars.ID); err != nil {
			return fail("clear scores", err)
		}
		fmt.Fprintln(out, "High scores cleared.")
		return nil
	}

	limit := 10
	if flagAllScores {
		limit = 0
	}
	runs, err := store.TopRuns(geowars.ID, limit)
	if err != nil {
		return fail("read scores", err)
	}

	fmt.Fprintln(out, "High Scores - Geometry Wars")
	fmt.Fprintln(out)

	if len(runs) == 0 {
		fmt.Fprintln(out, "No scores recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'geowars' to set the first high score!")
		return nil
	}

	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %-12s  %s\n", "Rank", "Score", "Level", "Kills", "Player", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-5s  %-5s  %-12s  %s\n", "----", "-----", "-----", "-----", "------", "----")
	for i, r := range runs {
		player := r.Player
		if player == "" {
			player = "-"
		}
		fmt.Fprintf(out, "  %-4d  %-8d  %-5d  %-5d  %-12s  %s\n",
			i+1, r.Score, r.Level, r.Kills, player, r.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetGameStats(geowars.ID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Best: %d  Games: %d  Average: %.0f  Total kills: %d\n",
			stats.HighScore, stats.GamesCount, stats.AvgScore, stats.TotalKills)
	}
	return nil
}
