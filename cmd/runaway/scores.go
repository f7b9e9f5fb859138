package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/runaway/internal/registry"
	"github.com/vovakirdan/runaway/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores <variant>",
	Short: "Show high scores for a variant",
	Long: `Display the top high scores for the specified variant,
with how far each run got and how it ended.

Examples:
  runaway scores runaway
  runaway scores chase --limit 20`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Number of scores to show")
}

func runScores(_ *cobra.Command, args []string) error {
	gameID := args[0]

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'runaway list' to see available variants", gameID)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return err
	}
	defer closeStore(store)

	scores, err := store.TopScores(gameID, flagScoresLimit)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}

	fmt.Printf("High Scores - %s\n", game.Title())
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'runaway play %s' to set the first high score!\n", gameID)
		return nil
	}

	// Print header
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %s\n", "Rank", "Score", "Distance", "Cause", "Date")
	fmt.Printf("  %-4s  %-8s  %-9s  %-6s  %s\n", "----", "-----", "--------", "-----", "----")

	for i, entry := range scores {
		cause := entry.Cause
		if cause == "" {
			cause = "-"
		}
		fmt.Printf("  %-4d  %-8d  %-9.0f  %-6s  %s\n",
			i+1, entry.Score, entry.Distance, cause, entry.CreatedAt.Format("2006-01-02 15:04"))
	}

	fmt.Println()
	if best, err := store.BestStore(gameID).LoadBest(); err == nil {
		fmt.Printf("Best: %d\n", best)
	}

	stats, err := store.GetGameStats(gameID)
	if err == nil && stats.GamesCount > 0 {
		fmt.Printf("Runs: %d  Average: %.0f  Longest: %.0f", stats.GamesCount, stats.AvgScore, stats.LongestRun)
		if stats.CommonDeaths != "" {
			fmt.Printf("  Usually: %s", stats.CommonDeaths)
		}
		fmt.Println()
	}
	return nil
}
