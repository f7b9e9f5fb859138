// runaway is an endless runner for the terminal.
//
// Usage:
//
//	runaway list              - List available variants
//	runaway play [variant]    - Play a variant (default: runaway)
//	runaway menu              - Start menu to pick variants interactively
//	runaway serve             - Start SSH server for remote play
//	runaway scores <variant>  - Show high scores for a variant
//	runaway config dump       - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.arcade/runaway.db)
//	--config <path>       - Custom config YAML
//	--difficulty <preset> - easy, normal, hard or fixed
//	--log-level <level>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/runaway/internal/games/runaway"
	"github.com/vovakirdan/runaway/internal/games/runaway/sim"
	"github.com/vovakirdan/runaway/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
	Prefix:          "runaway",
})

var _ sim.BestStore = (*storage.BestScores)(nil)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "runaway",
	Short: "Runaway - an endless runner in your terminal",
	Long: `Runaway is a side-scrolling endless runner for the terminal.
Jump over pits, land on platforms, collect coins and hearts, and
keep ahead of whatever is chasing you.

Available commands:
  list     - Show all variants
  play     - Play a variant directly
  menu     - Interactive variant picker menu
  serve    - Start SSH server for remote play
  scores   - View high scores
  config   - Inspect configuration

Examples:
  runaway play
  runaway play chase --difficulty hard
  runaway menu
  runaway serve --ssh :2222
  runaway scores runaway`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		logger.SetLevel(level)

		runaway.SetConfigPath(flagConfig)
		runaway.SetDifficultyPreset(flagDifficulty)
		return nil
	},
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.arcade/runaway.db", "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}

// openStore opens the scores database and makes it the games' best-score
// store. A nil store means scores are not persisted.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database, scores will not be saved", "path", flagDBPath, "error", err)
		store = nil
	}
	useBestStores(store)
	return store
}

// useBestStores makes store the games' best-score store; nil keeps best
// scores in memory.
func useBestStores(store *storage.Store) {
	if store == nil {
		runaway.SetBestStores(nil)
		return
	}
	runaway.SetBestStores(func(gameID string) sim.BestStore {
		return store.BestStore(gameID)
	})
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("closing scores database", "error", err)
	}
}
