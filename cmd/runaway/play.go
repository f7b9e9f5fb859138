package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/runaway/internal/audio"
	"github.com/vovakirdan/runaway/internal/config"
	"github.com/vovakirdan/runaway/internal/core"
	"github.com/vovakirdan/runaway/internal/platform/tui"
	"github.com/vovakirdan/runaway/internal/registry"
)

var flagSound bool

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing the specified variant (default: runaway).

Variants:
  runaway - Dodge hazards, hop pits, collect coins and hearts
  chase   - Something follows you; getting hit slows you down

Controls:
  Space/Up/W - Jump (twice for a double jump)
  Enter      - Start
  P          - Pause
  M          - Mute
  R          - Back to the title after game over
  Esc/B      - Leave (when not running)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, fewer lives, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  runaway play
  runaway play chase
  runaway play --difficulty hard --sound
  runaway play --config ./my-runaway.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
	menuCmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := string(config.VariantRunaway)
	if len(args) == 1 {
		gameID = args[0]
	}

	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q, run 'runaway list' to see available variants", gameID)
	}

	// Fail before the terminal switches screens
	if err := checkConfig(config.Variant(gameID)); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	sound := openSound()
	defer sound.Close()

	logger.Debug("starting game", "variant", gameID, "difficulty", flagDifficulty, "fps", flagFPS, "seed", flagSeed)

	if err := tui.Run(game, store, sound, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}

// checkConfig loads and validates the configuration a variant will run with.
func checkConfig(v config.Variant) error {
	cfg, err := config.LoadRunaway(v, flagConfig)
	if err != nil {
		return err
	}
	preset := config.ParsePreset(flagDifficulty)
	if flagDifficulty != "" && preset == "" {
		return fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", flagDifficulty)
	}
	config.ApplyRunawayPreset(&cfg, preset)
	if err := cfg.Validate(); err != nil {
		return err
	}
	if config.IsFixedPreset(preset) {
		logger.Info("difficulty progression disabled", "variant", v)
	}
	return nil
}

// runtimeConfig sizes the game from the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openSound opens the speaker when --sound is set, falling back to silence.
func openSound() audio.Player {
	sound, err := audio.Open(flagSound)
	if err != nil {
		logger.Warn("sound disabled", "error", err)
	}
	return sound
}
