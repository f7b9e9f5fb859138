// Package runaway implements the endless runner on top of the sim package.
// Two variants are registered: "runaway" (hazards, pits, coins and hearts)
// and "chase" (a pursuer that closes in while the player is stunned).
package runaway

import (
	"github.com/vovakirdan/runaway/internal/config"
	"github.com/vovakirdan/runaway/internal/core"
	"github.com/vovakirdan/runaway/internal/games/runaway/sim"
	"github.com/vovakirdan/runaway/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string
var difficultyPreset config.DifficultyPreset

// bestStores opens the persistent best-score store of a game, if set.
var bestStores func(gameID string) sim.BestStore

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetBestStores sets how games obtain their best-score store.
// Without it, best scores only live as long as the game.
func SetBestStores(open func(gameID string) sim.BestStore) {
	bestStores = open
}

// Game adapts a sim.Session to the arcade game interface.
type Game struct {
	variant  config.Variant
	cfg      config.RunawayConfig
	runtime  core.RuntimeConfig
	session  *sim.Session
	store    sim.BestStore
	view     *screenViewport
	err      error      // why the session could not be created
	cues     []core.Cue // cues emitted during the current step
	lives    int
	storeErr error
}

// New creates a game of the given variant.
func New(v config.Variant) *Game {
	return &Game{variant: v}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return string(g.variant)
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == config.VariantChase {
		return "Runaway: Chase"
	}
	return "Runaway"
}

// Reset loads the configuration and creates a fresh session at Home.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRunaway(g.variant, configPath)
	if err != nil {
		cfg = config.DefaultConfigFor(g.variant)
	}
	config.ApplyRunawayPreset(&cfg, difficultyPreset)
	g.cfg = cfg

	g.store = sim.NewMemoryStore(0)
	if bestStores != nil {
		g.store = bestStores(g.ID())
	}

	g.view = &screenViewport{game: g}
	g.cues = nil
	g.storeErr = nil
	g.openSession()
}

// openSession creates the session for the current config and screen.
// It fails while the screen cannot fit the player.
func (g *Game) openSession() {
	g.session, g.err = sim.NewSession(g.cfg,
		sim.WithSeed(g.runtime.Seed),
		sim.WithStore(g.store),
		sim.WithViewport(g.view),
		sim.WithHooks(g.hooks()),
	)
	g.lives = g.cfg.Session.Lives
}

// Resize adopts a new terminal size without restarting the run.
// The session reads the viewport on every step. A game that started on a
// screen too small to play gets its session once the screen is big enough.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	if g.session == nil && g.view != nil {
		g.openSession()
	}
}

// hooks translates session events into cues for the platform layer.
func (g *Game) hooks() sim.Hooks {
	return sim.Hooks{
		OnJumpPerformed: func(double bool) {
			if double {
				g.emit(core.CueDoubleJump)
			} else {
				g.emit(core.CueJump)
			}
		},
		OnFootstep: func() { g.emit(core.CueFootstep) },
		OnPickupCollected: func(kind sim.CollectibleKind) {
			if kind == sim.KindHeart {
				g.emit(core.CueHeart)
			} else {
				g.emit(core.CueCoin)
			}
		},
		OnLivesChanged: func(lives int) {
			if lives < g.lives {
				g.emit(core.CueHurt)
			}
			g.lives = lives
		},
		OnFatal: func(sim.FatalReason) { g.emit(core.CueGameOver) },
		OnStateChanged: func(_, to sim.State) {
			if to == sim.StatePlaying {
				g.emit(core.CueStart)
			}
		},
		OnStoreError: func(err error) { g.storeErr = err },
	}
}

func (g *Game) emit(c core.Cue) {
	g.cues = append(g.cues, c)
}

// Step maps the input frame onto the session and advances it by the frame's
// elapsed time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = nil
	if g.session == nil {
		return core.StepResult{State: g.State()}
	}

	switch g.session.State() {
	case sim.StateHome:
		if in.Has(core.ActionJump) || in.Has(core.ActionConfirm) {
			g.session.Start()
		}
	case sim.StatePlaying:
		if in.Has(core.ActionPause) {
			g.session.Pause()
		}
		if in.Has(core.ActionJump) {
			g.session.Jump()
		}
	case sim.StateGameOver:
		if in.Has(core.ActionRestart) || in.Has(core.ActionConfirm) {
			g.session.Dismiss()
		}
	}

	g.session.Step(in.DeltaMs(g.runtime.TickRate))

	return core.StepResult{State: g.State(), Cues: g.cues}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: core.PhaseHome}
	}
	return core.GameState{
		Score:    g.session.Score(),
		Best:     g.session.Best(),
		Lives:    g.session.Lives(),
		Phase:    phaseOf(g.session.State()),
		GameOver: g.session.State() == sim.StateGameOver,
		Paused:   g.session.Paused(),
	}
}

// Snapshot exposes the session snapshot, for run records.
func (g *Game) Snapshot() (sim.Snapshot, bool) {
	if g.session == nil {
		return sim.Snapshot{}, false
	}
	return g.session.Snapshot(), true
}

// LastRun describes the run that just ended, while the game is over.
func (g *Game) LastRun() (registry.RunRecord, bool) {
	if g.session == nil || g.session.State() != sim.StateGameOver {
		return registry.RunRecord{}, false
	}
	snap := g.session.Snapshot()
	return registry.RunRecord{
		Score:    snap.Score,
		Distance: snap.Distance(),
		Cause:    snap.Fatal.String(),
	}, true
}

func phaseOf(s sim.State) core.Phase {
	switch s {
	case sim.StateCountdown:
		return core.PhaseCountdown
	case sim.StatePlaying:
		return core.PhasePlaying
	case sim.StateGameOver:
		return core.PhaseGameOver
	default:
		return core.PhaseHome
	}
}

// screenViewport sizes the world from the terminal, one cell being
// cell_width x cell_height pixels.
type screenViewport struct {
	game *Game
}

func (v *screenViewport) Size() (float64, float64) {
	r := v.game.cfg.Render
	return float64(v.game.runtime.ScreenW) * r.CellWidth, float64(v.game.runtime.ScreenH) * r.CellHeight
}

func (v *screenViewport) GroundOffset() float64 {
	return v.game.cfg.World.GroundOffset
}

var (
	_ registry.Game     = (*Game)(nil)
	_ registry.Resizer  = (*Game)(nil)
	_ registry.Recorder = (*Game)(nil)
)

// Register both variants with the registry
func init() {
	registry.Register(string(config.VariantRunaway), func() registry.Game {
		return New(config.VariantRunaway)
	})
	registry.Register(string(config.VariantChase), func() registry.Game {
		return New(config.VariantChase)
	})
}
