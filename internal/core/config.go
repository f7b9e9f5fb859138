package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Phase names the coarse lifecycle stage of a game, for the platform layer.
type Phase string

const (
	PhaseHome      Phase = "home"
	PhaseCountdown Phase = "countdown"
	PhasePlaying   Phase = "playing"
	PhaseGameOver  Phase = "game_over"
)

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int   // Current score
	Best     int   // Best score known to the game
	Lives    int   // Remaining lives (0 for games without lives)
	Phase    Phase // Lifecycle stage
	GameOver bool  // Whether the game has ended
	Paused   bool  // Whether the game is paused
}

// Cue is a fire-and-forget signal a game emits for audio or HUD consumers.
type Cue int

const (
	CueNone Cue = iota
	CueJump
	CueDoubleJump
	CueFootstep
	CueCoin
	CueHeart
	CueHurt
	CueGameOver
	CueStart
)

// String returns a human-readable name for the cue.
func (c Cue) String() string {
	switch c {
	case CueJump:
		return "jump"
	case CueDoubleJump:
		return "double_jump"
	case CueFootstep:
		return "footstep"
	case CueCoin:
		return "coin"
	case CueHeart:
		return "heart"
	case CueHurt:
		return "hurt"
	case CueGameOver:
		return "game_over"
	case CueStart:
		return "start"
	default:
		return "none"
	}
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any cues emitted during the tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}
