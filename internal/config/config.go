// Package config provides YAML-based game configuration loading and
// difficulty management for the arcade platform.
package config

// Variant names a registered flavour of the runner.
type Variant string

const (
	// VariantRunaway is the lives + i-frames variant with ambient hazards, coins and hearts.
	VariantRunaway Variant = "runaway"
	// VariantChase adds a pursuer that closes in while the player is stunned.
	VariantChase Variant = "chase"
)

// RunawayConfig contains all configuration for the runner.
type RunawayConfig struct {
	Physics    RunawayPhysics    `yaml:"physics"`
	Player     RunawayPlayer     `yaml:"player"`
	World      RunawayWorld      `yaml:"world"`
	Generation RunawayGeneration `yaml:"generation"`
	Pickups    RunawayPickups    `yaml:"pickups"`
	Hazards    RunawayHazards    `yaml:"hazards"`
	Pursuer    RunawayPursuer    `yaml:"pursuer"`
	Session    RunawaySession    `yaml:"session"`
	Render     RunawayRender     `yaml:"render"`
	Difficulty DifficultyConfig  `yaml:"difficulty"`
}

// RunawayPhysics defines integration parameters.
// Velocities are pixels per reference frame; gravity is pixels per reference frame².
type RunawayPhysics struct {
	Gravity          float64 `yaml:"gravity"`
	JumpImpulse      float64 `yaml:"jump_impulse"`
	MaxFallSpeed     float64 `yaml:"max_fall_speed"`
	ReferenceFrameMs float64 `yaml:"reference_frame_ms"`
	MaxDeltaMs       float64 `yaml:"max_delta_ms"`
}

// RunawayPlayer defines the controllable character.
type RunawayPlayer struct {
	X                  float64 `yaml:"x"`
	Width              float64 `yaml:"width"`
	Height             float64 `yaml:"height"`
	DoubleJump         bool    `yaml:"double_jump"`
	MaxJumps           int     `yaml:"max_jumps"`
	FootstepIntervalMs float64 `yaml:"footstep_interval_ms"`
	LandingBand        float64 `yaml:"landing_band"`
}

// RunawayWorld defines scrolling and the ground plane.
type RunawayWorld struct {
	GroundOffset   float64 `yaml:"ground_offset"`
	SpeedStart     float64 `yaml:"speed_start"`
	SpeedMax       float64 `yaml:"speed_max"`
	Acceleration   float64 `yaml:"acceleration"`
	EvictionMargin float64 `yaml:"eviction_margin"`
	SpawnMargin    float64 `yaml:"spawn_margin"`
}

// SpawnTimer is the cadence of one spawn category.
// After firing, the timer is re-armed to IntervalMs * (1 ± Jitter).
type SpawnTimer struct {
	IntervalMs float64 `yaml:"interval_ms"`
	Jitter     float64 `yaml:"jitter"`
}

// RunawayGeneration defines procedural terrain.
type RunawayGeneration struct {
	SafeDistance  float64       `yaml:"safe_distance"`
	MinPitSpacing float64       `yaml:"min_pit_spacing"`
	Pits          PitRules      `yaml:"pits"`
	Platforms     PlatformRules `yaml:"platforms"`
}

// PitRules defines pit spawning.
type PitRules struct {
	Enabled  bool       `yaml:"enabled"`
	Spawn    SpawnTimer `yaml:"spawn"`
	MinWidth float64    `yaml:"min_width"`
	MaxWidth float64    `yaml:"max_width"`
}

// PlatformRules defines floating platform spawning.
type PlatformRules struct {
	Enabled      bool       `yaml:"enabled"`
	Spawn        SpawnTimer `yaml:"spawn"`
	MinWidth     float64    `yaml:"min_width"`
	MaxWidth     float64    `yaml:"max_width"`
	Height       float64    `yaml:"height"`
	MinElevation float64    `yaml:"min_elevation"`
	MaxElevation float64    `yaml:"max_elevation"`
}

// RunawayPickups defines coins and hearts.
type RunawayPickups struct {
	Coins  CoinRules  `yaml:"coins"`
	Hearts HeartRules `yaml:"hearts"`
}

// CoinRules defines coin rows.
type CoinRules struct {
	Enabled      bool       `yaml:"enabled"`
	Spawn        SpawnTimer `yaml:"spawn"`
	Radius       float64    `yaml:"radius"`
	Value        int        `yaml:"value"`
	RowMin       int        `yaml:"row_min"`
	RowMax       int        `yaml:"row_max"`
	Spacing      float64    `yaml:"spacing"`
	Wave         float64    `yaml:"wave"`
	MinElevation float64    `yaml:"min_elevation"`
	MaxElevation float64    `yaml:"max_elevation"`
}

// HeartRules defines extra-life pickups.
type HeartRules struct {
	Enabled      bool       `yaml:"enabled"`
	Spawn        SpawnTimer `yaml:"spawn"`
	Radius       float64    `yaml:"radius"`
	MinElevation float64    `yaml:"min_elevation"`
	MaxElevation float64    `yaml:"max_elevation"`
}

// RunawayHazards defines ambient hazards and the damage policy shared with the pursuer.
type RunawayHazards struct {
	Enabled         bool       `yaml:"enabled"`
	Spawn           SpawnTimer `yaml:"spawn"`
	Width           float64    `yaml:"width"`
	Height          float64    `yaml:"height"`
	ExtraSpeedMin   float64    `yaml:"extra_speed_min"`
	ExtraSpeedMax   float64    `yaml:"extra_speed_max"`
	HitboxShrink    float64    `yaml:"hitbox_shrink"`
	Damage          int        `yaml:"damage"`
	FatalOnContact  bool       `yaml:"fatal_on_contact"`
	InvincibilityMs float64    `yaml:"invincibility_ms"`
	StunMs          float64    `yaml:"stun_ms"`
}

// RunawayPursuer defines the chasing entity.
type RunawayPursuer struct {
	Enabled          bool    `yaml:"enabled"`
	Width            float64 `yaml:"width"`
	Height           float64 `yaml:"height"`
	Damping          float64 `yaml:"damping"`
	GapFactor        float64 `yaml:"gap_factor"`
	StunnedGapFactor float64 `yaml:"stunned_gap_factor"`
	Lethal           bool    `yaml:"lethal"`
}

// RunawaySession defines session-scoped rules.
type RunawaySession struct {
	Lives            int     `yaml:"lives"`
	MaxLives         int     `yaml:"max_lives"`
	CountdownMs      float64 `yaml:"countdown_ms"`
	GameOverReturnMs float64 `yaml:"game_over_return_ms"`
	ScorePerFrame    float64 `yaml:"score_per_frame"`
}

// RunawayRender maps world pixels onto terminal cells.
type RunawayRender struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over a run.
type ProgressionConfig struct {
	Type  string  `yaml:"type"`   // "distance", "time", or "none"
	MaxAt float64 `yaml:"max_at"` // Pixels or milliseconds at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	AccelerationMultiplier float64 `yaml:"acceleration_multiplier"` // Added to the acceleration factor at max difficulty
	StartSpeedBoost        float64 `yaml:"start_speed_boost"`       // Fraction of (max-start) speed added at initial level 1.0
	SpawnReduction         float64 `yaml:"spawn_reduction"`         // Fraction cut from spawn intervals at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset maps a CLI string onto a preset; unknown strings yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
