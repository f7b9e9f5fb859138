package config

import (
	_ "embed"
)

//go:embed defaults/runaway.yaml
var defaultRunawayYAML []byte

//go:embed defaults/chase.yaml
var defaultChaseYAML []byte

// DefaultRunawayConfig returns the default configuration of the runaway variant.
func DefaultRunawayConfig() RunawayConfig {
	return RunawayConfig{
		Physics: RunawayPhysics{
			Gravity:          0.5,
			JumpImpulse:      -9.6,
			MaxFallSpeed:     14.0,
			ReferenceFrameMs: 16,
			MaxDeltaMs:       32,
		},
		Player: RunawayPlayer{
			X:                  120,
			Width:              40,
			Height:             48,
			DoubleJump:         true,
			MaxJumps:           2,
			FootstepIntervalMs: 170,
			LandingBand:        15,
		},
		World: RunawayWorld{
			GroundOffset:   48,
			SpeedStart:     3.2,
			SpeedMax:       7.0,
			Acceleration:   0.0015,
			EvictionMargin: 200,
			SpawnMargin:    40,
		},
		Generation: RunawayGeneration{
			SafeDistance:  800,
			MinPitSpacing: 160,
			Pits: PitRules{
				Enabled:  true,
				Spawn:    SpawnTimer{IntervalMs: 2200, Jitter: 0.35},
				MinWidth: 64,
				MaxWidth: 120,
			},
			Platforms: PlatformRules{
				Enabled:      true,
				Spawn:        SpawnTimer{IntervalMs: 1800, Jitter: 0.4},
				MinWidth:     96,
				MaxWidth:     192,
				Height:       12,
				MinElevation: 72,
				MaxElevation: 120,
			},
		},
		Pickups: RunawayPickups{
			Coins: CoinRules{
				Enabled:      true,
				Spawn:        SpawnTimer{IntervalMs: 1400, Jitter: 0.3},
				Radius:       8,
				Value:        10,
				RowMin:       4,
				RowMax:       6,
				Spacing:      28,
				Wave:         6,
				MinElevation: 40,
				MaxElevation: 110,
			},
			Hearts: HeartRules{
				Enabled:      true,
				Spawn:        SpawnTimer{IntervalMs: 12000, Jitter: 0.3},
				Radius:       9,
				MinElevation: 60,
				MaxElevation: 100,
			},
		},
		Hazards: RunawayHazards{
			Enabled:         true,
			Spawn:           SpawnTimer{IntervalMs: 2720, Jitter: 0.29},
			Width:           40,
			Height:          40,
			ExtraSpeedMin:   2.4,
			ExtraSpeedMax:   4.2,
			HitboxShrink:    0.15,
			Damage:          1,
			FatalOnContact:  false,
			InvincibilityMs: 1120,
			StunMs:          0,
		},
		Pursuer: RunawayPursuer{
			Enabled:          false,
			Width:            48,
			Height:           48,
			Damping:          0.06,
			GapFactor:        1.5,
			StunnedGapFactor: -0.25,
			Lethal:           true,
		},
		Session: RunawaySession{
			Lives:            3,
			MaxLives:         3,
			CountdownMs:      0,
			GameOverReturnMs: 0,
			ScorePerFrame:    0.1,
		},
		Render: RunawayRender{
			CellWidth:  8,
			CellHeight: 16,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "distance",
				MaxAt: 20000,
			},
			Scaling: ScalingConfig{
				AccelerationMultiplier: 1.0,
				StartSpeedBoost:        0.5,
				SpawnReduction:         0.3,
			},
		},
	}
}

// DefaultChaseConfig returns the default configuration of the chase variant.
func DefaultChaseConfig() RunawayConfig {
	cfg := DefaultRunawayConfig()
	cfg.Pickups.Hearts.Enabled = false
	cfg.Hazards.StunMs = 500
	cfg.Pursuer.Enabled = true
	cfg.Session.CountdownMs = 1500
	cfg.Session.GameOverReturnMs = 4000
	return cfg
}

// DefaultConfigFor returns the hardcoded defaults of a variant.
func DefaultConfigFor(v Variant) RunawayConfig {
	if v == VariantChase {
		return DefaultChaseConfig()
	}
	return DefaultRunawayConfig()
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(v Variant) []byte {
	switch v {
	case VariantRunaway:
		return defaultRunawayYAML
	case VariantChase:
		return defaultChaseYAML
	default:
		return nil
	}
}
