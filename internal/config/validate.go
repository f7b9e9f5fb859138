package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks the config for values the simulation cannot run with.
// All problems are reported at once, joined under ErrInvalidConfig.
func (c RunawayConfig) Validate() error {
	var problems []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			problems = append(problems, fmt.Errorf(format, args...))
		}
	}

	p := c.Physics
	check(p.Gravity > 0, "physics.gravity must be positive, got %v", p.Gravity)
	check(p.JumpImpulse < 0, "physics.jump_impulse must be negative (upward), got %v", p.JumpImpulse)
	check(p.MaxFallSpeed > 0, "physics.max_fall_speed must be positive, got %v", p.MaxFallSpeed)
	check(p.ReferenceFrameMs > 0, "physics.reference_frame_ms must be positive, got %v", p.ReferenceFrameMs)
	check(p.MaxDeltaMs >= p.ReferenceFrameMs, "physics.max_delta_ms must be >= reference_frame_ms, got %v", p.MaxDeltaMs)

	pl := c.Player
	check(pl.X >= 0, "player.x must not be negative, got %v", pl.X)
	check(pl.Width > 0 && pl.Height > 0, "player size must be positive, got %vx%v", pl.Width, pl.Height)
	check(pl.MaxJumps >= 1, "player.max_jumps must be at least 1, got %d", pl.MaxJumps)
	check(pl.FootstepIntervalMs > 0, "player.footstep_interval_ms must be positive, got %v", pl.FootstepIntervalMs)
	check(pl.LandingBand > 0, "player.landing_band must be positive, got %v", pl.LandingBand)

	w := c.World
	check(w.GroundOffset >= 0, "world.ground_offset must not be negative, got %v", w.GroundOffset)
	check(w.SpeedStart > 0, "world.speed_start must be positive, got %v", w.SpeedStart)
	check(w.SpeedMax >= w.SpeedStart, "world.speed_max (%v) must be >= speed_start (%v)", w.SpeedMax, w.SpeedStart)
	check(w.Acceleration >= 0, "world.acceleration must not be negative, got %v", w.Acceleration)
	check(w.EvictionMargin >= 0, "world.eviction_margin must not be negative, got %v", w.EvictionMargin)
	check(w.SpawnMargin >= 0, "world.spawn_margin must not be negative, got %v", w.SpawnMargin)

	g := c.Generation
	check(g.SafeDistance >= 0, "generation.safe_distance must not be negative, got %v", g.SafeDistance)
	check(g.MinPitSpacing >= 0, "generation.min_pit_spacing must not be negative, got %v", g.MinPitSpacing)
	if g.Pits.Enabled {
		checkTimer(check, "generation.pits", g.Pits.Spawn)
		check(g.Pits.MinWidth > 0 && g.Pits.MaxWidth >= g.Pits.MinWidth,
			"generation.pits widths must satisfy 0 < min <= max, got %v..%v", g.Pits.MinWidth, g.Pits.MaxWidth)
	}
	if g.Platforms.Enabled {
		checkTimer(check, "generation.platforms", g.Platforms.Spawn)
		check(g.Platforms.MinWidth > 0 && g.Platforms.MaxWidth >= g.Platforms.MinWidth,
			"generation.platforms widths must satisfy 0 < min <= max, got %v..%v", g.Platforms.MinWidth, g.Platforms.MaxWidth)
		check(g.Platforms.Height > 0, "generation.platforms.height must be positive, got %v", g.Platforms.Height)
		check(g.Platforms.MinElevation > 0 && g.Platforms.MaxElevation >= g.Platforms.MinElevation,
			"generation.platforms elevations must satisfy 0 < min <= max, got %v..%v", g.Platforms.MinElevation, g.Platforms.MaxElevation)
	}

	coins := c.Pickups.Coins
	if coins.Enabled {
		checkTimer(check, "pickups.coins", coins.Spawn)
		check(coins.Radius > 0, "pickups.coins.radius must be positive, got %v", coins.Radius)
		check(coins.Value >= 0, "pickups.coins.value must not be negative, got %d", coins.Value)
		check(coins.RowMin >= 1 && coins.RowMax >= coins.RowMin,
			"pickups.coins rows must satisfy 1 <= min <= max, got %d..%d", coins.RowMin, coins.RowMax)
		check(coins.MaxElevation >= coins.MinElevation, "pickups.coins elevations must satisfy min <= max")
	}
	hearts := c.Pickups.Hearts
	if hearts.Enabled {
		checkTimer(check, "pickups.hearts", hearts.Spawn)
		check(hearts.Radius > 0, "pickups.hearts.radius must be positive, got %v", hearts.Radius)
		check(hearts.MaxElevation >= hearts.MinElevation, "pickups.hearts elevations must satisfy min <= max")
	}

	h := c.Hazards
	if h.Enabled {
		checkTimer(check, "hazards", h.Spawn)
		check(h.Width > 0 && h.Height > 0, "hazard size must be positive, got %vx%v", h.Width, h.Height)
		check(h.ExtraSpeedMin >= 0 && h.ExtraSpeedMax >= h.ExtraSpeedMin,
			"hazards extra speed must satisfy 0 <= min <= max, got %v..%v", h.ExtraSpeedMin, h.ExtraSpeedMax)
	}
	check(h.HitboxShrink >= 0 && h.HitboxShrink < 0.5, "hazards.hitbox_shrink must be in [0, 0.5), got %v", h.HitboxShrink)
	check(h.Damage >= 1, "hazards.damage must be at least 1, got %d", h.Damage)
	check(h.InvincibilityMs >= 0, "hazards.invincibility_ms must not be negative, got %v", h.InvincibilityMs)
	check(h.StunMs >= 0, "hazards.stun_ms must not be negative, got %v", h.StunMs)

	pu := c.Pursuer
	if pu.Enabled {
		check(pu.Width > 0 && pu.Height > 0, "pursuer size must be positive, got %vx%v", pu.Width, pu.Height)
		check(pu.Damping > 0 && pu.Damping <= 1, "pursuer.damping must be in (0, 1], got %v", pu.Damping)
		check(pu.GapFactor >= pu.StunnedGapFactor, "pursuer.gap_factor must be >= stunned_gap_factor")
	}

	s := c.Session
	check(s.Lives >= 1, "session.lives must be at least 1, got %d", s.Lives)
	check(s.MaxLives >= s.Lives, "session.max_lives (%d) must be >= lives (%d)", s.MaxLives, s.Lives)
	check(s.CountdownMs >= 0, "session.countdown_ms must not be negative, got %v", s.CountdownMs)
	check(s.GameOverReturnMs >= 0, "session.game_over_return_ms must not be negative, got %v", s.GameOverReturnMs)
	check(s.ScorePerFrame >= 0, "session.score_per_frame must not be negative, got %v", s.ScorePerFrame)

	d := c.Difficulty
	check(d.InitialLevel >= 0 && d.InitialLevel <= 1, "difficulty.initial_level must be in [0, 1], got %v", d.InitialLevel)
	check(d.Scaling.AccelerationMultiplier >= 0,
		"difficulty.scaling.acceleration_multiplier must not be negative, got %v", d.Scaling.AccelerationMultiplier)
	check(d.Scaling.StartSpeedBoost >= 0, "difficulty.scaling.start_speed_boost must not be negative, got %v", d.Scaling.StartSpeedBoost)
	check(d.Scaling.SpawnReduction >= 0 && d.Scaling.SpawnReduction < 1,
		"difficulty.scaling.spawn_reduction must be in [0, 1), got %v", d.Scaling.SpawnReduction)
	if d.Enabled {
		switch d.Progression.Type {
		case "distance", "time":
			check(d.Progression.MaxAt > 0, "difficulty.progression.max_at must be positive, got %v", d.Progression.MaxAt)
		case "none":
		default:
			check(false, "difficulty.progression.type must be distance, time or none, got %q", d.Progression.Type)
		}
	}

	check(c.Render.CellWidth > 0 && c.Render.CellHeight > 0,
		"render cell size must be positive, got %vx%v", c.Render.CellWidth, c.Render.CellHeight)

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(problems...))
}

func checkTimer(check func(bool, string, ...any), name string, t SpawnTimer) {
	check(t.IntervalMs > 0, "%s.spawn.interval_ms must be positive, got %v", name, t.IntervalMs)
	check(t.Jitter >= 0 && t.Jitter < 1, "%s.spawn.jitter must be in [0, 1), got %v", name, t.Jitter)
}
