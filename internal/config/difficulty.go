package config

import "math"

// minIntervalFraction keeps spawn cadences from collapsing at max difficulty.
const minIntervalFraction = 0.35

// DifficultyManager calculates dynamic run parameters from the distance covered
// or the time played.
type DifficultyManager struct {
	cfg          DifficultyConfig
	initialLevel float64
}

// NewDifficultyManager creates a new difficulty manager.
func NewDifficultyManager(cfg DifficultyConfig) *DifficultyManager {
	return &DifficultyManager{
		cfg:          cfg,
		initialLevel: clampF(cfg.InitialLevel, 0.0, 1.0),
	}
}

// SetInitialLevel overrides the initial difficulty level (0.0 to 1.0).
func (d *DifficultyManager) SetInitialLevel(level float64) {
	d.initialLevel = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables difficulty progression.
func (d *DifficultyManager) SetEnabled(enabled bool) {
	d.cfg.Enabled = enabled
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyManager) IsEnabled() bool {
	return d.cfg.Enabled && d.cfg.Progression.Type != "none"
}

// Level returns the current difficulty level (0.0 to 1.0).
func (d *DifficultyManager) Level(distance, elapsedMs float64) float64 {
	if !d.IsEnabled() {
		return d.initialLevel
	}

	maxAt := d.cfg.Progression.MaxAt
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}

	var progress float64
	switch d.cfg.Progression.Type {
	case "distance":
		progress = distance / maxAt
	case "time":
		progress = elapsedMs / maxAt
	default:
		return d.initialLevel
	}

	progress = clampF(progress, 0.0, 1.0)

	// Interpolate from initial level to 1.0
	return d.initialLevel + progress*(1.0-d.initialLevel)
}

// StartSpeed returns the scroll speed a run begins with, raised by the initial level.
func (d *DifficultyManager) StartSpeed(start, max float64) float64 {
	boost := d.initialLevel * d.cfg.Scaling.StartSpeedBoost * (max - start)
	return math.Min(max, start+math.Max(0, boost))
}

// Acceleration returns the per-frame speed increase at the given level.
func (d *DifficultyManager) Acceleration(base, level float64) float64 {
	return base * (1.0 + level*d.cfg.Scaling.AccelerationMultiplier)
}

// Interval returns a spawn interval shortened by the given level.
func (d *DifficultyManager) Interval(baseMs, level float64) float64 {
	factor := 1.0 - level*d.cfg.Scaling.SpawnReduction
	return baseMs * math.Max(minIntervalFraction, factor)
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
