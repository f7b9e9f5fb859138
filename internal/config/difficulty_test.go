package config

import (
	"math"
	"testing"
)

func TestDifficultyLevelByDistance(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.2,
		Progression:  ProgressionConfig{Type: "distance", MaxAt: 1000},
	})

	tests := []struct {
		distance float64
		expected float64
	}{
		{0, 0.2},
		{500, 0.6},
		{1000, 1.0},
		{5000, 1.0}, // clamped
	}

	for _, tc := range tests {
		if got := d.Level(tc.distance, 0); math.Abs(got-tc.expected) > 1e-9 {
			t.Errorf("Level(%v) = %v, expected %v", tc.distance, got, tc.expected)
		}
	}
}

func TestDifficultyLevelByTime(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "time", MaxAt: 10000},
	})
	if got := d.Level(99999, 2500); got != 0.25 {
		t.Errorf("Level by time = %v, expected 0.25", got)
	}
}

func TestDifficultyDisabledHoldsInitialLevel(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      false,
		InitialLevel: 0.4,
		Progression:  ProgressionConfig{Type: "distance", MaxAt: 10},
	})
	if d.IsEnabled() {
		t.Error("manager should report disabled")
	}
	if got := d.Level(1000, 1000); got != 0.4 {
		t.Errorf("disabled Level = %v, expected 0.4", got)
	}
}

func TestDifficultyScaling(t *testing.T) {
	d := NewDifficultyManager(DifficultyConfig{
		Enabled:      true,
		InitialLevel: 1.0,
		Progression:  ProgressionConfig{Type: "distance", MaxAt: 100},
		Scaling: ScalingConfig{
			AccelerationMultiplier: 1.0,
			StartSpeedBoost:        0.5,
			SpawnReduction:         0.9,
		},
	})

	if got := d.StartSpeed(2, 6); got != 4 {
		t.Errorf("StartSpeed = %v, expected 4", got)
	}
	if got := d.Acceleration(0.01, 1.0); math.Abs(got-0.02) > 1e-12 {
		t.Errorf("Acceleration = %v, expected 0.02", got)
	}
	// 0.9 reduction would cut to 10%, but intervals are floored
	if got := d.Interval(1000, 1.0); got != 1000*minIntervalFraction {
		t.Errorf("Interval = %v, expected floor %v", got, 1000*minIntervalFraction)
	}
	if got := d.Interval(1000, 0); got != 1000 {
		t.Errorf("Interval at level 0 = %v, expected 1000", got)
	}
}
