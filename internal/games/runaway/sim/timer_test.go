package sim

import (
	"math"
	"testing"

	"github.com/vovakirdan/runaway/internal/config"
)

func TestCountdown(t *testing.T) {
	var c Countdown
	if c.Advance(100) {
		t.Error("zero countdown should never fire")
	}

	c.Arm(50)
	if c.Advance(30) {
		t.Error("countdown fired early")
	}
	if got := c.Remaining(); got != 20 {
		t.Errorf("Remaining() = %v, expected 20", got)
	}
	if !c.Advance(30) {
		t.Error("countdown should fire once its duration has elapsed")
	}
	if c.Armed() || c.Advance(30) {
		t.Error("countdown should disarm after firing")
	}

	c.Arm(10)
	c.Stop()
	if c.Advance(20) {
		t.Error("stopped countdown should not fire")
	}
}

func TestDeadline(t *testing.T) {
	var d Deadline
	if d.Active(0) {
		t.Error("zero deadline should not be active")
	}

	d.Extend(100, 50)
	tests := []struct {
		now    float64
		active bool
	}{
		{100, true},
		{149.9, true},
		{150, false},
		{200, false},
	}
	for _, tc := range tests {
		if got := d.Active(tc.now); got != tc.active {
			t.Errorf("Active(%v) = %v, expected %v", tc.now, got, tc.active)
		}
	}

	d.Clear()
	if d.Active(120) {
		t.Error("cleared deadline should not be active")
	}
}

func TestClampDelta(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		out  float64
	}{
		{"normal", 16, 16},
		{"backgrounded tab", 5000, 32},
		{"zero", 0, 0},
		{"negative", -4, 0},
		{"nan", math.NaN(), 0},
		{"infinite", math.Inf(1), 32},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClampDelta(tc.in, 32); got != tc.out {
				t.Errorf("ClampDelta(%v) = %v, expected %v", tc.in, got, tc.out)
			}
		})
	}
}

// fixedRNG returns the same value forever.
type fixedRNG float64

func (r fixedRNG) Float64() float64 { return float64(r) }

func TestRandomHelpers(t *testing.T) {
	if got := between(fixedRNG(0.5), 10, 20); got != 15 {
		t.Errorf("between = %v, expected 15", got)
	}
	if got := between(fixedRNG(0.9), 5, 5); got != 5 {
		t.Errorf("between on an empty range = %v, expected 5", got)
	}
	if got := intBetween(fixedRNG(0.999999), 4, 6); got != 6 {
		t.Errorf("intBetween high = %d, expected 6", got)
	}
	if got := intBetween(fixedRNG(0), 4, 6); got != 4 {
		t.Errorf("intBetween low = %d, expected 4", got)
	}

	timer := config.SpawnTimer{IntervalMs: 1000, Jitter: 0.25}
	if got := jittered(fixedRNG(0), timer, 1000); got != 750 {
		t.Errorf("jittered low = %v, expected 750", got)
	}
	if got := jittered(fixedRNG(1), timer, 1000); got != 1250 {
		t.Errorf("jittered high = %v, expected 1250", got)
	}

	r := NewRNG(3)
	for i := 0; i < 1000; i++ {
		if n := intBetween(r, 4, 6); n < 4 || n > 6 {
			t.Fatalf("intBetween out of range: %d", n)
		}
	}
}
